// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/draftport/internal/archive"
	"github.com/pdiddy/draftport/internal/catalog"
	"github.com/pdiddy/draftport/internal/project"
	"github.com/pdiddy/draftport/pkg/types"
)

var archiveCmd = &cobra.Command{
	Use:   "archive <project.json> [output.zip]",
	Short: "Convert a Schema 1 project to a zip archive of Markdown files",
	Long: `Archive walks the project hierarchy in source order, skipping trashed
and inactive entities, converts each document's HTML to Markdown, and
packages the results into a zip: one directory per included folder,
one .md file per included document.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runArchive,
}

func runArchive(cmd *cobra.Command, args []string) error {
	input := args[0]
	output := archiveOutputPath(cmd, args)

	p, err := project.Load(input)
	if err != nil {
		return err
	}

	fmt.Printf("Converting: %s -> %s\n", input, output)
	stats, err := archive.Convert(p, output, os.Stdout)
	if err != nil {
		return err
	}

	fmt.Printf("Created %s\n", output)
	fmt.Printf("  Folders:   %d\n", stats.Folders)
	fmt.Printf("  Documents: %d\n", stats.Documents)
	if stats.SkippedTrashed > 0 {
		fmt.Printf("  Skipped (trashed): %d\n", stats.SkippedTrashed)
	}
	if stats.SkippedMissing > 0 {
		fmt.Printf("  Skipped (missing): %d\n", stats.SkippedMissing)
	}

	recordRun(cmd, catalog.Run{
		Source:         input,
		Output:         output,
		Format:         catalog.FormatZip,
		Folders:        stats.Folders,
		Documents:      stats.Documents,
		SkippedTrashed: stats.SkippedTrashed,
		SkippedMissing: stats.SkippedMissing,
	})
	return nil
}

// archiveOutputPath resolves the zip destination: positional argument, then
// --output, then the configured path, then the input path with a .zip
// extension.
func archiveOutputPath(cmd *cobra.Command, args []string) string {
	if len(args) > 1 {
		return args[1]
	}
	if out, _ := cmd.Flags().GetString("output"); out != "" {
		return out
	}
	cfg := types.ArchiveConfig{OutputPath: viper.GetString("archive.output_path")}
	if cfg.OutputPath != "" {
		return cfg.OutputPath
	}
	in := args[0]
	return strings.TrimSuffix(in, filepath.Ext(in)) + ".zip"
}

func init() {
	archiveCmd.Flags().String("output", "", "output zip path (default: derived from input)")

	rootCmd.AddCommand(archiveCmd)
}

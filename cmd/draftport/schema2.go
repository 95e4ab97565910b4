// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/draftport/internal/catalog"
	"github.com/pdiddy/draftport/internal/project"
	"github.com/pdiddy/draftport/internal/schema2"
	"github.com/pdiddy/draftport/pkg/types"
)

var schema2Cmd = &cobra.Command{
	Use:   "schema2 <project.json> [output.json]",
	Short: "Convert a Schema 1 project to a Schema 2 JSON project",
	Long: `Schema2 converts a Schema 1 project into the nested Schema 2 structure:
folders of rich-text documents in natural title order, with block-based
content, remapped statuses, and computed word counts.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runSchema2,
}

func runSchema2(cmd *cobra.Command, args []string) error {
	input := args[0]
	output := schema2OutputPath(cmd, args)

	cfg := schema2Config(cmd)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("schema2 config: %w", err)
	}

	p, err := project.Load(input)
	if err != nil {
		return err
	}

	fmt.Printf("Converting: %s -> %s\n", input, output)
	out, stats, err := schema2.Build(p)
	if err != nil {
		return err
	}

	data, err := marshalSchema2(out, cfg.Indent)
	if err != nil {
		return fmt.Errorf("serializing output: %w", err)
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}

	fmt.Printf("Created %s\n", output)
	fmt.Printf("  Folders:   %d\n", stats.Folders)
	fmt.Printf("  Documents: %d\n", stats.Documents)
	fmt.Printf("  Words:     %d\n", stats.Words)
	if stats.SkippedTrashed > 0 {
		fmt.Printf("  Skipped (trashed): %d\n", stats.SkippedTrashed)
	}
	if stats.SkippedMissing > 0 {
		fmt.Printf("  Skipped (missing): %d\n", stats.SkippedMissing)
	}

	recordRun(cmd, catalog.Run{
		Source:         input,
		Output:         output,
		Format:         catalog.FormatSchema2,
		Folders:        stats.Folders,
		Documents:      stats.Documents,
		Words:          stats.Words,
		SkippedTrashed: stats.SkippedTrashed,
		SkippedMissing: stats.SkippedMissing,
	})
	return nil
}

func marshalSchema2(out *types.Schema2Project, indent int) ([]byte, error) {
	if indent <= 0 {
		return json.Marshal(out)
	}
	return json.MarshalIndent(out, "", strings.Repeat(" ", indent))
}

func schema2Config(cmd *cobra.Command) types.Schema2Config {
	indent, _ := cmd.Flags().GetInt("indent")
	if !cmd.Flags().Changed("indent") {
		indent = viper.GetInt("schema2.indent")
	}
	return types.Schema2Config{
		OutputPath: viper.GetString("schema2.output_path"),
		Indent:     indent,
	}
}

func schema2OutputPath(cmd *cobra.Command, args []string) string {
	if len(args) > 1 {
		return args[1]
	}
	if out, _ := cmd.Flags().GetString("output"); out != "" {
		return out
	}
	if out := viper.GetString("schema2.output_path"); out != "" {
		return out
	}
	in := args[0]
	return strings.TrimSuffix(in, filepath.Ext(in)) + "_schema2.json"
}

func init() {
	schema2Cmd.Flags().String("output", "", "output JSON path (default: derived from input)")
	schema2Cmd.Flags().Int("indent", 2, "output JSON indentation width, 0 for compact")

	rootCmd.AddCommand(schema2Cmd)
}

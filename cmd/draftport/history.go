// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/draftport/internal/catalog"
	"github.com/pdiddy/draftport/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent conversion runs",
	Long: `History lists conversion runs recorded in the local catalog. Every
archive or schema2 invocation records its source, output, and counts
unless --no-history is given.`,
	RunE: runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")

	store, err := catalog.NewStore(catalogConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.Recent(limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No runs recorded.")
		return nil
	}

	fmt.Printf("%-4s  %-19s  %-8s  %-32s  %7s  %9s\n",
		"ID", "When", "Format", "Output", "Folders", "Documents")
	fmt.Println(strings.Repeat("-", 90))
	for _, r := range runs {
		out := r.Output
		if len(out) > 32 {
			out = out[:29] + "..."
		}
		fmt.Printf("%-4d  %-19s  %-8s  %-32s  %7d  %9d\n",
			r.ID, r.Timestamp.Local().Format("2006-01-02 15:04:05"),
			r.Format, out, r.Folders, r.Documents)
	}

	fmt.Printf("\n%d runs\n", len(runs))
	return nil
}

// --- export subcommand ---

var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the run history to YAML or JSON",
	RunE:  runHistoryExport,
}

func runHistoryExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	output, _ := cmd.Flags().GetString("output")

	store, err := catalog.NewStore(catalogConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	switch format {
	case "yaml", "":
		if output == "" {
			output = "draftport-history.yaml"
		}
		if err := store.ExportYAML(output); err != nil {
			return err
		}
	case "json":
		if output == "" {
			output = "draftport-history.json"
		}
		if err := store.ExportJSON(output); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}

	fmt.Println("Exported to", output)
	return nil
}

// --- shared helpers ---

func catalogConfig(cmd *cobra.Command) types.CatalogConfig {
	stateDir, _ := cmd.Flags().GetString("state-dir")
	if stateDir == "" {
		stateDir = viper.GetString("catalog.state_dir")
	}
	return types.CatalogConfig{
		StateDir: stateDir,
		MaxRuns:  viper.GetInt("catalog.max_runs"),
	}
}

// recordRun stores a completed conversion in the catalog. Catalog trouble
// never fails a conversion that already succeeded; it downgrades to a
// warning on stderr.
func recordRun(cmd *cobra.Command, run catalog.Run) {
	if skip, _ := cmd.Flags().GetBool("no-history"); skip {
		return
	}

	store, err := catalog.NewStore(catalogConfig(cmd))
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: run catalog unavailable: %v\n", err)
		return
	}
	defer store.Close()

	if err := store.Record(run); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not record run: %v\n", err)
	}
}

func init() {
	historyCmd.Flags().Int("limit", 0, "maximum runs to list (default from config)")

	historyExportCmd.Flags().String("format", "yaml", "export format: yaml or json")
	historyExportCmd.Flags().String("output", "", "export file path (default: draftport-history.<format>)")

	historyCmd.AddCommand(historyExportCmd)
	rootCmd.AddCommand(historyCmd)
}

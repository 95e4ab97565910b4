// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/draftport/internal/hierarchy"
	"github.com/pdiddy/draftport/internal/htmlconv"
	"github.com/pdiddy/draftport/internal/project"
	"github.com/pdiddy/draftport/internal/slug"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <project.json>",
	Short: "Summarize a Schema 1 project without converting it",
	Long: `Inspect loads a project, applies the same trash and status filters the
converters use, and prints what a conversion would include: folders,
documents, and word counts.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

type folderSummary struct {
	Name      string `json:"name"`
	Title     string `json:"title"`
	Documents int    `json:"documents"`
	Words     int    `json:"words"`
}

type projectSummary struct {
	Title           string          `json:"title"`
	Folders         []folderSummary `json:"folders"`
	Documents       int             `json:"documents"`
	Words           int             `json:"words"`
	TrashedDocs     int             `json:"trashed_documents"`
	TrashedFolders  int             `json:"trashed_folders"`
	MissingRefs     int             `json:"missing_references"`
}

func runInspect(cmd *cobra.Command, args []string) error {
	p, err := project.Load(args[0])
	if err != nil {
		return err
	}

	pairs, stats := hierarchy.Filter(p, hierarchy.SourceOrder)

	summary := projectSummary{
		Title:          p.Title,
		Folders:        make([]folderSummary, 0, len(pairs)),
		Documents:      stats.Documents,
		TrashedDocs:    len(p.Trash.DocumentIDs),
		TrashedFolders: len(p.Trash.FolderIDs),
		MissingRefs:    stats.SkippedMissing,
	}
	for _, fd := range pairs {
		fs := folderSummary{
			Name:      slug.Folder(fd.Folder.Title),
			Title:     fd.Folder.Title,
			Documents: len(fd.Documents),
		}
		for _, doc := range fd.Documents {
			fs.Words += htmlconv.WordCount(htmlconv.Blocks(doc.Content))
		}
		summary.Words += fs.Words
		summary.Folders = append(summary.Folders, fs)
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(summary)
	}

	fmt.Printf("Project: %s\n\n", summary.Title)
	if len(summary.Folders) == 0 {
		fmt.Println("No folders would be included.")
		return nil
	}

	fmt.Printf("%-30s  %-30s  %9s  %8s\n", "Folder", "Slug", "Documents", "Words")
	fmt.Println(strings.Repeat("-", 84))
	for _, fs := range summary.Folders {
		title := fs.Title
		if len(title) > 30 {
			title = title[:27] + "..."
		}
		name := fs.Name
		if len(name) > 30 {
			name = name[:27] + "..."
		}
		fmt.Printf("%-30s  %-30s  %9d  %8d\n", title, name, fs.Documents, fs.Words)
	}

	fmt.Printf("\n%d folders, %d documents, %d words\n",
		len(summary.Folders), summary.Documents, summary.Words)
	if summary.TrashedDocs > 0 || summary.TrashedFolders > 0 {
		fmt.Printf("Trash: %d documents, %d folders\n", summary.TrashedDocs, summary.TrashedFolders)
	}
	if summary.MissingRefs > 0 {
		fmt.Printf("Dangling references: %d\n", summary.MissingRefs)
	}
	return nil
}

func init() {
	inspectCmd.Flags().Bool("json", false, "print the summary as JSON")

	rootCmd.AddCommand(inspectCmd)
}

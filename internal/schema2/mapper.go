// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package schema2 builds the nested Schema 2 output structure: folders of
// rich-text documents with computed metadata, ordered by natural title
// comparison.
package schema2

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pdiddy/draftport/internal/hierarchy"
	"github.com/pdiddy/draftport/internal/htmlconv"
	"github.com/pdiddy/draftport/internal/slug"
	"github.com/pdiddy/draftport/pkg/types"
)

// Stats summarizes a Schema 2 mapping run.
type Stats struct {
	Folders        int
	Documents      int
	Words          int
	SkippedTrashed int
	SkippedMissing int
}

// Build converts a Schema 1 project into the Schema 2 structure. Folder
// order indices are contiguous over included folders; document order
// indices follow natural title order within each folder.
func Build(p *types.Project) (*types.Schema2Project, Stats, error) {
	pairs, fstats := hierarchy.Filter(p, hierarchy.NaturalTitleOrder)

	stats := Stats{
		Folders:        fstats.Folders,
		Documents:      fstats.Documents,
		SkippedTrashed: fstats.SkippedTrashed,
		SkippedMissing: fstats.SkippedMissing,
	}

	folders := make([]types.Schema2Folder, 0, len(pairs))
	for order, fd := range pairs {
		docs := make([]types.Schema2Document, 0, len(fd.Documents))
		for docOrder, doc := range fd.Documents {
			out, words, err := buildDocument(doc, docOrder)
			if err != nil {
				return nil, stats, err
			}
			stats.Words += words
			docs = append(docs, out)
		}
		folders = append(folders, types.Schema2Folder{
			Name:      slug.Folder(fd.Folder.Title),
			Type:      types.ManuscriptType,
			Order:     order,
			Documents: docs,
		})
	}

	out := &types.Schema2Project{
		Title:   strings.ReplaceAll(p.Title, " ", "_"),
		Status:  types.StatusDraft,
		Folders: folders,
	}
	if stats.Documents > 0 {
		total := stats.Documents
		out.NumberOfChapters = &total
	}
	return out, stats, nil
}

// buildDocument converts one document: blocks, serialized content, word
// count, title cleanup, and status remapping. The active sentinel maps to
// draft; any other status passes through unchanged.
func buildDocument(doc types.Document, order int) (types.Schema2Document, int, error) {
	blocks := htmlconv.Blocks(doc.Content)
	content, err := json.Marshal(blocks)
	if err != nil {
		return types.Schema2Document{}, 0, fmt.Errorf("serializing blocks for %s: %w", doc.ID, err)
	}
	words := htmlconv.WordCount(blocks)

	status := doc.Status
	if types.Active(status) {
		status = types.StatusDraft
	}

	out := types.Schema2Document{
		Type:      types.ManuscriptType,
		Title:     slug.TrimMarkdownExt(doc.Title),
		Content:   string(content),
		Status:    status,
		Order:     order,
		WordCount: words,
	}
	if doc.Summary != "" {
		summary := doc.Summary
		out.Synopsis = &summary
	}
	return out, words, nil
}

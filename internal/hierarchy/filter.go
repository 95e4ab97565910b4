// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package hierarchy walks a Schema 1 project applying trash and status
// exclusions and ordering rules, producing the (folder, documents) pairs
// both output mappers consume.
package hierarchy

import (
	"sort"

	"github.com/pdiddy/draftport/internal/slug"
	"github.com/pdiddy/draftport/pkg/types"
)

// Mode selects how documents are ordered within each folder.
type Mode int

const (
	// SourceOrder keeps documents in the folder's reference order.
	SourceOrder Mode = iota

	// NaturalTitleOrder re-sorts documents by natural title comparison.
	NaturalTitleOrder
)

// FolderDocs pairs an included folder with its surviving documents.
type FolderDocs struct {
	Folder    types.Folder
	Documents []types.Document
}

// Stats counts what the filter kept and dropped.
type Stats struct {
	// Folders is the number of included folders.
	Folders int

	// Documents is the number of included documents across all folders.
	Documents int

	// SkippedTrashed counts document references dropped because the id
	// is in the trash set.
	SkippedTrashed int

	// SkippedMissing counts document references absent from the document map.
	SkippedMissing int
}

// Filter produces the ordered list of included folders with their filtered
// documents. Folders order ascending by sort key (missing means 0), ties
// keeping source order. A folder is excluded when trashed, inactive, or
// left with zero documents. Documents are excluded when trashed, missing
// from the document map, or inactive; trash membership overrides status.
func Filter(p *types.Project, mode Mode) ([]FolderDocs, Stats) {
	trashDocs := idSet(p.Trash.DocumentIDs)
	trashFolders := idSet(p.Trash.FolderIDs)

	folders := make([]types.Folder, len(p.Folders))
	copy(folders, p.Folders)
	sort.SliceStable(folders, func(i, j int) bool {
		return folders[i].Sort < folders[j].Sort
	})

	var out []FolderDocs
	var stats Stats
	for _, f := range folders {
		if trashFolders[f.ID] || !types.Active(f.Status) {
			continue
		}

		var docs []types.Document
		for _, id := range f.DocumentIDs {
			if trashDocs[id] {
				stats.SkippedTrashed++
				continue
			}
			doc, ok := p.DocumentsByID[id]
			if !ok {
				stats.SkippedMissing++
				continue
			}
			if !types.Active(doc.Status) {
				continue
			}
			docs = append(docs, doc)
		}
		if len(docs) == 0 {
			continue
		}

		if mode == NaturalTitleOrder {
			// Comparison runs on the title after ".md" stripping, so
			// "Chapter 2" and "Chapter 2.md" order as equals.
			sort.SliceStable(docs, func(i, j int) bool {
				return NaturalCompare(
					slug.TrimMarkdownExt(docs[i].Title),
					slug.TrimMarkdownExt(docs[j].Title)) < 0
			})
		}

		out = append(out, FolderDocs{Folder: f, Documents: docs})
		stats.Folders++
		stats.Documents += len(docs)
	}
	return out, stats
}

func idSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

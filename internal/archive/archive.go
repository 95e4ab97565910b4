// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package archive maps a Schema 1 project onto Markdown archive entries
// and packages them into a zip: one directory per included folder, one
// .md file per included document, documents kept in source order.
package archive

import (
	"fmt"
	"io"
	"os"

	"github.com/pdiddy/draftport/internal/hierarchy"
	"github.com/pdiddy/draftport/internal/htmlconv"
	"github.com/pdiddy/draftport/internal/slug"
	"github.com/pdiddy/draftport/pkg/types"
)

// Entry is one file in the output archive.
type Entry struct {
	// Path is the archive-relative location: {folderSlug}/{filenameSlug}.
	Path string

	// Content is the converted Markdown text.
	Content string
}

// Stats summarizes an archive mapping run.
type Stats struct {
	Folders        int
	Documents      int
	SkippedTrashed int
	SkippedMissing int
}

// Entries converts every included document to Markdown, in source order,
// producing one entry per document.
func Entries(p *types.Project) ([]Entry, Stats) {
	pairs, fstats := hierarchy.Filter(p, hierarchy.SourceOrder)

	var entries []Entry
	for _, fd := range pairs {
		dir := slug.Folder(fd.Folder.Title)
		for _, doc := range fd.Documents {
			entries = append(entries, Entry{
				Path:    dir + "/" + slug.Filename(doc.Title),
				Content: htmlconv.Markdown(doc.Content),
			})
		}
	}

	return entries, Stats{
		Folders:        fstats.Folders,
		Documents:      fstats.Documents,
		SkippedTrashed: fstats.SkippedTrashed,
		SkippedMissing: fstats.SkippedMissing,
	}
}

// Convert runs the full mapping and packaging for a project, writing the
// zip to path and a per-entry progress line to w. A packaging failure
// propagates unchanged; there is no partial output to salvage.
func Convert(p *types.Project, path string, w io.Writer) (Stats, error) {
	entries, stats := Entries(p)

	f, err := os.Create(path)
	if err != nil {
		return stats, fmt.Errorf("creating archive %s: %w", path, err)
	}

	for _, e := range entries {
		fmt.Fprintf(w, "added: %s\n", e.Path)
	}

	if err := WriteZip(f, entries); err != nil {
		f.Close()
		return stats, err
	}
	if err := f.Close(); err != nil {
		return stats, fmt.Errorf("closing archive %s: %w", path, err)
	}
	return stats, nil
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"strings"
)

// WriteZip packages entries into a deflate-compressed zip stream. Each
// folder appears once as an explicit directory entry ahead of its files,
// so the archive unpacks cleanly even for tools that skip implied
// directories. Entries are written as UTF-8.
func WriteZip(w io.Writer, entries []Entry) error {
	zw := zip.NewWriter(w)

	seen := make(map[string]bool)
	for _, e := range entries {
		if dir, _, ok := strings.Cut(e.Path, "/"); ok && !seen[dir] {
			if _, err := zw.Create(dir + "/"); err != nil {
				return fmt.Errorf("creating archive directory %s: %w", dir, err)
			}
			seen[dir] = true
		}

		f, err := zw.Create(e.Path)
		if err != nil {
			return fmt.Errorf("creating archive entry %s: %w", e.Path, err)
		}
		if _, err := io.WriteString(f, e.Content); err != nil {
			return fmt.Errorf("writing archive entry %s: %w", e.Path, err)
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("finalizing archive: %w", err)
	}
	return nil
}

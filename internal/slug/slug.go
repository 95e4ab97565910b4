// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package slug derives archive path segments from folder and document titles.
package slug

import (
	"regexp"
	"strings"
)

// invalidChars matches everything outside letters, digits, underscore,
// whitespace, and hyphen. Unicode classes, not \w: accented letters in
// titles survive slugging.
var (
	invalidChars = regexp.MustCompile(`[^\p{L}\p{N}_\s-]`)
	whitespace   = regexp.MustCompile(`\s+`)
	hyphenRun    = regexp.MustCompile(`-+`)
)

// Folder converts a folder title into a directory name:
// "Schema 1 Subfolder 1" → "schema-1-subfolder-1".
func Folder(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = invalidChars.ReplaceAllString(s, "")
	s = whitespace.ReplaceAllString(s, "-")
	s = hyphenRun.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// Filename converts a document title into a Markdown filename:
// "Document For Subfolder 1" → "Document_For_Subfolder_1.md".
// An existing ".md" suffix is stripped first so "Chapter 8.md" does not
// become "Chapter_8.md.md".
func Filename(title string) string {
	s := TrimMarkdownExt(strings.TrimSpace(title))
	s = invalidChars.ReplaceAllString(s, "")
	s = whitespace.ReplaceAllString(s, "_")
	return s + ".md"
}

// TrimMarkdownExt strips one trailing ".md" suffix, case-insensitively.
func TrimMarkdownExt(title string) string {
	if len(title) >= 3 && strings.EqualFold(title[len(title)-3:], ".md") {
		return title[:len(title)-3]
	}
	return title
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package htmlconv

import "strings"

// entityReplacer decodes the five standard HTML entities plus the
// non-breaking space. Anything more exotic passes through untouched.
var entityReplacer = strings.NewReplacer(
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#39;", "'",
	"&apos;", "'",
	"&nbsp;", " ",
)

// decodeEntities replaces encoded entities in a text segment.
func decodeEntities(s string) string {
	if !strings.ContainsRune(s, '&') {
		return s
	}
	return entityReplacer.Replace(s)
}

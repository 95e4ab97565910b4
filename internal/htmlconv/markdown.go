// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package htmlconv

import (
	"fmt"
	"regexp"
	"strings"
)

// newlineRun matches three or more consecutive newlines for collapsing.
var newlineRun = regexp.MustCompile(`\n{3,}`)

// Markdown converts an HTML fragment to Markdown text. Empty input yields
// empty output. Unknown tags are stripped, their text kept. The result has
// runs of blank lines collapsed to a single blank line and surrounding
// whitespace trimmed.
func Markdown(src string) string {
	if src == "" {
		return ""
	}

	toks := tokenize(src)
	var b strings.Builder
	for i := 0; i < len(toks); i++ {
		t := toks[i]
		switch t.kind {
		case tokenText:
			b.WriteString(decodeEntities(t.text))
		case tokenOpen:
			i += openTag(&b, toks, i)
		case tokenClose:
			closeTag(&b, t.name)
		}
	}

	out := newlineRun.ReplaceAllString(b.String(), "\n\n")
	return strings.TrimSpace(out)
}

// openTag emits the Markdown prefix for an open tag and returns how many
// extra tokens were consumed (non-zero only for inline anchors).
func openTag(b *strings.Builder, toks []token, i int) int {
	t := toks[i]
	switch t.name {
	case "p":
		// Dropped; the close tag supplies the paragraph break.
	case "br":
		b.WriteString("\n\n")
	case "strong", "b":
		b.WriteString("**")
	case "em", "i":
		b.WriteString("*")
	case "h1", "h2", "h3", "h4":
		level := int(t.name[1] - '0')
		b.WriteString(strings.Repeat("#", level))
		b.WriteString(" ")
	case "a":
		// Inline link form only when the anchor wraps a single text
		// segment; anchors with nested markup fall through to stripping.
		if i+2 < len(toks) &&
			toks[i+1].kind == tokenText &&
			toks[i+2].kind == tokenClose && toks[i+2].name == "a" {
			if href := hrefValue(t.attrs); href != "" {
				fmt.Fprintf(b, "[%s](%s)", decodeEntities(toks[i+1].text), href)
				return 2
			}
		}
	case "ul", "ol":
		b.WriteString("\n")
	case "li":
		b.WriteString("- ")
	case "code":
		b.WriteString("`")
	case "pre":
		b.WriteString("```\n")
	case "blockquote":
		b.WriteString("> ")
	}
	return 0
}

// closeTag emits the Markdown suffix for a close tag.
func closeTag(b *strings.Builder, name string) {
	switch name {
	case "p", "br":
		b.WriteString("\n\n")
	case "strong", "b":
		b.WriteString("**")
	case "em", "i":
		b.WriteString("*")
	case "h1", "h2", "h3", "h4":
		b.WriteString("\n\n")
	case "ul", "ol":
		b.WriteString("\n")
	case "li":
		b.WriteString("\n")
	case "code":
		b.WriteString("`")
	case "pre":
		b.WriteString("\n```\n")
	case "blockquote":
		b.WriteString("\n")
	}
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package htmlconv converts HTML fragments into the two output
// representations draftport emits: flat Markdown text and rich-text block
// sequences. Both emitters share one tokenizer that splits a fragment into
// an ordered stream of open-tag, close-tag, and text events.
//
// The converters are deterministic best-effort linear transforms, not a
// standards-compliant DOM. Deeply nested or overlapping markup may render
// imperfectly, but identical input always produces identical output.
package htmlconv

import (
	"regexp"
	"strings"
)

type tokenKind int

const (
	tokenText tokenKind = iota
	tokenOpen
	tokenClose
)

// token is one event in the tokenized stream. Tag tokens carry the
// lower-cased tag name and (for open tags) the raw attribute text; text
// tokens carry the raw text segment, entities still encoded.
type token struct {
	kind  tokenKind
	name  string
	attrs string
	text  string
}

// tokenize splits an HTML fragment into tag and text events. Comments,
// doctypes, and processing instructions produce no events. An unterminated
// tag is kept as literal text.
func tokenize(src string) []token {
	var toks []token
	for i := 0; i < len(src); {
		lt := strings.IndexByte(src[i:], '<')
		if lt < 0 {
			toks = append(toks, token{kind: tokenText, text: src[i:]})
			break
		}
		if lt > 0 {
			toks = append(toks, token{kind: tokenText, text: src[i : i+lt]})
		}
		i += lt
		gt := strings.IndexByte(src[i:], '>')
		if gt < 0 {
			toks = append(toks, token{kind: tokenText, text: src[i:]})
			break
		}
		if tok, ok := parseTag(src[i+1 : i+gt]); ok {
			toks = append(toks, tok)
		}
		i += gt + 1
	}
	return toks
}

// parseTag interprets the text between '<' and '>'. The second return is
// false for comments, doctypes, and empty tags.
func parseTag(raw string) (token, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.HasPrefix(raw, "!") || strings.HasPrefix(raw, "?") {
		return token{}, false
	}

	kind := tokenOpen
	if strings.HasPrefix(raw, "/") {
		kind = tokenClose
		raw = strings.TrimSpace(raw[1:])
	}
	raw = strings.TrimSpace(strings.TrimSuffix(raw, "/"))
	if raw == "" {
		return token{}, false
	}

	name, attrs := raw, ""
	if sp := strings.IndexAny(raw, " \t\r\n"); sp >= 0 {
		name, attrs = raw[:sp], strings.TrimSpace(raw[sp+1:])
	}
	return token{kind: kind, name: strings.ToLower(name), attrs: attrs}, true
}

// hrefPattern extracts the href value from an anchor's attribute text.
var hrefPattern = regexp.MustCompile(`(?i)href\s*=\s*(?:"([^"]*)"|'([^']*)'|([^\s"'>]+))`)

// hrefValue returns the href attribute value from raw attribute text, or
// the empty string when absent.
func hrefValue(attrs string) string {
	m := hrefPattern.FindStringSubmatch(attrs)
	if m == nil {
		return ""
	}
	for _, g := range m[1:] {
		if g != "" {
			return g
		}
	}
	return ""
}

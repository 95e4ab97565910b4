// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package htmlconv

import (
	"strings"

	"github.com/google/uuid"

	"github.com/pdiddy/draftport/pkg/types"
)

// Blocks converts an HTML fragment into an ordered sequence of rich-text
// blocks. Paragraph breaks come from p close tags and br tags; h1 through
// h6 produce heading blocks carrying their level. Blocks that end up with
// zero runs are discarded. The result is never nil.
//
// Style flags are plain booleans, not nesting counters. Re-opening an
// already-open style and closing it clears the style for the rest of the
// outer span: <b>a<b>b</b>c</b> loses bold on "c". Converted projects
// round-trip through other Schema 2 tooling with that exact behavior, so
// it is kept as-is.
func Blocks(src string) []types.Block {
	st := newBlockState()
	for _, t := range tokenize(src) {
		st.feed(t)
	}
	return st.finish()
}

// blockState is the explicit parser state threaded through the token
// stream: the accumulating current block plus the active style flags.
type blockState struct {
	out     []types.Block
	current types.Block
	styles  types.RunStyles
}

func newBlockState() *blockState {
	return &blockState{
		out:     []types.Block{},
		current: newBlock(types.BlockParagraph, 0),
	}
}

// newBlock creates an empty block with default props and a fresh id.
// level is recorded only for headings.
func newBlock(kind string, level int) types.Block {
	b := types.Block{
		ID:   uuid.NewString(),
		Type: kind,
		Props: types.BlockProps{
			TextColor:       types.ColorDefault,
			BackgroundColor: types.ColorDefault,
			TextAlignment:   types.AlignmentLeft,
		},
		Children: []types.Block{},
	}
	if level > 0 {
		b.Props.Level = level
	}
	return b
}

func (s *blockState) feed(t token) {
	switch t.kind {
	case tokenText:
		s.text(t.text)
	case tokenOpen:
		switch t.name {
		case "p", "br":
			s.flush(types.BlockParagraph, 0)
		case "strong", "b":
			s.styles.Bold = true
		case "em", "i":
			s.styles.Italic = true
		case "u":
			s.styles.Underline = true
		case "h1", "h2", "h3", "h4", "h5", "h6":
			s.flush(types.BlockHeading, int(t.name[1]-'0'))
		}
	case tokenClose:
		switch t.name {
		case "p", "br":
			s.flush(types.BlockParagraph, 0)
		case "strong", "b":
			s.styles.Bold = false
		case "em", "i":
			s.styles.Italic = false
		case "u":
			s.styles.Underline = false
		case "h1", "h2", "h3", "h4", "h5", "h6":
			s.flush(types.BlockParagraph, 0)
		}
	}
}

// text appends a run carrying the current style snapshot. Pure-whitespace
// segments are dropped, except a single space, which preserves the gap
// between adjacent styled words.
func (s *blockState) text(raw string) {
	text := decodeEntities(raw)
	if strings.TrimSpace(text) == "" && text != " " {
		return
	}
	s.current.Content = append(s.current.Content, types.TextRun{
		Type:   "text",
		Text:   text,
		Styles: s.styles,
	})
}

// flush appends the current block to the output if it holds at least one
// run, then starts a fresh block of the given kind. An empty current block
// is discarded silently.
func (s *blockState) flush(next string, level int) {
	if len(s.current.Content) > 0 {
		s.out = append(s.out, s.current)
	}
	s.current = newBlock(next, level)
}

// finish flushes the trailing block and returns the output sequence.
func (s *blockState) finish() []types.Block {
	s.flush(types.BlockParagraph, 0)
	return s.out
}

// WordCount counts whitespace-separated words across every run of every
// block, inserting a separating space between runs. An empty sequence
// counts zero.
func WordCount(blocks []types.Block) int {
	var parts []string
	for _, b := range blocks {
		for _, r := range b.Content {
			parts = append(parts, r.Text)
		}
	}
	return len(strings.Fields(strings.Join(parts, " ")))
}

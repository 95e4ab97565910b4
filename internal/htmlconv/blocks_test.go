// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package htmlconv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/draftport/pkg/types"
)

// runTexts flattens block runs to text for compact assertions.
func runTexts(b types.Block) []string {
	var out []string
	for _, r := range b.Content {
		out = append(out, r.Text)
	}
	return out
}

func TestBlocksHeadingAndParagraph(t *testing.T) {
	blocks := Blocks("<h1>Title</h1><p>Body</p>")
	require.Len(t, blocks, 2)

	assert.Equal(t, types.BlockHeading, blocks[0].Type)
	assert.Equal(t, 1, blocks[0].Props.Level)
	assert.Equal(t, []string{"Title"}, runTexts(blocks[0]))

	assert.Equal(t, types.BlockParagraph, blocks[1].Type)
	assert.Equal(t, 0, blocks[1].Props.Level)
	assert.Equal(t, []string{"Body"}, runTexts(blocks[1]))
}

func TestBlocksDefaults(t *testing.T) {
	blocks := Blocks("<p>Text</p>")
	require.Len(t, blocks, 1)

	b := blocks[0]
	assert.NotEmpty(t, b.ID)
	assert.Equal(t, types.ColorDefault, b.Props.TextColor)
	assert.Equal(t, types.ColorDefault, b.Props.BackgroundColor)
	assert.Equal(t, types.AlignmentLeft, b.Props.TextAlignment)
	assert.NotNil(t, b.Children)
	assert.Empty(t, b.Children)

	require.Len(t, b.Content, 1)
	assert.Equal(t, "text", b.Content[0].Type)
}

func TestBlocksDistinctIDs(t *testing.T) {
	blocks := Blocks("<p>a</p><p>b</p><p>c</p>")
	require.Len(t, blocks, 3)
	ids := map[string]bool{}
	for _, b := range blocks {
		ids[b.ID] = true
	}
	assert.Len(t, ids, 3)
}

func TestBlocksStyles(t *testing.T) {
	blocks := Blocks("<p><b>bold</b> <i>italic</i> <u>under</u></p>")
	require.Len(t, blocks, 1)

	runs := blocks[0].Content
	require.Len(t, runs, 5)

	assert.Equal(t, "bold", runs[0].Text)
	assert.True(t, runs[0].Styles.Bold)
	assert.False(t, runs[0].Styles.Italic)

	// The single spaces between styled words survive as unstyled runs.
	assert.Equal(t, " ", runs[1].Text)
	assert.Equal(t, types.RunStyles{}, runs[1].Styles)

	assert.Equal(t, "italic", runs[2].Text)
	assert.True(t, runs[2].Styles.Italic)

	assert.Equal(t, "under", runs[4].Text)
	assert.True(t, runs[4].Styles.Underline)
}

func TestBlocksStyleFlagsAreNotCounters(t *testing.T) {
	// Closing an inner duplicate tag clears the style for the rest of the
	// outer span; converted projects depend on this exact behavior.
	blocks := Blocks("<p><b>a<b>b</b>c</b></p>")
	require.Len(t, blocks, 1)

	runs := blocks[0].Content
	require.Len(t, runs, 3)
	assert.True(t, runs[0].Styles.Bold, "a keeps bold")
	assert.True(t, runs[1].Styles.Bold, "b keeps bold")
	assert.False(t, runs[2].Styles.Bold, "c loses bold")
}

func TestBlocksWhitespaceHandling(t *testing.T) {
	// Formatting whitespace between paragraphs produces no runs.
	blocks := Blocks("<p>a</p>\n\n  <p>b</p>")
	require.Len(t, blocks, 2)
	assert.Equal(t, []string{"a"}, runTexts(blocks[0]))
	assert.Equal(t, []string{"b"}, runTexts(blocks[1]))
}

func TestBlocksLineBreakFlushes(t *testing.T) {
	blocks := Blocks("One<br>Two")
	require.Len(t, blocks, 2)
	assert.Equal(t, []string{"One"}, runTexts(blocks[0]))
	assert.Equal(t, []string{"Two"}, runTexts(blocks[1]))
}

func TestBlocksEmptyInput(t *testing.T) {
	blocks := Blocks("")
	assert.NotNil(t, blocks)
	assert.Empty(t, blocks)
}

func TestBlocksEmptyMarkup(t *testing.T) {
	assert.Empty(t, Blocks("<p></p><p>  \n </p><h1></h1>"))
}

func TestBlocksEntitiesDecoded(t *testing.T) {
	blocks := Blocks("<p>Fish &amp; Chips</p>")
	require.Len(t, blocks, 1)
	assert.Equal(t, []string{"Fish & Chips"}, runTexts(blocks[0]))
}

func TestBlocksHeadingLevels(t *testing.T) {
	blocks := Blocks("<h3>Deep</h3><h6>Deeper</h6>")
	require.Len(t, blocks, 2)
	assert.Equal(t, 3, blocks[0].Props.Level)
	assert.Equal(t, 6, blocks[1].Props.Level)
}

func TestWordCount(t *testing.T) {
	tests := []struct {
		name string
		html string
		want int
	}{
		{name: "empty sequence", html: "", want: 0},
		{name: "two words", html: "<p>Hello world</p>", want: 2},
		{name: "words split across styled runs", html: "<p><b>Hello</b> <i>world</i></p>", want: 2},
		{name: "across blocks", html: "<h1>One Two</h1><p>Three</p>", want: 3},
		{name: "extra whitespace ignored", html: "<p>a   b</p>", want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WordCount(Blocks(tt.html)))
		})
	}
}

func TestWordCountNil(t *testing.T) {
	assert.Equal(t, 0, WordCount(nil))
}

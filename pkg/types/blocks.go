// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Block type tags.
const (
	BlockParagraph = "paragraph"
	BlockHeading   = "heading"
)

// Default block style properties.
const (
	ColorDefault  = "default"
	AlignmentLeft = "left"
)

// BlockProps holds a block's style properties. Every converted block
// carries the default colors and left alignment; heading blocks also
// carry their level.
type BlockProps struct {
	TextColor       string `json:"textColor"`
	BackgroundColor string `json:"backgroundColor"`
	TextAlignment   string `json:"textAlignment"`
	Level           int    `json:"level,omitempty"`
}

// RunStyles is the style flag set attached to a text run. Flags are plain
// booleans, not nesting counters; only set flags serialize.
type RunStyles struct {
	Bold      bool `json:"bold,omitempty"`
	Italic    bool `json:"italic,omitempty"`
	Underline bool `json:"underline,omitempty"`
}

// TextRun is one styled text span inside a block.
type TextRun struct {
	// Type is always "text".
	Type string `json:"type"`

	// Text is the run content, entities already decoded.
	Text string `json:"text"`

	// Styles is the snapshot of style flags active when the run was emitted.
	Styles RunStyles `json:"styles"`
}

// Block is a structured rich-text unit: a paragraph or heading holding an
// ordered sequence of styled runs. Blocks with zero runs never appear in
// final output.
type Block struct {
	// ID is a generated UUID identifying the block.
	ID string `json:"id"`

	// Type is the block type tag: paragraph or heading.
	Type string `json:"type"`

	// Props holds the block's style properties.
	Props BlockProps `json:"props"`

	// Content is the ordered run sequence.
	Content []TextRun `json:"content"`

	// Children is always present and empty; the converter emits a flat
	// block sequence.
	Children []Block `json:"children"`
}

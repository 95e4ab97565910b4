// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ManuscriptType is the fixed type tag on Schema 2 folders and documents.
const ManuscriptType = "manuscript"

// Schema2Document is one converted document in the Schema 2 output.
// Pointer fields serialize as JSON null when unset; Schema 2 readers
// expect the keys to be present.
type Schema2Document struct {
	Type       string  `json:"type"`
	Title      string  `json:"title"`
	LabelColor *string `json:"label_color"`
	CardColor  *string `json:"card_color"`
	Icon       *string `json:"icon"`

	// Content is the rich-text block sequence serialized as a JSON string.
	Content string `json:"content"`

	// Synopsis carries the source document summary, or null when absent.
	Synopsis *string `json:"synopsis"`

	Notes  *string `json:"notes"`
	Label  *string `json:"label"`
	Status string  `json:"status"`

	// Order is the zero-based position within the folder after natural
	// title ordering.
	Order int `json:"order"`

	// WordCount is computed from the converted block content.
	WordCount       int     `json:"word_count"`
	TargetWordCount *int    `json:"target_word_count"`
	Keywords        *string `json:"keywords"`
}

// Schema2Folder is one converted folder in the Schema 2 output.
type Schema2Folder struct {
	// Name is the slug derived from the folder title.
	Name string `json:"name"`

	Type        string  `json:"type"`
	Description *string `json:"description"`
	ParentID    *string `json:"parent_id"`
	LabelColor  *string `json:"label_color"`
	Icon        *string `json:"icon"`

	// Order is the zero-based position counted over included folders only.
	Order int `json:"order"`

	IsDefault bool              `json:"is_default"`
	Documents []Schema2Document `json:"documents"`
}

// Schema2Project is the root of the Schema 2 output structure.
type Schema2Project struct {
	// Title is the project title with spaces replaced by underscores.
	Title string `json:"title"`

	Author        *string `json:"author"`
	AuthorPenName *string `json:"author_pen_name"`
	Description   *string `json:"description"`
	Genre         *string `json:"genre"`

	// NumberOfChapters is the total document count across included
	// folders, or null when that total is zero.
	NumberOfChapters *int `json:"number_of_chapters"`

	StoryHook  *string         `json:"story_hook"`
	StoryPitch *string         `json:"story_pitch"`
	Status     string          `json:"status"`
	Folders    []Schema2Folder `json:"folders"`
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the data structures shared across draftport stages:
// the Schema 1 input model, the Schema 2 output model, the rich-text block
// model, and stage configuration.
package types

// StatusActive is the sentinel marking a live Schema 1 entity. An absent
// status field means active.
const StatusActive = "active"

// StatusDraft is the status every converted Schema 2 entity starts in.
const StatusDraft = "draft"

// Document is one Schema 1 document: an HTML fragment keyed by id.
type Document struct {
	// ID is the unique document key referenced by folders.
	ID string `json:"id"`

	// Title is the display title. May carry a stray ".md" suffix from
	// earlier exports.
	Title string `json:"title"`

	// Content is the document body as an HTML fragment.
	Content string `json:"content"`

	// Status marks the document lifecycle state. Empty means active.
	Status string `json:"status,omitempty"`

	// Summary is an optional short description of the document.
	Summary string `json:"summary,omitempty"`
}

// Folder groups documents by id reference. A referenced id missing from
// the project's document map is skipped during filtering, not an error.
type Folder struct {
	// ID is the unique folder key.
	ID string `json:"id"`

	// Title is the display title, also the source of the folder slug.
	Title string `json:"title"`

	// DocumentIDs lists the member documents in source order.
	DocumentIDs []string `json:"documentIds"`

	// Sort is the numeric ordering key. Missing means 0.
	Sort float64 `json:"sort,omitempty"`

	// Status marks the folder lifecycle state. Empty means active.
	Status string `json:"status,omitempty"`
}

// Trash holds the soft-delete id sets. Trash membership overrides status:
// a trashed id never reaches any output.
type Trash struct {
	DocumentIDs []string `json:"documentIds,omitempty"`
	FolderIDs   []string `json:"folderIds,omitempty"`
}

// Project is a full Schema 1 collection as loaded from disk.
type Project struct {
	// Title is the project display title.
	Title string `json:"title"`

	// Folders lists the folders in source order.
	Folders []Folder `json:"folders"`

	// DocumentsByID maps document id to document.
	DocumentsByID map[string]Document `json:"documentsById"`

	// Trash holds the soft-deleted document and folder ids.
	Trash Trash `json:"trash,omitempty"`
}

// Active reports whether a status field marks a live entity. The empty
// string (field absent) counts as active.
func Active(status string) bool {
	return status == "" || status == StatusActive
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ArchiveConfig holds settings for the zip archive output stage.
type ArchiveConfig struct {
	// OutputPath is the zip destination. Empty means derive it from the
	// input path (project.json → project.zip).
	OutputPath string `json:"output_path" yaml:"output_path"`
}

// Schema2Config holds settings for the Schema 2 JSON output stage.
type Schema2Config struct {
	// OutputPath is the JSON destination. Empty means derive it from the
	// input path (project.json → project_schema2.json).
	OutputPath string `json:"output_path" yaml:"output_path"`

	// Indent is the number of spaces used to indent the output JSON
	// (default 2).
	Indent int `json:"indent" yaml:"indent"`
}

// Validate checks Schema2Config field ranges.
func (c Schema2Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Indent, validation.Min(0), validation.Max(8)),
	)
}

// CatalogConfig holds settings for the conversion run catalog.
type CatalogConfig struct {
	// StateDir is the directory holding the catalog database
	// (default ".draftport").
	StateDir string `json:"state_dir" yaml:"state_dir"`

	// MaxRuns is the default number of runs shown by history listings
	// (default 20).
	MaxRuns int `json:"max_runs" yaml:"max_runs"`
}

// Validate checks CatalogConfig field ranges.
func (c CatalogConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.StateDir, validation.Required),
		validation.Field(&c.MaxRuns, validation.Min(0)),
	)
}

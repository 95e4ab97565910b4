// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package project loads Schema 1 collections from disk. Shape problems
// surface here at the boundary; the conversion core downstream tolerates
// anything that decodes.
package project

import (
	"encoding/json"
	"fmt"
	"os"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/pdiddy/draftport/pkg/types"
)

const (
	// defaultProjectTitle replaces a missing project title.
	defaultProjectTitle = "Untitled"

	// defaultEntityTitle replaces a missing folder or document title.
	defaultEntityTitle = "untitled"
)

// Load reads and decodes a Schema 1 JSON file, fills in default titles for
// entities that lack one, and validates that every folder and document
// carries an id.
func Load(path string) (*types.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading project: %w", err)
	}

	var p types.Project
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing project %s: %w", path, err)
	}

	applyDefaults(&p)
	if err := validate(&p); err != nil {
		return nil, fmt.Errorf("validating project %s: %w", path, err)
	}
	return &p, nil
}

func applyDefaults(p *types.Project) {
	if p.Title == "" {
		p.Title = defaultProjectTitle
	}
	for i := range p.Folders {
		if p.Folders[i].Title == "" {
			p.Folders[i].Title = defaultEntityTitle
		}
	}
	for id, doc := range p.DocumentsByID {
		if doc.Title == "" {
			doc.Title = defaultEntityTitle
			p.DocumentsByID[id] = doc
		}
	}
}

func validate(p *types.Project) error {
	for i := range p.Folders {
		f := p.Folders[i]
		err := validation.ValidateStruct(&f,
			validation.Field(&f.ID, validation.Required),
		)
		if err != nil {
			return fmt.Errorf("folder %d (%s): %w", i, f.Title, err)
		}
	}
	for id := range p.DocumentsByID {
		if err := validation.Validate(id, validation.Required); err != nil {
			return fmt.Errorf("document map key: %w", err)
		}
	}
	return nil
}

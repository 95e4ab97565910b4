// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog persists a history of conversion runs in a local SQLite
// database so past conversions stay inspectable and exportable.
package catalog

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/draftport/pkg/types"
)

const dbFile = "draftport.db"

// Formats recorded for runs.
const (
	FormatZip     = "zip"
	FormatSchema2 = "schema2"
)

// Run records one completed conversion.
type Run struct {
	ID             int64     `json:"id" yaml:"id"`
	Timestamp      time.Time `json:"timestamp" yaml:"timestamp"`
	Source         string    `json:"source" yaml:"source"`
	Output         string    `json:"output" yaml:"output"`
	Format         string    `json:"format" yaml:"format"`
	Folders        int       `json:"folders" yaml:"folders"`
	Documents      int       `json:"documents" yaml:"documents"`
	Words          int       `json:"words" yaml:"words"`
	SkippedTrashed int       `json:"skipped_trashed" yaml:"skipped_trashed"`
	SkippedMissing int       `json:"skipped_missing" yaml:"skipped_missing"`
}

// Store manages the run catalog SQLite database.
type Store struct {
	db      *sql.DB
	maxRuns int
}

// NewStore opens or creates the catalog database at stateDir/draftport.db,
// creating the schema if it does not exist.
func NewStore(cfg types.CatalogConfig) (*Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("catalog config: %w", err)
	}
	if err := os.MkdirAll(cfg.StateDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating state directory: %w", err)
	}

	dbPath := filepath.Join(cfg.StateDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening catalog database: %w", err)
	}

	maxRuns := cfg.MaxRuns
	if maxRuns <= 0 {
		maxRuns = 20
	}

	s := &Store{db: db, maxRuns: maxRuns}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating catalog schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp TEXT NOT NULL,
		source TEXT NOT NULL,
		output TEXT NOT NULL,
		format TEXT NOT NULL,
		folders INTEGER NOT NULL,
		documents INTEGER NOT NULL,
		words INTEGER NOT NULL,
		skipped_trashed INTEGER NOT NULL,
		skipped_missing INTEGER NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("executing schema statement: %w", err)
	}
	return nil
}

// Record inserts a completed run. A zero timestamp is filled with the
// current time.
func (s *Store) Record(run Run) error {
	ts := run.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}
	_, err := s.db.Exec(
		`INSERT INTO runs (timestamp, source, output, format, folders, documents, words, skipped_trashed, skipped_missing)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		ts.Format(time.RFC3339), run.Source, run.Output, run.Format,
		run.Folders, run.Documents, run.Words, run.SkippedTrashed, run.SkippedMissing,
	)
	if err != nil {
		return fmt.Errorf("recording run: %w", err)
	}
	return nil
}

// Recent returns the most recent runs, newest first. A non-positive limit
// falls back to the configured default.
func (s *Store) Recent(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = s.maxRuns
	}
	rows, err := s.db.Query(
		`SELECT id, timestamp, source, output, format, folders, documents, words, skipped_trashed, skipped_missing
		 FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var ts string
		if err := rows.Scan(&r.ID, &ts, &r.Source, &r.Output, &r.Format,
			&r.Folders, &r.Documents, &r.Words, &r.SkippedTrashed, &r.SkippedMissing); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		if parsed, err := time.Parse(time.RFC3339, ts); err == nil {
			r.Timestamp = parsed
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating runs: %w", err)
	}
	return runs, nil
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dataset loads the internal fair-project dataset into an
// in-memory SQLite table and serves substring keyword searches over it.
package dataset

import (
	"context"
	"database/sql"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/topic-scout/pkg/types"
)

const defaultMaxResults = 10

// Store holds the loaded dataset. The table is read-only after Open, so
// concurrent searches need no locking.
type Store struct {
	db         *sql.DB
	maxResults int
}

// Open loads the CSV at path into a fresh in-memory table. The title
// column is located by header name ("title", case-insensitive); when no
// header matches, the first column is used. "category" and "year" columns
// are carried along when present.
func Open(cfg types.DatasetConfig) (*Store, error) {
	f, err := os.Open(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("opening dataset %s: %w", cfg.Path, err)
	}
	defer f.Close()

	return load(f, cfg.MaxResults)
}

// load reads CSV rows from r into a new Store.
func load(r io.Reader, maxResults int) (*Store, error) {
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec(`CREATE TABLE projects (
		title TEXT NOT NULL,
		category TEXT,
		year TEXT
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return &Store{db: db, maxResults: maxResults}, nil
	}
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("reading dataset header: %w", err)
	}

	titleCol, categoryCol, yearCol, hasHeader := locateColumns(header)

	tx, err := db.Begin()
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("starting load transaction: %w", err)
	}
	stmt, err := tx.Prepare(`INSERT INTO projects (title, category, year) VALUES (?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		db.Close()
		return nil, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	// Without a recognizable header the first row is data, not labels.
	if !hasHeader {
		if title := field(header, titleCol); strings.TrimSpace(title) != "" {
			if _, err := stmt.Exec(title, "", ""); err != nil {
				tx.Rollback()
				db.Close()
				return nil, fmt.Errorf("inserting dataset row: %w", err)
			}
		}
	}

	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			tx.Rollback()
			db.Close()
			return nil, fmt.Errorf("reading dataset row: %w", err)
		}

		title := field(row, titleCol)
		if strings.TrimSpace(title) == "" {
			continue
		}
		if _, err := stmt.Exec(title, field(row, categoryCol), field(row, yearCol)); err != nil {
			tx.Rollback()
			db.Close()
			return nil, fmt.Errorf("inserting dataset row: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		db.Close()
		return nil, fmt.Errorf("committing dataset load: %w", err)
	}

	return &Store{db: db, maxResults: maxResults}, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Count returns the number of loaded rows.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM projects`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting dataset rows: %w", err)
	}
	return n, nil
}

// Search scores each row by the number of keywords appearing as
// case-insensitive substrings of its title and returns rows with at least
// one match, highest count first, capped at maxResults. Zero maxResults
// uses the store default.
func (s *Store) Search(ctx context.Context, kws []string, maxResults int) ([]types.SearchRecord, error) {
	if len(kws) == 0 {
		return nil, nil
	}
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	var terms []string
	args := make([]any, 0, len(kws)+1)
	for _, kw := range kws {
		terms = append(terms, `(CASE WHEN instr(lower(title), ?) > 0 THEN 1 ELSE 0 END)`)
		args = append(args, strings.ToLower(kw))
	}
	args = append(args, maxResults)

	query := fmt.Sprintf(`SELECT title, category, year, matches FROM (
			SELECT title, category, year, %s AS matches FROM projects
		) WHERE matches > 0
		ORDER BY matches DESC
		LIMIT ?`, strings.Join(terms, " + "))

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying dataset: %w", err)
	}
	defer rows.Close()

	var records []types.SearchRecord
	for rows.Next() {
		var title, category, year string
		var matches int
		if err := rows.Scan(&title, &category, &year, &matches); err != nil {
			return nil, fmt.Errorf("scanning dataset row: %w", err)
		}

		r := types.SearchRecord{
			Title:     title,
			Summary:   types.NoSummary,
			Published: year,
			Source:    types.SourceDataset,
		}
		if category != "" {
			r.Summary = "Fair project in category: " + category
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating dataset rows: %w", err)
	}
	return records, nil
}

// locateColumns maps header names to column indexes. A missing title
// header falls back to column 0; missing category/year yield -1. The
// hasHeader result reports whether any label was recognized at all.
func locateColumns(header []string) (title, category, year int, hasHeader bool) {
	title, category, year = 0, -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "title":
			title = i
			hasHeader = true
		case "category":
			category = i
			hasHeader = true
		case "year":
			year = i
			hasHeader = true
		}
	}
	return title, category, year, hasHeader
}

func field(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}

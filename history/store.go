// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package history persists find_equation runs to a small sqlite-backed
// append-only log, so a caller can later ask "what did we rank highest
// for run X". This is new surface beyond the original library-only
// source; gofem's own `out` package plays the analogous role of
// persisting FEM results, which is what this is grounded on.
package history

import (
	"database/sql"
	"embed"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/cpmech/physym/catalog"
	"github.com/cpmech/physym/regression"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Store wraps a sqlite connection holding past fit-result runs.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the sqlite database at dsn and applies
// migrations, mirroring relay.OpenRelay's embed+PRAGMA+migrate sequence.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("history: open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("history: set WAL mode: %w", err)
	}
	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("history: migrate: %w", err)
	}
	return s, nil
}

func (s *Store) migrate() error {
	entries, err := migrationsFS.ReadDir("migrations")
	if err != nil {
		return err
	}
	for _, e := range entries {
		sqlBytes, err := migrationsFS.ReadFile("migrations/" + e.Name())
		if err != nil {
			return err
		}
		if _, err := s.db.Exec(string(sqlBytes)); err != nil {
			return fmt.Errorf("applying %s: %w", e.Name(), err)
		}
	}
	return nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record appends a find_equation ranking to the log under runID.
func (s *Store) Record(runID string, results []regression.Result) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	stmt, err := tx.Prepare(`INSERT INTO fit_results
		(run_id, catalog_index, catalog_name, reduced_chi2, rank, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	now := time.Now().UTC().Format(time.RFC3339Nano)
	for rank, r := range results {
		name := catalog.Get(r.Index).Name
		if _, err := stmt.Exec(runID, r.Index, name, r.ReducedChiSquare, rank, now); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

// Row is one persisted ranking entry.
type Row struct {
	CatalogIndex int
	CatalogName  string
	ReducedChi2  float64
	Rank         int
	CreatedAt    string
}

// ByRun returns every row recorded for runID, ordered by rank ascending.
func (s *Store) ByRun(runID string) ([]Row, error) {
	rows, err := s.db.Query(`SELECT catalog_index, catalog_name, reduced_chi2, rank, created_at
		FROM fit_results WHERE run_id = ? ORDER BY rank ASC`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		var r Row
		if err := rows.Scan(&r.CatalogIndex, &r.CatalogName, &r.ReducedChi2, &r.Rank, &r.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

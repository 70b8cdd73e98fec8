// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog mirrors the merged paper table into a SQLite database.
// The catalog is an alternate serving source: the merge step writes it,
// and the loader can read it back in place of the flat CSV.
package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/paper-atlas/pkg/types"
)

// Store manages the paper catalog database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the catalog at path and ensures the schema exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS papers (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		year INTEGER NOT NULL,
		venue TEXT NOT NULL,
		subfield TEXT,
		authors TEXT,
		institutions TEXT,
		countries TEXT,
		status TEXT,
		track TEXT,
		citations INTEGER
	)`)
	if err != nil {
		return fmt.Errorf("executing schema statement: %w", err)
	}
	return nil
}

// Replace atomically swaps the catalog contents for papers, preserving
// their order as the load order.
func (s *Store) Replace(ctx context.Context, papers []types.Paper) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM papers`); err != nil {
		return fmt.Errorf("clearing catalog: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO papers (title, year, venue, subfield, authors, institutions, countries, status, track, citations)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range papers {
		authorsJSON, _ := json.Marshal(p.Authors)
		instJSON, _ := json.Marshal(p.Institutions)
		countriesJSON, _ := json.Marshal(p.Countries)
		_, err := stmt.ExecContext(ctx,
			p.Title, p.Year, p.Venue, p.Subfield,
			string(authorsJSON), string(instJSON), string(countriesJSON),
			p.RawStatus, p.Track, p.Citations,
		)
		if err != nil {
			return fmt.Errorf("inserting %q: %w", p.Title, err)
		}
	}

	return tx.Commit()
}

// LoadAll reads the full catalog in insertion order.
func (s *Store) LoadAll(ctx context.Context) ([]types.Paper, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT title, year, venue, subfield, authors, institutions, countries, status, track, citations
		 FROM papers ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("querying catalog: %w", err)
	}
	defer rows.Close()

	var papers []types.Paper
	for rows.Next() {
		var (
			p                               types.Paper
			authorsJSON, instJSON, ctryJSON sql.NullString
			rawStatus, track, subfield      sql.NullString
		)
		if err := rows.Scan(
			&p.Title, &p.Year, &p.Venue, &subfield,
			&authorsJSON, &instJSON, &ctryJSON,
			&rawStatus, &track, &p.Citations,
		); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}

		if authorsJSON.Valid {
			json.Unmarshal([]byte(authorsJSON.String), &p.Authors)
		}
		if instJSON.Valid {
			json.Unmarshal([]byte(instJSON.String), &p.Institutions)
		}
		if ctryJSON.Valid {
			json.Unmarshal([]byte(ctryJSON.String), &p.Countries)
		}
		p.Subfield = subfield.String
		p.RawStatus = rawStatus.String
		p.Track = track.String
		p.Status = types.NormalizeStatus(p.RawStatus)

		papers = append(papers, p)
	}
	return papers, rows.Err()
}

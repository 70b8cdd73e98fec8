// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dataset

import (
	"context"
	"path/filepath"

	"github.com/pdiddy/paper-atlas/internal/catalog"
)

// Load reads the table at path, dispatching on extension: .db, .sqlite,
// and .sqlite3 open a SQLite catalog, anything else is parsed as the
// flat CSV.
func Load(ctx context.Context, path string) (*Table, error) {
	switch filepath.Ext(path) {
	case ".db", ".sqlite", ".sqlite3":
		return loadCatalog(ctx, path)
	default:
		return LoadCSV(path)
	}
}

func loadCatalog(ctx context.Context, path string) (*Table, error) {
	store, err := catalog.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer store.Close()

	papers, err := store.LoadAll(ctx)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return New(papers), nil
}

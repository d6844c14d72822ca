package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3" // SQLite3 driver
)

// videosQuery reads the catalog table in insertion order.
const videosQuery = `SELECT title, id, COALESCE(tags, '') FROM videos ORDER BY rowid`

// LoadSQLite reads a catalog from the videos table of the SQLite database at
// path. The database is opened read-only; the row number takes the place of
// the line number in errors.
func LoadSQLite(ctx context.Context, path string) (*Catalog, error) {
	// mode=ro never creates a missing file, but the driver's error for that
	// case is opaque, so check first.
	if _, err := os.Stat(path); err != nil {
		return nil, &LoadError{Source: path, Err: err}
	}

	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?mode=ro", path))
	if err != nil {
		return nil, &LoadError{Source: path, Err: fmt.Errorf("failed to open database: %w", err)}
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, videosQuery)
	if err != nil {
		return nil, &LoadError{Source: path, Err: fmt.Errorf("failed to query videos: %w", err)}
	}
	defer rows.Close()

	b := newBuilder(path)
	row := 0
	for rows.Next() {
		row++
		var title, id, tags string
		if err := rows.Scan(&title, &id, &tags); err != nil {
			return nil, b.fail(row, fmt.Errorf("%w: %v", ErrMalformedRecord, err))
		}
		if err := b.add(row, title, id, splitTags(tags)); err != nil {
			return nil, err
		}
	}
	if err := rows.Err(); err != nil {
		return nil, b.fail(0, fmt.Errorf("failed to read videos: %w", err))
	}

	return b.catalog(), nil
}

package catalog

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"", FormatAuto, false},
		{"auto", FormatAuto, false},
		{"TEXT", FormatText, false},
		{" sqlite ", FormatSQLite, false},
		{"yaml", "", true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestDetectFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path   string
		format Format
		want   Format
	}{
		{"videos.txt", FormatAuto, FormatText},
		{"videos", FormatAuto, FormatText},
		{"catalog.db", FormatAuto, FormatSQLite},
		{"catalog.SQLITE3", FormatAuto, FormatSQLite},
		{"catalog.db", FormatText, FormatText},
		{"videos.txt", FormatSQLite, FormatSQLite},
	}

	for _, tt := range tests {
		if got := DetectFormat(tt.path, tt.format); got != tt.want {
			t.Errorf("DetectFormat(%q, %q) = %q, want %q", tt.path, tt.format, got, tt.want)
		}
	}
}

func writeSQLiteCatalog(t *testing.T, rows [][3]interface{}) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "catalog.db")
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec(`CREATE TABLE videos (title TEXT, id TEXT, tags TEXT)`); err != nil {
		t.Fatalf("Failed to create table: %v", err)
	}
	for _, r := range rows {
		if _, err := db.Exec(`INSERT INTO videos (title, id, tags) VALUES (?, ?, ?)`, r[0], r[1], r[2]); err != nil {
			t.Fatalf("Failed to insert row: %v", err)
		}
	}
	return path
}

func TestLoadSQLite(t *testing.T) {
	t.Parallel()

	path := writeSQLiteCatalog(t, [][3]interface{}{
		{"Amazing Cats", "cat1", "animal, funny"},
		{"Boring", "bore1", nil},
	})

	cat, err := LoadSQLite(context.Background(), path)
	if err != nil {
		t.Fatalf("LoadSQLite() error = %v", err)
	}
	if cat.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", cat.Len())
	}

	v, ok := cat.Get("cat1")
	if !ok || v.Title != "Amazing Cats" || len(v.Tags) != 2 || v.Tags[1] != "funny" {
		t.Errorf("Unexpected video: %+v", v)
	}
	if bore, _ := cat.Get("bore1"); len(bore.Tags) != 0 {
		t.Errorf("Expected NULL tags to load as empty, got %v", bore.Tags)
	}
}

func TestLoadSQLiteDuplicateRow(t *testing.T) {
	t.Parallel()

	path := writeSQLiteCatalog(t, [][3]interface{}{
		{"A", "a", ""},
		{"B", "b", ""},
		{"C", "a", ""},
	})

	_, err := LoadSQLite(context.Background(), path)
	if !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("Expected ErrDuplicateID, got %v", err)
	}
	var le *LoadError
	if errors.As(err, &le) && le.Line != 3 {
		t.Errorf("LoadError.Line = %d, want 3", le.Line)
	}
}

func TestLoadSQLiteMissingTable(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "empty.db")
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	if _, err := db.Exec(`CREATE TABLE other (x TEXT)`); err != nil {
		t.Fatalf("Failed to create table: %v", err)
	}
	db.Close()

	var le *LoadError
	if _, err := LoadSQLite(context.Background(), path); !errors.As(err, &le) {
		t.Fatalf("Expected *LoadError, got %v", err)
	}
}

func TestLoadSQLiteMissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadSQLite(context.Background(), filepath.Join(t.TempDir(), "nope.db"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected os.ErrNotExist, got %v", err)
	}
}

func TestOpenDispatchesByExtension(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	textPath := filepath.Join(dir, "videos.txt")
	if err := os.WriteFile(textPath, []byte("A | a | x\n"), 0o644); err != nil {
		t.Fatalf("Failed to write catalog: %v", err)
	}

	cat, err := Open(context.Background(), textPath, FormatAuto)
	if err != nil {
		t.Fatalf("Open(text) error = %v", err)
	}
	if cat.Len() != 1 {
		t.Errorf("Len() = %d, want 1", cat.Len())
	}

	dbPath := writeSQLiteCatalog(t, [][3]interface{}{{"B", "b", ""}, {"C", "c", ""}})
	cat, err = Open(context.Background(), dbPath, FormatAuto)
	if err != nil {
		t.Fatalf("Open(sqlite) error = %v", err)
	}
	if cat.Len() != 2 {
		t.Errorf("Len() = %d, want 2", cat.Len())
	}
}

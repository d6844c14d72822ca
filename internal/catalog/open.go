package catalog

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"video-player/internal/logging"
	"video-player/internal/metrics"
)

// Format selects the catalog source parser.
type Format string

const (
	// FormatAuto picks a format from the file extension.
	FormatAuto Format = "auto"
	// FormatText is the "title|id|tags" line format.
	FormatText Format = "text"
	// FormatSQLite is a SQLite database with a videos table.
	FormatSQLite Format = "sqlite"
)

var sqliteExtensions = map[string]bool{
	".db":      true,
	".sqlite":  true,
	".sqlite3": true,
}

// ParseFormat validates a format name. The empty string means auto.
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(name))) {
	case "", FormatAuto:
		return FormatAuto, nil
	case FormatText:
		return FormatText, nil
	case FormatSQLite:
		return FormatSQLite, nil
	default:
		return "", fmt.Errorf("unknown catalog format %q", name)
	}
}

// DetectFormat resolves FormatAuto for path.
func DetectFormat(path string, format Format) Format {
	if format != FormatAuto && format != "" {
		return format
	}
	if sqliteExtensions[strings.ToLower(filepath.Ext(path))] {
		return FormatSQLite
	}
	return FormatText
}

// Open loads the catalog at path using format and records load metrics.
func Open(ctx context.Context, path string, format Format) (*Catalog, error) {
	format = DetectFormat(path, format)
	start := time.Now()

	var (
		cat *Catalog
		err error
	)
	switch format {
	case FormatSQLite:
		cat, err = LoadSQLite(ctx, path)
	default:
		cat, err = LoadFile(path)
	}

	metrics.CatalogLoadDuration.Set(time.Since(start).Seconds())
	if err != nil {
		metrics.CatalogLoadErrors.WithLabelValues(string(format)).Inc()
		return nil, err
	}

	metrics.CatalogVideos.Set(float64(cat.Len()))
	logging.Debug("Loaded %d videos from %s (%s) in %v", cat.Len(), path, format, time.Since(start))
	return cat, nil
}

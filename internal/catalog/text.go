package catalog

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// fieldSeparator splits a catalog line into title, id and tags.
const fieldSeparator = "|"

// Load parses a "title|id|tags" catalog from r, one video per line. Blank
// lines are skipped. Fields are taken literally: quotes have no special
// meaning. source names the input in errors.
func Load(r io.Reader, source string) (*Catalog, error) {
	scanner := bufio.NewScanner(r)
	b := newBuilder(source)

	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}

		fields := strings.Split(text, fieldSeparator)
		if len(fields) != 3 {
			return nil, b.fail(line, fmt.Errorf("%w: want 3 fields, got %d", ErrMalformedRecord, len(fields)))
		}
		if err := b.add(line, fields[0], fields[1], splitTags(fields[2])); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, b.fail(line+1, fmt.Errorf("%w: %v", ErrMalformedRecord, err))
	}

	return b.catalog(), nil
}

// LoadFile opens path and parses it with [Load].
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Source: path, Err: err}
	}
	defer f.Close()

	return Load(f, path)
}

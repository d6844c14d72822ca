package catalog

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	// ErrMalformedRecord is returned for records that do not have exactly
	// three fields or cannot be read.
	ErrMalformedRecord = errors.New("malformed record")
	// ErrMissingID is returned for records with an empty id field.
	ErrMissingID = errors.New("missing video id")
	// ErrMissingTitle is returned for records with an empty title field.
	ErrMissingTitle = errors.New("missing video title")
	// ErrDuplicateID is returned when an id appears on more than one record.
	ErrDuplicateID = errors.New("duplicate video id")
)

// Video is a single catalog entry. Videos are immutable once loaded; the
// Tags slice must not be modified by callers.
type Video struct {
	ID    string   `json:"id"`
	Title string   `json:"title"`
	Tags  []string `json:"tags"`
}

// HasTag reports whether the video carries tag, compared with [Fold].
func (v Video) HasTag(tag string) bool {
	want := Fold(tag)
	for _, t := range v.Tags {
		if Fold(t) == want {
			return true
		}
	}
	return false
}

// Fold is the case-insensitive form of s used for tags, title search and
// playlist names. Lower-casing can produce new combining sequences, so s is
// normalized to NFC on both sides of it.
func Fold(s string) string {
	return norm.NFC.String(strings.ToLower(norm.NFC.String(s)))
}

// Catalog maps video ids to videos. It is read-only after load.
type Catalog struct {
	videos map[string]Video
	order  []string
}

// New builds a catalog from already validated videos. It applies the same
// rules as the loaders and reports the 1-based position of a bad entry as
// the line.
func New(videos ...Video) (*Catalog, error) {
	b := newBuilder("memory")
	for i, v := range videos {
		if err := b.add(i+1, v.Title, v.ID, v.Tags); err != nil {
			return nil, err
		}
	}
	return b.catalog(), nil
}

// Get returns the video with the given id.
func (c *Catalog) Get(id string) (Video, bool) {
	v, ok := c.videos[id]
	return v, ok
}

// All returns every video. Order is unspecified; callers sort before
// display.
func (c *Catalog) All() []Video {
	out := make([]Video, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.videos[id])
	}
	return out
}

// Len returns the number of videos.
func (c *Catalog) Len() int {
	return len(c.videos)
}

// LoadError reports a catalog that could not be loaded. Line is the
// 1-based source line (or database row) of the offending record, or 0 when
// the failure is not tied to a record.
type LoadError struct {
	Source string
	Line   int
	Err    error
}

func (e *LoadError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("load catalog %s: line %d: %v", e.Source, e.Line, e.Err)
	}
	return fmt.Sprintf("load catalog %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// builder accumulates validated records for a single load.
type builder struct {
	source string
	videos map[string]Video
	lines  map[string]int
	order  []string
}

func newBuilder(source string) *builder {
	return &builder{
		source: source,
		videos: make(map[string]Video),
		lines:  make(map[string]int),
	}
}

func (b *builder) fail(line int, err error) error {
	return &LoadError{Source: b.source, Line: line, Err: err}
}

func (b *builder) add(line int, title, id string, tags []string) error {
	title = strings.TrimSpace(title)
	id = strings.TrimSpace(id)

	if id == "" {
		return b.fail(line, ErrMissingID)
	}
	if title == "" {
		return b.fail(line, ErrMissingTitle)
	}
	if first, ok := b.lines[id]; ok {
		return b.fail(line, fmt.Errorf("%w %q (first defined on line %d)", ErrDuplicateID, id, first))
	}

	clean := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			clean = append(clean, t)
		}
	}

	b.videos[id] = Video{ID: id, Title: title, Tags: clean}
	b.lines[id] = line
	b.order = append(b.order, id)
	return nil
}

func (b *builder) catalog() *Catalog {
	return &Catalog{videos: b.videos, order: b.order}
}

// splitTags splits the raw comma-separated tags field.
func splitTags(field string) []string {
	field = strings.TrimSpace(field)
	if field == "" {
		return nil
	}
	return strings.Split(field, ",")
}

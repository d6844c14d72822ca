package player

import (
	"cmp"
	"slices"
	"strings"

	"video-player/internal/catalog"
)

// Search returns the unflagged videos whose title contains term, ignoring
// case, sorted by title. Surrounding whitespace in term is ignored.
func (c *Controller) Search(term string) []catalog.Video {
	needle := catalog.Fold(strings.TrimSpace(term))
	return c.matching(func(v catalog.Video) bool {
		return strings.Contains(catalog.Fold(v.Title), needle)
	})
}

// SearchByTag returns the unflagged videos carrying tag, ignoring case,
// sorted by title. Tags match exactly, so "#cat" does not match "#cats".
func (c *Controller) SearchByTag(tag string) []catalog.Video {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return nil
	}
	return c.matching(func(v catalog.Video) bool {
		return v.HasTag(tag)
	})
}

func (c *Controller) matching(match func(catalog.Video) bool) []catalog.Video {
	var out []catalog.Video
	for _, v := range c.catalog.All() {
		if c.flags.IsFlagged(v.ID) || !match(v) {
			continue
		}
		out = append(out, v)
	}
	sortByTitle(out)
	return out
}

// sortByTitle orders videos by title, then id so equal titles are stable.
func sortByTitle(videos []catalog.Video) {
	slices.SortFunc(videos, func(a, b catalog.Video) int {
		return cmp.Or(strings.Compare(a.Title, b.Title), strings.Compare(a.ID, b.ID))
	})
}

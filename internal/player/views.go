package player

import (
	"slices"
	"strings"

	"video-player/internal/catalog"
	"video-player/internal/playlists"
)

// VideoInfo is a catalog video together with its flag state.
type VideoInfo struct {
	catalog.Video
	Flagged    bool   `json:"flagged"`
	FlagReason string `json:"flagReason,omitempty"`
}

// PlaylistView is a playlist with its members resolved against the catalog.
type PlaylistView struct {
	Name   string      `json:"name"`
	Videos []VideoInfo `json:"videos"`
}

func (c *Controller) info(v catalog.Video) VideoInfo {
	reason, flagged := c.flags.Reason(v.ID)
	return VideoInfo{Video: v, Flagged: flagged, FlagReason: reason}
}

// VideoCount returns the number of videos in the catalog, flagged or not.
func (c *Controller) VideoCount() int {
	return c.catalog.Len()
}

// Videos returns every catalog video sorted by title, including flagged ones.
func (c *Controller) Videos() []VideoInfo {
	all := c.catalog.All()
	sortByTitle(all)

	out := make([]VideoInfo, len(all))
	for i, v := range all {
		out[i] = c.info(v)
	}
	return out
}

// Video returns the video with id.
func (c *Controller) Video(id string) (VideoInfo, error) {
	v, ok := c.catalog.Get(id)
	if !ok {
		return VideoInfo{}, fail("get_video", ErrNoSuchVideo, id)
	}
	return c.info(v), nil
}

// Playlists returns every playlist sorted by display name.
func (c *Controller) Playlists() []playlists.Playlist {
	all := c.playlists.All()
	slices.SortFunc(all, func(a, b playlists.Playlist) int {
		return strings.Compare(a.Name, b.Name)
	})
	return all
}

// Playlist returns the named playlist with its members in insertion order.
func (c *Controller) Playlist(name string) (PlaylistView, error) {
	p, ok := c.playlists.Get(playlists.Key(name))
	if !ok {
		return PlaylistView{}, fail("get_playlist", ErrNoSuchPlaylist, "")
	}

	view := PlaylistView{Name: p.Name, Videos: make([]VideoInfo, 0, len(p.Videos))}
	for _, id := range p.Videos {
		v, ok := c.catalog.Get(id)
		if !ok {
			v = catalog.Video{ID: id}
		}
		view.Videos = append(view.Videos, c.info(v))
	}
	return view, nil
}

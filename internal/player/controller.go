package player

import (
	"math/rand/v2"
	"time"

	"video-player/internal/catalog"
	"video-player/internal/flags"
	"video-player/internal/metrics"
	"video-player/internal/playback"
	"video-player/internal/playlists"
)

// Command names, shared with the metrics labels.
const (
	opPlay               = "play"
	opPlayRandom         = "play_random"
	opPlayFromMatches    = "play_from_matches"
	opStop               = "stop"
	opPause              = "pause"
	opContinue           = "continue"
	opFlag               = "flag"
	opAllow              = "allow"
	opCreatePlaylist     = "create_playlist"
	opAddToPlaylist      = "add_to_playlist"
	opRemoveFromPlaylist = "remove_from_playlist"
	opClearPlaylist      = "clear_playlist"
	opDeletePlaylist     = "delete_playlist"
)

// Controller owns one session: the catalog, the flag registry, the
// playlists and the playback slot. It is not safe for concurrent use; wrap
// it in a session.Session to share it between goroutines.
type Controller struct {
	catalog   *catalog.Catalog
	flags     *flags.Registry
	playlists *playlists.Store
	playback  playback.State
	intn      func(n int) int
}

// Option configures a Controller.
type Option func(*Controller)

// WithRandom replaces the source PlayRandom uses to pick an index in [0, n).
func WithRandom(intn func(n int) int) Option {
	return func(c *Controller) {
		c.intn = intn
	}
}

// New returns a stopped controller over cat with no flags or playlists.
func New(cat *catalog.Catalog, opts ...Option) *Controller {
	c := &Controller{
		catalog:   cat,
		flags:     flags.New(),
		playlists: playlists.New(),
		intn:      rand.IntN,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Catalog returns the session catalog.
func (c *Controller) Catalog() *catalog.Catalog {
	return c.catalog
}

// Stats returns a snapshot of the session for metrics.
func (c *Controller) Stats() metrics.Stats {
	return metrics.Stats{
		TotalVideos:     c.catalog.Len(),
		FlaggedVideos:   c.flags.Len(),
		Playlists:       c.playlists.Len(),
		PlaylistEntries: c.playlists.Entries(),
		State:           int(c.playback.Status()),
	}
}

// recordCommand records the outcome of a command. It is deferred with a
// pointer to the named error result.
func recordCommand(op string, start time.Time, err *error) {
	result := "success"
	if *err != nil {
		result = KindOf(*err).String()
	}
	metrics.CommandsTotal.WithLabelValues(op, result).Inc()
	metrics.CommandDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

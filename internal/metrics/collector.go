package metrics

import (
	"sync"
	"sync/atomic"
	"time"

	"video-player/internal/logging"
)

// StatsProvider interface for collecting stats
type StatsProvider interface {
	GetStats() Stats
}

// Stats holds a point-in-time view of a session
type Stats struct {
	TotalVideos     int
	FlaggedVideos   int
	Playlists       int
	PlaylistEntries int
	// State is 0 for stopped, 1 for playing, 2 for paused
	State int
}

// Collector periodically collects and updates metrics
type Collector struct {
	statsProvider StatsProvider
	interval      time.Duration
	stopChan      chan struct{}
	stopOnce      sync.Once
	started       atomic.Bool
	done          chan struct{}
}

// NewCollector creates a new metrics collector
func NewCollector(provider StatsProvider, interval time.Duration) *Collector {
	return &Collector{
		statsProvider: provider,
		interval:      interval,
		stopChan:      make(chan struct{}),
		done:          make(chan struct{}),
	}
}

// Start begins the metrics collection loop
func (c *Collector) Start() {
	if c.started.Swap(true) {
		return
	}
	go c.collectLoop()
}

// Stop stops the metrics collection and waits for the loop to exit.
// It is safe to call more than once, and before Start.
func (c *Collector) Stop() {
	c.stopOnce.Do(func() {
		close(c.stopChan)
	})
	if c.started.Load() {
		<-c.done
	}
}

func (c *Collector) collectLoop() {
	defer close(c.done)

	// Collect immediately on start
	c.collect()

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.collect()
		case <-c.stopChan:
			return
		}
	}
}

func (c *Collector) collect() {
	if c.statsProvider == nil {
		return
	}

	stats := c.statsProvider.GetStats()

	CatalogVideos.Set(float64(stats.TotalVideos))
	FlaggedVideos.Set(float64(stats.FlaggedVideos))
	Playlists.Set(float64(stats.Playlists))
	PlaylistEntries.Set(float64(stats.PlaylistEntries))
	PlaybackState.Set(float64(stats.State))

	logging.Debug("Metrics collected: videos=%d, flagged=%d, playlists=%d, entries=%d, state=%d",
		stats.TotalVideos, stats.FlaggedVideos, stats.Playlists, stats.PlaylistEntries, stats.State)
}

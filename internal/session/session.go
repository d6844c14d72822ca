// Package session shares one player.Controller between goroutines.
package session

import (
	"sync"

	"github.com/google/uuid"

	"video-player/internal/catalog"
	"video-player/internal/metrics"
	"video-player/internal/player"
)

// Session serializes access to a single controller. It is identified by a
// random id that the HTTP API reports in the X-Session-ID header.
type Session struct {
	id         string
	mu         sync.Mutex
	controller *player.Controller
}

// New creates a session over cat.
func New(cat *catalog.Catalog, opts ...player.Option) *Session {
	return &Session{
		id:         uuid.NewString(),
		controller: player.New(cat, opts...),
	}
}

// ID returns the session id.
func (s *Session) ID() string {
	return s.id
}

// Do runs fn with exclusive access to the controller and returns its error.
// fn must not retain the controller after it returns.
func (s *Session) Do(fn func(c *player.Controller) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.controller)
}

// GetStats implements metrics.StatsProvider.
func (s *Session) GetStats() metrics.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.controller.Stats()
}

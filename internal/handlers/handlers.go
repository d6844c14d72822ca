package handlers

import (
	"time"

	"video-player/internal/session"
)

type Handlers struct {
	session   *session.Session
	startTime time.Time
}

func New(s *session.Session) *Handlers {
	return &Handlers{
		session:   s,
		startTime: time.Now(),
	}
}

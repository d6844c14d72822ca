// Package playback holds the single active-video slot of a session.
//
// The slot is in one of three statuses: Stopped (no active video), Playing
// or Paused. Paused is only ever set while a video is active.
package playback

import "errors"

var (
	// ErrNothingPlaying is returned by Stop, Pause and Resume while stopped.
	ErrNothingPlaying = errors.New("no video is currently playing")
	// ErrAlreadyPaused is returned by Pause while paused.
	ErrAlreadyPaused = errors.New("video already paused")
	// ErrNotPaused is returned by Resume while playing.
	ErrNotPaused = errors.New("video is not paused")
)

// Status is the playback status.
type Status int

const (
	// Stopped means no video is active.
	Stopped Status = iota
	// Playing means the active video is playing.
	Playing
	// Paused means the active video is paused.
	Paused
)

// String returns the string representation of the status.
func (s Status) String() string {
	switch s {
	case Stopped:
		return "stopped"
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	default:
		return "unknown"
	}
}

// State is the active-video slot. The zero value is Stopped.
type State struct {
	activeID string
	paused   bool
}

// Status returns the current status.
func (s *State) Status() Status {
	switch {
	case s.activeID == "":
		return Stopped
	case s.paused:
		return Paused
	default:
		return Playing
	}
}

// Active returns the id of the active video, if any.
func (s *State) Active() (id string, ok bool) {
	return s.activeID, s.activeID != ""
}

// Start makes id the active, playing video. If another video (or the same
// one) was active it is stopped first and returned as previous.
func (s *State) Start(id string) (previous string, stopped bool) {
	previous, stopped = s.Active()
	s.activeID = id
	s.paused = false
	return previous, stopped
}

// Stop clears the slot and returns the id that was active.
func (s *State) Stop() (string, error) {
	id, ok := s.Active()
	if !ok {
		return "", ErrNothingPlaying
	}
	s.activeID = ""
	s.paused = false
	return id, nil
}

// Pause pauses the active video.
func (s *State) Pause() (string, error) {
	switch s.Status() {
	case Stopped:
		return "", ErrNothingPlaying
	case Paused:
		return s.activeID, ErrAlreadyPaused
	}
	s.paused = true
	return s.activeID, nil
}

// Resume continues the paused active video.
func (s *State) Resume() (string, error) {
	switch s.Status() {
	case Stopped:
		return "", ErrNothingPlaying
	case Playing:
		return s.activeID, ErrNotPaused
	}
	s.paused = false
	return s.activeID, nil
}

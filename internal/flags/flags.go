// Package flags tracks which videos are currently unplayable and why.
package flags

import "errors"

var (
	// ErrAlreadyFlagged is returned when flagging a video that is already flagged.
	ErrAlreadyFlagged = errors.New("video is already flagged")
	// ErrNotFlagged is returned when unflagging a video that is not flagged.
	ErrNotFlagged = errors.New("video is not flagged")
)

// Registry maps video ids to an optional reason. An empty reason means none
// was supplied, which is distinct from the id being absent.
type Registry struct {
	reasons map[string]string
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{reasons: make(map[string]string)}
}

// Flag marks id as flagged with reason.
func (r *Registry) Flag(id, reason string) error {
	if _, ok := r.reasons[id]; ok {
		return ErrAlreadyFlagged
	}
	r.reasons[id] = reason
	return nil
}

// Unflag removes the flag from id.
func (r *Registry) Unflag(id string) error {
	if _, ok := r.reasons[id]; !ok {
		return ErrNotFlagged
	}
	delete(r.reasons, id)
	return nil
}

// IsFlagged reports whether id is flagged.
func (r *Registry) IsFlagged(id string) bool {
	_, ok := r.reasons[id]
	return ok
}

// Reason returns the reason id was flagged with. ok is false when id is not
// flagged.
func (r *Registry) Reason(id string) (reason string, ok bool) {
	reason, ok = r.reasons[id]
	return reason, ok
}

// Len returns the number of flagged videos.
func (r *Registry) Len() int {
	return len(r.reasons)
}

package player

import (
	"errors"
	"fmt"

	"video-player/internal/catalog"
	"video-player/internal/flags"
	"video-player/internal/playback"
	"video-player/internal/playlists"
)

var (
	// ErrNoSuchVideo is returned for ids that are not in the catalog.
	ErrNoSuchVideo = errors.New("video does not exist")
	// ErrVideoFlagged is returned when a flagged video is played or added
	// to a playlist. The flag reason is carried on the *Error.
	ErrVideoFlagged = errors.New("video is currently flagged")
	// ErrCatalogEmpty is returned by PlayRandom when no unflagged video exists.
	ErrCatalogEmpty = errors.New("no videos available")
	// ErrInvalidSelection is returned by PlayFromMatches for an out of range index.
	ErrInvalidSelection = errors.New("selection is not in the match list")
)

// Errors raised by the sub-stores, re-exported so callers only need this
// package to inspect controller failures.
var (
	ErrAlreadyFlagged  = flags.ErrAlreadyFlagged
	ErrNotFlagged      = flags.ErrNotFlagged
	ErrDuplicateName   = playlists.ErrDuplicateName
	ErrNoSuchPlaylist  = playlists.ErrNoSuchPlaylist
	ErrDuplicateMember = playlists.ErrDuplicateMember
	ErrNotAMember      = playlists.ErrNotAMember
	ErrNothingPlaying  = playback.ErrNothingPlaying
	ErrAlreadyPaused   = playback.ErrAlreadyPaused
	ErrNotPaused       = playback.ErrNotPaused
)

// Kind classifies controller failures.
type Kind int

const (
	// KindNone is reported for nil and foreign errors.
	KindNone Kind = iota
	// KindNotFound is an unknown video, playlist, member or selection.
	KindNotFound
	// KindConflict is a duplicate creation or a flag/pause already in place.
	KindConflict
	// KindInvalidState is a playback command issued in the wrong state.
	KindInvalidState
	// KindFlagged is an action blocked by a flag.
	KindFlagged
	// KindLoad is a catalog that could not be loaded. It is only reported
	// at startup.
	KindLoad
)

// String returns the label used in metrics and API responses.
func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindInvalidState:
		return "invalid_state"
	case KindFlagged:
		return "flagged"
	case KindLoad:
		return "load_error"
	default:
		return "none"
	}
}

// kinds maps every sentinel to its kind.
var kinds = map[error]Kind{
	ErrNoSuchVideo:      KindNotFound,
	ErrNoSuchPlaylist:   KindNotFound,
	ErrNotAMember:       KindNotFound,
	ErrCatalogEmpty:     KindNotFound,
	ErrInvalidSelection: KindNotFound,
	ErrDuplicateName:    KindConflict,
	ErrDuplicateMember:  KindConflict,
	ErrAlreadyFlagged:   KindConflict,
	ErrNotFlagged:       KindConflict,
	ErrAlreadyPaused:    KindConflict,
	ErrNothingPlaying:   KindInvalidState,
	ErrNotPaused:        KindInvalidState,
	ErrVideoFlagged:     KindFlagged,
}

// Error is the structured failure returned by every Controller command.
type Error struct {
	// Op is the command that failed, e.g. "play" or "add_to_playlist".
	Op   string
	Kind Kind
	Err  error
	// VideoID is the video the command was about, when there is one.
	VideoID string
	// Reason is the flag reason for KindFlagged errors. It may be empty.
	Reason string
}

func (e *Error) Error() string {
	if e.Kind == KindFlagged && e.Reason != "" {
		return fmt.Sprintf("%s: %v (reason: %s)", e.Op, e.Err, e.Reason)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of err, or KindNone if err is neither a
// controller error nor a catalog load error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	var le *catalog.LoadError
	if errors.As(err, &le) {
		return KindLoad
	}
	return KindNone
}

// fail wraps a sentinel into an *Error for op.
func fail(op string, err error, videoID string) *Error {
	return &Error{Op: op, Kind: kinds[err], Err: err, VideoID: videoID}
}

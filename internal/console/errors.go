package console

import (
	"errors"

	"video-player/internal/player"
)

var messages = map[error]string{
	player.ErrNoSuchVideo:      "Video does not exist",
	player.ErrNoSuchPlaylist:   "Playlist does not exist",
	player.ErrNotAMember:       "Video is not in playlist",
	player.ErrDuplicateName:    "A playlist with the same name already exists",
	player.ErrDuplicateMember:  "Video already added",
	player.ErrAlreadyFlagged:   "Video is already flagged",
	player.ErrNotFlagged:       "Video is not flagged",
	player.ErrNothingPlaying:   "No video is currently playing",
	player.ErrNotPaused:        "Video is not paused",
	player.ErrAlreadyPaused:    "Video is already paused",
	player.ErrCatalogEmpty:     "No videos available",
	player.ErrInvalidSelection: "Invalid selection",
}

// fail prints "prefix: message" for a controller error.
func (c *Console) fail(prefix string, err error) {
	c.println(prefix + ": " + message(err))
}

func message(err error) string {
	var pe *player.Error
	if !errors.As(err, &pe) {
		return err.Error()
	}
	if pe.Err == player.ErrVideoFlagged {
		return "Video is currently flagged (reason: " + reasonText(pe.Reason) + ")"
	}
	if msg, ok := messages[pe.Err]; ok {
		return msg
	}
	return pe.Err.Error()
}

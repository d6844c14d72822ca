package player

import (
	"time"

	"video-player/internal/catalog"
	"video-player/internal/logging"
	"video-player/internal/metrics"
)

// FlagResult describes a successful flag. Stopped is true when the video
// was the active video and playback was stopped.
type FlagResult struct {
	Video   catalog.Video `json:"video"`
	Reason  string        `json:"reason"`
	Stopped bool          `json:"stopped"`
}

// Flag marks the video with id as unplayable. If it is the active video,
// playback stops in the same call, so a flagged video is never observed
// as active.
func (c *Controller) Flag(id, reason string) (res FlagResult, err error) {
	defer recordCommand(opFlag, time.Now(), &err)

	v, ok := c.catalog.Get(id)
	if !ok {
		return FlagResult{}, fail(opFlag, ErrNoSuchVideo, id)
	}
	if c.flags.IsFlagged(id) {
		return FlagResult{}, fail(opFlag, ErrAlreadyFlagged, id)
	}

	res = FlagResult{Video: v, Reason: reason}
	if active, ok := c.playback.Active(); ok && active == id {
		_, _ = c.playback.Stop()
		res.Stopped = true
		metrics.ImplicitStopsTotal.WithLabelValues("flag").Inc()
		logging.Debug("Stopping video: %s (%s), flagged", v.Title, v.ID)
	}

	if err := c.flags.Flag(id, reason); err != nil {
		return FlagResult{}, fail(opFlag, err, id)
	}
	logging.Debug("Flagged video: %s (%s) reason=%q", v.Title, v.ID, reason)
	return res, nil
}

// Allow removes the flag from the video with id.
func (c *Controller) Allow(id string) (v catalog.Video, err error) {
	defer recordCommand(opAllow, time.Now(), &err)

	v, ok := c.catalog.Get(id)
	if !ok {
		return catalog.Video{}, fail(opAllow, ErrNoSuchVideo, id)
	}
	if err := c.flags.Unflag(id); err != nil {
		return catalog.Video{}, fail(opAllow, err, id)
	}
	logging.Debug("Allowed video: %s (%s)", v.Title, v.ID)
	return v, nil
}

// FlagReason returns the reason the video with id is flagged. ok is false
// when it is not flagged.
func (c *Controller) FlagReason(id string) (reason string, ok bool) {
	return c.flags.Reason(id)
}

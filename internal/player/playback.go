package player

import (
	"time"

	"video-player/internal/catalog"
	"video-player/internal/logging"
	"video-player/internal/metrics"
	"video-player/internal/playback"
)

// PlayResult describes a successful play. Stopped is the video that was
// implicitly stopped to make room, or nil.
type PlayResult struct {
	Stopped *catalog.Video `json:"stopped,omitempty"`
	Playing catalog.Video  `json:"playing"`
}

// NowPlaying is the active video and whether it is paused.
type NowPlaying struct {
	Video  catalog.Video `json:"video"`
	Paused bool          `json:"paused"`
}

// Play starts the video with id, stopping whatever was active.
func (c *Controller) Play(id string) (res PlayResult, err error) {
	defer recordCommand(opPlay, time.Now(), &err)
	return c.play(opPlay, id)
}

// PlayRandom plays a uniformly chosen unflagged video.
func (c *Controller) PlayRandom() (res PlayResult, err error) {
	defer recordCommand(opPlayRandom, time.Now(), &err)

	var candidates []string
	for _, v := range c.catalog.All() {
		if !c.flags.IsFlagged(v.ID) {
			candidates = append(candidates, v.ID)
		}
	}
	if len(candidates) == 0 {
		return PlayResult{}, fail(opPlayRandom, ErrCatalogEmpty, "")
	}

	return c.play(opPlayRandom, candidates[c.intn(len(candidates))])
}

// PlayFromMatches plays matches[index], typically the list returned by
// Search or SearchByTag. index is 0-based. The chosen video is checked
// again, so a video flagged after the search cannot be played.
func (c *Controller) PlayFromMatches(matches []catalog.Video, index int) (res PlayResult, err error) {
	defer recordCommand(opPlayFromMatches, time.Now(), &err)

	if index < 0 || index >= len(matches) {
		return PlayResult{}, fail(opPlayFromMatches, ErrInvalidSelection, "")
	}
	return c.play(opPlayFromMatches, matches[index].ID)
}

func (c *Controller) play(op, id string) (PlayResult, error) {
	v, ok := c.catalog.Get(id)
	if !ok {
		return PlayResult{}, fail(op, ErrNoSuchVideo, id)
	}
	if reason, flagged := c.flags.Reason(id); flagged {
		e := fail(op, ErrVideoFlagged, id)
		e.Reason = reason
		return PlayResult{}, e
	}

	res := PlayResult{Playing: v}
	if prev, stopped := c.playback.Start(id); stopped {
		pv, _ := c.catalog.Get(prev)
		res.Stopped = &pv
		metrics.ImplicitStopsTotal.WithLabelValues("play").Inc()
		logging.Debug("Stopping video: %s (%s), replaced by %s", pv.Title, pv.ID, id)
	}
	logging.Debug("Playing video: %s (%s)", v.Title, v.ID)
	return res, nil
}

// Stop stops the active video and returns it.
func (c *Controller) Stop() (v catalog.Video, err error) {
	defer recordCommand(opStop, time.Now(), &err)

	id, err := c.playback.Stop()
	if err != nil {
		return catalog.Video{}, fail(opStop, err, "")
	}
	v, _ = c.catalog.Get(id)
	logging.Debug("Stopping video: %s (%s)", v.Title, v.ID)
	return v, nil
}

// Pause pauses the active video and returns it. When the video is already
// paused the error's VideoID names it.
func (c *Controller) Pause() (v catalog.Video, err error) {
	defer recordCommand(opPause, time.Now(), &err)

	id, err := c.playback.Pause()
	if err != nil {
		return catalog.Video{}, fail(opPause, err, id)
	}
	v, _ = c.catalog.Get(id)
	return v, nil
}

// Continue resumes the paused active video and returns it.
func (c *Controller) Continue() (v catalog.Video, err error) {
	defer recordCommand(opContinue, time.Now(), &err)

	id, err := c.playback.Resume()
	if err != nil {
		return catalog.Video{}, fail(opContinue, err, id)
	}
	v, _ = c.catalog.Get(id)
	return v, nil
}

// ShowPlaying returns the active video. ok is false when stopped.
func (c *Controller) ShowPlaying() (now NowPlaying, ok bool) {
	id, ok := c.playback.Active()
	if !ok {
		return NowPlaying{}, false
	}
	v, _ := c.catalog.Get(id)
	return NowPlaying{Video: v, Paused: c.playback.Status() == playback.Paused}, true
}

// Status returns the playback status.
func (c *Controller) Status() playback.Status {
	return c.playback.Status()
}

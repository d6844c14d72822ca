package handlers

import (
	"net/http"
	"strings"

	"video-player/internal/catalog"
	"video-player/internal/player"
)

// PlayRequest is the body of a play request.
type PlayRequest struct {
	ID string `json:"id"`
}

// PlayingResponse describes the playback slot.
type PlayingResponse struct {
	State string         `json:"state"`
	Video *catalog.Video `json:"video,omitempty"`
}

// GetPlaying returns the active video, if any.
func (h *Handlers) GetPlaying(w http.ResponseWriter, _ *http.Request) {
	var resp PlayingResponse
	_ = h.session.Do(func(c *player.Controller) error {
		resp.State = c.Status().String()
		if now, ok := c.ShowPlaying(); ok {
			resp.Video = &now.Video
		}
		return nil
	})
	writeJSONStatus(w, http.StatusOK, resp)
}

// Play starts a video by id.
func (h *Handlers) Play(w http.ResponseWriter, r *http.Request) {
	var req PlayRequest
	if err := decodeJSON(r, &req, false); err != nil || strings.TrimSpace(req.ID) == "" {
		badRequest(w, "id is required")
		return
	}

	h.play(w, func(c *player.Controller) (player.PlayResult, error) {
		return c.Play(req.ID)
	})
}

// PlayRandom plays a random unflagged video.
func (h *Handlers) PlayRandom(w http.ResponseWriter, _ *http.Request) {
	h.play(w, (*player.Controller).PlayRandom)
}

func (h *Handlers) play(w http.ResponseWriter, fn func(*player.Controller) (player.PlayResult, error)) {
	var res player.PlayResult
	err := h.session.Do(func(c *player.Controller) (err error) {
		res, err = fn(c)
		return err
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSONStatus(w, http.StatusOK, res)
}

// Pause pauses the active video.
func (h *Handlers) Pause(w http.ResponseWriter, _ *http.Request) {
	h.transition(w, (*player.Controller).Pause)
}

// Continue resumes the paused video.
func (h *Handlers) Continue(w http.ResponseWriter, _ *http.Request) {
	h.transition(w, (*player.Controller).Continue)
}

// Stop stops the active video.
func (h *Handlers) Stop(w http.ResponseWriter, _ *http.Request) {
	h.transition(w, (*player.Controller).Stop)
}

// transition runs a pause, continue or stop and reports the new state.
func (h *Handlers) transition(w http.ResponseWriter, fn func(*player.Controller) (catalog.Video, error)) {
	var resp PlayingResponse
	err := h.session.Do(func(c *player.Controller) error {
		v, err := fn(c)
		if err != nil {
			return err
		}
		resp.State = c.Status().String()
		resp.Video = &v
		return nil
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSONStatus(w, http.StatusOK, resp)
}

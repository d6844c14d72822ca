package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"video-player/internal/catalog"
	"video-player/internal/player"
)

// VideosResponse lists the catalog.
type VideosResponse struct {
	Count  int                `json:"count"`
	Videos []player.VideoInfo `json:"videos"`
}

// FlagRequest is the optional body of a flag request.
type FlagRequest struct {
	Reason string `json:"reason"`
}

// ListVideos returns every video sorted by title, flagged ones included.
func (h *Handlers) ListVideos(w http.ResponseWriter, _ *http.Request) {
	var resp VideosResponse
	_ = h.session.Do(func(c *player.Controller) error {
		resp.Videos = c.Videos()
		resp.Count = len(resp.Videos)
		return nil
	})
	writeJSONStatus(w, http.StatusOK, resp)
}

// GetVideo returns a single video with its flag state.
func (h *Handlers) GetVideo(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var info player.VideoInfo
	err := h.session.Do(func(c *player.Controller) (err error) {
		info, err = c.Video(id)
		return err
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSONStatus(w, http.StatusOK, info)
}

// FlagVideo flags a video, stopping it first if it is playing.
func (h *Handlers) FlagVideo(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req FlagRequest
	if err := decodeJSON(r, &req, true); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	var res player.FlagResult
	err := h.session.Do(func(c *player.Controller) (err error) {
		res, err = c.Flag(id, req.Reason)
		return err
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSONStatus(w, http.StatusOK, res)
}

// AllowVideo removes the flag from a video.
func (h *Handlers) AllowVideo(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var v catalog.Video
	err := h.session.Do(func(c *player.Controller) (err error) {
		v, err = c.Allow(id)
		return err
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSONStatus(w, http.StatusOK, map[string]interface{}{"video": v})
}

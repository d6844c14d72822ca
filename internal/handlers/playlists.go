package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/gorilla/mux"

	"video-player/internal/catalog"
	"video-player/internal/player"
	"video-player/internal/playlist"
	"video-player/internal/playlists"
)

// CreatePlaylistRequest is the body of a create request.
type CreatePlaylistRequest struct {
	Name string `json:"name"`
}

// AddVideoRequest is the body of an add-to-playlist request.
type AddVideoRequest struct {
	ID string `json:"id"`
}

// ListPlaylists returns all playlists sorted by name
func (h *Handlers) ListPlaylists(w http.ResponseWriter, _ *http.Request) {
	var all []playlists.Playlist
	_ = h.session.Do(func(c *player.Controller) error {
		all = c.Playlists()
		return nil
	})
	writeJSONStatus(w, http.StatusOK, all)
}

// CreatePlaylist creates an empty playlist.
func (h *Handlers) CreatePlaylist(w http.ResponseWriter, r *http.Request) {
	var req CreatePlaylistRequest
	if err := decodeJSON(r, &req, false); err != nil || strings.TrimSpace(req.Name) == "" {
		badRequest(w, "name is required")
		return
	}
	if strings.ContainsAny(req.Name, "/ \t\r\n") {
		badRequest(w, "name must not contain whitespace or slashes")
		return
	}

	var p playlists.Playlist
	err := h.session.Do(func(c *player.Controller) (err error) {
		p, err = c.CreatePlaylist(req.Name)
		return err
	})
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Location", "/api/playlists/"+url.PathEscape(p.Name))
	writeJSONStatus(w, http.StatusCreated, p)
}

// GetPlaylist returns a playlist with its members resolved
func (h *Handlers) GetPlaylist(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	var view player.PlaylistView
	err := h.session.Do(func(c *player.Controller) (err error) {
		view, err = c.Playlist(name)
		return err
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSONStatus(w, http.StatusOK, view)
}

// DeletePlaylist removes a playlist.
func (h *Handlers) DeletePlaylist(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	err := h.session.Do(func(c *player.Controller) error {
		return c.DeletePlaylist(name)
	})
	if err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AddToPlaylist appends a video to a playlist.
func (h *Handlers) AddToPlaylist(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	var req AddVideoRequest
	if err := decodeJSON(r, &req, false); err != nil || strings.TrimSpace(req.ID) == "" {
		badRequest(w, "id is required")
		return
	}

	var v catalog.Video
	err := h.session.Do(func(c *player.Controller) (err error) {
		v, err = c.AddToPlaylist(name, req.ID)
		return err
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSONStatus(w, http.StatusOK, map[string]interface{}{"playlist": name, "video": v})
}

// RemoveFromPlaylist removes a video from a playlist.
func (h *Handlers) RemoveFromPlaylist(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	err := h.session.Do(func(c *player.Controller) error {
		_, err := c.RemoveFromPlaylist(vars["name"], vars["id"])
		return err
	})
	if err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ClearPlaylist removes every video from a playlist.
func (h *Handlers) ClearPlaylist(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	err := h.session.Do(func(c *player.Controller) error {
		return c.ClearPlaylist(name)
	})
	if err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ExportPlaylist returns a playlist as a Windows Media Player (.wpl) file.
func (h *Handlers) ExportPlaylist(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	var view player.PlaylistView
	err := h.session.Do(func(c *player.Controller) (err error) {
		view, err = c.Playlist(name)
		return err
	})
	if err != nil {
		writeError(w, err)
		return
	}

	items := make([]playlist.Item, len(view.Videos))
	for i, v := range view.Videos {
		items[i] = playlist.Item{Src: v.ID, Title: v.Title}
	}

	var buf bytes.Buffer
	if err := playlist.EncodeWPL(&buf, view.Name, items); err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", playlist.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", view.Name+".wpl"))
	_, _ = w.Write(buf.Bytes())
}

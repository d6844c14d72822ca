package handlers

import (
	"net/http"
	"strings"

	"video-player/internal/catalog"
	"video-player/internal/player"
)

// SearchResponse holds the matches of a title or tag search.
type SearchResponse struct {
	Query   string          `json:"query,omitempty"`
	Tag     string          `json:"tag,omitempty"`
	Results []catalog.Video `json:"results"`
}

// PlayMatchRequest selects a search result to play. Index is 0-based.
type PlayMatchRequest struct {
	Query string `json:"q"`
	Tag   string `json:"tag"`
	Index *int   `json:"index"`
}

// searchTerms picks the search to run. A tag selects a tag search;
// otherwise q is a title search, and an empty q lists every unflagged
// video. Giving both is ambiguous.
func searchTerms(q, tag string) (string, string, bool) {
	q, tag = strings.TrimSpace(q), strings.TrimSpace(tag)
	if q != "" && tag != "" {
		return "", "", false
	}
	return q, tag, true
}

func runSearch(c *player.Controller, q, tag string) []catalog.Video {
	if tag != "" {
		return c.SearchByTag(tag)
	}
	return c.Search(q)
}

// Search returns unflagged videos whose title contains q, or which carry
// tag. Without either it returns every unflagged video.
func (h *Handlers) Search(w http.ResponseWriter, r *http.Request) {
	q, tag, ok := searchTerms(r.URL.Query().Get("q"), r.URL.Query().Get("tag"))
	if !ok {
		badRequest(w, "q and tag cannot be combined")
		return
	}

	resp := SearchResponse{Query: q, Tag: tag}
	_ = h.session.Do(func(c *player.Controller) error {
		resp.Results = runSearch(c, q, tag)
		return nil
	})
	if resp.Results == nil {
		resp.Results = []catalog.Video{}
	}
	writeJSONStatus(w, http.StatusOK, resp)
}

// PlaySearchResult runs a search and plays the selected match in one
// command, so the selection cannot race with other requests.
func (h *Handlers) PlaySearchResult(w http.ResponseWriter, r *http.Request) {
	var req PlayMatchRequest
	if err := decodeJSON(r, &req, false); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	q, tag, ok := searchTerms(req.Query, req.Tag)
	if !ok {
		badRequest(w, "q and tag cannot be combined")
		return
	}
	if req.Index == nil {
		badRequest(w, "index is required")
		return
	}

	var res player.PlayResult
	err := h.session.Do(func(c *player.Controller) (err error) {
		res, err = c.PlayFromMatches(runSearch(c, q, tag), *req.Index)
		return err
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSONStatus(w, http.StatusOK, res)
}

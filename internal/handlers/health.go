package handlers

import (
	"net/http"
	"runtime"
	"time"

	"video-player/internal/playback"
	"video-player/internal/startup"
)

const statusHealthy = "healthy"

// HealthResponse contains the health check response
type HealthResponse struct {
	Status    string `json:"status"`
	Version   string `json:"version"`
	Uptime    string `json:"uptime"`
	SessionID string `json:"sessionId"`

	// System info
	GoVersion    string `json:"goVersion"`
	NumCPU       int    `json:"numCpu"`
	NumGoroutine int    `json:"numGoroutine"`

	// Session summary
	TotalVideos   int    `json:"totalVideos"`
	FlaggedVideos int    `json:"flaggedVideos"`
	Playlists     int    `json:"playlists"`
	Playback      string `json:"playback"`
}

// HealthCheck returns the health status of the service. The catalog is
// loaded before the server starts, so a running server is always ready.
func (h *Handlers) HealthCheck(w http.ResponseWriter, _ *http.Request) {
	stats := h.session.GetStats()

	response := HealthResponse{
		Status:        statusHealthy,
		Version:       startup.Version,
		Uptime:        time.Since(h.startTime).Round(time.Second).String(),
		SessionID:     h.session.ID(),
		GoVersion:     runtime.Version(),
		NumCPU:        runtime.NumCPU(),
		NumGoroutine:  runtime.NumGoroutine(),
		TotalVideos:   stats.TotalVideos,
		FlaggedVideos: stats.FlaggedVideos,
		Playlists:     stats.Playlists,
		Playback:      playback.Status(stats.State).String(),
	}

	writeJSONStatus(w, http.StatusOK, response)
}

// LivenessCheck is a simple liveness probe (always returns 200 if server is running)
func (h *Handlers) LivenessCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	// For HEAD requests, only send headers (no body)
	if r.Method != http.MethodHead {
		writeJSON(w, map[string]string{
			"status": "alive",
		})
	}
}

// GetVersion returns the application version and build information
func (h *Handlers) GetVersion(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Cache-Control", "no-cache")
	writeJSONStatus(w, http.StatusOK, startup.GetBuildInfo())
}

package handlers

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"video-player/internal/middleware"
)

// RouterConfig configures the API router.
type RouterConfig struct {
	LogHealthChecks bool
	// RateLimit is the number of API requests allowed per client IP and
	// minute. Zero disables limiting.
	RateLimit int
}

// NewRouter registers every API route on a new router.
func (h *Handlers) NewRouter(cfg RouterConfig) *mux.Router {
	r := mux.NewRouter()

	loggingConfig := middleware.DefaultLoggingConfig()
	loggingConfig.LogHealthChecks = cfg.LogHealthChecks

	r.Use(h.sessionHeader)
	r.Use(middleware.Logger(loggingConfig))
	r.Use(middleware.Metrics(middleware.DefaultMetricsConfig()))

	// Health and info (never rate limited)
	r.HandleFunc("/health", h.HealthCheck).Methods("GET").Name("health")
	r.HandleFunc("/healthz", h.HealthCheck).Methods("GET")
	r.HandleFunc("/livez", h.LivenessCheck).Methods("GET", "HEAD")
	r.HandleFunc("/version", h.GetVersion).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.RateLimit(middleware.RateLimitConfig{
		RequestLimit: cfg.RateLimit,
		WindowSize:   time.Minute,
	}))

	// Catalog and flags
	api.HandleFunc("/videos", h.ListVideos).Methods("GET")
	api.HandleFunc("/videos/{id}", h.GetVideo).Methods("GET")
	api.HandleFunc("/videos/{id}/flag", h.FlagVideo).Methods("POST")
	api.HandleFunc("/videos/{id}/flag", h.AllowVideo).Methods("DELETE")
	api.HandleFunc("/search", h.Search).Methods("GET")
	api.HandleFunc("/search/play", h.PlaySearchResult).Methods("POST")

	// Playback
	api.HandleFunc("/playing", h.GetPlaying).Methods("GET")
	api.HandleFunc("/play", h.Play).Methods("POST")
	api.HandleFunc("/play/random", h.PlayRandom).Methods("POST")
	api.HandleFunc("/pause", h.Pause).Methods("POST")
	api.HandleFunc("/continue", h.Continue).Methods("POST")
	api.HandleFunc("/stop", h.Stop).Methods("POST")

	// Playlists
	api.HandleFunc("/playlists", h.ListPlaylists).Methods("GET")
	api.HandleFunc("/playlists", h.CreatePlaylist).Methods("POST")
	api.HandleFunc("/playlists/{name}", h.GetPlaylist).Methods("GET")
	api.HandleFunc("/playlists/{name}", h.DeletePlaylist).Methods("DELETE")
	api.HandleFunc("/playlists/{name}/videos", h.AddToPlaylist).Methods("POST")
	api.HandleFunc("/playlists/{name}/videos/{id}", h.RemoveFromPlaylist).Methods("DELETE")
	api.HandleFunc("/playlists/{name}/clear", h.ClearPlaylist).Methods("POST")
	api.HandleFunc("/playlists/{name}/wpl", h.ExportPlaylist).Methods("GET")

	r.NotFoundHandler = h.sessionHeader(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSONError(w, "not found", "not_found", http.StatusNotFound)
	}))
	r.MethodNotAllowedHandler = h.sessionHeader(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSONError(w, "method not allowed", "bad_request", http.StatusMethodNotAllowed)
	}))

	return r
}

// MetricsHandler returns the Prometheus metrics handler
func (h *Handlers) MetricsHandler() http.Handler {
	return promhttp.Handler()
}

// sessionHeader tags every response with the session id.
func (h *Handlers) sessionHeader(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(middleware.SessionHeader, h.session.ID())
		next.ServeHTTP(w, r)
	})
}

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "video_player_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "video_player_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "video_player_http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)
)

// Command metrics
var (
	CommandsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "video_player_commands_total",
			Help: "Total number of controller commands by outcome",
		},
		[]string{"command", "result"},
	)

	CommandDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "video_player_command_duration_seconds",
			Help:    "Controller command duration in seconds",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
		},
		[]string{"command"},
	)

	ImplicitStopsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "video_player_implicit_stops_total",
			Help: "Videos stopped as a side effect of another command",
		},
		[]string{"cause"}, // "play", "flag"
	)
)

// Catalog metrics
var (
	CatalogVideos = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "video_player_catalog_videos",
			Help: "Number of videos in the loaded catalog",
		},
	)

	CatalogLoadDuration = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "video_player_catalog_load_duration_seconds",
			Help: "Duration of the startup catalog load in seconds",
		},
	)

	CatalogLoadErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "video_player_catalog_load_errors_total",
			Help: "Catalog load failures by source format",
		},
		[]string{"format"},
	)
)

// Session metrics
var (
	FlaggedVideos = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "video_player_flagged_videos",
			Help: "Number of videos currently flagged",
		},
	)

	Playlists = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "video_player_playlists",
			Help: "Number of playlists in the session",
		},
	)

	PlaylistEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "video_player_playlist_entries",
			Help: "Total number of videos across all playlists",
		},
	)

	PlaybackState = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "video_player_playback_state",
			Help: "Playback state (0 = stopped, 1 = playing, 2 = paused)",
		},
	)
)

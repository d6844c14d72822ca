// Package metrics provides Prometheus instrumentation for the video player.
//
// All metrics are prefixed with "video_player_".
//
// # HTTP Metrics
//
//   - HTTPRequestsTotal: requests by method, path and status
//   - HTTPRequestDuration: request duration by method and path
//   - HTTPRequestsInFlight: requests currently being served
//
// # Command Metrics
//
// Recorded by the controller for every state-changing command:
//   - CommandsTotal: commands by name and result (success or error kind)
//   - CommandDuration: command latency
//   - ImplicitStopsTotal: videos stopped because another video started
//     playing or the active video was flagged
//
// # Catalog and Session Metrics
//
//   - CatalogVideos, CatalogLoadDuration, CatalogLoadErrors
//   - FlaggedVideos, Playlists, PlaylistEntries, PlaybackState
//
// Session gauges are refreshed by a [Collector] that polls a
// [StatsProvider] on a fixed interval.
//
// # Usage
//
//	metrics.InitializeMetrics()
//	collector := metrics.NewCollector(sess, time.Minute)
//	collector.Start()
//	defer collector.Stop()
package metrics

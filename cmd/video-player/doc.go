// Command video-player loads a video catalog and either runs an
// interactive console on stdin or, with the serve subcommand, exposes the
// same commands over an HTTP JSON API.
//
// Usage:
//
//	video-player [--catalog videos.txt] [--format auto|text|sqlite]
//	video-player serve [--port 8080]
//	video-player version [--json]
//
// Configuration is read from the environment (CATALOG_PATH, CATALOG_FORMAT,
// PORT, METRICS_PORT, METRICS_ENABLED, STATS_INTERVAL, RATE_LIMIT,
// LOG_HEALTH_CHECKS, LOG_LEVEL, DEBUG). Flags override the environment.
package main

// Package startup handles application initialization, configuration loading,
// and startup/shutdown logging.
//
// # Configuration
//
// Configuration is read from environment variables via [ReadConfig] and
// [LoadConfig]; the latter also logs the banner and every value. Command-line
// values passed as [Overrides] take precedence. Supported variables:
//
//   - CATALOG_PATH: Path to the video catalog (default: videos.txt)
//   - CATALOG_FORMAT: auto, text or sqlite (default: auto, by file extension)
//   - PORT: HTTP API port (default: 8080)
//   - METRICS_PORT: Prometheus metrics server port (default: 9090)
//   - METRICS_ENABLED: Enable or disable metrics server (default: true)
//   - STATS_INTERVAL: Session gauge refresh interval as Go duration (default: 1m)
//   - RATE_LIMIT: API requests per minute per client IP, 0 disables (default: 600)
//   - LOG_LEVEL: Logging level - debug, info, warn, error (default: info)
//   - LOG_HEALTH_CHECKS: Log health check requests (default: true)
//
// # Build Information
//
// Build-time variables are injected via ldflags and exposed via [GetBuildInfo]:
//   - Version: Application version
//   - Commit: Git commit hash
//   - BuildTime: Build timestamp
//   - GoVersion: Go compiler version
//
// # Lifecycle Logging
//
//   - [LogCatalogLoaded]: Catalog source, size and load time
//   - [LogHTTPRoutes]: Registered HTTP routes (debug level)
//   - [LogServerStarted]: Server endpoints and startup duration
//   - [LogShutdownInitiated]: Graceful shutdown start
//   - [LogShutdownComplete]: Shutdown completion
package startup

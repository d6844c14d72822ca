// Package logging provides the leveled logger used across the video player.
//
// Levels, lowest first:
//   - DEBUG: state machine transitions, implicit stops, HTTP route tables
//   - INFO: startup sections and lifecycle messages
//   - WARN: recoverable configuration problems
//   - ERROR: failures that are reported but not fatal
//   - FATAL: catalog load failures and other startup errors
//
// The level comes from DEBUG (any truthy value forces debug) or LOG_LEVEL.
// Output goes to stderr so the interactive console keeps stdout to itself.
package logging

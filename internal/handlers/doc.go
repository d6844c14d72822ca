// Package handlers provides the HTTP API of the video player.
//
// All API handlers run their commands through a single session.Session, so
// concurrent requests see the same catalog, flags, playlists and playback
// state, one command at a time. It includes handlers for:
//   - Catalog listing, lookup, flagging and search
//   - Playback control (play, random, pause, continue, stop)
//   - Playlist management and WPL export
//   - Health checks and version information
//
// Controller failures are mapped to HTTP status codes by kind: not found
// is 404, conflicts and invalid playback state are 409, and flagged videos
// are 403. Error bodies have the form {"error": ..., "kind": ..., "reason": ...}.
package handlers

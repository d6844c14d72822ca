// Package playlist reads and writes playlist files.
//
// Currently supported formats:
//   - WPL (Windows Playlist): XML-based playlist format used by Windows Media Player
//
// Exported playlists reference videos by catalog id in the src attribute of
// each media element, and carry the video title alongside so the file is
// readable on its own.
package playlist

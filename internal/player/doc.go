// Package player implements the session controller of the video player.
//
// A Controller ties together the catalog, the flag registry, the playlists
// and the single playback slot, and enforces the rules between them:
//
//   - at most one video is active, and it is never flagged
//   - playing a video implicitly stops the previous one
//   - flagging the active video stops it in the same call
//   - flagged videos cannot be played, added to playlists or found by search
//
// Every command returns either a result or an *Error whose Kind classifies
// the failure and whose Err is one of the package sentinels:
//
//	if _, err := c.Play(id); errors.Is(err, player.ErrVideoFlagged) {
//		var pe *player.Error
//		errors.As(err, &pe)
//		fmt.Println("flagged:", pe.Reason)
//	}
//
// A Controller is not safe for concurrent use.
package player

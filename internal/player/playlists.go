package player

import (
	"time"

	"video-player/internal/catalog"
	"video-player/internal/logging"
	"video-player/internal/playlists"
)

// CreatePlaylist creates an empty playlist. Names are unique ignoring case.
func (c *Controller) CreatePlaylist(name string) (p playlists.Playlist, err error) {
	defer recordCommand(opCreatePlaylist, time.Now(), &err)

	key, err := c.playlists.Create(name)
	if err != nil {
		return playlists.Playlist{}, fail(opCreatePlaylist, err, "")
	}
	p, _ = c.playlists.Get(key)
	logging.Debug("Created playlist %q", name)
	return p, nil
}

// AddToPlaylist appends the video with id to the named playlist.
func (c *Controller) AddToPlaylist(name, id string) (v catalog.Video, err error) {
	defer recordCommand(opAddToPlaylist, time.Now(), &err)

	key := playlists.Key(name)
	if _, ok := c.playlists.Get(key); !ok {
		return catalog.Video{}, fail(opAddToPlaylist, ErrNoSuchPlaylist, id)
	}
	v, ok := c.catalog.Get(id)
	if !ok {
		return catalog.Video{}, fail(opAddToPlaylist, ErrNoSuchVideo, id)
	}
	if reason, flagged := c.flags.Reason(id); flagged {
		e := fail(opAddToPlaylist, ErrVideoFlagged, id)
		e.Reason = reason
		return catalog.Video{}, e
	}
	if err := c.playlists.Add(key, id); err != nil {
		return catalog.Video{}, fail(opAddToPlaylist, err, id)
	}
	return v, nil
}

// RemoveFromPlaylist removes the video with id from the named playlist.
// Only membership is checked, so a flagged video can always be removed.
// The returned video carries only the id if it is not in the catalog.
func (c *Controller) RemoveFromPlaylist(name, id string) (v catalog.Video, err error) {
	defer recordCommand(opRemoveFromPlaylist, time.Now(), &err)

	if err := c.playlists.Remove(playlists.Key(name), id); err != nil {
		return catalog.Video{}, fail(opRemoveFromPlaylist, err, id)
	}
	v, ok := c.catalog.Get(id)
	if !ok {
		v = catalog.Video{ID: id}
	}
	return v, nil
}

// ClearPlaylist removes every member of the named playlist.
func (c *Controller) ClearPlaylist(name string) (err error) {
	defer recordCommand(opClearPlaylist, time.Now(), &err)

	if err := c.playlists.Clear(playlists.Key(name)); err != nil {
		return fail(opClearPlaylist, err, "")
	}
	return nil
}

// DeletePlaylist removes the named playlist.
func (c *Controller) DeletePlaylist(name string) (err error) {
	defer recordCommand(opDeletePlaylist, time.Now(), &err)

	if err := c.playlists.Delete(playlists.Key(name)); err != nil {
		return fail(opDeletePlaylist, err, "")
	}
	logging.Debug("Deleted playlist %q", name)
	return nil
}

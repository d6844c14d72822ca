// Package playlists stores named, ordered collections of video ids.
//
// Playlists are looked up by key: the NFC-normalized, lower-cased display
// name. Two names that differ only in case (or in Unicode composition)
// refer to the same playlist.
package playlists

import (
	"errors"
	"slices"

	"video-player/internal/catalog"
)

var (
	// ErrDuplicateName is returned when a playlist with the same key exists.
	ErrDuplicateName = errors.New("a playlist with the same name already exists")
	// ErrNoSuchPlaylist is returned for unknown playlist keys.
	ErrNoSuchPlaylist = errors.New("playlist does not exist")
	// ErrDuplicateMember is returned when adding a video that is already in the playlist.
	ErrDuplicateMember = errors.New("video already added")
	// ErrNotAMember is returned when removing a video that is not in the playlist.
	ErrNotAMember = errors.New("video is not in playlist")
)

// Key returns the lookup key for a playlist name.
func Key(name string) string {
	return catalog.Fold(name)
}

// Playlist is a named ordered list of video ids without duplicates.
type Playlist struct {
	Name   string   `json:"name"`
	Videos []string `json:"videos"`
}

// Key returns the playlist's lookup key.
func (p Playlist) Key() string {
	return Key(p.Name)
}

// Contains reports whether id is a member.
func (p Playlist) Contains(id string) bool {
	return slices.Contains(p.Videos, id)
}

// Store holds the playlists of one session.
type Store struct {
	playlists map[string]*Playlist
}

// New returns an empty store.
func New() *Store {
	return &Store{playlists: make(map[string]*Playlist)}
}

// Create adds an empty playlist called name and returns its key.
func (s *Store) Create(name string) (string, error) {
	key := Key(name)
	if _, ok := s.playlists[key]; ok {
		return "", ErrDuplicateName
	}
	s.playlists[key] = &Playlist{Name: name, Videos: []string{}}
	return key, nil
}

// Get returns a copy of the playlist stored under key.
func (s *Store) Get(key string) (Playlist, bool) {
	p, ok := s.playlists[key]
	if !ok {
		return Playlist{}, false
	}
	return p.clone(), true
}

// Add appends id to the playlist stored under key.
func (s *Store) Add(key, id string) error {
	p, ok := s.playlists[key]
	if !ok {
		return ErrNoSuchPlaylist
	}
	if p.Contains(id) {
		return ErrDuplicateMember
	}
	p.Videos = append(p.Videos, id)
	return nil
}

// Remove deletes id from the playlist stored under key, keeping the order
// of the remaining members.
func (s *Store) Remove(key, id string) error {
	p, ok := s.playlists[key]
	if !ok {
		return ErrNoSuchPlaylist
	}
	i := slices.Index(p.Videos, id)
	if i < 0 {
		return ErrNotAMember
	}
	p.Videos = slices.Delete(p.Videos, i, i+1)
	return nil
}

// Clear empties the playlist stored under key. The playlist itself remains.
func (s *Store) Clear(key string) error {
	p, ok := s.playlists[key]
	if !ok {
		return ErrNoSuchPlaylist
	}
	p.Videos = p.Videos[:0]
	return nil
}

// Delete removes the playlist stored under key.
func (s *Store) Delete(key string) error {
	if _, ok := s.playlists[key]; !ok {
		return ErrNoSuchPlaylist
	}
	delete(s.playlists, key)
	return nil
}

// All returns copies of every playlist in unspecified order.
func (s *Store) All() []Playlist {
	out := make([]Playlist, 0, len(s.playlists))
	for _, p := range s.playlists {
		out = append(out, p.clone())
	}
	return out
}

// Len returns the number of playlists.
func (s *Store) Len() int {
	return len(s.playlists)
}

// Entries returns the total number of members across all playlists.
func (s *Store) Entries() int {
	n := 0
	for _, p := range s.playlists {
		n += len(p.Videos)
	}
	return n
}

func (p *Playlist) clone() Playlist {
	return Playlist{Name: p.Name, Videos: slices.Clone(p.Videos)}
}

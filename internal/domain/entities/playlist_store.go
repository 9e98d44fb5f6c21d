package entities

import (
	"sort"
	"sync"

	apperrors "github.com/vuongmanhnghia/video-player/internal/errors"
	"github.com/vuongmanhnghia/video-player/internal/validation"
)

// PlaylistStore owns every playlist of a session, keyed by folded name
type PlaylistStore struct {
	playlists map[string]*Playlist
	mu        sync.RWMutex
}

// NewPlaylistStore creates an empty store
func NewPlaylistStore() *PlaylistStore {
	return &PlaylistStore{
		playlists: make(map[string]*Playlist),
	}
}

// Create adds a new empty playlist unless the name is taken, ignoring case
func (s *PlaylistStore) Create(name string) (*Playlist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key, _, exists := s.lookupLocked(name)
	if exists {
		return nil, apperrors.ErrPlaylistExists
	}

	playlist := NewPlaylist(name)
	s.playlists[key] = playlist
	return playlist, nil
}

// Find looks a playlist up by name, ignoring case
func (s *PlaylistStore) Find(name string) (*Playlist, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, playlist, ok := s.lookupLocked(name)
	return playlist, ok
}

// Delete removes a playlist by name, ignoring case
func (s *PlaylistStore) Delete(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key, _, exists := s.lookupLocked(name)
	if !exists {
		return apperrors.ErrPlaylistNotFound
	}

	delete(s.playlists, key)
	return nil
}

// ListSortedByName returns all playlists ordered by their display name.
// The order is plain byte order, so "Zed" sorts before "abc".
func (s *PlaylistStore) ListSortedByName() []*Playlist {
	s.mu.RLock()
	defer s.mu.RUnlock()

	playlists := make([]*Playlist, 0, len(s.playlists))
	for _, p := range s.playlists {
		playlists = append(playlists, p)
	}

	sort.Slice(playlists, func(i, j int) bool {
		return playlists[i].Name() < playlists[j].Name()
	})
	return playlists
}

// Len returns the number of playlists
func (s *PlaylistStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.playlists)
}

// lookupLocked resolves a name to its folded key and playlist. Every
// lookup site goes through it so they agree on equality. Must be called
// with the lock held.
func (s *PlaylistStore) lookupLocked(name string) (string, *Playlist, bool) {
	key := validation.FoldKey(name)
	playlist, ok := s.playlists[key]
	return key, playlist, ok
}

package entities

import "sync"

// Playlist is a named, ordered, duplicate-free collection of video ids
type Playlist struct {
	name     string
	videoIDs []string

	mu sync.RWMutex
}

// NewPlaylist creates a new empty playlist
func NewPlaylist(name string) *Playlist {
	return &Playlist{
		name:     name,
		videoIDs: make([]string, 0),
	}
}

// Name returns the name as it was given at creation
func (p *Playlist) Name() string {
	return p.name
}

// Add appends a video id. It returns false, leaving the playlist
// untouched, when the id is already present.
func (p *Playlist) Add(videoID string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.indexOf(videoID) >= 0 {
		return false
	}
	p.videoIDs = append(p.videoIDs, videoID)
	return true
}

// Remove deletes a video id, returning false if it was not present
func (p *Playlist) Remove(videoID string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	i := p.indexOf(videoID)
	if i < 0 {
		return false
	}
	p.videoIDs = append(p.videoIDs[:i], p.videoIDs[i+1:]...)
	return true
}

// Clear removes all video ids
func (p *Playlist) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.videoIDs = make([]string, 0)
}

// Videos returns a copy of the video ids in insertion order
func (p *Playlist) Videos() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	ids := make([]string, len(p.videoIDs))
	copy(ids, p.videoIDs)
	return ids
}

// Len returns the number of videos in the playlist
func (p *Playlist) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.videoIDs)
}

// indexOf must be called with the lock held
func (p *Playlist) indexOf(videoID string) int {
	for i, id := range p.videoIDs {
		if id == videoID {
			return i
		}
	}
	return -1
}

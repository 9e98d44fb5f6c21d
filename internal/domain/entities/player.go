package entities

import (
	"sync"

	"github.com/vuongmanhnghia/video-player/internal/domain/valueobjects"
)

// PlayerState tracks the current video by id and whether it is playing.
// The id is a weak reference: the catalog owns the video.
type PlayerState struct {
	videoID  string
	hasVideo bool
	playing  bool

	mu sync.RWMutex
}

// NewPlayerState creates a stopped player
func NewPlayerState() *PlayerState {
	return &PlayerState{}
}

// Start sets the current video and marks it playing, replacing any previous one
func (p *PlayerState) Start(videoID string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.videoID = videoID
	p.hasVideo = true
	p.playing = true
}

// Stop clears the current video
func (p *PlayerState) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.videoID = ""
	p.hasVideo = false
	p.playing = false
}

// Pause marks the current video paused. It returns false if nothing
// is set or the video is already paused.
func (p *PlayerState) Pause() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.hasVideo || !p.playing {
		return false
	}
	p.playing = false
	return true
}

// Resume marks the current video playing. It returns false if nothing
// is set or the video is not paused.
func (p *PlayerState) Resume() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.hasVideo || p.playing {
		return false
	}
	p.playing = true
	return true
}

// Current returns the current video id, if any
func (p *PlayerState) Current() (string, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.videoID, p.hasVideo
}

// Status summarizes the player
func (p *PlayerState) Status() valueobjects.PlaybackStatus {
	p.mu.RLock()
	defer p.mu.RUnlock()

	switch {
	case !p.hasVideo:
		return valueobjects.PlaybackStatusStopped
	case p.playing:
		return valueobjects.PlaybackStatusPlaying
	default:
		return valueobjects.PlaybackStatusPaused
	}
}

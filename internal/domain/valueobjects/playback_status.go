package valueobjects

// PlaybackStatus represents the state of the player
type PlaybackStatus string

const (
	PlaybackStatusStopped PlaybackStatus = "stopped"
	PlaybackStatusPlaying PlaybackStatus = "playing"
	PlaybackStatusPaused  PlaybackStatus = "paused"
)

// String returns the string representation
func (s PlaybackStatus) String() string {
	return string(s)
}

// IsValid checks if the status is valid
func (s PlaybackStatus) IsValid() bool {
	switch s {
	case PlaybackStatusStopped, PlaybackStatusPlaying, PlaybackStatusPaused:
		return true
	}
	return false
}

// HasVideo reports whether a video is set in this status
func (s PlaybackStatus) HasVideo() bool {
	return s == PlaybackStatusPlaying || s == PlaybackStatusPaused
}

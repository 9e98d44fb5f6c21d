package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestGetUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "user error wins",
			err:      WrapUserError(ErrPlaylistNotFound, "Cannot show playlist %s: %s", "mix", Reason(ErrPlaylistNotFound)),
			expected: "Cannot show playlist mix: Playlist does not exist",
		},
		{
			name:     "wrapped user error",
			err:      fmt.Errorf("dispatch: %w", WrapUserError(ErrNotPlaying, "No video is currently playing")),
			expected: "No video is currently playing",
		},
		{
			name:     "unknown command",
			err:      ErrUnknownCommand,
			expected: "Please enter a valid command, type HELP for a list of available commands.",
		},
		{
			name:     "bare sentinel falls back to reason",
			err:      ErrVideoAlreadyAdded,
			expected: "Video already added",
		},
		{
			name:     "foreign error",
			err:      errors.New("boom"),
			expected: "An unexpected error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetUserMessage(tt.err); got != tt.expected {
				t.Errorf("GetUserMessage() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestUserErrorUnwrap(t *testing.T) {
	err := WrapUserError(ErrVideoNotFound, "Cannot %s video: Video does not exist", "play")

	if !errors.Is(err, ErrVideoNotFound) {
		t.Error("UserError should unwrap to its sentinel")
	}
	if err.Error() != ErrVideoNotFound.Error() {
		t.Errorf("Error() should return the wrapped error text, got %q", err.Error())
	}
}

func TestReason(t *testing.T) {
	tests := map[error]string{
		ErrVideoNotFound:      "Video does not exist",
		ErrPlaylistNotFound:   "Playlist does not exist",
		ErrPlaylistExists:     "A playlist with the same name already exists",
		ErrVideoNotInPlaylist: "Video is not in playlist",
		ErrNotPaused:          "Video is not paused",
		ErrCatalogEmpty:       "No videos available",
	}

	for err, expected := range tests {
		if got := Reason(fmt.Errorf("wrapped: %w", err)); got != expected {
			t.Errorf("Reason(%v) = %q, expected %q", err, got, expected)
		}
	}
}

package errors

import (
	"errors"
	"fmt"
)

// Common error types for better error handling
var (
	// Catalog errors
	ErrVideoNotFound = errors.New("video does not exist")
	ErrCatalogEmpty  = errors.New("catalog is empty")

	// Playback errors
	ErrNotPlaying    = errors.New("no video is currently playing")
	ErrAlreadyPaused = errors.New("video already paused")
	ErrNotPaused     = errors.New("video is not paused")

	// Playlist errors
	ErrPlaylistNotFound   = errors.New("playlist not found")
	ErrPlaylistExists     = errors.New("playlist already exists")
	ErrVideoAlreadyAdded  = errors.New("video already in playlist")
	ErrVideoNotInPlaylist = errors.New("video not in playlist")

	// Command errors
	ErrUnknownCommand   = errors.New("unknown command")
	ErrInvalidArguments = errors.New("invalid arguments")
)

// UserError wraps an error with a user-friendly message
type UserError struct {
	Err     error
	Message string
}

func (e *UserError) Error() string {
	return e.Err.Error()
}

func (e *UserError) Unwrap() error {
	return e.Err
}

func (e *UserError) UserMessage() string {
	return e.Message
}

// WrapUserError wraps an error with a user-friendly message
func WrapUserError(err error, format string, args ...interface{}) *UserError {
	return &UserError{
		Err:     err,
		Message: fmt.Sprintf(format, args...),
	}
}

// Reason returns the short sentence shown after "Cannot <action>: "
func Reason(err error) string {
	switch {
	case errors.Is(err, ErrVideoNotFound):
		return "Video does not exist"
	case errors.Is(err, ErrCatalogEmpty):
		return "No videos available"
	case errors.Is(err, ErrNotPlaying):
		return "No video is currently playing"
	case errors.Is(err, ErrAlreadyPaused):
		return "Video is already paused"
	case errors.Is(err, ErrNotPaused):
		return "Video is not paused"
	case errors.Is(err, ErrPlaylistNotFound):
		return "Playlist does not exist"
	case errors.Is(err, ErrPlaylistExists):
		return "A playlist with the same name already exists"
	case errors.Is(err, ErrVideoAlreadyAdded):
		return "Video already added"
	case errors.Is(err, ErrVideoNotInPlaylist):
		return "Video is not in playlist"
	default:
		return "An unexpected error occurred"
	}
}

// GetUserMessage extracts user-friendly message from error
func GetUserMessage(err error) string {
	var userErr *UserError
	if errors.As(err, &userErr) {
		return userErr.UserMessage()
	}

	switch {
	case errors.Is(err, ErrUnknownCommand):
		return "Please enter a valid command, type HELP for a list of available commands."
	case errors.Is(err, ErrInvalidArguments):
		return "Invalid arguments, type HELP for a list of available commands."
	default:
		return Reason(err)
	}
}

package commands

import (
	"errors"

	"github.com/vuongmanhnghia/video-player/internal/domain/valueobjects"
	apperrors "github.com/vuongmanhnghia/video-player/internal/errors"
	"github.com/vuongmanhnghia/video-player/internal/services"
)

// handlePlay handles the PLAY command
func (h *Handler) handlePlay(videoID string) error {
	t, err := h.playbackService.Play(videoID)
	if err != nil {
		return apperrors.WrapUserError(err, "Cannot play video: %s", apperrors.Reason(err))
	}

	h.respondTransition(t)
	return nil
}

// handlePlayRandom handles the PLAY_RANDOM command
func (h *Handler) handlePlayRandom() error {
	t, err := h.playbackService.PlayRandom()
	if err != nil {
		return apperrors.WrapUserError(err, "Cannot play video: %s", apperrors.Reason(err))
	}

	h.respondTransition(t)
	return nil
}

// handleStop handles the STOP command
func (h *Handler) handleStop() error {
	video, err := h.playbackService.Stop()
	if err != nil {
		return apperrors.WrapUserError(err, "Cannot stop video: %s", apperrors.Reason(err))
	}

	h.respondf("Stopping video: %s", displayTitle(video))
	return nil
}

// handlePause handles the PAUSE command
func (h *Handler) handlePause() error {
	video, err := h.playbackService.Pause()
	if errors.Is(err, apperrors.ErrAlreadyPaused) {
		return apperrors.WrapUserError(err, "Video already paused: %s", displayTitle(video))
	}
	if err != nil {
		return apperrors.WrapUserError(err, "Cannot pause video: %s", apperrors.Reason(err))
	}

	h.respondf("Pausing video: %s", displayTitle(video))
	return nil
}

// handleContinue handles the CONTINUE command
func (h *Handler) handleContinue() error {
	video, err := h.playbackService.Resume()
	if err != nil {
		return apperrors.WrapUserError(err, "Cannot continue video: %s", apperrors.Reason(err))
	}

	h.respondf("Continuing video: %s", displayTitle(video))
	return nil
}

// handleShowPlaying handles the SHOW_PLAYING command
func (h *Handler) handleShowPlaying() error {
	video, status := h.playbackService.Current()
	if !status.HasVideo() {
		h.respond("No video is currently playing")
		return nil
	}

	line := "Currently playing: " + video.String()
	if video.Title == "" {
		line = "Currently playing: " + unavailable(video.ID)
	}
	if status == valueobjects.PlaybackStatusPaused {
		line += " - PAUSED"
	}

	h.respond(line)
	return nil
}

func (h *Handler) respondTransition(t services.Transition) {
	if t.Stopped != nil {
		h.respondf("Stopping video: %s", displayTitle(*t.Stopped))
	}
	h.respondf("Playing video: %s", displayTitle(t.Started))
}

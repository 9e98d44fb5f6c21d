package commands

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/vuongmanhnghia/video-player/internal/catalog"
	apperrors "github.com/vuongmanhnghia/video-player/internal/errors"
	"github.com/vuongmanhnghia/video-player/internal/metrics"
	"github.com/vuongmanhnghia/video-player/internal/services"
	"github.com/vuongmanhnghia/video-player/internal/validation"
	"github.com/vuongmanhnghia/video-player/pkg/logger"
)

// ErrExit is returned by Handle when the user asks to terminate
var ErrExit = errors.New("exit requested")

// LineReader supplies the answer to an interactive prompt
type LineReader interface {
	ReadLine(ctx context.Context) (string, error)
}

// Handler interprets console commands against the session services
type Handler struct {
	catalog         catalog.Catalog
	playbackService *services.PlaybackService
	playlistService *services.PlaylistService
	searchService   *services.SearchService
	in              LineReader
	out             io.Writer
	logger          *logger.Logger
	sessionID       string

	writeErr error
}

// NewHandler creates a new command handler
func NewHandler(
	c catalog.Catalog,
	playbackSvc *services.PlaybackService,
	playlistSvc *services.PlaylistService,
	searchSvc *services.SearchService,
	in LineReader,
	out io.Writer,
	log *logger.Logger,
) *Handler {
	return &Handler{
		catalog:         c,
		playbackService: playbackSvc,
		playlistService: playlistSvc,
		searchService:   searchSvc,
		in:              in,
		out:             out,
		logger:          log,
		sessionID:       uuid.New().String(),
	}
}

// SessionID identifies this handler in logs
func (h *Handler) SessionID() string {
	return h.sessionID
}

// Handle runs one command line. Rejected commands are reported to the user
// and are not errors; the returned error is ErrExit or an output failure.
// ctx bounds any follow-up prompt the command asks.
func (h *Handler) Handle(ctx context.Context, line string) error {
	h.writeErr = nil

	fields := strings.Fields(validation.SanitizeInput(line))
	if len(fields) == 0 {
		return nil
	}

	name, args := strings.ToUpper(fields[0]), fields[1:]

	cmd, ok := lookupCommand(name)
	if !ok {
		metrics.RecordCommand("UNKNOWN", metrics.OutcomeInvalid)
		h.logger.WithFields(map[string]interface{}{
			"command": fields[0],
			"session": h.sessionID,
		}).Debug("Unknown command")
		h.respond(apperrors.GetUserMessage(apperrors.ErrUnknownCommand))
		return h.writeErr
	}

	if !cmd.Accepts(len(args)) {
		metrics.RecordCommand(cmd.Name, metrics.OutcomeInvalid)
		h.respond(apperrors.GetUserMessage(apperrors.ErrInvalidArguments))
		h.respondf("Usage: %s", cmd.Usage())
		return h.writeErr
	}

	h.logger.WithFields(map[string]interface{}{
		"command": cmd.Name,
		"args":    args,
		"session": h.sessionID,
	}).Debug("Command received")

	var err error
	switch cmd.Name {
	// Catalog commands
	case "NUM_VIDEOS":
		err = h.handleNumVideos()
	case "SHOW_ALL_VIDEOS":
		err = h.handleShowAllVideos()

	// Playback commands
	case "PLAY":
		err = h.handlePlay(args[0])
	case "PLAY_RANDOM":
		err = h.handlePlayRandom()
	case "STOP":
		err = h.handleStop()
	case "PAUSE":
		err = h.handlePause()
	case "CONTINUE":
		err = h.handleContinue()
	case "SHOW_PLAYING":
		err = h.handleShowPlaying()

	// Playlist commands
	case "CREATE_PLAYLIST":
		err = h.handleCreatePlaylist(args[0])
	case "ADD_TO_PLAYLIST":
		err = h.handleAddToPlaylist(args[0], args[1])
	case "REMOVE_FROM_PLAYLIST":
		err = h.handleRemoveFromPlaylist(args[0], args[1])
	case "CLEAR_PLAYLIST":
		err = h.handleClearPlaylist(args[0])
	case "DELETE_PLAYLIST":
		err = h.handleDeletePlaylist(args[0])
	case "SHOW_PLAYLIST":
		err = h.handleShowPlaylist(args[0])
	case "SHOW_ALL_PLAYLISTS":
		err = h.handleShowAllPlaylists()

	// Search commands
	case "SEARCH_VIDEOS":
		err = h.handleSearchVideos(ctx, args[0])
	case "SEARCH_VIDEOS_WITH_TAG":
		err = h.handleSearchVideosWithTag(ctx, args[0])

	// Moderation commands
	case "FLAG_VIDEO":
		err = h.handleFlagVideo(args[0], joinArgs(args[1:]))
	case "ALLOW_VIDEO":
		err = h.handleAllowVideo(args[0])

	// Utility commands
	case "HELP":
		err = h.handleHelp()
	case "EXIT":
		metrics.RecordCommand(cmd.Name, metrics.OutcomeOK)
		return ErrExit
	}

	if err != nil {
		metrics.RecordCommand(cmd.Name, metrics.OutcomeRejected)
		h.logger.WithError(err).WithFields(map[string]interface{}{
			"command": cmd.Name,
			"session": h.sessionID,
		}).Debug("Command rejected")
		h.respond(apperrors.GetUserMessage(err))
		return h.writeErr
	}

	metrics.RecordCommand(cmd.Name, metrics.OutcomeOK)
	return h.writeErr
}

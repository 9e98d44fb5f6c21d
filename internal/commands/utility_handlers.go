package commands

import "github.com/vuongmanhnghia/video-player/internal/domain/entities"

// handleNumVideos handles the NUM_VIDEOS command
func (h *Handler) handleNumVideos() error {
	h.respondf("%d videos in the library", h.catalog.Len())
	return nil
}

// handleShowAllVideos handles the SHOW_ALL_VIDEOS command
func (h *Handler) handleShowAllVideos() error {
	videos := h.catalog.ListAll()
	entities.SortByTitle(videos)

	h.respondListing(NewListing("Here's a list of all available videos:").Videos(videos))
	return nil
}

// handleFlagVideo acknowledges a flag request without applying it
func (h *Handler) handleFlagVideo(videoID, reason string) error {
	h.logger.WithFields(map[string]interface{}{
		"video_id": videoID,
		"reason":   reason,
		"session":  h.sessionID,
	}).Info("Flag request ignored")

	h.respond("flagVideo needs implementation")
	return nil
}

// handleAllowVideo acknowledges an allow request without applying it
func (h *Handler) handleAllowVideo(videoID string) error {
	h.logger.WithFields(map[string]interface{}{
		"video_id": videoID,
		"session":  h.sessionID,
	}).Info("Allow request ignored")

	h.respond("allowVideo needs implementation")
	return nil
}

// handleHelp handles the HELP command
func (h *Handler) handleHelp() error {
	listing := NewListing("Available commands:")
	for _, cmd := range GetCommands() {
		listing.Item(cmd.Usage() + " - " + cmd.Description)
	}

	h.respondListing(listing)
	return nil
}

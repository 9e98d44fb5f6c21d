package commands

import (
	apperrors "github.com/vuongmanhnghia/video-player/internal/errors"
)

// Playlist names in responses echo what the user typed, not the stored name.

// handleCreatePlaylist handles the CREATE_PLAYLIST command
func (h *Handler) handleCreatePlaylist(name string) error {
	if err := h.playlistService.CreatePlaylist(name); err != nil {
		return apperrors.WrapUserError(err, "Cannot create playlist: %s", apperrors.Reason(err))
	}

	h.respondf("Successfully created new playlist: %s", name)
	return nil
}

// handleAddToPlaylist handles the ADD_TO_PLAYLIST command
func (h *Handler) handleAddToPlaylist(name, videoID string) error {
	video, err := h.playlistService.AddVideo(name, videoID)
	if err != nil {
		return apperrors.WrapUserError(err, "Cannot add video to %s: %s", name, apperrors.Reason(err))
	}

	h.respondf("Added video to %s: %s", name, video.Title)
	return nil
}

// handleRemoveFromPlaylist handles the REMOVE_FROM_PLAYLIST command
func (h *Handler) handleRemoveFromPlaylist(name, videoID string) error {
	video, err := h.playlistService.RemoveVideo(name, videoID)
	if err != nil {
		return apperrors.WrapUserError(err, "Cannot remove video from %s: %s", name, apperrors.Reason(err))
	}

	h.respondf("Removed video from %s: %s", name, video.Title)
	return nil
}

// handleClearPlaylist handles the CLEAR_PLAYLIST command
func (h *Handler) handleClearPlaylist(name string) error {
	if err := h.playlistService.ClearPlaylist(name); err != nil {
		return apperrors.WrapUserError(err, "Cannot clear playlist %s: %s", name, apperrors.Reason(err))
	}

	h.respondf("Successfully removed all videos from %s", name)
	return nil
}

// handleDeletePlaylist handles the DELETE_PLAYLIST command
func (h *Handler) handleDeletePlaylist(name string) error {
	if err := h.playlistService.DeletePlaylist(name); err != nil {
		return apperrors.WrapUserError(err, "Cannot delete playlist %s: %s", name, apperrors.Reason(err))
	}

	h.respondf("Deleted playlist: %s", name)
	return nil
}

// handleShowPlaylist handles the SHOW_PLAYLIST command
func (h *Handler) handleShowPlaylist(name string) error {
	items, err := h.playlistService.ShowPlaylist(name)
	if err != nil {
		return apperrors.WrapUserError(err, "Cannot show playlist %s: %s", name, apperrors.Reason(err))
	}

	listing := NewListing("Showing playlist: " + name).Empty("No videos here yet")
	for _, item := range items {
		if item.Video == nil {
			listing.Item(unavailable(item.VideoID))
			continue
		}
		listing.Item(item.Video.String())
	}

	h.respondListing(listing)
	return nil
}

// handleShowAllPlaylists handles the SHOW_ALL_PLAYLISTS command
func (h *Handler) handleShowAllPlaylists() error {
	names := h.playlistService.ListPlaylists()
	if len(names) == 0 {
		h.respond("No playlists exist yet")
		return nil
	}

	listing := NewListing("Showing all playlists:")
	for _, name := range names {
		listing.Item(name)
	}

	h.respondListing(listing)
	return nil
}

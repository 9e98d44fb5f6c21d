package commands

import (
	"context"
	"errors"
	"io"

	"github.com/vuongmanhnghia/video-player/internal/domain/entities"
	"github.com/vuongmanhnghia/video-player/internal/validation"
)

// handleSearchVideos handles the SEARCH_VIDEOS command
func (h *Handler) handleSearchVideos(ctx context.Context, term string) error {
	return h.offerResults(ctx, term, h.searchService.SearchTitles(term))
}

// handleSearchVideosWithTag handles the SEARCH_VIDEOS_WITH_TAG command
func (h *Handler) handleSearchVideosWithTag(ctx context.Context, tag string) error {
	return h.offerResults(ctx, tag, h.searchService.SearchTag(tag))
}

// offerResults lists numbered results and plays the one the user picks.
// Anything but a valid number, including end of input or a cancelled ctx,
// means no.
func (h *Handler) offerResults(ctx context.Context, term string, results []entities.Video) error {
	if len(results) == 0 {
		h.respondf("No search results for %s", term)
		return nil
	}

	h.respondListing(NewListing("Here are the results for " + term + ":").Numbered().Videos(results))
	h.respond(
		"Would you like to play any of the above? If yes, specify the number of the video.",
		"If your answer is not a valid number, we will assume it's a no.",
	)
	if h.writeErr != nil || h.in == nil {
		return nil
	}

	answer, err := h.in.ReadLine(ctx)
	if err != nil {
		if !errors.Is(err, io.EOF) && ctx.Err() == nil {
			h.logger.WithError(err).Warn("Failed to read search selection")
		}
		return nil
	}

	index, ok := validation.ParseSelection(answer, len(results))
	if !ok {
		return nil
	}

	return h.handlePlay(results[index].ID)
}

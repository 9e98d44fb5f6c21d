package services

import (
	"github.com/vuongmanhnghia/video-player/internal/catalog"
	"github.com/vuongmanhnghia/video-player/internal/domain/entities"
	apperrors "github.com/vuongmanhnghia/video-player/internal/errors"
	"github.com/vuongmanhnghia/video-player/internal/metrics"
	"github.com/vuongmanhnghia/video-player/pkg/logger"
)

// PlaylistItem is one playlist entry resolved against the catalog.
// Video is nil when the catalog no longer knows the id.
type PlaylistItem struct {
	VideoID string
	Video   *entities.Video
}

// PlaylistService manages playlist operations
type PlaylistService struct {
	store   *entities.PlaylistStore
	catalog catalog.Catalog
	logger  *logger.Logger
}

// NewPlaylistService creates a playlist service with an empty store
func NewPlaylistService(c catalog.Catalog, log *logger.Logger) *PlaylistService {
	return &PlaylistService{
		store:   entities.NewPlaylistStore(),
		catalog: c,
		logger:  log,
	}
}

// CreatePlaylist creates a new empty playlist
func (s *PlaylistService) CreatePlaylist(name string) error {
	if _, err := s.store.Create(name); err != nil {
		s.logger.WithField("name", name).Debug("Playlist create rejected: name taken")
		return err
	}

	s.logger.WithField("name", name).Info("Playlist created")
	s.updateGauges()
	return nil
}

// AddVideo appends a video to a playlist. The playlist is checked first,
// then the video, then membership.
func (s *PlaylistService) AddVideo(name, videoID string) (entities.Video, error) {
	playlist, ok := s.store.Find(name)
	if !ok {
		return entities.Video{}, apperrors.ErrPlaylistNotFound
	}

	video, ok := s.catalog.GetByID(videoID)
	if !ok {
		return entities.Video{}, apperrors.ErrVideoNotFound
	}

	if !playlist.Add(videoID) {
		return video, apperrors.ErrVideoAlreadyAdded
	}

	s.logger.WithFields(map[string]interface{}{
		"playlist": playlist.Name(),
		"video_id": videoID,
	}).Info("Video added to playlist")
	s.updateGauges()
	return video, nil
}

// RemoveVideo removes a video from a playlist. The video must exist in the
// catalog before membership is checked.
func (s *PlaylistService) RemoveVideo(name, videoID string) (entities.Video, error) {
	playlist, ok := s.store.Find(name)
	if !ok {
		return entities.Video{}, apperrors.ErrPlaylistNotFound
	}

	video, ok := s.catalog.GetByID(videoID)
	if !ok {
		return entities.Video{}, apperrors.ErrVideoNotFound
	}

	if !playlist.Remove(videoID) {
		return video, apperrors.ErrVideoNotInPlaylist
	}

	s.logger.WithFields(map[string]interface{}{
		"playlist": playlist.Name(),
		"video_id": videoID,
	}).Info("Video removed from playlist")
	s.updateGauges()
	return video, nil
}

// ClearPlaylist removes every video from a playlist
func (s *PlaylistService) ClearPlaylist(name string) error {
	playlist, ok := s.store.Find(name)
	if !ok {
		return apperrors.ErrPlaylistNotFound
	}

	playlist.Clear()
	s.logger.WithField("playlist", playlist.Name()).Info("Playlist cleared")
	s.updateGauges()
	return nil
}

// DeletePlaylist removes a playlist entirely
func (s *PlaylistService) DeletePlaylist(name string) error {
	if err := s.store.Delete(name); err != nil {
		return err
	}

	s.logger.WithField("name", name).Info("Playlist deleted")
	s.updateGauges()
	return nil
}

// ListPlaylists returns playlist display names in byte order
func (s *PlaylistService) ListPlaylists() []string {
	playlists := s.store.ListSortedByName()

	names := make([]string, 0, len(playlists))
	for _, p := range playlists {
		names = append(names, p.Name())
	}
	return names
}

// ShowPlaylist returns the entries of a playlist in insertion order
func (s *PlaylistService) ShowPlaylist(name string) ([]PlaylistItem, error) {
	playlist, ok := s.store.Find(name)
	if !ok {
		return nil, apperrors.ErrPlaylistNotFound
	}

	ids := playlist.Videos()
	items := make([]PlaylistItem, 0, len(ids))
	for _, id := range ids {
		item := PlaylistItem{VideoID: id}
		if video, ok := s.catalog.GetByID(id); ok {
			item.Video = &video
		}
		items = append(items, item)
	}
	return items, nil
}

func (s *PlaylistService) updateGauges() {
	playlists := s.store.ListSortedByName()

	entries := 0
	for _, p := range playlists {
		entries += p.Len()
	}

	metrics.Playlists.Set(float64(len(playlists)))
	metrics.PlaylistVideos.Set(float64(entries))
}

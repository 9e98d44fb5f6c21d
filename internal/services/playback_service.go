package services

import (
	"math/rand"
	"sync"

	"github.com/vuongmanhnghia/video-player/internal/catalog"
	"github.com/vuongmanhnghia/video-player/internal/domain/entities"
	"github.com/vuongmanhnghia/video-player/internal/domain/valueobjects"
	apperrors "github.com/vuongmanhnghia/video-player/internal/errors"
	"github.com/vuongmanhnghia/video-player/internal/metrics"
	"github.com/vuongmanhnghia/video-player/pkg/logger"
)

// Transition describes what a play request changed
type Transition struct {
	// Stopped is the video that was current before, if any
	Stopped *entities.Video
	Started entities.Video
}

// PlaybackService owns the player state of a session
type PlaybackService struct {
	catalog catalog.Catalog
	player  *entities.PlayerState
	rng     *rand.Rand
	logger  *logger.Logger
	mu      sync.Mutex
}

// NewPlaybackService creates a playback service. The seed drives PlayRandom.
func NewPlaybackService(c catalog.Catalog, seed int64, log *logger.Logger) *PlaybackService {
	return &PlaybackService{
		catalog: c,
		player:  entities.NewPlayerState(),
		rng:     rand.New(rand.NewSource(seed)),
		logger:  log,
	}
}

// Play makes the given video current and playing, replacing any previous one
func (s *PlaybackService) Play(videoID string) (Transition, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	video, ok := s.catalog.GetByID(videoID)
	if !ok {
		s.logger.WithField("video_id", videoID).Debug("Play rejected: unknown video")
		return Transition{}, apperrors.ErrVideoNotFound
	}

	return s.startLocked(video), nil
}

// PlayRandom plays a uniformly chosen catalog video
func (s *PlaybackService) PlayRandom() (Transition, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	videos := s.catalog.ListAll()
	if len(videos) == 0 {
		s.logger.Debug("Random play rejected: catalog is empty")
		return Transition{}, apperrors.ErrCatalogEmpty
	}

	return s.startLocked(videos[s.rng.Intn(len(videos))]), nil
}

// Stop clears the current video and returns it
func (s *PlaybackService) Stop() (entities.Video, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.player.Current()
	if !ok {
		return entities.Video{}, apperrors.ErrNotPlaying
	}

	s.player.Stop()
	s.logger.WithField("video_id", id).Info("Video stopped")
	return s.resolve(id), nil
}

// Pause pauses the current video. When it is already paused the video is
// returned together with ErrAlreadyPaused.
func (s *PlaybackService) Pause() (entities.Video, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.player.Current()
	if !ok {
		return entities.Video{}, apperrors.ErrNotPlaying
	}

	video := s.resolve(id)
	if !s.player.Pause() {
		return video, apperrors.ErrAlreadyPaused
	}

	s.logger.WithField("video_id", id).Info("Video paused")
	return video, nil
}

// Resume continues a paused video
func (s *PlaybackService) Resume() (entities.Video, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.player.Current()
	if !ok {
		return entities.Video{}, apperrors.ErrNotPlaying
	}

	video := s.resolve(id)
	if !s.player.Resume() {
		return video, apperrors.ErrNotPaused
	}

	s.logger.WithField("video_id", id).Info("Video resumed")
	return video, nil
}

// Current returns the current video and the player status.
// The video is zero when the status is stopped.
func (s *PlaybackService) Current() (entities.Video, valueobjects.PlaybackStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.player.Current()
	if !ok {
		return entities.Video{}, valueobjects.PlaybackStatusStopped
	}
	return s.resolve(id), s.player.Status()
}

func (s *PlaybackService) startLocked(video entities.Video) Transition {
	var t Transition
	if prev, ok := s.player.Current(); ok {
		stopped := s.resolve(prev)
		t.Stopped = &stopped
	}

	s.player.Start(video.ID)
	t.Started = video
	metrics.VideosStartedTotal.Inc()

	s.logger.WithFields(map[string]interface{}{
		"video_id": video.ID,
		"title":    video.Title,
	}).Info("Video started")
	return t
}

// resolve looks an id up in the catalog. A dangling id yields a video with
// only the id set.
func (s *PlaybackService) resolve(id string) entities.Video {
	if video, ok := s.catalog.GetByID(id); ok {
		return video
	}
	return entities.Video{ID: id}
}

package services

import (
	"github.com/vuongmanhnghia/video-player/internal/cache"
	"github.com/vuongmanhnghia/video-player/internal/catalog"
	"github.com/vuongmanhnghia/video-player/internal/domain/entities"
	"github.com/vuongmanhnghia/video-player/internal/domain/valueobjects"
	"github.com/vuongmanhnghia/video-player/internal/metrics"
	"github.com/vuongmanhnghia/video-player/internal/validation"
	"github.com/vuongmanhnghia/video-player/pkg/logger"
)

// SearchService finds catalog videos by title or tag.
// Results are memoized since the catalog never changes within a session.
type SearchService struct {
	catalog catalog.Catalog
	results *cache.LRU[[]entities.Video]
	logger  *logger.Logger
}

// NewSearchService creates a search service caching up to cacheSize result sets
func NewSearchService(c catalog.Catalog, cacheSize int, log *logger.Logger) *SearchService {
	return &SearchService{
		catalog: c,
		results: cache.NewLRU[[]entities.Video](cacheSize),
		logger:  log,
	}
}

// SearchTitles returns videos whose title contains term, ignoring case, sorted by title
func (s *SearchService) SearchTitles(term string) []entities.Video {
	return s.search(valueobjects.SearchModeTitle, term, func(v entities.Video) bool {
		return validation.ContainsFold(v.Title, term)
	})
}

// SearchTag returns videos carrying tag, ignoring case, sorted by title
func (s *SearchService) SearchTag(tag string) []entities.Video {
	return s.search(valueobjects.SearchModeTag, tag, func(v entities.Video) bool {
		return v.HasTag(tag, validation.EqualFold)
	})
}

func (s *SearchService) search(mode valueobjects.SearchMode, term string, match func(entities.Video) bool) []entities.Video {
	key := mode.String() + ":" + validation.FoldKey(term)

	if cached, ok := s.results.Get(key); ok {
		metrics.SearchCacheHitsTotal.Inc()
		metrics.RecordSearch(mode.String(), len(cached))
		s.publishCacheStats()
		return copyVideos(cached)
	}

	var results []entities.Video
	for _, video := range s.catalog.ListAll() {
		if match(video) {
			results = append(results, video)
		}
	}

	entities.SortByTitle(results)

	s.results.Set(key, results)
	metrics.RecordSearch(mode.String(), len(results))
	s.publishCacheStats()

	s.logger.WithFields(map[string]interface{}{
		"mode":    mode.String(),
		"term":    term,
		"matches": len(results),
	}).Debug("Search completed")
	return copyVideos(results)
}

func (s *SearchService) publishCacheStats() {
	hits, misses, evictions := s.results.Stats()
	metrics.RecordSearchCache(s.results.Len(), hits, misses, evictions, s.results.HitRate())
}

func copyVideos(videos []entities.Video) []entities.Video {
	out := make([]entities.Video, len(videos))
	copy(out, videos)
	return out
}

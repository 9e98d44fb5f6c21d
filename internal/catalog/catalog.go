package catalog

import (
	"fmt"
	"sync"

	"github.com/vuongmanhnghia/video-player/internal/domain/entities"
)

// Catalog is the read-only set of videos available in a session
type Catalog interface {
	// ListAll returns every video. The order is stable across calls.
	ListAll() []entities.Video
	// GetByID resolves an exact, case-sensitive id
	GetByID(id string) (entities.Video, bool)
	// Len returns the number of videos
	Len() int
}

// MemoryCatalog keeps videos in insertion order with an id index
type MemoryCatalog struct {
	videos []entities.Video
	byID   map[string]int
	mu     sync.RWMutex
}

// New builds a catalog from videos, rejecting empty ids or titles and duplicate ids
func New(videos []entities.Video) (*MemoryCatalog, error) {
	c := &MemoryCatalog{
		videos: make([]entities.Video, 0, len(videos)),
		byID:   make(map[string]int, len(videos)),
	}

	for i, v := range videos {
		if v.ID == "" {
			return nil, fmt.Errorf("video %d: empty id", i+1)
		}
		if v.Title == "" {
			return nil, fmt.Errorf("video %q: empty title", v.ID)
		}
		if _, exists := c.byID[v.ID]; exists {
			return nil, fmt.Errorf("video %q: duplicate id", v.ID)
		}

		c.byID[v.ID] = len(c.videos)
		c.videos = append(c.videos, entities.NewVideo(v.ID, v.Title, v.Tags))
	}

	return c, nil
}

// ListAll returns a copy of all videos in load order
func (c *MemoryCatalog) ListAll() []entities.Video {
	c.mu.RLock()
	defer c.mu.RUnlock()

	videos := make([]entities.Video, len(c.videos))
	copy(videos, c.videos)
	return videos
}

// GetByID returns the video with the exact id
func (c *MemoryCatalog) GetByID(id string) (entities.Video, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i, ok := c.byID[id]
	if !ok {
		return entities.Video{}, false
	}
	return c.videos[i], true
}

// Len returns the number of videos
func (c *MemoryCatalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.videos)
}

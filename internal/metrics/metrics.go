// Package metrics exposes Prometheus instrumentation for the player.
// All metrics are prefixed with "video_player_" and are registered on the
// default registry through promauto, so mounting promhttp.Handler() is enough
// to serve them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Command outcomes
const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"
	OutcomeInvalid  = "invalid"
)

// Search results
const (
	SearchHit  = "hit"
	SearchMiss = "miss"
)

// Search cache stats
const (
	CacheEntries   = "entries"
	CacheHits      = "hits"
	CacheMisses    = "misses"
	CacheEvictions = "evictions"
)

// Command metrics
var (
	CommandsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "video_player_commands_total",
			Help: "Total number of dispatched commands by outcome",
		},
		[]string{"command", "outcome"},
	)
)

// Playback metrics
var (
	VideosStartedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "video_player_videos_started_total",
			Help: "Total number of videos started by PLAY or PLAY_RANDOM",
		},
	)
)

// Search metrics
var (
	SearchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "video_player_searches_total",
			Help: "Total number of searches by mode and whether anything matched",
		},
		[]string{"mode", "result"},
	)

	SearchCacheHitsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "video_player_search_cache_hits_total",
			Help: "Total number of searches answered from the result cache",
		},
	)

	SearchCache = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "video_player_search_cache",
			Help: "Search result cache state by stat (entries, hits, misses, evictions)",
		},
		[]string{"stat"},
	)

	SearchCacheHitRatio = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "video_player_search_cache_hit_ratio",
			Help: "Share of search cache lookups that were hits",
		},
	)
)

// Playlist metrics
var (
	Playlists = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "video_player_playlists",
			Help: "Number of playlists in the session",
		},
	)

	PlaylistVideos = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "video_player_playlist_videos",
			Help: "Number of video entries across all playlists",
		},
	)
)

// RecordCommand counts a dispatched command
func RecordCommand(command, outcome string) {
	CommandsTotal.WithLabelValues(command, outcome).Inc()
}

// RecordSearch counts a search by mode, noting whether it matched anything
func RecordSearch(mode string, matches int) {
	result := SearchHit
	if matches == 0 {
		result = SearchMiss
	}
	SearchesTotal.WithLabelValues(mode, result).Inc()
}

// RecordSearchCache publishes a snapshot of the search result cache
func RecordSearchCache(entries int, hits, misses, evictions int64, hitRatio float64) {
	SearchCache.WithLabelValues(CacheEntries).Set(float64(entries))
	SearchCache.WithLabelValues(CacheHits).Set(float64(hits))
	SearchCache.WithLabelValues(CacheMisses).Set(float64(misses))
	SearchCache.WithLabelValues(CacheEvictions).Set(float64(evictions))
	SearchCacheHitRatio.Set(hitRatio)
}

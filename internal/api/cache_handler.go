package api

import (
	"net/http"

	"github.com/phrazzld/task-api/internal/api/shared"
	"github.com/phrazzld/task-api/internal/cache"
)

// CacheStatsHandler serves GET /api/cache/stats.
type CacheStatsHandler struct {
	stats cache.StatsReporter
}

// NewCacheStatsHandler creates a new CacheStatsHandler
func NewCacheStatsHandler(stats cache.StatsReporter) *CacheStatsHandler {
	if stats == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("stats reporter cannot be nil for CacheStatsHandler")
	}
	return &CacheStatsHandler{stats: stats}
}

// GetStats writes the cache counters accumulated since process start.
func (h *CacheStatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, h.stats.Stats())
}

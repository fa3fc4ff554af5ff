package grpcapi

import (
	"math"

	"github.com/phrazzld/task-api/internal/grpcapi/todopb"
	"github.com/phrazzld/task-api/internal/service"
)

// toStatsResponse encodes stats for the wire, clamping each count to int32.
func toStatsResponse(stats service.Stats) *todopb.StatsResponse {
	return &todopb.StatsResponse{
		ActiveTasks:    clampInt32(stats.ActiveCount),
		CompletedTasks: clampInt32(stats.CompletedCount),
	}
}

// fromStatsResponse decodes a wire response. A nil response has zero counts.
func fromStatsResponse(resp *todopb.StatsResponse) service.Stats {
	return service.Stats{
		ActiveCount:    int(resp.GetActiveTasks()),
		CompletedCount: int(resp.GetCompletedTasks()),
	}
}

// clampInt32 converts a count to the int32 the wire format carries.
func clampInt32(n int) int32 {
	switch {
	case n > math.MaxInt32:
		return math.MaxInt32
	case n < 0:
		return 0
	default:
		return int32(n)
	}
}

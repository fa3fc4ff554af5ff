package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/task-api/internal/domain"
	"github.com/phrazzld/task-api/internal/store"
)

// Stats holds the number of tasks in each status.
type Stats struct {
	ActiveCount    int
	CompletedCount int
}

// AnalyticsService reports aggregate task counts. Counts are read from the
// store on every call and never cached.
type AnalyticsService interface {
	GetStats(ctx context.Context) (Stats, error)
}

type analyticsServiceImpl struct {
	store  store.TaskStore
	logger *slog.Logger
}

// NewAnalyticsService creates a new AnalyticsService.
func NewAnalyticsService(taskStore store.TaskStore, logger *slog.Logger) (AnalyticsService, error) {
	if taskStore == nil {
		return nil, NewTaskServiceError("create_service", "taskStore cannot be nil", ErrNilDependency)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &analyticsServiceImpl{
		store:  taskStore,
		logger: logger.With(slog.String("component", "analytics_service")),
	}, nil
}

// GetStats implements AnalyticsService.GetStats. The two counts are separate
// reads and may observe different snapshots.
func (s *analyticsServiceImpl) GetStats(ctx context.Context) (Stats, error) {
	active, err := s.store.CountByStatus(ctx, domain.TaskStatusActive)
	if err != nil {
		return Stats{}, NewTaskServiceError("get_stats", "failed to count active tasks", err)
	}

	completed, err := s.store.CountByStatus(ctx, domain.TaskStatusCompleted)
	if err != nil {
		return Stats{}, NewTaskServiceError("get_stats", "failed to count completed tasks", err)
	}

	s.logger.DebugContext(ctx, "task stats computed",
		slog.Int("active", active),
		slog.Int("completed", completed))
	return Stats{ActiveCount: active, CompletedCount: completed}, nil
}

package service

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/phrazzld/task-api/internal/cache"
	"github.com/phrazzld/task-api/internal/domain"
	"github.com/phrazzld/task-api/internal/events"
	"github.com/phrazzld/task-api/internal/platform/logger"
	"github.com/phrazzld/task-api/internal/store"
	"golang.org/x/sync/singleflight"
)

// DefaultCacheTTL is how long cached reads live when no TTL is configured.
const DefaultCacheTTL = 5 * time.Minute

// TaskService provides task operations.
type TaskService interface {
	// GetPaged returns one filtered page. Results are served from the cache
	// when present and cached after a store read otherwise. A search that is
	// empty or only whitespace is treated as no search, so "   " does not
	// filter for titles containing spaces.
	GetPaged(
		ctx context.Context,
		search *string,
		status *domain.TaskStatus,
		page, pageSize int,
	) (*PagedResult, error)

	// GetByID returns the task, or nil when it does not exist. Absence is not cached.
	GetByID(ctx context.Context, id int64) (*TaskDTO, error)

	// Create stores a new task and returns it with its assigned ID.
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)

	// Update overwrites title, description and status of task id with patch.
	// It returns false when id does not match patch.ID or the task is missing.
	// A status change is published before the write is persisted.
	Update(ctx context.Context, id int64, patch *domain.Task) (bool, error)

	// Delete removes the task, returning false when it is missing.
	Delete(ctx context.Context, id int64) (bool, error)
}

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	store     store.TaskStore
	cache     cache.Cache
	publisher events.Publisher
	ttl       time.Duration
	now       func() time.Time
	loads     singleflight.Group
	logger    *slog.Logger
}

// Option customises a TaskService.
type Option func(*taskServiceImpl)

// WithCacheTTL sets the lifetime of cached reads.
func WithCacheTTL(ttl time.Duration) Option {
	return func(s *taskServiceImpl) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// WithClock replaces the time source used to stamp CreatedAt.
func WithClock(now func() time.Time) Option {
	return func(s *taskServiceImpl) {
		if now != nil {
			s.now = now
		}
	}
}

// NewTaskService creates a new TaskService.
// It returns an error if any of the required dependencies are nil.
func NewTaskService(
	taskStore store.TaskStore,
	taskCache cache.Cache,
	publisher events.Publisher,
	logger *slog.Logger,
	opts ...Option,
) (TaskService, error) {
	switch {
	case taskStore == nil:
		return nil, NewTaskServiceError("create_service", "taskStore cannot be nil", ErrNilDependency)
	case taskCache == nil:
		return nil, NewTaskServiceError("create_service", "taskCache cannot be nil", ErrNilDependency)
	case publisher == nil:
		return nil, NewTaskServiceError("create_service", "publisher cannot be nil", ErrNilDependency)
	}
	if logger == nil {
		logger = slog.Default()
	}

	s := &taskServiceImpl{
		store:     taskStore,
		cache:     taskCache,
		publisher: publisher,
		ttl:       DefaultCacheTTL,
		now:       time.Now,
		logger:    logger.With(slog.String("component", "task_service")),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *taskServiceImpl) log(ctx context.Context) *slog.Logger {
	return logger.FromContextOrDefault(ctx, s.logger)
}

// GetPaged implements TaskService.GetPaged. Blank searches are dropped before
// the cache key is built.
func (s *taskServiceImpl) GetPaged(
	ctx context.Context,
	search *string,
	status *domain.TaskStatus,
	page, pageSize int,
) (*PagedResult, error) {
	if search != nil && strings.TrimSpace(*search) == "" {
		search = nil
	}

	key := ListKey(search, status, page, pageSize)
	result, err := readThrough(ctx, s, key, func(ctx context.Context) (*PagedResult, error) {
		total, tasks, err := s.store.GetPaged(ctx, store.TaskFilter{
			Search:   search,
			Status:   status,
			Page:     page,
			PageSize: pageSize,
		})
		if err != nil {
			return nil, err
		}
		items := make([]*TaskDTO, 0, len(tasks))
		for _, t := range tasks {
			items = append(items, ToDTO(t))
		}
		return &PagedResult{TotalItems: total, Page: page, PageSize: pageSize, Items: items}, nil
	})
	if err != nil {
		return nil, NewTaskServiceError("get_paged", "failed to read tasks", err)
	}
	return result, nil
}

// GetByID implements TaskService.GetByID.
func (s *taskServiceImpl) GetByID(ctx context.Context, id int64) (*TaskDTO, error) {
	dto, err := readThrough(ctx, s, ItemKey(id), func(ctx context.Context) (*TaskDTO, error) {
		task, err := s.store.GetByID(ctx, id)
		if err != nil {
			if isNotFound(err) {
				return nil, nil
			}
			return nil, err
		}
		return ToDTO(task), nil
	})
	if err != nil {
		return nil, NewTaskServiceError("get_task", "failed to read task", err)
	}
	return dto, nil
}

// Create implements TaskService.Create.
func (s *taskServiceImpl) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	if task == nil {
		return nil, NewTaskServiceError("create_task", "task is nil", domain.ErrValidation)
	}

	task.ID = 0
	task.CreatedAt = s.now().UTC().Truncate(time.Microsecond)
	if task.Status == "" {
		task.Status = domain.TaskStatusActive
	}
	if err := task.Validate(); err != nil {
		return nil, NewTaskServiceError("create_task", "invalid task", err)
	}

	if err := s.store.Add(ctx, task); err != nil {
		return nil, NewTaskServiceError("create_task", "failed to save task", err)
	}

	if err := s.invalidate(ctx); err != nil {
		return nil, NewTaskServiceError("create_task", "failed to invalidate cache", err)
	}

	s.log(ctx).Info("task created", slog.Int64("task_id", task.ID))
	return task, nil
}

// Update implements TaskService.Update.
func (s *taskServiceImpl) Update(ctx context.Context, id int64, patch *domain.Task) (bool, error) {
	if patch == nil || id != patch.ID {
		return false, nil
	}
	if !patch.Status.Valid() {
		return false, NewTaskServiceError("update_task", "invalid task", patch.Validate())
	}

	existing, err := s.store.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, NewTaskServiceError("update_task", "failed to load task", err)
	}

	if existing.Status != patch.Status {
		if err := s.publisher.PublishStatusChanged(ctx, id, patch.Status.String()); err != nil {
			return false, NewTaskServiceError("update_task", "failed to publish status change", err)
		}
		s.log(ctx).Info("task status changed",
			slog.Int64("task_id", id),
			slog.String("old_status", existing.Status.String()),
			slog.String("new_status", patch.Status.String()))
	}

	existing.ApplyChanges(patch)
	if err := s.store.Update(ctx, existing); err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, NewTaskServiceError("update_task", "failed to save task", err)
	}

	if err := s.invalidate(ctx); err != nil {
		return false, NewTaskServiceError("update_task", "failed to invalidate cache", err)
	}
	return true, nil
}

// Delete implements TaskService.Delete.
func (s *taskServiceImpl) Delete(ctx context.Context, id int64) (bool, error) {
	existing, err := s.store.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, NewTaskServiceError("delete_task", "failed to load task", err)
	}

	if err := s.store.Remove(ctx, existing); err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, NewTaskServiceError("delete_task", "failed to delete task", err)
	}

	if err := s.invalidate(ctx); err != nil {
		return false, NewTaskServiceError("delete_task", "failed to invalidate cache", err)
	}

	s.log(ctx).Info("task deleted", slog.Int64("task_id", id))
	return true, nil
}

// invalidate drops every cached item and page. Both patterns are attempted
// even if the first fails.
func (s *taskServiceImpl) invalidate(ctx context.Context) error {
	return errors.Join(
		s.cache.DeleteByPattern(ctx, ItemKeyPattern),
		s.cache.DeleteByPattern(ctx, ListKeyPattern),
	)
}

// readThrough serves key from the cache, or calls load on a miss and caches
// a non-nil result. Concurrent misses on one key share a single load.
// An undecodable cached value is logged and treated as a miss.
func readThrough[T any](
	ctx context.Context,
	s *taskServiceImpl,
	key string,
	load func(context.Context) (*T, error),
) (*T, error) {
	raw, hit, err := s.cache.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if hit {
		var cached T
		decodeErr := json.Unmarshal([]byte(raw), &cached)
		if decodeErr == nil && raw != "null" {
			return &cached, nil
		}
		s.log(ctx).Warn("discarding undecodable cache entry",
			slog.String("key", key),
			slog.Any("error", decodeErr))
	}

	// The shared load runs detached from any one caller's cancellation;
	// each caller still stops waiting when its own ctx is done.
	loadCtx := context.WithoutCancel(ctx)
	ch := s.loads.DoChan(key, func() (any, error) {
		value, err := load(loadCtx)
		if err != nil || value == nil {
			return value, err
		}

		payload, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}
		if err := s.cache.Set(loadCtx, key, string(payload), s.ttl); err != nil {
			return nil, err
		}
		return value, nil
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*T), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

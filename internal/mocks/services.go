package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/task-api/internal/domain"
	"github.com/phrazzld/task-api/internal/service"
)

// MockTaskService implements service.TaskService for testing. Each method
// delegates to its function field; an unset field returns zero values.
type MockTaskService struct {
	GetPagedFn func(ctx context.Context, search *string, status *domain.TaskStatus, page, pageSize int) (*service.PagedResult, error)
	GetByIDFn  func(ctx context.Context, id int64) (*service.TaskDTO, error)
	CreateFn   func(ctx context.Context, task *domain.Task) (*domain.Task, error)
	UpdateFn   func(ctx context.Context, id int64, patch *domain.Task) (bool, error)
	DeleteFn   func(ctx context.Context, id int64) (bool, error)

	mu    sync.Mutex
	calls []string
}

var _ service.TaskService = (*MockTaskService)(nil)

func (m *MockTaskService) record(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, name)
}

// Calls returns the names of the methods invoked, in order.
func (m *MockTaskService) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.calls))
	copy(out, m.calls)
	return out
}

// GetPaged implements service.TaskService.
func (m *MockTaskService) GetPaged(
	ctx context.Context,
	search *string,
	status *domain.TaskStatus,
	page, pageSize int,
) (*service.PagedResult, error) {
	m.record("GetPaged")
	if m.GetPagedFn != nil {
		return m.GetPagedFn(ctx, search, status, page, pageSize)
	}
	return &service.PagedResult{Page: page, PageSize: pageSize, Items: []*service.TaskDTO{}}, nil
}

// GetByID implements service.TaskService.
func (m *MockTaskService) GetByID(ctx context.Context, id int64) (*service.TaskDTO, error) {
	m.record("GetByID")
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, nil
}

// Create implements service.TaskService.
func (m *MockTaskService) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	m.record("Create")
	if m.CreateFn != nil {
		return m.CreateFn(ctx, task)
	}
	return task, nil
}

// Update implements service.TaskService.
func (m *MockTaskService) Update(ctx context.Context, id int64, patch *domain.Task) (bool, error) {
	m.record("Update")
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, patch)
	}
	return false, nil
}

// Delete implements service.TaskService.
func (m *MockTaskService) Delete(ctx context.Context, id int64) (bool, error) {
	m.record("Delete")
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return false, nil
}

// MockAnalyticsService implements service.AnalyticsService for testing.
type MockAnalyticsService struct {
	GetStatsFn func(ctx context.Context) (service.Stats, error)
	Stats      service.Stats
	Err        error
}

var _ service.AnalyticsService = (*MockAnalyticsService)(nil)

// GetStats implements service.AnalyticsService.
func (m *MockAnalyticsService) GetStats(ctx context.Context) (service.Stats, error) {
	if m.GetStatsFn != nil {
		return m.GetStatsFn(ctx)
	}
	return m.Stats, m.Err
}

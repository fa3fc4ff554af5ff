package mocks

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/phrazzld/task-api/internal/domain"
	"github.com/phrazzld/task-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// TestifyMockTaskStore is a mock of store.TaskStore for use with testify/mock.
type TestifyMockTaskStore struct {
	mock.Mock
}

var _ store.TaskStore = (*TestifyMockTaskStore)(nil)

// GetPaged is a mock implementation of store.TaskStore.GetPaged
func (m *TestifyMockTaskStore) GetPaged(ctx context.Context, filter store.TaskFilter) (int, []*domain.Task, error) {
	args := m.Called(ctx, filter)
	tasks, _ := args.Get(1).([]*domain.Task)
	return args.Int(0), tasks, args.Error(2)
}

// GetByID is a mock implementation of store.TaskStore.GetByID
func (m *TestifyMockTaskStore) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	args := m.Called(ctx, id)
	if task, ok := args.Get(0).(*domain.Task); ok {
		return task, args.Error(1)
	}
	return nil, args.Error(1)
}

// Add is a mock implementation of store.TaskStore.Add
func (m *TestifyMockTaskStore) Add(ctx context.Context, task *domain.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

// Update is a mock implementation of store.TaskStore.Update
func (m *TestifyMockTaskStore) Update(ctx context.Context, task *domain.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

// Remove is a mock implementation of store.TaskStore.Remove
func (m *TestifyMockTaskStore) Remove(ctx context.Context, task *domain.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

// CountByStatus is a mock implementation of store.TaskStore.CountByStatus
func (m *TestifyMockTaskStore) CountByStatus(ctx context.Context, status domain.TaskStatus) (int, error) {
	args := m.Called(ctx, status)
	return args.Int(0), args.Error(1)
}

// InMemoryTaskStore is a goroutine-safe fake store.TaskStore with the same
// filtering, ordering and paging rules as the PostgreSQL store. It counts
// calls so tests can tell cache hits from store reads.
type InMemoryTaskStore struct {
	mu     sync.Mutex
	tasks  map[int64]domain.Task
	nextID int64

	// Err, when set, is returned by every operation.
	Err error

	GetPagedCalls int
	GetByIDCalls  int
	AddCalls      int
	UpdateCalls   int
	RemoveCalls   int
	CountCalls    int
}

var _ store.TaskStore = (*InMemoryTaskStore)(nil)

// NewInMemoryTaskStore returns an empty fake store.
func NewInMemoryTaskStore() *InMemoryTaskStore {
	return &InMemoryTaskStore{tasks: make(map[int64]domain.Task)}
}

func clone(t domain.Task) *domain.Task {
	if t.Description != nil {
		d := *t.Description
		t.Description = &d
	}
	return &t
}

// GetPaged implements store.TaskStore.GetPaged.
func (s *InMemoryTaskStore) GetPaged(_ context.Context, filter store.TaskFilter) (int, []*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.GetPagedCalls++
	if s.Err != nil {
		return 0, nil, s.Err
	}

	matched := make([]domain.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if filter.Search != nil && !strings.Contains(strings.ToLower(t.Title), strings.ToLower(*filter.Search)) {
			continue
		}
		if filter.Status != nil && t.Status != *filter.Status {
			continue
		}
		matched = append(matched, t)
	}
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].ID > matched[j].ID
		}
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	offset, limit := store.PageBounds(filter.Page, filter.PageSize)
	page := []*domain.Task{}
	for i := offset; i < len(matched) && i-offset < limit; i++ {
		page = append(page, clone(matched[i]))
	}
	return len(matched), page, nil
}

// GetByID implements store.TaskStore.GetByID.
func (s *InMemoryTaskStore) GetByID(_ context.Context, id int64) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.GetByIDCalls++
	if s.Err != nil {
		return nil, s.Err
	}
	t, ok := s.tasks[id]
	if !ok {
		return nil, store.ErrTaskNotFound
	}
	return clone(t), nil
}

// Add implements store.TaskStore.Add.
func (s *InMemoryTaskStore) Add(_ context.Context, task *domain.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.AddCalls++
	if s.Err != nil {
		return s.Err
	}
	s.nextID++
	task.ID = s.nextID
	s.tasks[task.ID] = *clone(*task)
	return nil
}

// Update implements store.TaskStore.Update.
func (s *InMemoryTaskStore) Update(_ context.Context, task *domain.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.UpdateCalls++
	if s.Err != nil {
		return s.Err
	}
	existing, ok := s.tasks[task.ID]
	if !ok {
		return store.ErrTaskNotFound
	}
	existing.ApplyChanges(clone(*task))
	s.tasks[task.ID] = existing
	return nil
}

// Remove implements store.TaskStore.Remove.
func (s *InMemoryTaskStore) Remove(_ context.Context, task *domain.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.RemoveCalls++
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.tasks[task.ID]; !ok {
		return store.ErrTaskNotFound
	}
	delete(s.tasks, task.ID)
	return nil
}

// CountByStatus implements store.TaskStore.CountByStatus.
func (s *InMemoryTaskStore) CountByStatus(_ context.Context, status domain.TaskStatus) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.CountCalls++
	if s.Err != nil {
		return 0, s.Err
	}
	n := 0
	for _, t := range s.tasks {
		if t.Status == status {
			n++
		}
	}
	return n, nil
}

// Put stores task verbatim, bypassing ID assignment. Useful for seeding.
func (s *InMemoryTaskStore) Put(task domain.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks[task.ID] = *clone(task)
	if task.ID > s.nextID {
		s.nextID = task.ID
	}
}

// Snapshot returns a copy of the stored task, if present.
func (s *InMemoryTaskStore) Snapshot(id int64) (*domain.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tasks[id]
	if !ok {
		return nil, false
	}
	return clone(t), true
}

// Reads returns the number of store reads (page and point) so far.
func (s *InMemoryTaskStore) Reads() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.GetPagedCalls + s.GetByIDCalls
}

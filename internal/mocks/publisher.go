package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/task-api/internal/events"
)

// MockPublisher implements events.Publisher for testing and records every call.
type MockPublisher struct {
	// PublishFn overrides the default behaviour when set.
	PublishFn func(ctx context.Context, taskID int64, newStatus string) error

	// Err is returned when PublishFn is nil.
	Err error

	mu        sync.Mutex
	published []events.TaskStatusChanged
}

var _ events.Publisher = (*MockPublisher)(nil)

// PublishStatusChanged implements events.Publisher.
func (m *MockPublisher) PublishStatusChanged(ctx context.Context, taskID int64, newStatus string) error {
	m.mu.Lock()
	m.published = append(m.published, events.TaskStatusChanged{TaskID: taskID, NewStatus: newStatus})
	m.mu.Unlock()

	if m.PublishFn != nil {
		return m.PublishFn(ctx, taskID, newStatus)
	}
	return m.Err
}

// Published returns a copy of every event passed to PublishStatusChanged.
func (m *MockPublisher) Published() []events.TaskStatusChanged {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]events.TaskStatusChanged, len(m.published))
	copy(out, m.published)
	return out
}

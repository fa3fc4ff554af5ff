package events

import (
	"context"
	"encoding/json"
)

const (
	// DefaultExchange is the fanout exchange status-change events are sent to.
	DefaultExchange = "task_events"

	// StatusChangedRoutingKey labels status-change messages. Fanout exchanges
	// ignore it, but consumers may inspect it.
	StatusChangedRoutingKey = "task.status.changed"
)

// TaskStatusChanged is emitted when an update moves a task to a different status.
// The JSON field names are part of the wire contract with consumers.
type TaskStatusChanged struct {
	TaskID    int64  `json:"TaskId"`
	NewStatus string `json:"NewStatus"`
}

// Encode returns the wire representation of the event.
func (e TaskStatusChanged) Encode() ([]byte, error) {
	return json.Marshal(e)
}

// Publisher emits status-change events. Implementations deliver at most once
// and do not retry; a failure is returned to the caller.
type Publisher interface {
	PublishStatusChanged(ctx context.Context, taskID int64, newStatus string) error
}

// EventHandler receives events dispatched by an InMemoryPublisher.
type EventHandler interface {
	HandleStatusChanged(ctx context.Context, event TaskStatusChanged) error
}

// EventHandlerFunc adapts a function to EventHandler.
type EventHandlerFunc func(ctx context.Context, event TaskStatusChanged) error

// HandleStatusChanged calls f.
func (f EventHandlerFunc) HandleStatusChanged(ctx context.Context, event TaskStatusChanged) error {
	return f(ctx, event)
}

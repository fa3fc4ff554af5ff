package events

import (
	"context"
	"log/slog"
	"sync"
)

// InMemoryPublisher is a Publisher that stores registered handlers in memory
// and dispatches each event to them synchronously.
type InMemoryPublisher struct {
	handlers []EventHandler
	mu       sync.RWMutex
	logger   *slog.Logger
}

var _ Publisher = (*InMemoryPublisher)(nil)

// NewInMemoryPublisher creates a new instance of InMemoryPublisher.
func NewInMemoryPublisher(logger *slog.Logger) *InMemoryPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &InMemoryPublisher{
		handlers: make([]EventHandler, 0),
		logger:   logger.With(slog.String("component", "in_memory_publisher")),
	}
}

// RegisterHandler adds a new event handler to receive events.
func (p *InMemoryPublisher) RegisterHandler(handler EventHandler) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.handlers = append(p.handlers, handler)
	p.logger.Debug("registered new event handler", slog.Int("handler_count", len(p.handlers)))
}

// PublishStatusChanged dispatches the event to all registered handlers.
// If any handler returns an error, the event is still sent to all other
// handlers, and the first error encountered is returned.
func (p *InMemoryPublisher) PublishStatusChanged(ctx context.Context, taskID int64, newStatus string) error {
	event := TaskStatusChanged{TaskID: taskID, NewStatus: newStatus}

	p.mu.RLock()
	handlers := make([]EventHandler, len(p.handlers))
	copy(handlers, p.handlers)
	p.mu.RUnlock()

	p.logger.Debug("publishing event",
		slog.Int64("task_id", taskID),
		slog.String("new_status", newStatus),
		slog.Int("handler_count", len(handlers)))

	var firstErr error
	for i, handler := range handlers {
		if err := handler.HandleStatusChanged(ctx, event); err != nil {
			p.logger.Error("handler failed to process event",
				slog.String("error", err.Error()),
				slog.Int("handler_index", i),
				slog.Int64("task_id", taskID))
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	return firstErr
}

// LogHandler returns a handler that writes each event to logger at info level.
func LogHandler(logger *slog.Logger) EventHandler {
	return EventHandlerFunc(func(ctx context.Context, event TaskStatusChanged) error {
		logger.InfoContext(ctx, "task status changed",
			slog.Int64("task_id", event.TaskID),
			slog.String("new_status", event.NewStatus),
			slog.String("routing_key", StatusChangedRoutingKey))
		return nil
	})
}

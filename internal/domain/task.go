package domain

import (
	"fmt"
	"strings"
	"time"
)

// TaskStatus represents the lifecycle state of a task.
type TaskStatus string

// Possible task status values. The string form is the lower-case name used on
// the wire, in cache keys and in status-change events.
const (
	TaskStatusActive    TaskStatus = "active"
	TaskStatusCompleted TaskStatus = "completed"
)

// TaskStatuses lists every valid status in declaration order.
var TaskStatuses = []TaskStatus{TaskStatusActive, TaskStatusCompleted}

// ParseTaskStatus converts a case-insensitive status name into a TaskStatus.
func ParseTaskStatus(s string) (TaskStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(TaskStatusActive):
		return TaskStatusActive, nil
	case string(TaskStatusCompleted):
		return TaskStatusCompleted, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidTaskStatus, s)
	}
}

// Valid reports whether the status is one of the known values.
func (s TaskStatus) Valid() bool {
	return s == TaskStatusActive || s == TaskStatusCompleted
}

// String returns the lower-case wire form of the status.
func (s TaskStatus) String() string {
	return string(s)
}

// Task is the single entity managed by the service.
//
// ID is assigned by the store on insert and never changes afterwards.
// CreatedAt is stamped by the service at creation time and is never mutated.
type Task struct {
	ID          int64
	Title       string
	Description *string
	Status      TaskStatus
	CreatedAt   time.Time
}

// NewTask builds a task with the default Active status. The ID is left zero
// until the store assigns it.
func NewTask(title string, description *string) *Task {
	return &Task{
		Title:       title,
		Description: description,
		Status:      TaskStatusActive,
	}
}

// Validate checks that the task carries a known status.
func (t *Task) Validate() error {
	if t.ID < 0 {
		return fmt.Errorf("%w: task ID cannot be negative", ErrInvalidID)
	}
	if !t.Status.Valid() {
		return fmt.Errorf("%w: %w: %q", ErrValidation, ErrInvalidTaskStatus, t.Status)
	}
	return nil
}

// ApplyChanges copies the mutable fields (title, description, status) from
// patch onto t. ID and CreatedAt are left untouched.
func (t *Task) ApplyChanges(patch *Task) {
	t.Title = patch.Title
	t.Description = patch.Description
	t.Status = patch.Status
}

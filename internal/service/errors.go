package service

import (
	"errors"
	"fmt"

	"github.com/phrazzld/task-api/internal/store"
)

// Common service errors - sentinel errors used across service implementations.
//
// Error handling principles:
//  1. Expected negative outcomes (missing task, id mismatch) are not errors;
//     they are reported as false or nil results.
//  2. Unexpected errors are wrapped in TaskServiceError.
//  3. Callers use errors.Is/errors.As to check for specific error conditions.
var (
	// ErrNilDependency is returned by constructors given a nil collaborator.
	ErrNilDependency = errors.New("required dependency is nil")
)

// TaskServiceError wraps errors from the task service with context.
type TaskServiceError struct {
	// Operation is the operation that failed (e.g., "create_task", "get_paged")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for TaskServiceError.
func (e *TaskServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("task service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("task service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *TaskServiceError) Unwrap() error {
	return e.Err
}

// NewTaskServiceError creates a new TaskServiceError. A nil err yields nil.
func NewTaskServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}
	return &TaskServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

func isNotFound(err error) bool {
	return errors.Is(err, store.ErrTaskNotFound)
}

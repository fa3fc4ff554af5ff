package store

import (
	"context"
	"math"

	"github.com/phrazzld/task-api/internal/domain"
)

// TaskFilter describes a paged, filtered read over the task collection.
// A nil Search or Status means "no filter" for that dimension.
type TaskFilter struct {
	Search   *string
	Status   *domain.TaskStatus
	Page     int
	PageSize int
}

// TaskStore defines the interface for task data persistence.
type TaskStore interface {
	// GetPaged returns the filtered set size before pagination together with
	// one page of tasks ordered by CreatedAt descending (newest first).
	// Search is a case-insensitive substring match against the title and
	// Status is an exact match. An empty result is a zero total with an empty
	// (non-nil) slice, never an error.
	// Page and PageSize are not validated; see PageBounds for how
	// out-of-range values are clamped.
	GetPaged(ctx context.Context, filter TaskFilter) (int, []*domain.Task, error)

	// GetByID retrieves a task by its ID.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Task, error)

	// Add persists a new task and assigns its ID.
	Add(ctx context.Context, task *domain.Task) error

	// Update persists the mutable fields (title, description, status) of an
	// existing task. Callers are expected to merge changes into a previously
	// loaded task rather than overwrite blindly.
	// Returns ErrTaskNotFound if the task no longer exists.
	Update(ctx context.Context, task *domain.Task) error

	// Remove deletes the task with the given task's ID.
	// Returns ErrTaskNotFound if the task no longer exists.
	Remove(ctx context.Context, task *domain.Task) error

	// CountByStatus returns the number of tasks currently in the given status.
	CountByStatus(ctx context.Context, status domain.TaskStatus) (int, error)
}

// PageBounds converts a 1-based page and a page size into an offset and limit.
// A negative offset (page < 1) is clamped to zero and a non-positive page
// size yields a zero limit, i.e. an empty page. A page whose offset does not
// fit in an int lies past any possible result and is also an empty page.
func PageBounds(page, pageSize int) (offset, limit int) {
	if pageSize <= 0 {
		return 0, 0
	}
	if page <= 1 {
		return 0, pageSize
	}
	if page-1 > math.MaxInt/pageSize {
		return 0, 0
	}
	return (page - 1) * pageSize, pageSize
}

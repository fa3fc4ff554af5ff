package service

import (
	"time"

	"github.com/phrazzld/task-api/internal/domain"
)

// TaskDTO is the client-facing (and cached) view of a task.
type TaskDTO struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// PagedResult is one page of tasks plus the size of the filtered set.
type PagedResult struct {
	TotalItems int        `json:"totalItems"`
	Page       int        `json:"page"`
	PageSize   int        `json:"pageSize"`
	Items      []*TaskDTO `json:"items"`
}

// ToDTO maps a domain task to its DTO. A nil task maps to nil.
func ToDTO(t *domain.Task) *TaskDTO {
	if t == nil {
		return nil
	}
	var desc *string
	if t.Description != nil {
		d := *t.Description
		desc = &d
	}
	return &TaskDTO{
		ID:          t.ID,
		Title:       t.Title,
		Description: desc,
		Status:      t.Status.String(),
		CreatedAt:   t.CreatedAt.UTC(),
	}
}

// ToDomain maps a DTO back to a domain task. The status is taken verbatim;
// callers validate it with Task.Validate.
func (d *TaskDTO) ToDomain() *domain.Task {
	if d == nil {
		return nil
	}
	var desc *string
	if d.Description != nil {
		s := *d.Description
		desc = &s
	}
	return &domain.Task{
		ID:          d.ID,
		Title:       d.Title,
		Description: desc,
		Status:      domain.TaskStatus(d.Status),
		CreatedAt:   d.CreatedAt,
	}
}

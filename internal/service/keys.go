package service

import (
	"strconv"

	"github.com/phrazzld/task-api/internal/domain"
)

// Cache key shapes. Every mutation deletes both patterns.
const (
	ItemKeyPattern = "task-*"
	ListKeyPattern = "tasks-*"
)

// ItemKey is the cache key of a single task.
func ItemKey(id int64) string {
	return "task-" + strconv.FormatInt(id, 10)
}

// ListKey is the cache key of one filtered page. Absent parameters embed as
// empty segments. A present search term is quoted, so terms containing the
// separator cannot make two parameter sets share a key. Callers pass nil for
// a blank search; ListKey itself keys "   " distinctly from nil.
func ListKey(search *string, status *domain.TaskStatus, page, pageSize int) string {
	var s, st string
	if search != nil {
		s = strconv.Quote(*search)
	}
	if status != nil {
		st = status.String()
	}
	return "tasks-" + s + "-" + st + "-" + strconv.Itoa(page) + "-" + strconv.Itoa(pageSize)
}

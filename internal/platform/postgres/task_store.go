package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/phrazzld/task-api/internal/domain"
	"github.com/phrazzld/task-api/internal/platform/logger"
	"github.com/phrazzld/task-api/internal/store"
)

const taskColumns = "id, title, description, status, created_at"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// PostgresTaskStore implements the store.TaskStore interface
// using a PostgreSQL database as the storage backend.
type PostgresTaskStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewPostgresTaskStore creates a new PostgreSQL implementation of the TaskStore interface.
// It accepts a database handle that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresTaskStore(db *sql.DB, logger *slog.Logger) *PostgresTaskStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresTaskStore{
		db:     db,
		logger: logger.With(slog.String("component", "task_store")),
	}
}

// Ensure PostgresTaskStore implements store.TaskStore interface
var _ store.TaskStore = (*PostgresTaskStore)(nil)

func (s *PostgresTaskStore) log(ctx context.Context) *slog.Logger {
	return logger.FromContextOrDefault(ctx, s.logger)
}

// filterClause renders the WHERE clause shared by the count and page queries.
func filterClause(f store.TaskFilter) (string, []any) {
	var conds []string
	var args []any

	if f.Search != nil {
		args = append(args, "%"+likeEscaper.Replace(*f.Search)+"%")
		conds = append(conds, fmt.Sprintf("title ILIKE $%d", len(args)))
	}
	if f.Status != nil {
		args = append(args, string(*f.Status))
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// GetPaged implements store.TaskStore.GetPaged.
// The count and the page are read in one read-only snapshot so the total
// always matches the rows it describes.
func (s *PostgresTaskStore) GetPaged(
	ctx context.Context,
	filter store.TaskFilter,
) (int, []*domain.Task, error) {
	where, args := filterClause(filter)
	offset, limit := store.PageBounds(filter.Page, filter.PageSize)

	var total int
	tasks := []*domain.Task{}

	err := store.RunInTransactionWithOptions(ctx, s.db, store.ReadOnlySnapshot,
		func(ctx context.Context, tx *sql.Tx) error {
			countQuery := "SELECT count(*) FROM tasks" + where
			if err := tx.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
				return fmt.Errorf("count tasks: %w", err)
			}
			if total == 0 || limit == 0 {
				return nil
			}

			pageArgs := append(append([]any{}, args...), limit, offset)
			pageQuery := fmt.Sprintf(
				"SELECT %s FROM tasks%s ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d",
				taskColumns, where, len(args)+1, len(args)+2,
			)
			page, err := queryTasks(ctx, tx, pageQuery, pageArgs...)
			if err != nil {
				return fmt.Errorf("page tasks: %w", err)
			}
			tasks = page
			return nil
		})
	if err != nil {
		s.log(ctx).Error("failed to read task page",
			slog.Int("page", filter.Page),
			slog.Int("page_size", filter.PageSize),
			slog.String("error", err.Error()))
		return 0, nil, store.NewStoreError("task", "get_paged", "failed to read tasks", MapError(err))
	}

	return total, tasks, nil
}

// GetByID implements store.TaskStore.GetByID.
// Returns store.ErrTaskNotFound if the task does not exist.
func (s *PostgresTaskStore) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	query := "SELECT " + taskColumns + " FROM tasks WHERE id = $1"

	task, err := scanTask(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrTaskNotFound
		}
		s.log(ctx).Error("failed to get task",
			slog.Int64("task_id", id),
			slog.String("error", err.Error()))
		return nil, store.NewStoreError("task", "get", "failed to get task", MapError(err))
	}

	return task, nil
}

// Add implements store.TaskStore.Add.
// The database assigns the ID; CreatedAt is stamped here when unset.
func (s *PostgresTaskStore) Add(ctx context.Context, task *domain.Task) error {
	if task == nil {
		return store.NewStoreError("task", "add", "task is nil", store.ErrInvalidEntity)
	}
	if err := task.Validate(); err != nil {
		return store.NewStoreError("task", "add", "invalid task",
			fmt.Errorf("%w: %w", store.ErrInvalidEntity, err))
	}
	if task.CreatedAt.IsZero() {
		task.CreatedAt = time.Now()
	}
	// TIMESTAMPTZ keeps microseconds; the caller's copy must match what is stored.
	task.CreatedAt = task.CreatedAt.UTC().Truncate(time.Microsecond)

	query := `
		INSERT INTO tasks (title, description, status, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	var id int64
	err := s.db.QueryRowContext(ctx, query,
		task.Title,
		nullString(task.Description),
		string(task.Status),
		task.CreatedAt,
	).Scan(&id)
	if err != nil {
		s.log(ctx).Error("failed to insert task",
			slog.String("error", err.Error()))
		return store.NewStoreError("task", "add", "failed to insert task", MapError(err))
	}

	task.ID = id
	s.log(ctx).Debug("task inserted", slog.Int64("task_id", id))
	return nil
}

// Update implements store.TaskStore.Update.
// Only title, description and status are written; id and created_at are immutable.
func (s *PostgresTaskStore) Update(ctx context.Context, task *domain.Task) error {
	if task == nil {
		return store.NewStoreError("task", "update", "task is nil", store.ErrInvalidEntity)
	}
	if err := task.Validate(); err != nil {
		return store.NewStoreError("task", "update", "invalid task",
			fmt.Errorf("%w: %w", store.ErrInvalidEntity, err))
	}

	query := `
		UPDATE tasks
		SET title = $1, description = $2, status = $3
		WHERE id = $4
	`

	result, err := s.db.ExecContext(ctx, query,
		task.Title,
		nullString(task.Description),
		string(task.Status),
		task.ID,
	)
	if err != nil {
		s.log(ctx).Error("failed to update task",
			slog.Int64("task_id", task.ID),
			slog.String("error", err.Error()))
		return store.NewStoreError("task", "update", "failed to update task", MapError(err))
	}

	return CheckRowsAffected(result, store.ErrTaskNotFound)
}

// Remove implements store.TaskStore.Remove.
func (s *PostgresTaskStore) Remove(ctx context.Context, task *domain.Task) error {
	if task == nil {
		return store.NewStoreError("task", "remove", "task is nil", store.ErrInvalidEntity)
	}

	result, err := s.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = $1", task.ID)
	if err != nil {
		s.log(ctx).Error("failed to delete task",
			slog.Int64("task_id", task.ID),
			slog.String("error", err.Error()))
		return store.NewStoreError("task", "remove", "failed to delete task", MapError(err))
	}

	return CheckRowsAffected(result, store.ErrTaskNotFound)
}

// CountByStatus implements store.TaskStore.CountByStatus.
func (s *PostgresTaskStore) CountByStatus(ctx context.Context, status domain.TaskStatus) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		"SELECT count(*) FROM tasks WHERE status = $1", string(status),
	).Scan(&count)
	if err != nil {
		s.log(ctx).Error("failed to count tasks",
			slog.String("status", string(status)),
			slog.String("error", err.Error()))
		return 0, store.NewStoreError("task", "count", "failed to count tasks", MapError(err))
	}
	return count, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (*domain.Task, error) {
	var (
		task        domain.Task
		description sql.NullString
		status      string
	)
	if err := row.Scan(&task.ID, &task.Title, &description, &status, &task.CreatedAt); err != nil {
		return nil, err
	}
	if description.Valid {
		d := description.String
		task.Description = &d
	}
	task.Status = domain.TaskStatus(status)
	task.CreatedAt = task.CreatedAt.UTC()
	return &task, nil
}

func queryTasks(ctx context.Context, db store.DBTX, query string, args ...any) ([]*domain.Task, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	tasks := []*domain.Task{}
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

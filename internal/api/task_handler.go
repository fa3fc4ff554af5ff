package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/task-api/internal/api/shared"
	"github.com/phrazzld/task-api/internal/domain"
	"github.com/phrazzld/task-api/internal/platform/logger"
	"github.com/phrazzld/task-api/internal/service"
)

// Paging defaults applied when the query string omits them.
const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

// TaskRequest is the body of POST and PUT /api/tasks requests.
// Status is case-insensitive and defaults to active.
type TaskRequest struct {
	ID          int64   `json:"id"          validate:"gte=0"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Status      string  `json:"status"      validate:"omitempty,taskstatus"`
}

// toDomain converts the request to a task. It assumes the request validated.
func (req *TaskRequest) toDomain() *domain.Task {
	status := domain.TaskStatusActive
	if req.Status != "" {
		status, _ = domain.ParseTaskStatus(req.Status)
	}
	return &domain.Task{
		ID:          req.ID,
		Title:       req.Title,
		Description: req.Description,
		Status:      status,
	}
}

// TaskHandler handles task-related HTTP requests
type TaskHandler struct {
	tasks  service.TaskService
	logger *slog.Logger
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(tasks service.TaskService, logger *slog.Logger) *TaskHandler {
	if tasks == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("task service cannot be nil for TaskHandler")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &TaskHandler{
		tasks:  tasks,
		logger: logger.With(slog.String("component", "task_handler")),
	}
}

// Routes mounts the task endpoints on r.
func (h *TaskHandler) Routes(r chi.Router) {
	r.Get("/", h.ListTasks)
	r.Post("/", h.CreateTask)
	r.Get("/{id}", h.GetTask)
	r.Put("/{id}", h.UpdateTask)
	r.Delete("/{id}", h.DeleteTask)
}

// ListTasks handles GET /api/tasks?search=&status=&page=&pageSize= requests.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)
	query := r.URL.Query()

	var search *string
	if query.Has("search") {
		s := query.Get("search")
		search = &s
	}

	var status *domain.TaskStatus
	if raw := query.Get("status"); raw != "" {
		parsed, err := domain.ParseTaskStatus(raw)
		if err != nil {
			log.Debug("invalid status filter", slog.String("status", raw))
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid status: must be active or completed")
			return
		}
		status = &parsed
	}

	page, ok := positiveIntParam(query.Get("page"), DefaultPage)
	if !ok {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid page: must be a positive integer")
		return
	}
	pageSize, ok := positiveIntParam(query.Get("pageSize"), DefaultPageSize)
	if !ok {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid pageSize: must be a positive integer")
		return
	}

	result, err := h.tasks.GetPaged(r.Context(), search, status, page, pageSize)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, result)
}

// GetTask handles GET /api/tasks/{id} requests.
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	task, err := h.tasks.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	if task == nil {
		shared.RespondWithError(w, r, http.StatusNotFound, "Task not found")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, task)
}

// CreateTask handles POST /api/tasks requests. Any id in the body is ignored.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeTask(w, r)
	if !ok {
		return
	}

	task := req.toDomain()
	task.ID = 0

	created, err := h.tasks.Create(r.Context(), task)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	w.Header().Set("Location", "/api/tasks/"+strconv.FormatInt(created.ID, 10))
	shared.RespondWithJSON(w, r, http.StatusCreated, service.ToDTO(created))
}

// UpdateTask handles PUT /api/tasks/{id} requests. The body must carry the
// same id as the path.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	req, ok := h.decodeTask(w, r)
	if !ok {
		return
	}

	if req.ID != id {
		log.Debug("task id mismatch",
			slog.Int64("path_id", id),
			slog.Int64("body_id", req.ID))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Task ID in body does not match path")
		return
	}

	updated, err := h.tasks.Update(r.Context(), id, req.toDomain())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	if !updated {
		shared.RespondWithError(w, r, http.StatusNotFound, "Task not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteTask handles DELETE /api/tasks/{id} requests.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	deleted, err := h.tasks.Delete(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	if !deleted {
		shared.RespondWithError(w, r, http.StatusNotFound, "Task not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// pathID parses the {id} route parameter, writing a 400 when it is not an integer.
func (h *TaskHandler) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		logger.FromContextOrDefault(r.Context(), h.logger).
			Debug("invalid task id", slog.String("value", raw))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid task ID")
		return 0, false
	}
	return id, true
}

// decodeTask reads and validates a TaskRequest body, writing a 400 on failure.
func (h *TaskHandler) decodeTask(w http.ResponseWriter, r *http.Request) (*TaskRequest, bool) {
	var req TaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return nil, false
	}
	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return nil, false
	}
	return &req, true
}

// positiveIntParam parses raw as an integer >= 1, returning def when raw is empty.
func positiveIntParam(raw string, def int) (int, bool) {
	if raw == "" {
		return def, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

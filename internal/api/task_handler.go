package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/taskhub/internal/api/shared"
	"github.com/phrazzld/taskhub/internal/platform/logger"
	"github.com/phrazzld/taskhub/internal/redact"
	"github.com/phrazzld/taskhub/internal/service"
)

// Response messages of the fixed-text endpoints.
const (
	WelcomeMessage     = "Welcome to TaskHub API"
	TaskDeletedMessage = "Task deleted successfully"
)

// TaskHandler handles task-related HTTP requests
type TaskHandler struct {
	taskService service.TaskService
	logger      *slog.Logger
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskService service.TaskService, logger *slog.Logger) *TaskHandler {
	if taskService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("taskService cannot be nil for TaskHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for TaskHandler")
	}

	return &TaskHandler{
		taskService: taskService,
		logger:      logger.With(slog.String("component", "task_handler")),
	}
}

// Root handles GET / requests.
func (h *TaskHandler) Root(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: WelcomeMessage})
}

// ListTasks handles GET /tasks requests
// It returns a window of tasks selected by the skip and limit query parameters.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	log := logger.ForComponent(r.Context(), h.logger, "task_handler")

	skip, err := getQueryInt(r, "skip", DefaultSkip)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	limit, err := getQueryInt(r, "limit", DefaultLimit)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	tasks, err := h.taskService.ListTasks(r.Context(), skip, limit)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list tasks")
		return
	}

	log.Debug("listed tasks",
		slog.Int("skip", skip),
		slog.Int("limit", limit),
		slog.Int("count", len(tasks)))
	shared.RespondWithJSON(w, r, http.StatusOK, tasks)
}

// GetTask handles GET /tasks/{id} requests
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	task, err := h.taskService.GetTask(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get task")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, task)
}

// CreateTask handles POST /tasks requests
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	log := logger.ForComponent(r.Context(), h.logger, "task_handler")

	var req CreateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format", slog.String("error", redact.Error(err)))
		HandleAPIError(w, r, fmt.Errorf("%w: %v", errBadRequest, err), "")
		return
	}

	if err := shared.ValidateRequest(&req); err != nil {
		log.Debug("validation error", slog.String("error", redact.Error(err)))
		HandleAPIError(w, r, err, "")
		return
	}

	task, err := h.taskService.CreateTask(r.Context(), req.ToParams())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create task")
		return
	}

	log.Debug("task created", slog.Int64("task_id", task.ID))
	shared.RespondWithJSON(w, r, http.StatusOK, task)
}

// UpdateTask handles PUT /tasks/{id} requests
// Only the fields present in the body are changed.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	log := logger.ForComponent(r.Context(), h.logger, "task_handler")

	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req UpdateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format",
			slog.String("error", redact.Error(err)),
			slog.Int64("task_id", id))
		HandleAPIError(w, r, fmt.Errorf("%w: %v", errBadRequest, err), "")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		log.Debug("validation error",
			slog.String("error", redact.Error(err)),
			slog.Int64("task_id", id))
		HandleAPIError(w, r, err, "")
		return
	}

	task, err := h.taskService.UpdateTask(r.Context(), id, req.ToPatch())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update task")
		return
	}

	log.Debug("task updated", slog.Int64("task_id", id))
	shared.RespondWithJSON(w, r, http.StatusOK, task)
}

// DeleteTask handles DELETE /tasks/{id} requests
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	log := logger.ForComponent(r.Context(), h.logger, "task_handler")

	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.taskService.DeleteTask(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "Failed to delete task")
		return
	}

	log.Debug("task deleted", slog.Int64("task_id", id))
	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: TaskDeletedMessage})
}

package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/phrazzld/taskhub/internal/cache"
	"github.com/phrazzld/taskhub/internal/domain"
	"github.com/phrazzld/taskhub/internal/platform/logger"
	"github.com/phrazzld/taskhub/internal/redact"
	"github.com/phrazzld/taskhub/internal/store"
)

// CreateTaskParams holds the caller-supplied fields of a new task.
type CreateTaskParams struct {
	Title       string
	Description *string
	Completed   bool
}

// TaskService provides task-related operations.
type TaskService interface {
	// ListTasks returns up to limit tasks starting at offset skip, ordered by ID.
	// A store failure is logged and yields an empty list.
	ListTasks(ctx context.Context, skip, limit int) ([]*domain.Task, error)

	// GetTask retrieves a task by its ID.
	GetTask(ctx context.Context, id int64) (*domain.Task, error)

	// CreateTask validates and persists a new task.
	CreateTask(ctx context.Context, params CreateTaskParams) (*domain.Task, error)

	// UpdateTask merges the supplied fields into an existing task.
	UpdateTask(ctx context.Context, id int64, patch domain.TaskPatch) (*domain.Task, error)

	// DeleteTask permanently removes a task.
	DeleteTask(ctx context.Context, id int64) error
}

// TaskServiceOption customizes a task service.
type TaskServiceOption func(*taskServiceImpl)

// WithClock overrides the time source used for timestamps.
func WithClock(now func() time.Time) TaskServiceOption {
	return func(s *taskServiceImpl) {
		s.now = now
	}
}

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	taskStore  store.TaskStore
	transactor store.Transactor
	cache      cache.Cache
	ttl        time.Duration
	now        func() time.Time
	logger     *slog.Logger
}

// NewTaskService creates a new TaskService.
// It returns an error if any of the required dependencies are nil. A nil
// cache is replaced with cache.Noop.
func NewTaskService(
	taskStore store.TaskStore,
	transactor store.Transactor,
	c cache.Cache,
	ttl time.Duration,
	logger *slog.Logger,
	opts ...TaskServiceOption,
) (TaskService, error) {
	if taskStore == nil {
		return nil, &TaskServiceError{Operation: "create_service", Message: "taskStore cannot be nil"}
	}
	if transactor == nil {
		return nil, &TaskServiceError{Operation: "create_service", Message: "transactor cannot be nil"}
	}
	if ttl <= 0 {
		return nil, &TaskServiceError{Operation: "create_service", Message: "cache ttl must be positive"}
	}
	if c == nil {
		c = cache.Noop{}
	}
	if logger == nil {
		logger = slog.Default()
	}

	s := &taskServiceImpl{
		taskStore:  taskStore,
		transactor: transactor,
		cache:      c,
		ttl:        ttl,
		now:        time.Now,
		logger:     logger.With(slog.String("component", "task_service")),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *taskServiceImpl) log(ctx context.Context) *slog.Logger {
	return logger.ForComponent(ctx, s.logger, "task_service")
}

// ListTasks implements TaskService.
func (s *taskServiceImpl) ListTasks(ctx context.Context, skip, limit int) ([]*domain.Task, error) {
	if skip < 0 {
		return nil, domain.NewValidationError("skip", "must not be negative", nil)
	}
	if limit < 0 {
		return nil, domain.NewValidationError("limit", "must not be negative", nil)
	}

	log := s.log(ctx)
	key := cache.ListKey(skip, limit)

	var tasks []*domain.Task
	if s.readCache(ctx, key, &tasks) {
		log.Debug("task list served from cache", slog.String("key", key))
		return tasks, nil
	}

	tasks, err := s.taskStore.List(ctx, limit, skip)
	if err != nil {
		log.Error("failed to list tasks, returning empty list",
			slog.String("error", redact.Error(err)),
			slog.Int("skip", skip),
			slog.Int("limit", limit))
		return []*domain.Task{}, nil
	}

	s.writeCache(ctx, key, tasks)
	return tasks, nil
}

// GetTask implements TaskService.
func (s *taskServiceImpl) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	log := s.log(ctx)
	key := cache.TaskKey(id)

	var task domain.Task
	if s.readCache(ctx, key, &task) {
		log.Debug("task served from cache", slog.Int64("task_id", id))
		return &task, nil
	}

	found, err := s.taskStore.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			log.Debug("task not found", slog.Int64("task_id", id))
		} else {
			log.Error("failed to get task",
				slog.String("error", redact.Error(err)),
				slog.Int64("task_id", id))
		}
		return nil, NewTaskServiceError("get_task", "failed to retrieve task", err)
	}

	s.writeCache(ctx, key, found)
	return found, nil
}

// CreateTask implements TaskService.
func (s *taskServiceImpl) CreateTask(ctx context.Context, params CreateTaskParams) (*domain.Task, error) {
	log := s.log(ctx)

	task, err := domain.NewTask(params.Title, params.Description, params.Completed, s.now())
	if err != nil {
		log.Debug("invalid task", slog.String("error", err.Error()))
		return nil, err
	}

	if err := s.taskStore.Create(ctx, task); err != nil {
		log.Error("failed to create task", slog.String("error", redact.Error(err)))
		return nil, NewTaskServiceError("create_task", "failed to save task", err)
	}

	s.cache.DeleteByPrefix(ctx, cache.ListPrefix)

	log.Info("task created", slog.Int64("task_id", task.ID))
	return task, nil
}

// UpdateTask implements TaskService.
// The row is read with a lock, patched and written back in one transaction.
func (s *taskServiceImpl) UpdateTask(
	ctx context.Context,
	id int64,
	patch domain.TaskPatch,
) (*domain.Task, error) {
	log := s.log(ctx)

	if err := patch.Validate(); err != nil {
		log.Debug("invalid task patch",
			slog.String("error", err.Error()),
			slog.Int64("task_id", id))
		return nil, err
	}

	var updated *domain.Task
	err := s.transactor.RunInTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.taskStore.WithTx(tx)

		task, err := txStore.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}

		patch.Apply(task, s.now())
		if err := task.Validate(); err != nil {
			return err
		}

		if err := txStore.Update(ctx, task); err != nil {
			return err
		}

		updated = task
		return nil
	})
	if err != nil {
		if !errors.Is(err, store.ErrTaskNotFound) && !errors.Is(err, domain.ErrValidation) {
			log.Error("failed to update task",
				slog.String("error", redact.Error(err)),
				slog.Int64("task_id", id))
		}
		return nil, NewTaskServiceError("update_task", "failed to update task", err)
	}

	s.invalidateTask(ctx, id)

	log.Info("task updated", slog.Int64("task_id", id))
	return updated, nil
}

// DeleteTask implements TaskService.
func (s *taskServiceImpl) DeleteTask(ctx context.Context, id int64) error {
	log := s.log(ctx)

	if err := s.taskStore.Delete(ctx, id); err != nil {
		if !errors.Is(err, store.ErrTaskNotFound) {
			log.Error("failed to delete task",
				slog.String("error", redact.Error(err)),
				slog.Int64("task_id", id))
		}
		return NewTaskServiceError("delete_task", "failed to delete task", err)
	}

	s.invalidateTask(ctx, id)

	log.Info("task deleted", slog.Int64("task_id", id))
	return nil
}

func (s *taskServiceImpl) invalidateTask(ctx context.Context, id int64) {
	s.cache.DeleteByPrefix(ctx, cache.ListPrefix)
	s.cache.Delete(ctx, cache.TaskKey(id))
}

// readCache decodes the entry under key into dst. An undecodable entry is
// dropped and reported as a miss.
func (s *taskServiceImpl) readCache(ctx context.Context, key string, dst interface{}) bool {
	data, ok := s.cache.Get(ctx, key)
	if !ok {
		return false
	}
	if err := json.Unmarshal(data, dst); err != nil {
		s.log(ctx).Warn("discarding undecodable cache entry",
			slog.String("key", key),
			slog.String("error", err.Error()))
		s.cache.Delete(ctx, key)
		return false
	}
	return true
}

func (s *taskServiceImpl) writeCache(ctx context.Context, key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		s.log(ctx).Warn("failed to encode cache entry",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return
	}
	s.cache.Set(ctx, key, data, s.ttl)
}

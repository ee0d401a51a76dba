package mocks

import (
	"context"

	"github.com/phrazzld/taskhub/internal/domain"
	"github.com/phrazzld/taskhub/internal/service"
)

// MockTaskService implements service.TaskService for testing
type MockTaskService struct {
	ListTasksFn  func(ctx context.Context, skip, limit int) ([]*domain.Task, error)
	GetTaskFn    func(ctx context.Context, id int64) (*domain.Task, error)
	CreateTaskFn func(ctx context.Context, params service.CreateTaskParams) (*domain.Task, error)
	UpdateTaskFn func(ctx context.Context, id int64, patch domain.TaskPatch) (*domain.Task, error)
	DeleteTaskFn func(ctx context.Context, id int64) error

	// Default return values
	Task         *domain.Task
	Tasks        []*domain.Task
	DefaultError error
}

var _ service.TaskService = (*MockTaskService)(nil)

// ListTasks implements the TaskService.ListTasks method
func (m *MockTaskService) ListTasks(ctx context.Context, skip, limit int) ([]*domain.Task, error) {
	if m.ListTasksFn != nil {
		return m.ListTasksFn(ctx, skip, limit)
	}
	return m.Tasks, m.DefaultError
}

// GetTask implements the TaskService.GetTask method
func (m *MockTaskService) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	if m.GetTaskFn != nil {
		return m.GetTaskFn(ctx, id)
	}
	return m.Task, m.DefaultError
}

// CreateTask implements the TaskService.CreateTask method
func (m *MockTaskService) CreateTask(ctx context.Context, params service.CreateTaskParams) (*domain.Task, error) {
	if m.CreateTaskFn != nil {
		return m.CreateTaskFn(ctx, params)
	}
	return m.Task, m.DefaultError
}

// UpdateTask implements the TaskService.UpdateTask method
func (m *MockTaskService) UpdateTask(ctx context.Context, id int64, patch domain.TaskPatch) (*domain.Task, error) {
	if m.UpdateTaskFn != nil {
		return m.UpdateTaskFn(ctx, id, patch)
	}
	return m.Task, m.DefaultError
}

// DeleteTask implements the TaskService.DeleteTask method
func (m *MockTaskService) DeleteTask(ctx context.Context, id int64) error {
	if m.DeleteTaskFn != nil {
		return m.DeleteTaskFn(ctx, id)
	}
	return m.DefaultError
}

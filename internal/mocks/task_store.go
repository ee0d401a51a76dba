package mocks

import (
	"context"
	"database/sql"

	"github.com/phrazzld/taskhub/internal/domain"
	"github.com/phrazzld/taskhub/internal/store"
)

// MockTaskStore implements store.TaskStore for testing.
type MockTaskStore struct {
	CreateFn           func(ctx context.Context, task *domain.Task) error
	GetByIDFn          func(ctx context.Context, id int64) (*domain.Task, error)
	GetByIDForUpdateFn func(ctx context.Context, id int64) (*domain.Task, error)
	ListFn             func(ctx context.Context, limit, offset int) ([]*domain.Task, error)
	UpdateFn           func(ctx context.Context, task *domain.Task) error
	DeleteFn           func(ctx context.Context, id int64) error

	// DefaultError is returned by methods whose function field is unset.
	DefaultError error
}

var _ store.TaskStore = (*MockTaskStore)(nil)

// Create implements store.TaskStore.
func (m *MockTaskStore) Create(ctx context.Context, task *domain.Task) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, task)
	}
	return m.DefaultError
}

// GetByID implements store.TaskStore.
func (m *MockTaskStore) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	if m.DefaultError != nil {
		return nil, m.DefaultError
	}
	return nil, store.ErrTaskNotFound
}

// GetByIDForUpdate implements store.TaskStore. It falls back to GetByIDFn.
func (m *MockTaskStore) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Task, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return m.GetByID(ctx, id)
}

// List implements store.TaskStore.
func (m *MockTaskStore) List(ctx context.Context, limit, offset int) ([]*domain.Task, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, limit, offset)
	}
	if m.DefaultError != nil {
		return nil, m.DefaultError
	}
	return []*domain.Task{}, nil
}

// Update implements store.TaskStore.
func (m *MockTaskStore) Update(ctx context.Context, task *domain.Task) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, task)
	}
	return m.DefaultError
}

// Delete implements store.TaskStore.
func (m *MockTaskStore) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return m.DefaultError
}

// WithTx returns the mock itself.
func (m *MockTaskStore) WithTx(*sql.Tx) store.TaskStore {
	return m
}

package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/taskhub/internal/domain"
)

// TaskStore defines the interface for task persistence.
type TaskStore interface {
	// Create inserts a new task. The store assigns task.ID.
	// Returns validation errors from the domain Task if data is invalid.
	Create(ctx context.Context, task *domain.Task) error

	// GetByID retrieves a task by its ID.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Task, error)

	// GetByIDForUpdate is GetByID with a row lock held until the
	// surrounding transaction ends. Only meaningful on a WithTx store.
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Task, error)

	// List returns up to limit tasks starting at offset, ordered by ID.
	// Returns an empty slice if no tasks match.
	List(ctx context.Context, limit, offset int) ([]*domain.Task, error)

	// Update writes every mutable column of an existing task.
	// Returns ErrTaskNotFound if the task does not exist.
	Update(ctx context.Context, task *domain.Task) error

	// Delete permanently removes a task.
	// Returns ErrTaskNotFound if the task does not exist.
	Delete(ctx context.Context, id int64) error

	// WithTx returns a TaskStore bound to the given transaction.
	WithTx(tx *sql.Tx) TaskStore
}

package mocks

import (
	"context"
	"database/sql"
	"sort"
	"sync"

	"github.com/phrazzld/taskhub/internal/domain"
	"github.com/phrazzld/taskhub/internal/store"
)

// InMemoryTaskStore is a map-backed store.TaskStore. IDs are assigned from a
// counter and never reused. Tasks are copied on the way in and out so callers
// cannot mutate stored state.
type InMemoryTaskStore struct {
	mu     sync.Mutex
	tasks  map[int64]domain.Task
	nextID int64

	// Err, when non-nil, is returned by every operation.
	Err error
	// Calls counts store operations, for asserting that a read was served
	// from cache.
	Calls int
}

var _ store.TaskStore = (*InMemoryTaskStore)(nil)

// NewInMemoryTaskStore returns an empty store.
func NewInMemoryTaskStore() *InMemoryTaskStore {
	return &InMemoryTaskStore{tasks: make(map[int64]domain.Task), nextID: 1}
}

// SetErr makes every subsequent operation fail with err (nil to restore).
func (s *InMemoryTaskStore) SetErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Err = err
}

// CallCount returns the number of operations performed so far.
func (s *InMemoryTaskStore) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Calls
}

func (s *InMemoryTaskStore) begin() error {
	s.mu.Lock()
	s.Calls++
	if s.Err != nil {
		err := s.Err
		s.mu.Unlock()
		return err
	}
	return nil
}

// Create implements store.TaskStore.
func (s *InMemoryTaskStore) Create(_ context.Context, task *domain.Task) error {
	if err := s.begin(); err != nil {
		return err
	}
	defer s.mu.Unlock()

	if err := task.Validate(); err != nil {
		return err
	}
	task.ID = s.nextID
	s.nextID++
	s.tasks[task.ID] = copyTask(task)
	return nil
}

// GetByID implements store.TaskStore.
func (s *InMemoryTaskStore) GetByID(_ context.Context, id int64) (*domain.Task, error) {
	if err := s.begin(); err != nil {
		return nil, err
	}
	defer s.mu.Unlock()

	t, ok := s.tasks[id]
	if !ok {
		return nil, store.ErrTaskNotFound
	}
	out := copyTask(&t)
	return &out, nil
}

// GetByIDForUpdate implements store.TaskStore.
func (s *InMemoryTaskStore) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Task, error) {
	return s.GetByID(ctx, id)
}

// List implements store.TaskStore.
func (s *InMemoryTaskStore) List(_ context.Context, limit, offset int) ([]*domain.Task, error) {
	if err := s.begin(); err != nil {
		return nil, err
	}
	defer s.mu.Unlock()

	ids := make([]int64, 0, len(s.tasks))
	for id := range s.tasks {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	result := []*domain.Task{}
	for i := offset; i < len(ids) && len(result) < limit; i++ {
		t := s.tasks[ids[i]]
		out := copyTask(&t)
		result = append(result, &out)
	}
	return result, nil
}

// Update implements store.TaskStore.
func (s *InMemoryTaskStore) Update(_ context.Context, task *domain.Task) error {
	if err := s.begin(); err != nil {
		return err
	}
	defer s.mu.Unlock()

	if _, ok := s.tasks[task.ID]; !ok {
		return store.ErrTaskNotFound
	}
	if err := task.Validate(); err != nil {
		return err
	}
	s.tasks[task.ID] = copyTask(task)
	return nil
}

// Delete implements store.TaskStore.
func (s *InMemoryTaskStore) Delete(_ context.Context, id int64) error {
	if err := s.begin(); err != nil {
		return err
	}
	defer s.mu.Unlock()

	if _, ok := s.tasks[id]; !ok {
		return store.ErrTaskNotFound
	}
	delete(s.tasks, id)
	return nil
}

// WithTx returns the store itself.
func (s *InMemoryTaskStore) WithTx(*sql.Tx) store.TaskStore {
	return s
}

func copyTask(t *domain.Task) domain.Task {
	out := *t
	if t.Description != nil {
		d := *t.Description
		out.Description = &d
	}
	return out
}

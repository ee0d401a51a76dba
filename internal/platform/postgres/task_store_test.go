package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/taskhub/internal/domain"
	"github.com/phrazzld/taskhub/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var taskRowColumns = []string{"id", "title", "description", "completed", "created_at", "updated_at"}

func newMockStore(t *testing.T) (*PostgresTaskStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresTaskStore(db, nil), mock
}

func fixedTime() time.Time {
	return time.Date(2025, time.April, 1, 12, 0, 0, 0, time.UTC)
}

func TestNewPostgresTaskStore_NilDB(t *testing.T) {
	assert.Panics(t, func() { NewPostgresTaskStore(nil, nil) })
}

func TestPostgresTaskStore_Create(t *testing.T) {
	s, mock := newMockStore(t)
	now := fixedTime()

	task, err := domain.NewTask("Write report", nil, false, now)
	require.NoError(t, err)

	mock.ExpectQuery(`INSERT INTO tasks \(title, description, completed, created_at, updated_at\)`).
		WithArgs("Write report", nil, false, now, now).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(41)))

	require.NoError(t, s.Create(context.Background(), task))
	assert.Equal(t, int64(41), task.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresTaskStore_Create_InvalidTask(t *testing.T) {
	s, mock := newMockStore(t)

	err := s.Create(context.Background(), &domain.Task{Title: ""})
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.NoError(t, mock.ExpectationsWereMet(), "no query should run for an invalid task")
}

func TestPostgresTaskStore_Create_CheckViolation(t *testing.T) {
	s, mock := newMockStore(t)
	now := fixedTime()
	task := &domain.Task{Title: "ok", CreatedAt: now, UpdatedAt: now}

	mock.ExpectQuery(`INSERT INTO tasks`).
		WillReturnError(&pgconn.PgError{Code: checkViolationCode, ConstraintName: "tasks_title_check"})

	err := s.Create(context.Background(), task)
	assert.ErrorIs(t, err, store.ErrInvalidEntity)
}

func TestPostgresTaskStore_GetByID(t *testing.T) {
	s, mock := newMockStore(t)
	now := fixedTime()

	mock.ExpectQuery(`SELECT id, title, description, completed, created_at, updated_at FROM tasks WHERE id = \$1$`).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(taskRowColumns).
			AddRow(int64(7), "Buy milk", "2 litres", true, now, now.Add(time.Minute)))

	task, err := s.GetByID(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, int64(7), task.ID)
	assert.Equal(t, "Buy milk", task.Title)
	require.NotNil(t, task.Description)
	assert.Equal(t, "2 litres", *task.Description)
	assert.True(t, task.Completed)
	assert.Equal(t, now, task.CreatedAt)
	assert.Equal(t, now.Add(time.Minute), task.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresTaskStore_GetByID_NullDescription(t *testing.T) {
	s, mock := newMockStore(t)
	now := fixedTime()

	mock.ExpectQuery(`FROM tasks WHERE id = \$1`).
		WithArgs(int64(8)).
		WillReturnRows(sqlmock.NewRows(taskRowColumns).AddRow(int64(8), "t", nil, false, now, now))

	task, err := s.GetByID(context.Background(), 8)
	require.NoError(t, err)
	assert.Nil(t, task.Description)
}

func TestPostgresTaskStore_GetByID_NotFound(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(`FROM tasks WHERE id = \$1`).
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	task, err := s.GetByID(context.Background(), 99)
	assert.Nil(t, task)
	assert.ErrorIs(t, err, store.ErrTaskNotFound)
}

func TestPostgresTaskStore_GetByIDForUpdate(t *testing.T) {
	s, mock := newMockStore(t)
	now := fixedTime()

	mock.ExpectQuery(`FROM tasks WHERE id = \$1 FOR UPDATE`).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(taskRowColumns).AddRow(int64(3), "t", nil, false, now, now))

	_, err := s.GetByIDForUpdate(context.Background(), 3)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresTaskStore_List(t *testing.T) {
	s, mock := newMockStore(t)
	now := fixedTime()

	mock.ExpectQuery(`FROM tasks ORDER BY id ASC LIMIT \$1 OFFSET \$2`).
		WithArgs(2, 10).
		WillReturnRows(sqlmock.NewRows(taskRowColumns).
			AddRow(int64(11), "a", nil, false, now, now).
			AddRow(int64(12), "b", "desc", true, now, now))

	tasks, err := s.List(context.Background(), 2, 10)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, int64(11), tasks[0].ID)
	assert.Equal(t, int64(12), tasks[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresTaskStore_List_Empty(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(`FROM tasks ORDER BY id`).
		WithArgs(100, 0).
		WillReturnRows(sqlmock.NewRows(taskRowColumns))

	tasks, err := s.List(context.Background(), 100, 0)
	require.NoError(t, err)
	assert.NotNil(t, tasks)
	assert.Empty(t, tasks)
}

func TestPostgresTaskStore_List_UndefinedTable(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(`FROM tasks`).
		WillReturnError(&pgconn.PgError{Code: undefinedTableCode})

	_, err := s.List(context.Background(), 10, 0)
	assert.ErrorIs(t, err, ErrSchemaMissing)
}

func TestPostgresTaskStore_Update(t *testing.T) {
	s, mock := newMockStore(t)
	now := fixedTime()
	desc := "new"
	task := &domain.Task{ID: 5, Title: "t", Description: &desc, Completed: true, CreatedAt: now, UpdatedAt: now.Add(time.Hour)}

	mock.ExpectExec(`UPDATE tasks\s+SET title = \$1, description = \$2, completed = \$3, updated_at = \$4\s+WHERE id = \$5`).
		WithArgs("t", "new", true, now.Add(time.Hour), int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.Update(context.Background(), task))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresTaskStore_Update_NotFound(t *testing.T) {
	s, mock := newMockStore(t)
	now := fixedTime()

	mock.ExpectExec(`UPDATE tasks`).WillReturnResult(sqlmock.NewResult(0, 0))

	err := s.Update(context.Background(), &domain.Task{ID: 5, Title: "t", CreatedAt: now, UpdatedAt: now})
	assert.ErrorIs(t, err, store.ErrTaskNotFound)
}

func TestPostgresTaskStore_Delete(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectExec(`DELETE FROM tasks WHERE id = \$1`).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, s.Delete(context.Background(), 5))

	mock.ExpectExec(`DELETE FROM tasks WHERE id = \$1`).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, s.Delete(context.Background(), 5), store.ErrTaskNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresTaskStore_Delete_DriverError(t *testing.T) {
	s, mock := newMockStore(t)
	driverErr := errors.New("connection reset")

	mock.ExpectExec(`DELETE FROM tasks`).WillReturnError(driverErr)

	err := s.Delete(context.Background(), 1)
	assert.ErrorIs(t, err, driverErr)
	assert.False(t, store.IsNotFoundError(err))

	var storeErr *store.StoreError
	require.ErrorAs(t, err, &storeErr)
	assert.Equal(t, "task", storeErr.Entity)
	assert.Equal(t, "delete", storeErr.Operation)
}

func TestPostgresTaskStore_WithTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	s := NewPostgresTaskStore(db, nil)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM tasks`).WithArgs(int64(1)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := db.Begin()
	require.NoError(t, err)
	require.NoError(t, s.WithTx(tx).Delete(context.Background(), 1))
	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

package domain

import (
	"strings"
	"time"
)

// Task is a single unit of work tracked by the service.
// ID is assigned by the store and never reused.
type Task struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewTask builds an unsaved task with both timestamps set to now.
// The returned task has a zero ID until the store assigns one.
func NewTask(title string, description *string, completed bool, now time.Time) (*Task, error) {
	ts := NormalizeTime(now)
	task := &Task{
		Title:       title,
		Description: description,
		Completed:   completed,
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
func (t *Task) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return NewValidationError("title", "cannot be empty", ErrEmptyTitle)
	}

	if t.UpdatedAt.Before(t.CreatedAt) {
		return NewValidationError("updated_at", "cannot precede created_at", ErrInvalidTimestamps)
	}

	return nil
}

// NormalizeTime converts t to UTC at microsecond precision, the resolution
// PostgreSQL stores, so a timestamp read back compares equal to the one written.
func NormalizeTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}

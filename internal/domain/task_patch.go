package domain

import (
	"strings"
	"time"
)

// TaskPatch is a partial update. Only fields that are Set are merged.
// Description may be Set to nil to clear it.
type TaskPatch struct {
	Title       Optional[string]
	Description Optional[*string]
	Completed   Optional[bool]
}

// Validate rejects nulls for non-nullable fields and blank titles.
func (p TaskPatch) Validate() error {
	if p.Title.Set {
		if p.Title.Null {
			return NewValidationError("title", "cannot be null", ErrNullField)
		}
		if strings.TrimSpace(p.Title.Value) == "" {
			return NewValidationError("title", "cannot be empty", ErrEmptyTitle)
		}
	}

	if p.Completed.Set && p.Completed.Null {
		return NewValidationError("completed", "cannot be null", ErrNullField)
	}

	return nil
}

// Apply merges the patch into t and refreshes UpdatedAt. UpdatedAt never
// moves before CreatedAt, even if the clock steps backwards.
func (p TaskPatch) Apply(t *Task, now time.Time) {
	if p.Title.Set {
		t.Title = p.Title.Value
	}
	if p.Description.Set {
		if p.Description.Value == nil {
			t.Description = nil
		} else {
			desc := *p.Description.Value
			t.Description = &desc
		}
	}
	if p.Completed.Set {
		t.Completed = p.Completed.Value
	}

	ts := NormalizeTime(now)
	if ts.Before(t.CreatedAt) {
		ts = t.CreatedAt
	}
	t.UpdatedAt = ts
}

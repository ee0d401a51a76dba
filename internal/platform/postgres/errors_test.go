package postgres

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/taskhub/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantIs  error
		wantNil bool
	}{
		{name: "nil", err: nil, wantNil: true},
		{name: "no rows", err: sql.ErrNoRows, wantIs: store.ErrNotFound},
		{name: "unique violation", err: &pgconn.PgError{Code: uniqueViolationCode}, wantIs: store.ErrDuplicate},
		{name: "check violation", err: &pgconn.PgError{Code: checkViolationCode}, wantIs: store.ErrInvalidEntity},
		{name: "not null violation", err: &pgconn.PgError{Code: notNullViolationCode}, wantIs: store.ErrInvalidEntity},
		{name: "undefined table", err: &pgconn.PgError{Code: undefinedTableCode}, wantIs: ErrSchemaMissing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapError(tt.err)
			if tt.wantNil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.wantIs)
		})
	}

	plain := errors.New("boom")
	assert.Equal(t, plain, MapError(plain), "unmapped errors pass through unchanged")
}

func TestCheckRowsAffected(t *testing.T) {
	assert.Error(t, CheckRowsAffected(nil, "task"))
	assert.NoError(t, CheckRowsAffected(sqlmock.NewResult(0, 1), "task"))
	assert.ErrorIs(t, CheckRowsAffected(sqlmock.NewResult(0, 0), "task"), store.ErrNotFound)
	assert.ErrorIs(t, CheckRowsAffected(sqlmock.NewResult(0, 0), ""), store.ErrNotFound)

	resErr := errors.New("rows affected unsupported")
	assert.ErrorIs(t, CheckRowsAffected(sqlmock.NewErrorResult(resErr), "task"), resErr)
}

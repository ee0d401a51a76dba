package mocks

import (
	"context"

	"github.com/phrazzld/taskhub/internal/store"
)

// MockTransactor implements store.Transactor without a database. By default
// it calls fn with a nil transaction, which suits stores whose WithTx ignores
// its argument.
type MockTransactor struct {
	RunInTransactionFn func(ctx context.Context, fn store.TxFn) error
	Calls              int
}

var _ store.Transactor = (*MockTransactor)(nil)

// RunInTransaction implements store.Transactor.
func (m *MockTransactor) RunInTransaction(ctx context.Context, fn store.TxFn) error {
	m.Calls++
	if m.RunInTransactionFn != nil {
		return m.RunInTransactionFn(ctx, fn)
	}
	return fn(ctx, nil)
}

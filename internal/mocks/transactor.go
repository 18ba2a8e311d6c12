package mocks

import (
	"context"

	"github.com/phrazzld/classifieds-api/internal/store"
)

// MockTransactor implements store.Transactor by calling fn with a nil
// transaction. Stores used with it must ignore the tx passed to WithTx,
// which every store mock in this package does.
type MockTransactor struct {
	// Err, when set, is returned without running fn, as if BeginTx failed.
	Err error

	Calls int
}

var _ store.Transactor = (*MockTransactor)(nil)

// RunInTransaction implements store.Transactor.
func (m *MockTransactor) RunInTransaction(ctx context.Context, fn store.TxFn) error {
	m.Calls++
	if m.Err != nil {
		return m.Err
	}
	return fn(ctx, nil)
}

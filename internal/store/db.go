package store

import (
	"context"
	"database/sql"
)

// DBTX is implemented by both *sql.DB and *sql.Tx, so store implementations
// can run the same queries inside or outside a transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// HealthChecker probes the backing database.
type HealthChecker interface {
	// CheckConnection runs a trivial query. It returns false with a nil error
	// when the database answers but with an unexpected result, and an error
	// when the probe itself fails.
	CheckConnection(ctx context.Context) (bool, error)
}

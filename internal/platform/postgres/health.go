package postgres

import (
	"context"
	"fmt"

	"github.com/phrazzld/classifieds-api/internal/store"
)

// PostgresHealthChecker implements store.HealthChecker with a SELECT 1 probe.
type PostgresHealthChecker struct {
	db store.DBTX
}

var _ store.HealthChecker = (*PostgresHealthChecker)(nil)

// NewPostgresHealthChecker creates a health checker over db.
func NewPostgresHealthChecker(db store.DBTX) *PostgresHealthChecker {
	return &PostgresHealthChecker{db: db}
}

// CheckConnection implements store.HealthChecker.
func (c *PostgresHealthChecker) CheckConnection(ctx context.Context) (bool, error) {
	var one int
	if err := c.db.QueryRowContext(ctx, `SELECT 1`).Scan(&one); err != nil {
		return false, fmt.Errorf("database probe failed: %w", err)
	}
	return one == 1, nil
}

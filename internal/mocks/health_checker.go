package mocks

import (
	"context"

	"github.com/phrazzld/classifieds-api/internal/store"
)

// MockHealthChecker implements store.HealthChecker with fixed results.
type MockHealthChecker struct {
	Connected bool
	Err       error
}

var _ store.HealthChecker = (*MockHealthChecker)(nil)

// CheckConnection implements store.HealthChecker.
func (m *MockHealthChecker) CheckConnection(ctx context.Context) (bool, error) {
	return m.Connected, m.Err
}

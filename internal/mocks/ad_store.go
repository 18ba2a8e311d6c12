package mocks

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/phrazzld/classifieds-api/internal/domain"
	"github.com/phrazzld/classifieds-api/internal/store"
)

// MockAdStore implements store.AdStore as an in-memory table.
type MockAdStore struct {
	CreateFn  func(ctx context.Context, ad *domain.Ad) error
	GetByIDFn func(ctx context.Context, id int64) (*domain.Ad, error)
	DeleteFn  func(ctx context.Context, id int64) error

	// Now stamps CreatedAt; defaults to time.Now.
	Now func() time.Time

	mu     sync.Mutex
	ads    map[int64]*domain.Ad
	nextID int64
}

var _ store.AdStore = (*MockAdStore)(nil)

// NewMockAdStore creates an empty store.
func NewMockAdStore() *MockAdStore {
	return &MockAdStore{
		ads: make(map[int64]*domain.Ad),
		Now: time.Now,
	}
}

// Create implements the AdStore interface
func (m *MockAdStore) Create(ctx context.Context, ad *domain.Ad) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, ad)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.ads == nil {
		m.ads = make(map[int64]*domain.Ad)
	}
	now := time.Now
	if m.Now != nil {
		now = m.Now
	}

	m.nextID++
	ad.ID = m.nextID
	ad.CreatedAt = now().UTC()
	stored := *ad
	m.ads[ad.ID] = &stored
	return nil
}

// GetByID implements the AdStore interface
func (m *MockAdStore) GetByID(ctx context.Context, id int64) (*domain.Ad, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	ad, ok := m.ads[id]
	if !ok {
		return nil, store.ErrAdNotFound
	}
	cp := *ad
	return &cp, nil
}

// GetByIDForUpdate behaves like GetByID; no locking is simulated.
func (m *MockAdStore) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Ad, error) {
	return m.GetByID(ctx, id)
}

// Delete implements the AdStore interface
func (m *MockAdStore) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.ads[id]; !ok {
		return store.ErrAdNotFound
	}
	delete(m.ads, id)
	return nil
}

// WithTx returns the same mock.
func (m *MockAdStore) WithTx(tx *sql.Tx) store.AdStore {
	return m
}

// Count returns the number of stored ads.
func (m *MockAdStore) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.ads)
}

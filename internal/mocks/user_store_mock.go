package mocks

import (
	"context"
	"database/sql"

	"github.com/phrazzld/classifieds-api/internal/domain"
	"github.com/phrazzld/classifieds-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// TestifyMockUserStore is a mock of store.UserStore interface for use with testify/mock
type TestifyMockUserStore struct {
	mock.Mock
}

var _ store.UserStore = (*TestifyMockUserStore)(nil)

// Create is a mock implementation of store.UserStore.Create
func (m *TestifyMockUserStore) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// GetByEmail is a mock implementation of store.UserStore.GetByEmail
func (m *TestifyMockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if user, ok := args.Get(0).(*domain.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

// WithTx returns the mock itself so expectations set on it apply inside transactions.
func (m *TestifyMockUserStore) WithTx(tx *sql.Tx) store.UserStore {
	return m
}

// TestifyMockAdStore is a mock of store.AdStore interface for use with testify/mock
type TestifyMockAdStore struct {
	mock.Mock
}

var _ store.AdStore = (*TestifyMockAdStore)(nil)

// Create is a mock implementation of store.AdStore.Create
func (m *TestifyMockAdStore) Create(ctx context.Context, ad *domain.Ad) error {
	args := m.Called(ctx, ad)
	return args.Error(0)
}

// GetByID is a mock implementation of store.AdStore.GetByID
func (m *TestifyMockAdStore) GetByID(ctx context.Context, id int64) (*domain.Ad, error) {
	args := m.Called(ctx, id)
	if ad, ok := args.Get(0).(*domain.Ad); ok {
		return ad, args.Error(1)
	}
	return nil, args.Error(1)
}

// GetByIDForUpdate is a mock implementation of store.AdStore.GetByIDForUpdate
func (m *TestifyMockAdStore) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Ad, error) {
	args := m.Called(ctx, id)
	if ad, ok := args.Get(0).(*domain.Ad); ok {
		return ad, args.Error(1)
	}
	return nil, args.Error(1)
}

// Delete is a mock implementation of store.AdStore.Delete
func (m *TestifyMockAdStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// WithTx returns the mock itself so expectations set on it apply inside transactions.
func (m *TestifyMockAdStore) WithTx(tx *sql.Tx) store.AdStore {
	return m
}

package mocks

import (
	"context"

	"github.com/phrazzld/classifieds-api/internal/domain"
	"github.com/phrazzld/classifieds-api/internal/service"
)

// MockUserService implements service.UserService for handler tests.
type MockUserService struct {
	RegisterFn     func(ctx context.Context, email, password string) (*domain.User, error)
	AuthenticateFn func(ctx context.Context, email, password string) (*domain.User, error)
}

var _ service.UserService = (*MockUserService)(nil)

// Register implements service.UserService.
func (m *MockUserService) Register(ctx context.Context, email, password string) (*domain.User, error) {
	if m.RegisterFn != nil {
		return m.RegisterFn(ctx, email, password)
	}
	return &domain.User{ID: 1, Email: email}, nil
}

// Authenticate implements service.UserService.
func (m *MockUserService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	if m.AuthenticateFn != nil {
		return m.AuthenticateFn(ctx, email, password)
	}
	return nil, service.ErrInvalidCredentials
}

// MockAdService implements service.AdService for handler tests.
type MockAdService struct {
	CreateFn func(ctx context.Context, ownerID int64, title, description string) (*domain.Ad, error)
	GetFn    func(ctx context.Context, id int64) (*domain.Ad, error)
	DeleteFn func(ctx context.Context, callerID, adID int64) error

	// DeleteCalls records the (callerID, adID) pairs passed to Delete.
	DeleteCalls [][2]int64
}

var _ service.AdService = (*MockAdService)(nil)

// Create implements service.AdService.
func (m *MockAdService) Create(ctx context.Context, ownerID int64, title, description string) (*domain.Ad, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, ownerID, title, description)
	}
	return &domain.Ad{ID: 1, Title: title, Description: description, OwnerID: ownerID}, nil
}

// Get implements service.AdService.
func (m *MockAdService) Get(ctx context.Context, id int64) (*domain.Ad, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, id)
	}
	return nil, service.ErrAdNotFound
}

// Delete implements service.AdService.
func (m *MockAdService) Delete(ctx context.Context, callerID, adID int64) error {
	m.DeleteCalls = append(m.DeleteCalls, [2]int64{callerID, adID})
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, callerID, adID)
	}
	return nil
}

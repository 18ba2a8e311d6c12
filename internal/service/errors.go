package service

import (
	"errors"
	"fmt"

	"github.com/phrazzld/classifieds-api/internal/service/auth"
	"github.com/phrazzld/classifieds-api/internal/store"
)

// Common service errors - sentinel errors used across service implementations.
// Callers check them with errors.Is; the API layer maps each to a status code.
var (
	// ErrNotOwned indicates a resource is owned by a different user than the one making the request.
	// API layer should map this to HTTP 403 Forbidden.
	ErrNotOwned = errors.New("resource is owned by another user")

	// ErrUserExists is returned by Register when the email is already taken.
	ErrUserExists = errors.New("user already exists")

	// ErrInvalidCredentials covers both an unknown email and a wrong password,
	// so callers cannot tell which one failed.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrPasswordTooLong is returned by Register for passwords bcrypt cannot hash.
	ErrPasswordTooLong = auth.ErrPasswordTooLong

	// ErrAdNotFound wraps store.ErrAdNotFound.
	ErrAdNotFound = fmt.Errorf("ad not found: %w", store.ErrAdNotFound)

	// ErrAdNotOwned is returned when a caller deletes an ad that belongs to someone else.
	ErrAdNotOwned = fmt.Errorf("%w: ad", ErrNotOwned)
)

// ServiceError wraps an unexpected failure with the service and operation it came from.
type ServiceError struct {
	Service string
	Op      string
	Err     error
}

// Error implements the error interface.
func (e *ServiceError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s service %s operation failed", e.Service, e.Op)
	}
	return fmt.Sprintf("%s service %s operation failed: %v", e.Service, e.Op, e.Err)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError creates a ServiceError.
func NewServiceError(service, op string, err error) *ServiceError {
	return &ServiceError{Service: service, Op: op, Err: err}
}

package mocks

import (
	"errors"
	"strings"

	"github.com/phrazzld/classifieds-api/internal/service/auth"
	"golang.org/x/crypto/bcrypt"
)

// MockPasswordVerifier implements auth.PasswordVerifier for testing
type MockPasswordVerifier struct {
	// ShouldSucceed determines whether the password comparison should succeed
	ShouldSucceed bool

	// CompareFn allows for custom comparison logic in tests
	CompareFn func(hashedPassword, password string) error

	// CompareCalledWith stores the arguments passed to Compare for verification
	CompareCalledWith struct {
		HashedPassword string
		Password       string
	}

	// CompareCallCount tracks how many times Compare was called
	CompareCallCount int
}

var _ auth.PasswordVerifier = (*MockPasswordVerifier)(nil)

// Compare implements the auth.PasswordVerifier interface
func (m *MockPasswordVerifier) Compare(hashedPassword, password string) error {
	m.CompareCalledWith.HashedPassword = hashedPassword
	m.CompareCalledWith.Password = password
	m.CompareCallCount++

	if m.CompareFn != nil {
		return m.CompareFn(hashedPassword, password)
	}

	if m.ShouldSucceed {
		return nil
	}
	return bcrypt.ErrMismatchedHashAndPassword
}

// MockPasswordHasher is a fast reversible stand-in for bcrypt.
// Hashes are "hashed:" + password, and Compare checks the same shape.
type MockPasswordHasher struct {
	HashFn func(password string) (string, error)
}

var (
	_ auth.PasswordHasher   = (*MockPasswordHasher)(nil)
	_ auth.PasswordVerifier = (*MockPasswordHasher)(nil)
)

const mockHashPrefix = "hashed:"

// Hash implements auth.PasswordHasher, including the 72 byte limit.
func (m *MockPasswordHasher) Hash(password string) (string, error) {
	if m.HashFn != nil {
		return m.HashFn(password)
	}
	if len(password) > auth.MaxPasswordBytes {
		return "", auth.ErrPasswordTooLong
	}
	return mockHashPrefix + password, nil
}

// Compare implements auth.PasswordVerifier.
func (m *MockPasswordHasher) Compare(hashedPassword, password string) error {
	if !strings.HasPrefix(hashedPassword, mockHashPrefix) {
		return errors.New("not a mock hash")
	}
	if strings.TrimPrefix(hashedPassword, mockHashPrefix) != password {
		return bcrypt.ErrMismatchedHashAndPassword
	}
	return nil
}

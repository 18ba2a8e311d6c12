package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/classifieds-api/internal/domain"
	"github.com/phrazzld/classifieds-api/internal/service/auth"
	"github.com/phrazzld/classifieds-api/internal/store"
	"golang.org/x/crypto/bcrypt"
)

// UserService provides registration and credential checks.
type UserService interface {
	// Register creates a user with a bcrypt hash of password.
	// Returns ErrUserExists when the email is taken, ErrPasswordTooLong for
	// passwords over 72 bytes, a domain.ErrValidation error for invalid input,
	// and an error wrapping store.ErrEmailExists when a concurrent
	// registration wins the race for the same email.
	Register(ctx context.Context, email, password string) (*domain.User, error)

	// Authenticate returns the user whose email and password match.
	// Returns ErrInvalidCredentials for an unknown email or a wrong password.
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
}

// UserServiceImpl implements the UserService interface
type UserServiceImpl struct {
	userStore  store.UserStore
	transactor store.Transactor
	hasher     auth.PasswordHasher
	verifier   auth.PasswordVerifier
	logger     *slog.Logger
}

var _ UserService = (*UserServiceImpl)(nil)

// NewUserService creates a new UserService
func NewUserService(
	userStore store.UserStore,
	transactor store.Transactor,
	hasher auth.PasswordHasher,
	verifier auth.PasswordVerifier,
	logger *slog.Logger,
) *UserServiceImpl {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserServiceImpl{
		userStore:  userStore,
		transactor: transactor,
		hasher:     hasher,
		verifier:   verifier,
		logger:     logger.With("component", "user_service"),
	}
}

// Register implements UserService.
func (s *UserServiceImpl) Register(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := domain.NewUser(email, password)
	if err != nil {
		s.logger.Debug("rejected registration input", "error", err)
		return nil, fmt.Errorf("invalid registration: %w", err)
	}

	_, err = s.userStore.GetByEmail(ctx, email)
	switch {
	case err == nil:
		s.logger.Debug("registration for existing email")
		return nil, ErrUserExists
	case !errors.Is(err, store.ErrUserNotFound):
		s.logger.Error("failed to look up email before registration", "error", err)
		return nil, NewServiceError("user", "register", err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		if errors.Is(err, auth.ErrPasswordTooLong) {
			return nil, ErrPasswordTooLong
		}
		s.logger.Error("failed to hash password", "error", err)
		return nil, NewServiceError("user", "register", err)
	}
	user.HashedPassword = hash
	user.Password = ""

	err = s.transactor.RunInTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		return s.userStore.WithTx(tx).Create(ctx, user)
	})
	if err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			s.logger.Debug("lost registration race for email")
		} else {
			s.logger.Error("failed to save user to database", "error", err)
		}
		return nil, NewServiceError("user", "register", err)
	}

	s.logger.Info("user registered", "user_id", user.ID)
	return user, nil
}

// Authenticate implements UserService.
func (s *UserServiceImpl) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.Debug("login for unknown email")
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("failed to look up user for login", "error", err)
		return nil, NewServiceError("user", "authenticate", err)
	}

	if err := s.verifier.Compare(user.HashedPassword, password); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			s.logger.Debug("login with wrong password", "user_id", user.ID)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("failed to compare password hash", "error", err, "user_id", user.ID)
		return nil, NewServiceError("user", "authenticate", err)
	}

	return user, nil
}

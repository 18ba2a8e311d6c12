package domain

import (
	"errors"
	"fmt"
)

// ErrValidation is returned when a domain entity fails validation.
// Every specific validation error below wraps it.
var ErrValidation = errors.New("validation failed")

// User validation errors
var (
	ErrEmptyEmail          = fmt.Errorf("%w: email cannot be empty", ErrValidation)
	ErrEmailTooLong        = fmt.Errorf("%w: email must be at most %d characters", ErrValidation, MaxEmailLength)
	ErrEmptyPassword       = fmt.Errorf("%w: password cannot be empty", ErrValidation)
	ErrEmptyHashedPassword = fmt.Errorf("%w: hashed password cannot be empty", ErrValidation)
)

// Ad validation errors
var (
	ErrEmptyTitle       = fmt.Errorf("%w: title cannot be empty", ErrValidation)
	ErrTitleTooLong     = fmt.Errorf("%w: title must be at most %d characters", ErrValidation, MaxTitleLength)
	ErrEmptyDescription = fmt.Errorf("%w: description cannot be empty", ErrValidation)
	ErrInvalidOwner     = fmt.Errorf("%w: owner ID must be positive", ErrValidation)
)

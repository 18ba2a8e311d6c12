package auth

import "errors"

// Common authentication service errors
var (
	// ErrInvalidToken covers every token rejection: malformed input, a bad or
	// missing signature, an unexpected algorithm or a missing identity claim.
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrPasswordTooLong indicates the password exceeds bcrypt's 72 byte input limit.
	ErrPasswordTooLong = errors.New("password exceeds 72 bytes")
)

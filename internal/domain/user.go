package domain

import "unicode/utf8"

// MaxEmailLength matches the width of the users.email column.
const MaxEmailLength = 120

// User represents a registered account. Users are created at registration
// and never modified afterwards.
type User struct {
	ID             int64  `json:"id"`
	Email          string `json:"email"`
	Password       string `json:"-"` // Plaintext, only held between decoding and hashing
	HashedPassword string `json:"-"` // Never expose password hash in JSON
}

// NewUser creates a User with the given email and plaintext password.
// The ID is assigned by the store, and the caller is responsible for
// hashing the password before the user is persisted.
func NewUser(email, password string) (*User, error) {
	user := &User{
		Email:    email,
		Password: password,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// A user must carry either a plaintext password (before hashing) or a hash
// (after loading from the store).
func (u *User) Validate() error {
	if u.Email == "" {
		return ErrEmptyEmail
	}

	if utf8.RuneCountInString(u.Email) > MaxEmailLength {
		return ErrEmailTooLong
	}

	// A present but empty password is rejected on purpose; an empty string
	// is not a credential.
	if u.Password == "" && u.HashedPassword == "" {
		return ErrEmptyPassword
	}

	return nil
}

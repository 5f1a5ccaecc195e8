package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common validation errors
var (
	ErrEmptyUserID         = errors.New("user ID cannot be empty")
	ErrEmptyUsername       = errors.New("username cannot be empty")
	ErrPasswordTooLong     = errors.New("password must be at most 72 bytes long")
	ErrEmptyPassword       = errors.New("password cannot be empty")
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")
)

// MaxPasswordLength is the longest password bcrypt will accept.
const MaxPasswordLength = 72

// User represents a registered author.
type User struct {
	ID             uuid.UUID `json:"id"`
	Username       string    `json:"username"`
	Password       string    `json:"-"` // Plaintext password, only held until the store hashes it
	HashedPassword string    `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewUser creates a new User with the given username and password.
// It generates a new UUID for the user ID and sets the creation/update timestamps.
// Returns an error if validation fails.
//
// NOTE: the returned user only carries the plaintext password. The store is
// responsible for hashing it before anything is persisted.
func NewUser(username, password string) (*User, error) {
	now := time.Now().UTC()
	user := &User{
		ID:        uuid.New(),
		Username:  username,
		Password:  password,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// A user must carry either a plaintext password (before storage) or a
// hashed password (after loading from the store).
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return ErrEmptyUserID
	}

	if u.Username == "" {
		return ErrEmptyUsername
	}

	if u.Password != "" {
		if len(u.Password) > MaxPasswordLength {
			return ErrPasswordTooLong
		}
		return nil
	}

	if u.HashedPassword == "" {
		return ErrEmptyPassword
	}

	return nil
}

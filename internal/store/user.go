package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/quill-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user to the store.
	// It validates the domain user and hashes the plaintext password before
	// insertion; the plaintext is cleared from the user on success.
	// Returns ErrUsernameExists if the username is already taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByUsername retrieves a user by their username.
	// Returns ErrUserNotFound if the user does not exist.
	// The returned user carries HashedPassword but never a plaintext password.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)

	// WithTx returns a UserStore bound to the given connection or transaction.
	WithTx(db DBTX) UserStore
}

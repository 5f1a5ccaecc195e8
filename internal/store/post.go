package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/quill-api/internal/domain"
)

// PostStore defines the interface for post data persistence.
// Every method issues exactly one statement.
type PostStore interface {
	// Create saves a new post.
	// Returns ErrInvalidEntity if the author does not exist.
	Create(ctx context.Context, post *domain.Post) error

	// Update applies the non-nil fields of the update to the post matching
	// both update.ID and update.AuthorID, and returns the resulting row.
	// The author reference is never modified.
	// Returns ErrPostNotFound if no such row exists, which includes posts
	// owned by another author.
	Update(ctx context.Context, update domain.PostUpdate) (*domain.Post, error)

	// List returns every post in the store. Returns an empty slice when there
	// are none.
	List(ctx context.Context) ([]*domain.Post, error)

	// GetByID retrieves a post by its unique ID.
	// Returns ErrPostNotFound if the post does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error)

	// WithTx returns a PostStore bound to the given connection or transaction.
	WithTx(db DBTX) PostStore
}

package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for Post
var (
	ErrEmptyPostID       = errors.New("post ID cannot be empty")
	ErrEmptyPostAuthorID = errors.New("post author ID cannot be empty")
	ErrNoPostChanges     = errors.New("post update must change title or content")
)

// Post is a blog entry owned by a single author.
// AuthorID is fixed at creation; only Title and Content change afterwards.
type Post struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	AuthorID  uuid.UUID `json:"authorId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewPost creates a new Post owned by authorID.
// Title and content are taken as-is: an empty string is a valid value, the
// request layer decides whether a field was supplied at all.
func NewPost(authorID uuid.UUID, title, content string) (*Post, error) {
	now := time.Now().UTC()
	post := &Post{
		ID:        uuid.New(),
		Title:     title,
		Content:   content,
		AuthorID:  authorID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := post.Validate(); err != nil {
		return nil, err
	}

	return post, nil
}

// Validate checks if the Post has valid data.
func (p *Post) Validate() error {
	if p.ID == uuid.Nil {
		return ErrEmptyPostID
	}

	if p.AuthorID == uuid.Nil {
		return ErrEmptyPostAuthorID
	}

	return nil
}

// PostUpdate carries the mutable fields of a post. A nil field is left
// unchanged by the store.
type PostUpdate struct {
	ID       uuid.UUID
	AuthorID uuid.UUID
	Title    *string
	Content  *string
}

// Validate checks that the update targets a post, is scoped to an author and
// changes at least one field.
func (u PostUpdate) Validate() error {
	if u.ID == uuid.Nil {
		return ErrEmptyPostID
	}

	if u.AuthorID == uuid.Nil {
		return ErrEmptyPostAuthorID
	}

	if u.Title == nil && u.Content == nil {
		return ErrNoPostChanges
	}

	return nil
}

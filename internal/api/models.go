package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/quill-api/internal/domain"
)

// SignupRequest defines the payload for the signup endpoint. The 72-byte
// password limit is enforced by domain.User, since validator's max counts
// runes rather than bytes.
type SignupRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// SigninRequest defines the payload for the signin endpoint.
type SigninRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse is returned by signup and signin.
type AuthResponse struct {
	Msg string `json:"msg"`
	JWT string `json:"jwt"`
}

// CreatePostRequest defines the payload for creating a post. Both fields must
// be present; an empty string is a valid value.
type CreatePostRequest struct {
	Title   *string `json:"title"   validate:"required"`
	Content *string `json:"content" validate:"required"`
}

// UpdatePostRequest defines the payload for updating a post. Absent fields
// are left unchanged.
type UpdatePostRequest struct {
	ID      string  `json:"id"      validate:"required,uuid"`
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// Validate rejects an update that names no field to change.
func (r UpdatePostRequest) Validate() error {
	if r.Title == nil && r.Content == nil {
		return domain.NewValidationError("title", "or content is required", domain.ErrValidation)
	}
	return nil
}

// PostIDResponse is returned by create and update.
type PostIDResponse struct {
	Msg string    `json:"msg"`
	ID  uuid.UUID `json:"id"`
}

// PostResponse is the wire form of a post.
type PostResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	AuthorID  uuid.UUID `json:"authorId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PostListResponse is returned by the bulk endpoint. Blogs is never null.
type PostListResponse struct {
	Msg   string          `json:"msg"`
	Blogs []*PostResponse `json:"Blogs"`
}

// SinglePostResponse is returned by fetch-by-id. Blog is null when the post
// does not exist.
type SinglePostResponse struct {
	Msg  string        `json:"msg"`
	Blog *PostResponse `json:"Blog"`
}

// FetchErrorResponse is the failure body of fetch-by-id. The capitalized key
// is part of the wire contract.
type FetchErrorResponse struct {
	Error string `json:"Error"`
}

func postToResponse(post *domain.Post) *PostResponse {
	if post == nil {
		return nil
	}
	return &PostResponse{
		ID:        post.ID,
		Title:     post.Title,
		Content:   post.Content,
		AuthorID:  post.AuthorID,
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
	}
}

func postsToResponse(posts []*domain.Post) []*PostResponse {
	out := make([]*PostResponse, 0, len(posts))
	for _, p := range posts {
		out = append(out, postToResponse(p))
	}
	return out
}

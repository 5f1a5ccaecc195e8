package service

import (
	"errors"
	"fmt"

	"github.com/phrazzld/quill-api/internal/store"
)

// Common sentinel errors for PostService
var (
	// ErrPostNotFound indicates that no post matched the request. For updates
	// this includes posts owned by another author.
	ErrPostNotFound = errors.New("post not found")

	// ErrInvalidPost indicates the requested change cannot form a valid post.
	ErrInvalidPost = errors.New("invalid post")
)

// PostServiceError wraps errors from the post service with context.
type PostServiceError struct {
	// Operation is the operation that failed (e.g., "create_post", "update_post")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for PostServiceError.
func (e *PostServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("post service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("post service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *PostServiceError) Unwrap() error {
	return e.Err
}

// NewPostServiceError creates a new PostServiceError.
// It returns known sentinel errors directly without wrapping.
func NewPostServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, ErrPostNotFound) || errors.Is(err, store.ErrPostNotFound) {
		return ErrPostNotFound
	}

	return &PostServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

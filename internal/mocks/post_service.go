package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/quill-api/internal/domain"
	"github.com/phrazzld/quill-api/internal/service"
	"github.com/stretchr/testify/mock"
)

// MockPostService is a testify mock of service.PostService.
type MockPostService struct {
	mock.Mock
}

var _ service.PostService = (*MockPostService)(nil)

// CreatePost is a mock implementation of service.PostService.CreatePost
func (m *MockPostService) CreatePost(
	ctx context.Context,
	authorID uuid.UUID,
	title, content string,
) (*domain.Post, error) {
	args := m.Called(ctx, authorID, title, content)
	if post, ok := args.Get(0).(*domain.Post); ok {
		return post, args.Error(1)
	}
	return nil, args.Error(1)
}

// UpdatePost is a mock implementation of service.PostService.UpdatePost
func (m *MockPostService) UpdatePost(
	ctx context.Context,
	authorID, postID uuid.UUID,
	title, content *string,
) (*domain.Post, error) {
	args := m.Called(ctx, authorID, postID, title, content)
	if post, ok := args.Get(0).(*domain.Post); ok {
		return post, args.Error(1)
	}
	return nil, args.Error(1)
}

// ListPosts is a mock implementation of service.PostService.ListPosts
func (m *MockPostService) ListPosts(ctx context.Context) ([]*domain.Post, error) {
	args := m.Called(ctx)
	if posts, ok := args.Get(0).([]*domain.Post); ok {
		return posts, args.Error(1)
	}
	return nil, args.Error(1)
}

// GetPost is a mock implementation of service.PostService.GetPost
func (m *MockPostService) GetPost(ctx context.Context, postID uuid.UUID) (*domain.Post, error) {
	args := m.Called(ctx, postID)
	if post, ok := args.Get(0).(*domain.Post); ok {
		return post, args.Error(1)
	}
	return nil, args.Error(1)
}

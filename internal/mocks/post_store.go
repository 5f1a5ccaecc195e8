package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/quill-api/internal/domain"
	"github.com/phrazzld/quill-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// MockPostStore is a testify mock of store.PostStore.
type MockPostStore struct {
	mock.Mock
}

var _ store.PostStore = (*MockPostStore)(nil)

// Create is a mock implementation of store.PostStore.Create
func (m *MockPostStore) Create(ctx context.Context, post *domain.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

// Update is a mock implementation of store.PostStore.Update
func (m *MockPostStore) Update(ctx context.Context, update domain.PostUpdate) (*domain.Post, error) {
	args := m.Called(ctx, update)
	if post, ok := args.Get(0).(*domain.Post); ok {
		return post, args.Error(1)
	}
	return nil, args.Error(1)
}

// List is a mock implementation of store.PostStore.List
func (m *MockPostStore) List(ctx context.Context) ([]*domain.Post, error) {
	args := m.Called(ctx)
	if posts, ok := args.Get(0).([]*domain.Post); ok {
		return posts, args.Error(1)
	}
	return nil, args.Error(1)
}

// GetByID is a mock implementation of store.PostStore.GetByID
func (m *MockPostStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	args := m.Called(ctx, id)
	if post, ok := args.Get(0).(*domain.Post); ok {
		return post, args.Error(1)
	}
	return nil, args.Error(1)
}

// WithTx returns the same mock so expectations keep applying.
func (m *MockPostStore) WithTx(db store.DBTX) store.PostStore {
	return m
}

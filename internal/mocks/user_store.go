package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/quill-api/internal/domain"
	"github.com/phrazzld/quill-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// MockUserStore is a testify mock of store.UserStore.
type MockUserStore struct {
	mock.Mock
}

var _ store.UserStore = (*MockUserStore)(nil)

// Create is a mock implementation of store.UserStore.Create
func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// GetByID is a mock implementation of store.UserStore.GetByID
func (m *MockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if user, ok := args.Get(0).(*domain.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

// GetByUsername is a mock implementation of store.UserStore.GetByUsername
func (m *MockUserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if user, ok := args.Get(0).(*domain.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

// WithTx returns the same mock so expectations keep applying.
func (m *MockUserStore) WithTx(db store.DBTX) store.UserStore {
	return m
}

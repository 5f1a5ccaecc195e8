package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/quill-api/internal/domain"
	"github.com/phrazzld/quill-api/internal/platform/logger"
	"github.com/phrazzld/quill-api/internal/redact"
	"github.com/phrazzld/quill-api/internal/store"
)

// PostService provides the blog post use cases.
type PostService interface {
	// CreatePost stores a new post owned by authorID.
	CreatePost(ctx context.Context, authorID uuid.UUID, title, content string) (*domain.Post, error)

	// UpdatePost changes the non-nil fields of the post postID owned by
	// authorID. Returns ErrPostNotFound when there is no such post or it
	// belongs to another author.
	UpdatePost(
		ctx context.Context,
		authorID, postID uuid.UUID,
		title, content *string,
	) (*domain.Post, error)

	// ListPosts returns every post, never nil.
	ListPosts(ctx context.Context) ([]*domain.Post, error)

	// GetPost returns the post with the given id, or (nil, nil) if absent.
	GetPost(ctx context.Context, postID uuid.UUID) (*domain.Post, error)
}

type postServiceImpl struct {
	postStore store.PostStore
	logger    *slog.Logger
}

var _ PostService = (*postServiceImpl)(nil)

// NewPostService creates a new PostService.
// It returns an error if postStore is nil.
func NewPostService(postStore store.PostStore, logger *slog.Logger) (PostService, error) {
	if postStore == nil {
		return nil, &PostServiceError{
			Operation: "create_service",
			Message:   "postStore cannot be nil",
		}
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &postServiceImpl{
		postStore: postStore,
		logger:    logger.With(slog.String("component", "post_service")),
	}, nil
}

func (s *postServiceImpl) log(ctx context.Context) *slog.Logger {
	return logger.FromContextOrDefault(ctx, s.logger)
}

// CreatePost implements PostService.
func (s *postServiceImpl) CreatePost(
	ctx context.Context,
	authorID uuid.UUID,
	title, content string,
) (*domain.Post, error) {
	post, err := domain.NewPost(authorID, title, content)
	if err != nil {
		return nil, NewPostServiceError("create_post", "invalid post", fmt.Errorf("%w: %v", ErrInvalidPost, err))
	}

	if err := s.postStore.Create(ctx, post); err != nil {
		s.log(ctx).Error("failed to create post",
			slog.String("error", redact.Error(err)),
			slog.String("author_id", authorID.String()))
		return nil, NewPostServiceError("create_post", "failed to save post", err)
	}

	s.log(ctx).Info("post created",
		slog.String("post_id", post.ID.String()),
		slog.String("author_id", authorID.String()))

	return post, nil
}

// UpdatePost implements PostService.
func (s *postServiceImpl) UpdatePost(
	ctx context.Context,
	authorID, postID uuid.UUID,
	title, content *string,
) (*domain.Post, error) {
	update := domain.PostUpdate{
		ID:       postID,
		AuthorID: authorID,
		Title:    title,
		Content:  content,
	}
	if err := update.Validate(); err != nil {
		return nil, NewPostServiceError("update_post", "invalid update", fmt.Errorf("%w: %v", ErrInvalidPost, err))
	}

	post, err := s.postStore.Update(ctx, update)
	if err != nil {
		if errors.Is(err, store.ErrPostNotFound) {
			s.log(ctx).Warn("update matched no post owned by caller",
				slog.String("post_id", postID.String()),
				slog.String("author_id", authorID.String()))
		} else {
			s.log(ctx).Error("failed to update post",
				slog.String("error", redact.Error(err)),
				slog.String("post_id", postID.String()))
		}
		return nil, NewPostServiceError("update_post", "failed to update post", err)
	}

	s.log(ctx).Info("post updated", slog.String("post_id", postID.String()))
	return post, nil
}

// ListPosts implements PostService.
func (s *postServiceImpl) ListPosts(ctx context.Context) ([]*domain.Post, error) {
	posts, err := s.postStore.List(ctx)
	if err != nil {
		s.log(ctx).Error("failed to list posts", slog.String("error", redact.Error(err)))
		return nil, NewPostServiceError("list_posts", "failed to list posts", err)
	}
	if posts == nil {
		posts = []*domain.Post{}
	}
	return posts, nil
}

// GetPost implements PostService.
func (s *postServiceImpl) GetPost(ctx context.Context, postID uuid.UUID) (*domain.Post, error) {
	post, err := s.postStore.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, store.ErrPostNotFound) {
			s.log(ctx).Debug("post not found", slog.String("post_id", postID.String()))
			return nil, nil
		}
		s.log(ctx).Error("failed to retrieve post",
			slog.String("error", redact.Error(err)),
			slog.String("post_id", postID.String()))
		return nil, NewPostServiceError("get_post", "failed to retrieve post", err)
	}
	return post, nil
}

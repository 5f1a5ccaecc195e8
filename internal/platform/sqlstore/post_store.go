package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/quill-api/internal/domain"
	"github.com/phrazzld/quill-api/internal/platform/logger"
	"github.com/phrazzld/quill-api/internal/store"
)

const postColumns = `id, title, content, author_id, created_at, updated_at`

// PostStore implements store.PostStore on top of database/sql.
type PostStore struct {
	db store.DBTX
}

var _ store.PostStore = (*PostStore)(nil)

// NewPostStore creates a PostStore.
func NewPostStore(db store.DBTX) *PostStore {
	return &PostStore{db: db}
}

// WithTx implements store.PostStore.
func (s *PostStore) WithTx(db store.DBTX) store.PostStore {
	return &PostStore{db: db}
}

// Create implements store.PostStore.
func (s *PostStore) Create(ctx context.Context, post *domain.Post) error {
	log := logger.FromContextOrDefault(ctx, slog.Default())

	if err := post.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO posts (`+postColumns+`) VALUES ($1, $2, $3, $4, $5, $6)`,
		post.ID, post.Title, post.Content, post.AuthorID, post.CreatedAt, post.UpdatedAt,
	)
	if err != nil {
		err = MapError(err)
		log.Error("failed to insert post",
			slog.String("post_id", post.ID.String()),
			slog.String("author_id", post.AuthorID.String()),
			slog.String("error", err.Error()))
		if errors.Is(err, store.ErrInvalidEntity) || errors.Is(err, store.ErrDuplicate) {
			return err
		}
		return store.NewStoreError("post", "create", "failed to insert post", err)
	}

	log.Debug("post created", slog.String("post_id", post.ID.String()))
	return nil
}

// Update implements store.PostStore.
func (s *PostStore) Update(ctx context.Context, update domain.PostUpdate) (*domain.Post, error) {
	log := logger.FromContextOrDefault(ctx, slog.Default())

	if err := update.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	row := s.db.QueryRowContext(ctx,
		`UPDATE posts
		 SET title = COALESCE($1, title),
		     content = COALESCE($2, content),
		     updated_at = $3
		 WHERE id = $4 AND author_id = $5
		 RETURNING `+postColumns,
		update.Title, update.Content, time.Now().UTC(), update.ID, update.AuthorID,
	)

	post, err := scanPost(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Info("no post matched update",
				slog.String("post_id", update.ID.String()),
				slog.String("author_id", update.AuthorID.String()))
			return nil, store.ErrPostNotFound
		}
		log.Error("failed to update post",
			slog.String("post_id", update.ID.String()),
			slog.String("error", err.Error()))
		return nil, store.NewStoreError("post", "update", "failed to update post", MapError(err))
	}

	return post, nil
}

// List implements store.PostStore.
func (s *PostStore) List(ctx context.Context) ([]*domain.Post, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+postColumns+` FROM posts ORDER BY created_at, id`)
	if err != nil {
		logger.FromContextOrDefault(ctx, slog.Default()).Error("failed to list posts",
			slog.String("error", err.Error()))
		return nil, store.NewStoreError("post", "list", "failed to query posts", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	posts := make([]*domain.Post, 0)
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, store.NewStoreError("post", "list", "failed to scan post", err)
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("post", "list", "failed to iterate posts", err)
	}

	return posts, nil
}

// GetByID implements store.PostStore.
func (s *PostStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+postColumns+` FROM posts WHERE id = $1`, id)

	post, err := scanPost(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrPostNotFound
		}
		logger.FromContextOrDefault(ctx, slog.Default()).Error("failed to load post",
			slog.String("post_id", id.String()),
			slog.String("error", err.Error()))
		return nil, store.NewStoreError("post", "get", "failed to load post", MapError(err))
	}
	return post, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(row rowScanner) (*domain.Post, error) {
	var p domain.Post
	if err := row.Scan(&p.ID, &p.Title, &p.Content, &p.AuthorID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/quill-api/internal/domain"
	"github.com/phrazzld/quill-api/internal/platform/logger"
	"github.com/phrazzld/quill-api/internal/service/auth"
	"github.com/phrazzld/quill-api/internal/store"
	"golang.org/x/crypto/bcrypt"
)

// UserStore implements store.UserStore on top of database/sql.
type UserStore struct {
	db         store.DBTX
	bcryptCost int
}

var _ store.UserStore = (*UserStore)(nil)

// NewUserStore creates a UserStore. A bcrypt cost outside the range bcrypt
// accepts falls back to bcrypt.DefaultCost.
func NewUserStore(db store.DBTX, bcryptCost int) *UserStore {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &UserStore{
		db:         db,
		bcryptCost: bcryptCost,
	}
}

// BcryptCost returns the cost used for new password hashes.
func (s *UserStore) BcryptCost() int {
	return s.bcryptCost
}

// WithTx implements store.UserStore.
func (s *UserStore) WithTx(db store.DBTX) store.UserStore {
	return &UserStore{
		db:         db,
		bcryptCost: s.bcryptCost,
	}
}

// Create implements store.UserStore.
func (s *UserStore) Create(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, slog.Default())

	if err := user.Validate(); err != nil {
		log.Warn("invalid user data", slog.String("error", err.Error()))
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}
	if user.Password == "" {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, domain.ErrEmptyPassword)
	}

	hashed, err := auth.HashPassword(user.Password, s.bcryptCost)
	if err != nil {
		log.Error("failed to hash password", slog.String("error", err.Error()))
		return err
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO users (id, username, hashed_password, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		user.ID, user.Username, hashed, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if IsUniqueViolation(err) {
			log.Info("username already taken", slog.String("user_id", user.ID.String()))
			return store.ErrUsernameExists
		}
		err = MapError(err)
		log.Error("failed to insert user", slog.String("error", err.Error()))
		return store.NewStoreError("user", "create", "failed to insert user", err)
	}

	user.HashedPassword = hashed
	user.Password = ""

	log.Debug("user created", slog.String("user_id", user.ID.String()))
	return nil
}

// GetByID implements store.UserStore.
func (s *UserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, username, hashed_password, created_at, updated_at
		 FROM users WHERE id = $1`,
		id,
	)
	return s.scanUser(ctx, row, "id")
}

// GetByUsername implements store.UserStore.
func (s *UserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, username, hashed_password, created_at, updated_at
		 FROM users WHERE username = $1`,
		username,
	)
	return s.scanUser(ctx, row, "username")
}

func (s *UserStore) scanUser(ctx context.Context, row *sql.Row, lookup string) (*domain.User, error) {
	var user domain.User
	err := row.Scan(&user.ID, &user.Username, &user.HashedPassword, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrUserNotFound
		}
		logger.FromContextOrDefault(ctx, slog.Default()).Error("failed to load user",
			slog.String("lookup", lookup),
			slog.String("error", err.Error()))
		return nil, store.NewStoreError("user", "get", "failed to load user", MapError(err))
	}
	if user.HashedPassword == "" {
		return nil, store.NewStoreError("user", "get", "stored user has no password hash",
			fmt.Errorf("%w: %w", store.ErrInvalidEntity, domain.ErrEmptyHashedPassword))
	}
	return &user, nil
}

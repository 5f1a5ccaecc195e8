package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/quill-api/internal/config"
	"github.com/phrazzld/quill-api/internal/platform/sqlstore"
	"github.com/phrazzld/quill-api/internal/service"
	"github.com/phrazzld/quill-api/internal/service/auth"
	"github.com/phrazzld/quill-api/internal/store"
)

// application holds the shared dependencies and owns their cleanup.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore store.UserStore
	postStore store.PostStore

	jwtService       auth.JWTService
	passwordVerifier auth.PasswordVerifier
	postService      service.PostService
}

// newApplication wires every dependency on top of an open database.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		slog.Int("token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes))

	app.passwordVerifier = auth.NewBcryptVerifier()

	app.userStore = sqlstore.NewUserStore(db, cfg.Auth.BcryptCost)
	app.postStore = sqlstore.NewPostStore(db)

	app.postService, err = service.NewPostService(app.postStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create post service: %w", err)
	}

	logger.Info("application initialized successfully")
	return app, nil
}

// Run serves HTTP until ctx is cancelled, then shuts down and cleans up.
func (app *application) Run(ctx context.Context) error {
	defer app.cleanup()

	server := newHTTPServer(fmt.Sprintf(":%d", app.config.Server.Port), app.setupRouter())
	if err := runHTTPServer(ctx, server, app.logger); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup releases application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("error closing database connection", slog.String("error", err.Error()))
		}
	}
}

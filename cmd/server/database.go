package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/quill-api/internal/config"
	"github.com/phrazzld/quill-api/internal/platform/sqlstore"
)

// setupAppDatabase opens the configured database and verifies the connection.
func setupAppDatabase(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*sql.DB, sqlstore.Dialect, error) {
	db, dialect, err := sqlstore.Open(ctx, cfg.Database.URL, sqlstore.PoolOptions{
		MaxOpenConns: cfg.Database.MaxOpenConns,
	}, logger.With(slog.String("component", "database")))
	if err != nil {
		return nil, "", fmt.Errorf("failed to set up database: %w", err)
	}
	return db, dialect, nil
}

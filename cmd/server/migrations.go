package main

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/phrazzld/quill-api/internal/platform/sqlstore"
)

// handleMigrations runs a single migration command against db.
func handleMigrations(
	ctx context.Context,
	db *sql.DB,
	dialect sqlstore.Dialect,
	command string,
	logger *slog.Logger,
) error {
	logger.Info("executing migrations",
		slog.String("command", command),
		slog.String("dialect", string(dialect)))

	return sqlstore.Migrate(ctx, db, dialect, command, logger)
}

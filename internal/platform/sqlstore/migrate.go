package sqlstore

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const (
	migrationsDir       = "migrations"
	migrationsTableName = "schema_migrations"
)

// goose keeps its dialect, filesystem and logger in package globals.
var gooseMu sync.Mutex

// slogGooseLogger routes goose output through slog.
type slogGooseLogger struct {
	logger *slog.Logger
}

func (l *slogGooseLogger) Printf(format string, v ...interface{}) {
	l.logger.Info(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (l *slogGooseLogger) Fatalf(format string, v ...interface{}) {
	// goose calls Fatalf only from its CLI helpers; never exit from library code.
	l.logger.Error(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

// Migrate runs a goose command against db using the embedded migrations.
// Supported commands: up, down, status, version.
func Migrate(ctx context.Context, db *sql.DB, dialect Dialect, command string, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	log := logger.With(slog.String("component", "migrations"), slog.String("command", command))

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetLogger(&slogGooseLogger{logger: log})
	goose.SetBaseFS(migrationsFS)
	goose.SetTableName(migrationsTableName)
	if err := goose.SetDialect(string(dialect)); err != nil {
		return fmt.Errorf("failed to set migration dialect %q: %w", dialect, err)
	}

	var err error
	switch command {
	case "up":
		err = goose.UpContext(ctx, db, migrationsDir)
	case "down":
		err = goose.DownContext(ctx, db, migrationsDir)
	case "status":
		err = goose.StatusContext(ctx, db, migrationsDir)
	case "version":
		var version int64
		version, err = goose.GetDBVersionContext(ctx, db)
		if err == nil {
			log.Info("current schema version", slog.Int64("version", version))
		}
	default:
		return fmt.Errorf("unknown migration command %q", command)
	}
	if err != nil {
		return fmt.Errorf("migration %s failed: %w", command, err)
	}

	log.Debug("migration command completed")
	return nil
}

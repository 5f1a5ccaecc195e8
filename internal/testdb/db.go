package testdb

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/phrazzld/quill-api/internal/platform/sqlstore"
	"github.com/stretchr/testify/require"
)

// TestTimeout defines a default timeout for test database operations.
const TestTimeout = 5 * time.Second

// MemoryURL is the database URL used when no external database is configured.
const MemoryURL = "sqlite::memory:"

// DatabaseURL returns the database URL for tests. It checks QUILL_TEST_DB_URL
// and DATABASE_URL in that order and falls back to MemoryURL.
func DatabaseURL() string {
	for _, key := range []string{"QUILL_TEST_DB_URL", "DATABASE_URL"} {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return MemoryURL
}

// IsExternal reports whether tests run against a configured database server
// rather than a private in-memory database.
func IsExternal() bool {
	return DatabaseURL() != MemoryURL
}

// Open returns a migrated, empty database and registers its cleanup.
func Open(t *testing.T) *sql.DB {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()

	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))

	db, dialect, err := sqlstore.Open(ctx, DatabaseURL(), sqlstore.PoolOptions{MaxOpenConns: 4}, quiet)
	require.NoError(t, err, "Failed to open test database")

	require.NoError(t, sqlstore.Migrate(ctx, db, dialect, "up", quiet), "Failed to run migrations")

	if IsExternal() {
		ResetTables(t, db)
	}

	t.Cleanup(func() {
		if IsExternal() {
			ResetTables(t, db)
		}
		CleanupDB(t, db)
	})

	return db
}

// ResetTables deletes every row the application owns, children first.
func ResetTables(t *testing.T, db *sql.DB) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()

	for _, table := range []string{"posts", "users"} {
		_, err := db.ExecContext(ctx, "DELETE FROM "+table)
		require.NoError(t, err, "Failed to empty table %s", table)
	}
}

// WithTx runs fn inside a transaction that is rolled back afterwards.
func WithTx(t *testing.T, db *sql.DB, fn func(t *testing.T, tx *sql.Tx)) {
	t.Helper()

	tx, err := db.Begin()
	require.NoError(t, err, "Failed to begin transaction")

	defer func() {
		err := tx.Rollback()
		// sql.ErrTxDone is expected if fn already committed or rolled back
		if err != nil && !errors.Is(err, sql.ErrTxDone) {
			t.Logf("Warning: failed to rollback transaction: %v", err)
		}
	}()

	fn(t, tx)
}

// CleanupDB closes db, logging instead of failing on error.
func CleanupDB(t *testing.T, db *sql.DB) {
	t.Helper()
	if db == nil {
		return
	}
	if err := db.Close(); err != nil {
		t.Logf("Warning: failed to close database connection: %v", err)
	}
}

package sqlstore

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/quill-api/internal/store"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// PostgreSQL error codes
const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
	notNullViolationCode    = "23502"
)

// MapError maps a driver error to the matching store error, wrapping the
// original so the details survive for logging.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %v", store.ErrNotFound, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolationCode:
			return fmt.Errorf("%w: %v", store.ErrDuplicate, err)
		case foreignKeyViolationCode:
			return fmt.Errorf(
				"%w: foreign key violation (%s): %v",
				store.ErrInvalidEntity,
				pgErr.ConstraintName,
				err,
			)
		case notNullViolationCode:
			return fmt.Errorf(
				"%w: not null violation (%s): %v",
				store.ErrInvalidEntity,
				pgErr.ColumnName,
				err,
			)
		}
		return err
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		switch liteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return fmt.Errorf("%w: %v", store.ErrDuplicate, err)
		case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
			return fmt.Errorf("%w: foreign key violation: %v", store.ErrInvalidEntity, err)
		case sqlite3.SQLITE_CONSTRAINT_NOTNULL:
			return fmt.Errorf("%w: not null violation: %v", store.ErrInvalidEntity, err)
		}
		// Extended result codes are off on some builds; fall back to the message.
		msg := liteErr.Error()
		switch {
		case strings.Contains(msg, "UNIQUE constraint failed"):
			return fmt.Errorf("%w: %v", store.ErrDuplicate, err)
		case strings.Contains(msg, "FOREIGN KEY constraint failed"):
			return fmt.Errorf("%w: foreign key violation: %v", store.ErrInvalidEntity, err)
		}
	}

	return err
}

// IsUniqueViolation reports whether err is a unique constraint violation from
// either driver.
func IsUniqueViolation(err error) bool {
	return errors.Is(MapError(err), store.ErrDuplicate)
}

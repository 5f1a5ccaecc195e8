// Package sqlstore provides SQL implementations of the storage interfaces
// defined in internal/store. The same statements run on PostgreSQL (through
// the pgx stdlib driver) in production and on SQLite (through the pure-Go
// modernc driver) for local development and tests. The package also owns the
// schema, as goose migrations embedded into the binary.
package sqlstore

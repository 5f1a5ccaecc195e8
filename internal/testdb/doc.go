// Package testdb provides database helpers for tests.
//
// Every call to Open returns a freshly migrated database. By default that is
// an in-memory SQLite database private to the calling test. Setting
// QUILL_TEST_DB_URL (or DATABASE_URL) points the helpers at a real PostgreSQL
// server instead; the tables are then emptied before and after each test, so
// such tests must not run in parallel.
//
// Basic usage:
//
//	func TestMyFeature(t *testing.T) {
//	    db := testdb.Open(t)
//
//	    testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//	        users := sqlstore.NewUserStore(tx, bcrypt.MinCost)
//	        ...
//	    })
//	}
package testdb

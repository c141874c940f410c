// Package dbtest provides migrated throwaway databases for tests
package dbtest

import (
	"database/sql"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
	"xidach-server/pkg/db"
)

// MigrationsPath returns the path of the sql directory at the root of the module
func MigrationsPath() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "..", "..", "sql")
}

// Open returns a migrated sqlite database in a temporary directory
// The database is closed when the test ends.
func Open(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(db.DriverSQLite, db.SQLiteDSN(filepath.Join(t.TempDir(), "xidach.db")))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = conn.Close()
	})

	require.NoError(t, db.Migrate(conn, db.DriverSQLite, MigrationsPath()))
	return conn
}

// CreateAccount inserts an account with a starting balance
func CreateAccount(t *testing.T, conn *sql.DB, id int64, balance int64) {
	t.Helper()

	_, err := conn.Exec(`INSERT INTO accounts (id, balance) VALUES ($1, $2)`, id, balance)
	require.NoError(t, err)
}

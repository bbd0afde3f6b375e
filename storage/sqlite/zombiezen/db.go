package zombiezen

import (
	"fmt"
	"runtime"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

// NewPool creates a read-write SQLite connection pool for the sense
// database at dbPath, one connection per CPU.
func NewPool(dbPath string) (*sqlitex.Pool, error) {
	return newPool(dbPath, nil)
}

// NewReadOnlyPool creates a pool whose connections reject writes, for
// lookups only. The database keeps its journal mode.
func NewReadOnlyPool(dbPath string) (*sqlitex.Pool, error) {
	return newPool(dbPath, func(conn *sqlite.Conn) error {
		return sqlitex.ExecuteTransient(conn, "PRAGMA query_only = ON;", nil)
	})
}

func newPool(dbPath string, prepare sqlitex.ConnPrepareFunc) (*sqlitex.Pool, error) {
	initString := fmt.Sprintf("file:%s", dbPath)

	// default flags: sqlite.OpenReadWrite | sqlite.OpenCreate | sqlite.OpenWAL | sqlite.OpenURI
	pool, err := sqlitex.NewPool(initString, sqlitex.PoolOptions{
		PoolSize:    runtime.NumCPU(),
		PrepareConn: prepare,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create sense pool at %s: %w", dbPath, err)
	}
	return pool, nil
}

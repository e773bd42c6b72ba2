package diskmon

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/u1and0/DiskUsageMonitor/internal/adapters/probe"
	"github.com/u1and0/DiskUsageMonitor/internal/adapters/store"
)

// NewProber builds a probe backend by name: "df" shells out to df(1) under
// the given timeout, "statfs" reads kernel filesystem statistics directly
// (Linux only).
func NewProber(backend, mount string, timeout time.Duration) (UsageProber, error) {
	switch backend {
	case "df":
		return probe.NewDFProber(mount, timeout), nil
	case "statfs":
		return probe.NewStatfsProber(mount), nil
	default:
		return nil, fmt.Errorf("%w: probe backend %q", ErrInvalidArgument, backend)
	}
}

// NewMemStore returns an ephemeral in-memory store, handy for tests and for
// embedders that render from live data only.
func NewMemStore() *MemStore {
	return store.NewMemStore()
}

// NewFileStore returns an append-only log-file store persisted at path.
func NewFileStore(path string) *FileStore {
	return store.NewFileStore(path)
}

// NewSQLiteStore wraps an already opened SQLite handle. The caller keeps
// ownership of db.
func NewSQLiteStore(db *sql.DB, table string) *SQLStore {
	return store.NewSQLiteStore(db, table)
}

// NewPostgresStore wraps an already opened Postgres handle. The caller keeps
// ownership of db.
func NewPostgresStore(db *sql.DB, table string) *SQLStore {
	return store.NewPostgresStore(db, table)
}

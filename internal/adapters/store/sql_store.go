package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/u1and0/DiskUsageMonitor/internal/domain"
	"github.com/u1and0/DiskUsageMonitor/internal/ports"
)

// SQLStore persists samples in a single append-only table via database/sql.
// Two dialects are supported: SQLite, the on-disk default, and Postgres for
// deployments that already run one.
type SQLStore struct {
	db     *sql.DB
	table  string
	flavor flavor

	insertStmt string
	readStmt   string
}

var _ ports.SampleStore = (*SQLStore)(nil)

type flavor int

const (
	flavorSQLite flavor = iota
	flavorPostgres
)

// NewSQLiteStore wraps db with SQLite dialect SQL. Init switches the database
// to WAL journaling so window readers never block the sampler's writes.
func NewSQLiteStore(db *sql.DB, table string) *SQLStore {
	return newSQLStore(db, table, flavorSQLite)
}

// NewPostgresStore wraps db with Postgres placeholder SQL.
func NewPostgresStore(db *sql.DB, table string) *SQLStore {
	return newSQLStore(db, table, flavorPostgres)
}

func newSQLStore(db *sql.DB, table string, fl flavor) *SQLStore {
	s := &SQLStore{db: db, table: table, flavor: fl}
	s.insertStmt = s.buildInsert()
	s.readStmt = s.buildRead()
	return s
}

func (s *SQLStore) Name() string {
	if s.flavor == flavorPostgres {
		return "postgres"
	}
	return "sqlite"
}

func (s *SQLStore) Init(ctx context.Context) error {
	if s.flavor == flavorSQLite {
		if _, err := s.db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
			return fmt.Errorf("%w: set journal mode: %w", ports.ErrStoreUnavailable, err)
		}
		if _, err := s.db.ExecContext(ctx, "PRAGMA busy_timeout=5000"); err != nil {
			return fmt.Errorf("%w: set busy timeout: %w", ports.ErrStoreUnavailable, err)
		}
	}
	if _, err := s.db.ExecContext(ctx, s.buildCreate()); err != nil {
		return fmt.Errorf("%w: create table %s: %w", ports.ErrStoreUnavailable, s.table, err)
	}
	return nil
}

func (s *SQLStore) Insert(ctx context.Context, sample domain.Sample) error {
	res, err := s.db.ExecContext(ctx, s.insertStmt, sample.Timestamp, sample.Size, sample.Used)
	if err != nil {
		return fmt.Errorf("%w: insert sample: %w", ports.ErrStoreUnavailable, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: insert sample: %w", ports.ErrStoreUnavailable, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %d", ports.ErrDuplicateTimestamp, sample.Timestamp)
	}
	return nil
}

func (s *SQLStore) ReadRecent(ctx context.Context, limit int) ([]domain.Sample, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("%w: read limit %d", ports.ErrInvalidArgument, limit)
	}

	rows, err := s.db.QueryContext(ctx, s.readStmt, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: read recent: %w", ports.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	var out []domain.Sample
	for rows.Next() {
		var sm domain.Sample
		if err := rows.Scan(&sm.Timestamp, &sm.Size, &sm.Used); err != nil {
			return nil, fmt.Errorf("%w: scan sample: %w", ports.ErrStoreUnavailable, err)
		}
		out = append(out, sm)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: read recent: %w", ports.ErrStoreUnavailable, err)
	}
	return out, nil
}

// buildCreate emits the table DDL. SQLite keeps the upstream column types;
// Postgres needs BIGINT so byte counts survive past 2^31.
func (s *SQLStore) buildCreate() string {
	colType := "INTEGER"
	if s.flavor == flavorPostgres {
		colType = "BIGINT"
	}
	var b strings.Builder
	b.WriteString("CREATE TABLE IF NOT EXISTS ")
	b.WriteString(s.table)
	b.WriteString(" (timestamp ")
	b.WriteString(colType)
	b.WriteString(" PRIMARY KEY, size ")
	b.WriteString(colType)
	b.WriteString(" NOT NULL, used ")
	b.WriteString(colType)
	b.WriteString(" NOT NULL)")
	return b.String()
}

// buildInsert emits an idempotent append: a timestamp collision affects zero
// rows, which Insert reports as ErrDuplicateTimestamp.
func (s *SQLStore) buildInsert() string {
	var b strings.Builder
	b.WriteString("INSERT INTO ")
	b.WriteString(s.table)
	b.WriteString(" (timestamp, size, used) VALUES (")
	b.WriteString(s.placeholders(3))
	b.WriteString(") ON CONFLICT (timestamp) DO NOTHING")
	return b.String()
}

// buildRead selects the newest rows by descending timestamp, then re-sorts
// ascending so callers always see chronological order.
func (s *SQLStore) buildRead() string {
	var b strings.Builder
	b.WriteString("SELECT timestamp, size, used FROM (SELECT timestamp, size, used FROM ")
	b.WriteString(s.table)
	b.WriteString(" ORDER BY timestamp DESC LIMIT ")
	b.WriteString(s.placeholders(1))
	b.WriteString(") AS sub ORDER BY timestamp ASC")
	return b.String()
}

func (s *SQLStore) placeholders(n int) string {
	if s.flavor == flavorPostgres {
		parts := make([]string, n)
		for i := range parts {
			parts[i] = fmt.Sprintf("$%d", i+1)
		}
		return strings.Join(parts, ", ")
	}
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

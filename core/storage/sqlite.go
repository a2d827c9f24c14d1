package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // pure-Go sqlite driver
)

// SQLite is a Connector backed by an embedded SQLite database. Each
// namespace maps to its own table (cache_<namespace>) holding the raw value
// alongside its TTL and write timestamp; expiry is enforced in queries and
// by the periodic ClearExpired sweep.
//
// The database file is shared safely between concurrent callers via WAL
// mode and a busy timeout; SQLite's own locking provides write atomicity.
type SQLite struct {
	db *sql.DB
}

var _ Connector = (*SQLite)(nil)

// NewSQLite opens (creating if needed) the database at path. Use ":memory:"
// for an ephemeral database.
func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Join(ErrConnection, err)
	}
	if path == ":memory:" {
		// Each pooled connection would otherwise open its own empty
		// in-memory database.
		db.SetMaxOpenConns(1)
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, errors.Join(ErrConnection, err)
		}
	}
	return &SQLite{db: db}, nil
}

func (s *SQLite) table(namespace string) string {
	return "cache_" + namespace
}

func (s *SQLite) Init(ctx context.Context, namespace string) error {
	if !ValidNamespace(namespace) {
		return fmt.Errorf("%w: %q", ErrInvalidNamespace, namespace)
	}
	if err := s.db.PingContext(ctx); err != nil {
		return errors.Join(ErrConnection, err)
	}
	// Namespace is validated above, so interpolating the table name is safe.
	query := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		key TEXT PRIMARY KEY,
		value BLOB NOT NULL,
		ttl INTEGER,
		cached_at INTEGER NOT NULL
	)`, s.table(namespace))
	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return errors.Join(ErrConnection, err)
	}
	return nil
}

func (s *SQLite) Get(ctx context.Context, namespace, key string) ([]byte, bool, error) {
	query := fmt.Sprintf("SELECT value, ttl, cached_at FROM %s WHERE key = ?", s.table(namespace))
	var (
		value    []byte
		ttl      sql.NullInt64
		cachedAt int64
	)
	err := s.db.QueryRowContext(ctx, query, key).Scan(&value, &ttl, &cachedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Join(ErrConnection, err)
	}
	if ttl.Valid && time.Now().Unix() >= cachedAt+ttl.Int64 {
		return nil, false, nil
	}
	return value, true, nil
}

func (s *SQLite) Set(ctx context.Context, namespace, key string, value []byte, ttl time.Duration) error {
	query := fmt.Sprintf(
		"INSERT OR REPLACE INTO %s (key, value, ttl, cached_at) VALUES (?, ?, ?, ?)",
		s.table(namespace),
	)
	var ttlSecs sql.NullInt64
	if ttl > 0 {
		ttlSecs = sql.NullInt64{Int64: int64(ttl / time.Second), Valid: true}
	}
	if _, err := s.db.ExecContext(ctx, query, key, value, ttlSecs, time.Now().Unix()); err != nil {
		return errors.Join(ErrConnection, err)
	}
	return nil
}

func (s *SQLite) Delete(ctx context.Context, namespace, key string) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE key = ?", s.table(namespace))
	if _, err := s.db.ExecContext(ctx, query, key); err != nil {
		return errors.Join(ErrConnection, err)
	}
	return nil
}

func (s *SQLite) ClearExpired(ctx context.Context, namespace string) error {
	query := fmt.Sprintf(
		"DELETE FROM %s WHERE ttl IS NOT NULL AND cached_at + ttl <= ?",
		s.table(namespace),
	)
	if _, err := s.db.ExecContext(ctx, query, time.Now().Unix()); err != nil {
		return errors.Join(ErrConnection, err)
	}
	return nil
}

func (s *SQLite) ListValues(ctx context.Context, namespace string) ([][]byte, error) {
	query := fmt.Sprintf(
		"SELECT value FROM %s WHERE ttl IS NULL OR cached_at + ttl > ?",
		s.table(namespace),
	)
	rows, err := s.db.QueryContext(ctx, query, time.Now().Unix())
	if err != nil {
		return nil, errors.Join(ErrConnection, err)
	}
	defer rows.Close()

	var values [][]byte
	for rows.Next() {
		var value []byte
		if err := rows.Scan(&value); err != nil {
			return nil, errors.Join(ErrConnection, err)
		}
		values = append(values, value)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Join(ErrConnection, err)
	}
	return values, nil
}

func (s *SQLite) Close(context.Context) error {
	return s.db.Close()
}

package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS route_cache (
	key        TEXT PRIMARY KEY,
	data       BLOB NOT NULL,
	expires_at INTEGER NOT NULL DEFAULT 0
)`

// SQLiteCache stores entries in one table of an embedded database.
type SQLiteCache struct {
	db *sql.DB
}

// NewSQLiteCache opens (or creates) the database at path.
func NewSQLiteCache(ctx context.Context, path string) (*SQLiteCache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// One writer at a time; sqlite serialises writes anyway.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &SQLiteCache{db: db}, nil
}

// Get returns a live entry; expired rows are deleted on read.
func (c *SQLiteCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var (
		data []byte
		exp  int64
	)
	err := c.db.QueryRowContext(ctx,
		`SELECT data, expires_at FROM route_cache WHERE key = ?`, key,
	).Scan(&data, &exp)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get cached route: %w", err)
	}

	if exp != 0 && expired(time.Unix(0, exp)) {
		return nil, false, c.Delete(ctx, key)
	}

	return data, true, nil
}

// Set upserts an entry.
func (c *SQLiteCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	var exp int64
	if at := expiry(ttl); !at.IsZero() {
		exp = at.UnixNano()
	}
	_, err := c.db.ExecContext(ctx, `
		INSERT INTO route_cache (key, data, expires_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET data = excluded.data, expires_at = excluded.expires_at`,
		key, data, exp,
	)
	if err != nil {
		return fmt.Errorf("failed to cache route: %w", err)
	}
	return nil
}

// Delete removes an entry.
func (c *SQLiteCache) Delete(ctx context.Context, key string) error {
	if _, err := c.db.ExecContext(ctx, `DELETE FROM route_cache WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to delete cached route: %w", err)
	}
	return nil
}

// Close closes the database.
func (c *SQLiteCache) Close() error {
	return c.db.Close()
}

var _ Cache = (*SQLiteCache)(nil)

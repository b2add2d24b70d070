// Package cache stores solved routes keyed by the cost matrix they solve.
//
// Backends share one byte-oriented interface with optional TTL:
//
//   - NullCache: never stores (caching disabled).
//   - FileCache: one JSON file per entry, for the CLI.
//   - RedisCache: shared cache for several servers.
//   - SQLiteCache: embedded single-file database.
//   - MongoCache: document store with one document per entry.
//
// Keys come from Key, which hashes the canonical text form of a matrix, so
// two encodings of the same matrix share an entry.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/katalvlaran/littletsp/matrix"
)

// Cache is a byte store with per-entry expiry. A ttl ≤ 0 stores forever.
// Get reports a miss as (nil, false, nil); errors are backend failures.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Backend names accepted by Open.
const (
	BackendNone   = "none"
	BackendFile   = "file"
	BackendRedis  = "redis"
	BackendSQLite = "sqlite"
	BackendMongo  = "mongo"
)

// ErrUnknownBackend is returned by Open for an unsupported backend name.
var ErrUnknownBackend = errors.New("cache: unknown backend")

// keyPrefix namespaces route entries in shared stores.
const keyPrefix = "route:"

// Key returns the cache key of the optimal route for m.
func Key(m *matrix.Costs) string {
	return keyPrefix + Hash([]byte(m.String()))
}

// Hash computes the SHA-256 of data as 64 hex characters.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// expiry converts a ttl into an absolute deadline; zero means none.
func expiry(ttl time.Duration) time.Time {
	if ttl <= 0 {
		return time.Time{}
	}
	return time.Now().Add(ttl)
}

// expired reports whether a deadline from expiry has passed.
func expired(at time.Time) bool {
	return !at.IsZero() && time.Now().After(at)
}

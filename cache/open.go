package cache

import (
	"context"
	"fmt"
)

// Options selects and configures a backend for Open.
type Options struct {
	Backend       string // none, file, redis, sqlite, mongo
	Dir           string // file
	RedisAddr     string // redis
	SQLitePath    string // sqlite
	MongoURI      string // mongo
	MongoDatabase string // mongo
}

// Open builds the backend named by opts.Backend. An empty name is "none".
func Open(ctx context.Context, opts Options) (Cache, error) {
	var (
		c   Cache
		err error
	)
	switch opts.Backend {
	case "", BackendNone:
		return NewNullCache(), nil
	case BackendFile:
		c, err = NewFileCache(opts.Dir)
	case BackendRedis:
		c, err = NewRedisCache(ctx, opts.RedisAddr)
	case BackendSQLite:
		c, err = NewSQLiteCache(ctx, opts.SQLitePath)
	case BackendMongo:
		c, err = NewMongoCache(ctx, opts.MongoURI, opts.MongoDatabase)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, opts.Backend)
	}
	if err != nil {
		return nil, err
	}

	return c, nil
}

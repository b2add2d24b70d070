// Package config loads the littletsp TOML configuration file.
//
// Every field has a default, so an absent file or an empty one is valid:
//
//	[log]
//	level = "info"
//
//	[server]
//	addr = ":8080"
//	read_timeout = "10s"
//	write_timeout = "2m"
//
//	[solver]
//	algorithm = "little"
//	max_nodes = 20
//	timeout = "1m"
//	workers = 4
//
//	[cache]
//	backend = "file"       # none, file, redis, sqlite, mongo
//	dir = "~/.cache/littletsp"
//	ttl = "168h"
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/katalvlaran/littletsp/cache"
	"github.com/katalvlaran/littletsp/tsp"
)

// appName names the cache directory.
const appName = "littletsp"

// ErrInvalid is wrapped by Validate for every rejected field.
var ErrInvalid = errors.New("config: invalid value")

// Config is the whole configuration file.
type Config struct {
	Log    Log    `toml:"log"`
	Server Server `toml:"server"`
	Solver Solver `toml:"solver"`
	Cache  Cache  `toml:"cache"`
}

// Log configures the process logger.
type Log struct {
	Level string `toml:"level"`
}

// Server configures the HTTP API.
type Server struct {
	Addr         string   `toml:"addr"`
	ReadTimeout  Duration `toml:"read_timeout"`
	WriteTimeout Duration `toml:"write_timeout"`
}

// Solver configures searches.
type Solver struct {
	Algorithm string   `toml:"algorithm"`
	MaxNodes  int      `toml:"max_nodes"`
	Timeout   Duration `toml:"timeout"` // 0 disables
	Workers   int      `toml:"workers"`
}

// Cache configures the route cache.
type Cache struct {
	Backend       string   `toml:"backend"`
	Dir           string   `toml:"dir"`
	TTL           Duration `toml:"ttl"`
	RedisAddr     string   `toml:"redis_addr"`
	SQLitePath    string   `toml:"sqlite_path"`
	MongoURI      string   `toml:"mongo_uri"`
	MongoDatabase string   `toml:"mongo_database"`
}

// Duration is a time.Duration written as "90s" or "1m30s" in TOML.
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Log: Log{Level: "info"},
		Server: Server{
			Addr:         ":8080",
			ReadTimeout:  Duration{10 * time.Second},
			WriteTimeout: Duration{2 * time.Minute},
		},
		Solver: Solver{
			Algorithm: tsp.LittleBranchAndBound.String(),
			MaxNodes:  tsp.DefaultMaxNodes,
			Timeout:   Duration{time.Minute},
			Workers:   runtime.GOMAXPROCS(0),
		},
		Cache: Cache{
			Backend:       cache.BackendFile,
			Dir:           defaultCacheDir(),
			TTL:           Duration{7 * 24 * time.Hour},
			RedisAddr:     "localhost:6379",
			SQLitePath:    appName + ".db",
			MongoURI:      "mongodb://localhost:27017",
			MongoDatabase: appName,
		},
	}
}

// Load reads path over the defaults and validates the result. An empty path
// returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%w: unknown key %q in %s", ErrInvalid, undecoded[0].String(), path)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate rejects values no component can run with.
func (c Config) Validate() error {
	if _, err := c.LogLevel(); err != nil {
		return fmt.Errorf("%w: log.level: %w", ErrInvalid, err)
	}
	if _, err := tsp.ParseAlgorithm(c.Solver.Algorithm); err != nil {
		return fmt.Errorf("%w: solver.algorithm %q", ErrInvalid, c.Solver.Algorithm)
	}
	if c.Solver.MaxNodes != 0 && c.Solver.MaxNodes < tsp.MinNodes {
		return fmt.Errorf("%w: solver.max_nodes must be 0 or ≥ %d", ErrInvalid, tsp.MinNodes)
	}
	if c.Solver.Workers < 1 {
		return fmt.Errorf("%w: solver.workers must be ≥ 1", ErrInvalid)
	}
	if c.Solver.Timeout.Duration < 0 || c.Cache.TTL.Duration < 0 {
		return fmt.Errorf("%w: durations must not be negative", ErrInvalid)
	}

	switch c.Cache.Backend {
	case cache.BackendNone:
	case cache.BackendFile:
		if c.Cache.Dir == "" {
			return fmt.Errorf("%w: cache.dir is required for the file backend", ErrInvalid)
		}
	case cache.BackendRedis:
		if c.Cache.RedisAddr == "" {
			return fmt.Errorf("%w: cache.redis_addr is required", ErrInvalid)
		}
	case cache.BackendSQLite:
		if c.Cache.SQLitePath == "" {
			return fmt.Errorf("%w: cache.sqlite_path is required", ErrInvalid)
		}
	case cache.BackendMongo:
		if c.Cache.MongoURI == "" || c.Cache.MongoDatabase == "" {
			return fmt.Errorf("%w: cache.mongo_uri and cache.mongo_database are required", ErrInvalid)
		}
	default:
		return fmt.Errorf("%w: cache.backend %q", ErrInvalid, c.Cache.Backend)
	}

	return nil
}

// LogLevel parses Log.Level.
func (c Config) LogLevel() (log.Level, error) {
	return log.ParseLevel(c.Log.Level)
}

// SolveOptions converts the solver section. Validate must have passed.
func (c Config) SolveOptions() tsp.Options {
	algo, _ := tsp.ParseAlgorithm(c.Solver.Algorithm)
	return tsp.Options{Algo: algo, MaxNodes: c.Solver.MaxNodes}
}

// CacheOptions converts the cache section for cache.Open.
func (c Config) CacheOptions() cache.Options {
	return cache.Options{
		Backend:       c.Cache.Backend,
		Dir:           c.Cache.Dir,
		RedisAddr:     c.Cache.RedisAddr,
		SQLitePath:    c.Cache.SQLitePath,
		MongoURI:      c.Cache.MongoURI,
		MongoDatabase: c.Cache.MongoDatabase,
	}
}

// defaultCacheDir follows XDG (~/.cache/littletsp/).
func defaultCacheDir() string {
	if home := os.Getenv("XDG_CACHE_HOME"); home != "" {
		return filepath.Join(home, appName)
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".cache", appName)
	}
	return filepath.Join(os.TempDir(), appName)
}

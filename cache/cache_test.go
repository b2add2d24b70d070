package cache_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/katalvlaran/littletsp/cache"
	"github.com/katalvlaran/littletsp/matrix"
	"github.com/stretchr/testify/require"
)

// exercise runs the shared contract against one backend.
func exercise(t *testing.T, c cache.Cache) {
	t.Helper()
	ctx := t.Context()

	_, hit, err := c.Get(ctx, "route:missing")
	require.NoError(t, err)
	require.False(t, hit)

	require.NoError(t, c.Set(ctx, "route:a", []byte(`{"cost":80}`), 0))
	data, hit, err := c.Get(ctx, "route:a")
	require.NoError(t, err)
	require.True(t, hit)
	require.JSONEq(t, `{"cost":80}`, string(data))

	// Overwrite.
	require.NoError(t, c.Set(ctx, "route:a", []byte(`{"cost":81}`), time.Hour))
	data, _, err = c.Get(ctx, "route:a")
	require.NoError(t, err)
	require.JSONEq(t, `{"cost":81}`, string(data))

	require.NoError(t, c.Delete(ctx, "route:a"))
	_, hit, err = c.Get(ctx, "route:a")
	require.NoError(t, err)
	require.False(t, hit)
	require.NoError(t, c.Delete(ctx, "route:a"))

	// Expired entries read as misses.
	require.NoError(t, c.Set(ctx, "route:b", []byte("x"), time.Nanosecond))
	time.Sleep(5 * time.Millisecond)
	_, hit, err = c.Get(ctx, "route:b")
	require.NoError(t, err)
	require.False(t, hit)
}

func TestFileCache(t *testing.T) {
	c, err := cache.NewFileCache(filepath.Join(t.TempDir(), "routes"))
	require.NoError(t, err)
	defer c.Close()

	exercise(t, c)
}

func TestSQLiteCache(t *testing.T) {
	c, err := cache.NewSQLiteCache(t.Context(), filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	defer c.Close()

	exercise(t, c)
}

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := cache.NewNullCache()
	defer c.Close()

	require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Hour))
	data, hit, err := c.Get(ctx, "k")
	require.NoError(t, err)
	require.False(t, hit)
	require.Nil(t, data)
	require.NoError(t, c.Delete(ctx, "k"))
}

func TestKey(t *testing.T) {
	a, err := matrix.FromInts([][]int{{-1, 1, 2}, {3, -1, 4}, {5, 6, -1}})
	require.NoError(t, err)
	b, err := matrix.ReadText(strings.NewReader("-  1 2\n3 - 4\n5 6 -1\n"))
	require.NoError(t, err)

	ka := cache.Key(a)
	require.True(t, strings.HasPrefix(ka, "route:"))
	require.Len(t, ka, len("route:")+64)
	require.Equal(t, ka, cache.Key(b), "same matrix, different spelling")

	require.NoError(t, b.Set(0, 1, matrix.Weight(9)))
	require.NotEqual(t, ka, cache.Key(b))
}

func TestOpen(t *testing.T) {
	c, err := cache.Open(t.Context(), cache.Options{})
	require.NoError(t, err)
	require.IsType(t, &cache.NullCache{}, c)

	c, err = cache.Open(t.Context(), cache.Options{Backend: cache.BackendFile, Dir: t.TempDir()})
	require.NoError(t, err)
	require.IsType(t, &cache.FileCache{}, c)

	_, err = cache.Open(t.Context(), cache.Options{Backend: "memcached"})
	require.ErrorIs(t, err, cache.ErrUnknownBackend)
}

// Remote backends run only when a server is provided, e.g.
// LITTLETSP_TEST_REDIS=localhost:6379 go test ./cache
func TestRedisCache(t *testing.T) {
	addr := os.Getenv("LITTLETSP_TEST_REDIS")
	if addr == "" {
		t.Skip("LITTLETSP_TEST_REDIS not set")
	}
	c, err := cache.NewRedisCache(t.Context(), addr)
	require.NoError(t, err)
	defer c.Close()

	exercise(t, c)
}

func TestMongoCache(t *testing.T) {
	uri := os.Getenv("LITTLETSP_TEST_MONGO")
	if uri == "" {
		t.Skip("LITTLETSP_TEST_MONGO not set")
	}
	c, err := cache.NewMongoCache(t.Context(), uri, "littletsp_test")
	require.NoError(t, err)
	defer c.Close()

	exercise(t, c)
}

func TestOpen_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(t.Context(), 2*time.Second)
	defer cancel()

	_, err := cache.Open(ctx, cache.Options{Backend: cache.BackendRedis, RedisAddr: "127.0.0.1:1"})
	require.Error(t, err)
}

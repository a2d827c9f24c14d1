package storage_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sessionkit/core/storage"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *storage.Redis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return mr, storage.NewRedis(client)
}

func TestRedisConnector(t *testing.T) {
	t.Parallel()

	mr, conn := newTestRedis(t)
	connectorContract(t, conn, time.Second, func() {
		mr.FastForward(2 * time.Second)
	})
}

func TestRedisConnector_NamespacePrefixing(t *testing.T) {
	t.Parallel()

	mr, conn := newTestRedis(t)
	ctx := context.Background()

	require.NoError(t, conn.Init(ctx, "sessions"))
	require.NoError(t, conn.Set(ctx, "sessions", "abc", []byte("rec"), 0))

	// The physical key carries the namespace prefix.
	got, err := mr.Get("sessions:abc")
	require.NoError(t, err)
	assert.Equal(t, "rec", got)
}

func TestRedisConnector_ListValuesScansOnlyNamespace(t *testing.T) {
	t.Parallel()

	mr, conn := newTestRedis(t)
	ctx := context.Background()

	require.NoError(t, conn.Init(ctx, "sessions"))
	require.NoError(t, conn.Init(ctx, "usercache"))
	require.NoError(t, conn.Set(ctx, "sessions", "s1", []byte("a"), 0))
	require.NoError(t, conn.Set(ctx, "sessions", "s2", []byte("b"), 0))
	require.NoError(t, conn.Set(ctx, "usercache", "u1", []byte("c"), 0))
	mr.Set("unrelated", "d")

	values, err := conn.ListValues(ctx, "sessions")
	require.NoError(t, err)
	assert.ElementsMatch(t, [][]byte{[]byte("a"), []byte("b")}, values)
}

func TestRedisConnector_InitUnreachable(t *testing.T) {
	t.Parallel()

	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 100 * time.Millisecond})
	t.Cleanup(func() { _ = client.Close() })
	conn := storage.NewRedis(client)

	err := conn.Init(context.Background(), "sessions")
	require.ErrorIs(t, err, storage.ErrConnection)
}

func TestNewRedisFromURL_Invalid(t *testing.T) {
	t.Parallel()

	_, err := storage.NewRedisFromURL("not-a-url")
	require.ErrorIs(t, err, storage.ErrConnection)
}

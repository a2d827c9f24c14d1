package storage_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sessionkit/core/storage"
)

// connectorContract runs the behavior every backend must share. ttl is the
// shortest expiry the backend can represent, and expire makes that ttl
// elapse (sleeping, or fast-forwarding a fake server clock).
func connectorContract(t *testing.T, conn storage.Connector, ttl time.Duration, expire func()) {
	t.Helper()
	ctx := context.Background()
	const ns = "contract"

	require.NoError(t, conn.Init(ctx, ns))
	require.NoError(t, conn.Init(ctx, ns), "init must be idempotent")

	t.Run("rejects invalid namespace", func(t *testing.T) {
		err := conn.Init(ctx, "no spaces; DROP TABLE")
		require.ErrorIs(t, err, storage.ErrInvalidNamespace)
	})

	t.Run("get miss on unknown key", func(t *testing.T) {
		value, found, err := conn.Get(ctx, ns, "missing")
		require.NoError(t, err)
		assert.False(t, found)
		assert.Nil(t, value)
	})

	t.Run("set get roundtrip", func(t *testing.T) {
		require.NoError(t, conn.Set(ctx, ns, "alpha", []byte("one"), 0))

		value, found, err := conn.Get(ctx, ns, "alpha")
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, []byte("one"), value)
	})

	t.Run("set overwrites", func(t *testing.T) {
		require.NoError(t, conn.Set(ctx, ns, "beta", []byte("old"), 0))
		require.NoError(t, conn.Set(ctx, ns, "beta", []byte("new"), 0))

		value, found, err := conn.Get(ctx, ns, "beta")
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, []byte("new"), value)
	})

	t.Run("delete removes and tolerates absence", func(t *testing.T) {
		require.NoError(t, conn.Set(ctx, ns, "gamma", []byte("x"), 0))
		require.NoError(t, conn.Delete(ctx, ns, "gamma"))

		_, found, err := conn.Get(ctx, ns, "gamma")
		require.NoError(t, err)
		assert.False(t, found)

		require.NoError(t, conn.Delete(ctx, ns, "gamma"), "deleting absent key must not error")
	})

	t.Run("ttl lapse hides entry without sweep", func(t *testing.T) {
		require.NoError(t, conn.Set(ctx, ns, "shortlived", []byte("x"), ttl))

		value, found, err := conn.Get(ctx, ns, "shortlived")
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, []byte("x"), value)

		expire()

		_, found, err = conn.Get(ctx, ns, "shortlived")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("clear expired keeps live entries", func(t *testing.T) {
		require.NoError(t, conn.Set(ctx, ns, "doomed1", []byte("a"), ttl))
		require.NoError(t, conn.Set(ctx, ns, "doomed2", []byte("b"), ttl))
		require.NoError(t, conn.Set(ctx, ns, "survivor", []byte("c"), 0))

		expire()
		require.NoError(t, conn.ClearExpired(ctx, ns))

		values, err := conn.ListValues(ctx, ns)
		require.NoError(t, err)
		assert.Contains(t, values, []byte("c"))
		assert.NotContains(t, values, []byte("a"))
		assert.NotContains(t, values, []byte("b"))
	})

	t.Run("list values reflects only non-expired entries", func(t *testing.T) {
		const listNS = "contract_list"
		require.NoError(t, conn.Init(ctx, listNS))

		require.NoError(t, conn.Set(ctx, listNS, "k1", []byte("v1"), 0))
		require.NoError(t, conn.Set(ctx, listNS, "k2", []byte("v2"), 0))
		require.NoError(t, conn.Set(ctx, listNS, "k3", []byte("v3"), ttl))

		expire()

		values, err := conn.ListValues(ctx, listNS)
		require.NoError(t, err)
		assert.ElementsMatch(t, [][]byte{[]byte("v1"), []byte("v2")}, values)
	})
}

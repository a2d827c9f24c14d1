package user_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sessionkit/core/storage"
	"github.com/dmitrymomot/sessionkit/core/user"
)

func newTestCache(t *testing.T, opts ...user.CacheOption) *user.Cache {
	t.Helper()

	c, err := user.NewCache(context.Background(), storage.NewMemory(), opts...)
	require.NoError(t, err)
	return c
}

func testUser() user.User {
	return user.User{
		ID:              uuid.New(),
		Email:           "jane@example.com",
		Username:        "jane",
		IsEmailVerified: true,
		MaxSessions:     2,
	}
}

func TestCachePutGet(t *testing.T) {
	t.Parallel()

	c := newTestCache(t)
	ctx := context.Background()
	u := testUser()

	require.NoError(t, c.Put(ctx, u))

	got, found, err := c.Get(ctx, u.ID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, u.ID, got.ID)
	assert.Equal(t, u.Email, got.Email)
	assert.False(t, got.CachedAt.IsZero(), "Put must stamp CachedAt")
}

func TestCacheMiss(t *testing.T) {
	t.Parallel()

	c := newTestCache(t)

	_, found, err := c.Get(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCacheUpdateReplacesSnapshot(t *testing.T) {
	t.Parallel()

	c := newTestCache(t)
	ctx := context.Background()
	u := testUser()

	require.NoError(t, c.Put(ctx, u))

	u.IsEmailVerified = false
	u.MaxSessions = 5
	require.NoError(t, c.Update(ctx, u))

	got, found, err := c.Get(ctx, u.ID)
	require.NoError(t, err)
	require.True(t, found)
	assert.False(t, got.IsEmailVerified)
	assert.Equal(t, 5, got.MaxSessions)
}

func TestCacheDelete(t *testing.T) {
	t.Parallel()

	c := newTestCache(t)
	ctx := context.Background()
	u := testUser()

	require.NoError(t, c.Put(ctx, u))
	require.NoError(t, c.Delete(ctx, u.ID))

	_, found, err := c.Get(ctx, u.ID)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, c.Delete(ctx, u.ID), "deleting an absent snapshot must not error")
}

func TestCacheTTL(t *testing.T) {
	t.Parallel()

	c := newTestCache(t, user.WithTTL(50*time.Millisecond))
	ctx := context.Background()
	u := testUser()

	require.NoError(t, c.Put(ctx, u))
	time.Sleep(80 * time.Millisecond)

	_, found, err := c.Get(ctx, u.ID)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestUserMFAPending(t *testing.T) {
	t.Parallel()

	assert.False(t, user.User{}.MFAPending())
	assert.False(t, user.User{IsMFAEnabled: true, MFASetupComplete: true}.MFAPending())
	assert.True(t, user.User{IsMFAEnabled: true}.MFAPending())
}

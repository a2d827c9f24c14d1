package user

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/sessionkit/core/cache"
	"github.com/dmitrymomot/sessionkit/core/storage"
)

// Namespace is the logical table user snapshots live in.
const Namespace = "usercache"

// Cache stores user snapshots keyed by user ID. Entries have no TTL by
// default: they live until the owning user's last session is closed, or
// until an explicit eviction. An optional TTL can be set as a safety net
// against eviction bugs leaving snapshots behind forever.
type Cache struct {
	store *cache.Store[User]
	ttl   time.Duration
}

// CacheOption configures the cache.
type CacheOption func(*Cache)

// WithTTL bounds the lifetime of cached snapshots. Zero (the default)
// keeps entries until they are explicitly evicted.
func WithTTL(ttl time.Duration) CacheOption {
	return func(c *Cache) {
		c.ttl = ttl
	}
}

// NewCache creates the user cache on top of conn.
func NewCache(ctx context.Context, conn storage.Connector, opts ...CacheOption) (*Cache, error) {
	store, err := cache.New[User](ctx, conn, Namespace)
	if err != nil {
		return nil, err
	}
	c := &Cache{store: store}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Get returns the cached snapshot for id, or found=false on a miss.
func (c *Cache) Get(ctx context.Context, id uuid.UUID) (User, bool, error) {
	return c.store.Get(ctx, id.String())
}

// Put stores a snapshot, stamping CachedAt.
func (c *Cache) Put(ctx context.Context, u User) error {
	u.CachedAt = time.Now()
	return c.store.Set(ctx, u.ID.String(), u, c.ttl)
}

// Update replaces the snapshot with delete-then-reinsert semantics. The
// snapshot is never mutated field-by-field in place, which rules out stale
// fields surviving a partial write.
func (c *Cache) Update(ctx context.Context, u User) error {
	if err := c.store.Delete(ctx, u.ID.String()); err != nil {
		return err
	}
	return c.Put(ctx, u)
}

// Delete evicts the snapshot for id; absent entries are a no-op.
func (c *Cache) Delete(ctx context.Context, id uuid.UUID) error {
	return c.store.Delete(ctx, id.String())
}

// ClearExpired sweeps TTL-expired snapshots.
func (c *Cache) ClearExpired(ctx context.Context) error {
	return c.store.ClearExpired(ctx)
}

package session

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/sessionkit/core/cache"
	"github.com/dmitrymomot/sessionkit/core/storage"
)

// Namespace is the logical table session records live in.
const Namespace = "sessions"

// Registry stores session records keyed by session ID. Every record is
// written with the registry's TTL; zero means sessions never expire and
// must be ended by logout.
type Registry struct {
	store *cache.Store[Record]
	ttl   time.Duration
}

// NewRegistry creates the session registry on top of conn. ttl applies
// uniformly to every record written through Put.
func NewRegistry(ctx context.Context, conn storage.Connector, ttl time.Duration) (*Registry, error) {
	store, err := cache.New[Record](ctx, conn, Namespace)
	if err != nil {
		return nil, err
	}
	return &Registry{store: store, ttl: ttl}, nil
}

// TTL returns the lifetime applied to new records.
func (r *Registry) TTL() time.Duration {
	return r.ttl
}

// Get returns the record for id, or found=false when the session is absent
// or expired.
func (r *Registry) Get(ctx context.Context, id string) (Record, bool, error) {
	return r.store.Get(ctx, id)
}

// Put stores a record under id with the registry TTL.
func (r *Registry) Put(ctx context.Context, id string, rec Record) error {
	return r.store.Set(ctx, id, rec, r.ttl)
}

// Delete removes the record for id; absent sessions are a no-op.
func (r *Registry) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, id)
}

// CountForUser returns the number of live sessions owned by userID. It
// scans the namespace, which is O(active sessions); acceptable because
// per-user caps keep session counts small.
func (r *Registry) CountForUser(ctx context.Context, userID uuid.UUID) (int, error) {
	records, err := r.store.List(ctx)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, rec := range records {
		if rec.UserID == userID {
			n++
		}
	}
	return n, nil
}

// ClearExpired sweeps TTL-expired records.
func (r *Registry) ClearExpired(ctx context.Context) error {
	return r.store.ClearExpired(ctx)
}

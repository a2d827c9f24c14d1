package storage

import (
	"context"
	"regexp"
	"time"
)

// Connector is the uniform contract implemented by every storage backend.
// A single Connector instance may serve several logical tables at once,
// isolated from each other by a namespace string.
//
// Implementations must be safe for concurrent use. Values are opaque bytes:
// Get must return exactly the bytes previously passed to Set for the same
// (namespace, key) pair.
type Connector interface {
	// Init prepares the backing structures for a namespace (for example a
	// table in the embedded database). It is idempotent and must be called
	// before any other operation on that namespace. Returns ErrConnection
	// when the backend is unreachable.
	Init(ctx context.Context, namespace string) error

	// Get retrieves a value. It returns (nil, false, nil) both for keys
	// that were never written and for keys whose TTL has elapsed, even if
	// no sweep has run yet.
	Get(ctx context.Context, namespace, key string) ([]byte, bool, error)

	// Set stores a value, overwriting any previous one (last writer wins).
	// A non-positive ttl means the entry never expires.
	Set(ctx context.Context, namespace, key string, value []byte, ttl time.Duration) error

	// Delete removes a key. Deleting an absent key is not an error.
	Delete(ctx context.Context, namespace, key string) error

	// ClearExpired removes every entry whose TTL has elapsed. Backends
	// with native expiry (Redis, Memcached) implement this as a no-op or
	// an index maintenance pass.
	ClearExpired(ctx context.Context, namespace string) error

	// ListValues returns the values of all non-expired entries in the
	// namespace, in no particular order.
	ListValues(ctx context.Context, namespace string) ([][]byte, error)

	// Close releases backend resources held by the connector.
	Close(ctx context.Context) error
}

// namespaceRe restricts namespaces to safe identifier characters. The SQLite
// backend interpolates the namespace into table names, so this is a hard
// requirement there; the other backends enforce it for consistency.
var namespaceRe = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// ValidNamespace reports whether s is usable as a namespace.
func ValidNamespace(s string) bool {
	return namespaceRe.MatchString(s)
}

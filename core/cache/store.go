package cache

import (
	"context"
	"errors"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/dmitrymomot/sessionkit/core/storage"
)

// Store binds one storage.Connector to one namespace and handles value
// (de)serialization, giving callers a typed view over opaque bytes. Values
// are encoded with msgpack inside a versioned envelope, so entries
// round-trip identically across every backend.
type Store[T any] struct {
	conn      storage.Connector
	namespace string
}

// New creates a typed store over conn under the given namespace and
// initializes the namespace's backing structures. Initialization is
// idempotent; several stores may share one connector as long as their
// namespaces differ.
func New[T any](ctx context.Context, conn storage.Connector, namespace string) (*Store[T], error) {
	if err := conn.Init(ctx, namespace); err != nil {
		return nil, err
	}
	return &Store[T]{conn: conn, namespace: namespace}, nil
}

// Namespace returns the logical table name this store is bound to.
func (s *Store[T]) Namespace() string {
	return s.namespace
}

// Get retrieves and decodes the value for key. The second return value is
// false when the key is absent or its TTL has elapsed.
func (s *Store[T]) Get(ctx context.Context, key string) (T, bool, error) {
	var zero T
	raw, ok, err := s.conn.Get(ctx, s.namespace, key)
	if err != nil || !ok {
		return zero, false, err
	}
	v, err := s.decode(raw)
	if err != nil {
		return zero, false, err
	}
	return v, true, nil
}

// Set encodes and stores value under key, overwriting any previous entry.
// A non-positive ttl means the entry never expires.
func (s *Store[T]) Set(ctx context.Context, key string, value T, ttl time.Duration) error {
	payload, err := msgpack.Marshal(value)
	if err != nil {
		return errors.Join(ErrEncode, err)
	}
	return s.conn.Set(ctx, s.namespace, key, encodeEnvelope(payload), ttl)
}

// Delete removes the entry for key; absent keys are a no-op.
func (s *Store[T]) Delete(ctx context.Context, key string) error {
	return s.conn.Delete(ctx, s.namespace, key)
}

// ClearExpired sweeps entries whose TTL has elapsed.
func (s *Store[T]) ClearExpired(ctx context.Context) error {
	return s.conn.ClearExpired(ctx, s.namespace)
}

// List decodes every non-expired value in the namespace, in no particular
// order.
func (s *Store[T]) List(ctx context.Context) ([]T, error) {
	raws, err := s.conn.ListValues(ctx, s.namespace)
	if err != nil {
		return nil, err
	}
	values := make([]T, 0, len(raws))
	for _, raw := range raws {
		v, err := s.decode(raw)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

func (s *Store[T]) decode(raw []byte) (T, error) {
	var v T
	payload, err := decodeEnvelope(raw)
	if err != nil {
		return v, err
	}
	if err := msgpack.Unmarshal(payload, &v); err != nil {
		return v, errors.Join(ErrDecode, err)
	}
	return v, nil
}

package storage

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
)

// Memcached is a Connector backed by a Memcached server. Keys are namespaced
// by prefixing "<namespace>:", and TTLs are delegated to Memcached native
// expiry.
//
// Memcached offers no key enumeration, so the connector keeps an in-process
// index of the keys it has written per namespace; ListValues fetches the
// indexed keys and prunes the ones the server no longer holds. The index is
// local to this process, which matches the single-panel deployment model;
// writes performed by another process are not enumerable here.
type Memcached struct {
	client *memcache.Client

	mu   sync.Mutex
	keys map[string]map[string]struct{}
}

var _ Connector = (*Memcached)(nil)

// NewMemcached connects to the given server addresses ("host:port").
func NewMemcached(addrs ...string) *Memcached {
	return &Memcached{
		client: memcache.New(addrs...),
		keys:   make(map[string]map[string]struct{}),
	}
}

func (m *Memcached) key(namespace, key string) string {
	return namespace + ":" + key
}

func (m *Memcached) Init(ctx context.Context, namespace string) error {
	if !ValidNamespace(namespace) {
		return fmt.Errorf("%w: %q", ErrInvalidNamespace, namespace)
	}
	if err := m.client.Ping(); err != nil {
		return errors.Join(ErrConnection, err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.keys[namespace]; !ok {
		m.keys[namespace] = make(map[string]struct{})
	}
	return nil
}

func (m *Memcached) Get(_ context.Context, namespace, key string) ([]byte, bool, error) {
	item, err := m.client.Get(m.key(namespace, key))
	if errors.Is(err, memcache.ErrCacheMiss) {
		m.forget(namespace, key)
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Join(ErrConnection, err)
	}
	return item.Value, true, nil
}

func (m *Memcached) Set(_ context.Context, namespace, key string, value []byte, ttl time.Duration) error {
	var exp int32
	if ttl > 0 {
		exp = int32(ttl / time.Second)
	}
	err := m.client.Set(&memcache.Item{
		Key:        m.key(namespace, key),
		Value:      value,
		Expiration: exp,
	})
	if err != nil {
		return errors.Join(ErrConnection, err)
	}
	m.remember(namespace, key)
	return nil
}

func (m *Memcached) Delete(_ context.Context, namespace, key string) error {
	err := m.client.Delete(m.key(namespace, key))
	if err != nil && !errors.Is(err, memcache.ErrCacheMiss) {
		return errors.Join(ErrConnection, err)
	}
	m.forget(namespace, key)
	return nil
}

// ClearExpired drops index entries for keys the server has already evicted.
// Expiry itself is Memcached's job; this only keeps the local index tight.
func (m *Memcached) ClearExpired(_ context.Context, namespace string) error {
	_, err := m.liveItems(namespace)
	return err
}

func (m *Memcached) ListValues(_ context.Context, namespace string) ([][]byte, error) {
	items, err := m.liveItems(namespace)
	if err != nil {
		return nil, err
	}
	values := make([][]byte, 0, len(items))
	for _, item := range items {
		values = append(values, item.Value)
	}
	return values, nil
}

func (m *Memcached) Close(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.keys = make(map[string]map[string]struct{})
	return m.client.Close()
}

// liveItems fetches every indexed key in one multi-get, prunes the index of
// keys the server no longer holds, and returns the surviving items.
func (m *Memcached) liveItems(namespace string) (map[string]*memcache.Item, error) {
	m.mu.Lock()
	indexed := make([]string, 0, len(m.keys[namespace]))
	for key := range m.keys[namespace] {
		indexed = append(indexed, m.key(namespace, key))
	}
	m.mu.Unlock()

	if len(indexed) == 0 {
		return nil, nil
	}

	items, err := m.client.GetMulti(indexed)
	if err != nil {
		return nil, errors.Join(ErrConnection, err)
	}

	m.mu.Lock()
	for key := range m.keys[namespace] {
		if _, ok := items[m.key(namespace, key)]; !ok {
			delete(m.keys[namespace], key)
		}
	}
	m.mu.Unlock()

	return items, nil
}

func (m *Memcached) remember(namespace, key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.keys[namespace]; !ok {
		m.keys[namespace] = make(map[string]struct{})
	}
	m.keys[namespace][key] = struct{}{}
}

func (m *Memcached) forget(namespace, key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if set, ok := m.keys[namespace]; ok {
		delete(set, key)
	}
}

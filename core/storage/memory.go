package storage

import (
	"context"
	"fmt"
	"sync"
	"time"
)

type memoryEntry struct {
	value    []byte
	ttl      time.Duration
	cachedAt time.Time
}

func (e memoryEntry) expired(now time.Time) bool {
	return e.ttl > 0 && !now.Before(e.cachedAt.Add(e.ttl))
}

// Memory is a process-local Connector backed by a mutex-guarded map.
// It never touches the network and is the default backend for tests and
// single-node deployments. Expired entries are dropped lazily on read and
// eagerly by ClearExpired.
type Memory struct {
	mu     sync.Mutex
	tables map[string]map[string]memoryEntry
}

var _ Connector = (*Memory)(nil)

// NewMemory creates an empty in-memory connector.
func NewMemory() *Memory {
	return &Memory{tables: make(map[string]map[string]memoryEntry)}
}

func (m *Memory) Init(_ context.Context, namespace string) error {
	if !ValidNamespace(namespace) {
		return fmt.Errorf("%w: %q", ErrInvalidNamespace, namespace)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.tables[namespace]; !ok {
		m.tables[namespace] = make(map[string]memoryEntry)
	}
	return nil
}

func (m *Memory) Get(_ context.Context, namespace, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	table, ok := m.tables[namespace]
	if !ok {
		return nil, false, fmt.Errorf("%w: %q", ErrNamespaceNotInitialized, namespace)
	}
	e, ok := table[key]
	if !ok {
		return nil, false, nil
	}
	if e.expired(time.Now()) {
		delete(table, key)
		return nil, false, nil
	}
	return e.value, true, nil
}

func (m *Memory) Set(_ context.Context, namespace, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	table, ok := m.tables[namespace]
	if !ok {
		return fmt.Errorf("%w: %q", ErrNamespaceNotInitialized, namespace)
	}
	table[key] = memoryEntry{value: value, ttl: ttl, cachedAt: time.Now()}
	return nil
}

func (m *Memory) Delete(_ context.Context, namespace, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if table, ok := m.tables[namespace]; ok {
		delete(table, key)
	}
	return nil
}

func (m *Memory) ClearExpired(_ context.Context, namespace string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	table, ok := m.tables[namespace]
	if !ok {
		return fmt.Errorf("%w: %q", ErrNamespaceNotInitialized, namespace)
	}
	now := time.Now()
	for key, e := range table {
		if e.expired(now) {
			delete(table, key)
		}
	}
	return nil
}

func (m *Memory) ListValues(_ context.Context, namespace string) ([][]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	table, ok := m.tables[namespace]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNamespaceNotInitialized, namespace)
	}
	now := time.Now()
	values := make([][]byte, 0, len(table))
	for key, e := range table {
		if e.expired(now) {
			delete(table, key)
			continue
		}
		values = append(values, e.value)
	}
	return values, nil
}

func (m *Memory) Close(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tables = make(map[string]map[string]memoryEntry)
	return nil
}

// Package storage provides the backend-agnostic key/value layer the session
// and user caches are built on.
//
// A Connector exposes raw namespaced byte storage with optional per-entry
// TTLs. Four interchangeable backends are included:
//
//   - Memory: process-local map, no I/O, lazy expiry on read plus an eager
//     sweep. The default, and the one tests run against.
//   - SQLite: embedded database (modernc.org/sqlite, no CGO), one table per
//     namespace, expiry enforced in queries and by bulk sweeps. Survives
//     restarts.
//   - Redis: go-redis client, "<namespace>:<key>" keys, native server-side
//     expiry, sweep is a no-op.
//   - Memcached: gomemcache client, same key scheme and native expiry, with
//     an in-process key index so namespaces stay enumerable.
//
// The backend is chosen once at startup via the factory:
//
//	var cfg storage.Config
//	config.MustLoad(&cfg)
//
//	conn, err := storage.New(cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer conn.Close(ctx)
//
// All connectors are safe for concurrent use and distinguish only two read
// outcomes: present, or absent. An entry whose TTL elapsed is absent the
// moment the TTL passes, whether or not a sweep has run.
//
// Callers normally do not use Connector directly; core/cache wraps it in a
// typed, serializing store bound to a single namespace.
package storage

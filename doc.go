// Package sessionkit is the session and user-cache engine behind a
// virtualization panel: a backend-agnostic key/value store with TTL expiry,
// layered into a session registry and a user cache, and an authentication
// service that drives login, logout, and request authorization on top of
// them.
//
// # Package Organization
//
//   - core/storage: raw namespaced byte storage with four interchangeable
//     backends (memory, SQLite, Redis, Memcached)
//   - core/cache: typed stores over a storage connector, with a versioned
//     msgpack serialization contract
//   - core/user: cached user snapshot and its cache
//   - core/session: session records, IDs, and the registry
//   - core/auth: login/logout/authorize pipelines and gating policies
//   - core/reaper: background expiry sweep
//   - core/identity: signed identity-token codec and cookie helpers
//   - core/password: bcrypt hashing
//   - core/config: env-based configuration loading
//   - core/logger: slog attribute helpers
//
// # Wiring
//
//	var storageCfg storage.Config
//	var sessionCfg session.Config
//	var reaperCfg reaper.Config
//	config.MustLoad(&storageCfg)
//	config.MustLoad(&sessionCfg)
//	config.MustLoad(&reaperCfg)
//
//	conn, err := storage.New(storageCfg)
//	users, err := user.NewCache(ctx, conn)
//	sessions, err := session.NewRegistry(ctx, conn, sessionCfg.TTL)
//	codec, err := identity.NewJWT(secret, identity.WithMaxAge(sessionCfg.TTL))
//
//	svc := auth.New(userStore, password.New(password.DefaultCost), codec, users, sessions)
//
//	go reaper.New(reaperCfg.Interval, []reaper.Target{
//		{Name: "sessions", Sweeper: sessions},
//		{Name: "usercache", Sweeper: users},
//	}, reaper.WithLogger(log)).Run(ctx)
//
// Everything is constructed explicitly and passed down; there are no
// package-level singletons.
package sessionkit

// Package cache provides a typed, namespaced store over the raw storage
// connectors.
//
// Store[T] is a thin facade: it binds one storage.Connector to one logical
// table (the namespace) and converts values between T and bytes using
// msgpack wrapped in a small versioned envelope. The envelope makes the
// serialization contract explicit; any entry written through one backend
// decodes identically through another, and entries written by a future,
// incompatible format version are rejected instead of misread.
//
//	conn := storage.NewMemory()
//
//	users, err := cache.New[User](ctx, conn, "usercache")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	err = users.Set(ctx, id.String(), u, 0) // 0 = never expires
//	u, found, err := users.Get(ctx, id.String())
//
// The session registry and user cache in core/session and core/user are
// specializations of this store under fixed namespaces.
package cache

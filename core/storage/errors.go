package storage

import "errors"

var (
	// ErrConnection indicates the storage backend is unreachable or refused
	// the operation at the transport level.
	ErrConnection = errors.New("storage backend unreachable")

	// ErrInvalidNamespace indicates a namespace that does not match the
	// allowed identifier pattern.
	ErrInvalidNamespace = errors.New("invalid namespace")

	// ErrUnknownDriver is returned by the factory for an unrecognized
	// driver name.
	ErrUnknownDriver = errors.New("unknown storage driver")

	// ErrNamespaceNotInitialized indicates an operation on a namespace that
	// Init was never called for.
	ErrNamespaceNotInitialized = errors.New("namespace not initialized")
)

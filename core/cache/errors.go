package cache

import "errors"

var (
	// ErrCorruptEntry indicates a stored value without a valid envelope.
	// Foreign writes into a store's namespace surface as this error.
	ErrCorruptEntry = errors.New("corrupt cache entry")

	// ErrUnsupportedVersion indicates an entry written with a newer wire
	// format than this build understands.
	ErrUnsupportedVersion = errors.New("unsupported cache entry version")

	// ErrEncode wraps serialization failures on write.
	ErrEncode = errors.New("failed to encode cache value")

	// ErrDecode wraps deserialization failures on read.
	ErrDecode = errors.New("failed to decode cache value")
)

package logger

import (
	"log/slog"
	"time"
)

// Attribute helpers use the empty Attr pattern for nil safety: passing a
// nil error or empty value yields an attribute slog silently drops, so call
// sites need no conditionals.

// Error creates an attribute for a single error under the key "error".
// Returns an empty Attr for nil errors.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component identifies the subsystem emitting the log entry, e.g. "auth"
// or "reaper".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Namespace identifies the logical storage table an operation touched.
func Namespace(name string) slog.Attr {
	return slog.String("namespace", name)
}

// Duration creates an attribute for a duration under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Elapsed measures time since start, for wrapping sweep or request timing.
func Elapsed(start time.Time) slog.Attr {
	return slog.Duration("elapsed", time.Since(start))
}

// Count creates an integer attribute under the given key.
func Count(key string, n int) slog.Attr {
	return slog.Int(key, n)
}

// ClientIP records the originating address of a request.
func ClientIP(ip string) slog.Attr {
	if ip == "" {
		return slog.Attr{}
	}
	return slog.String("client_ip", ip)
}

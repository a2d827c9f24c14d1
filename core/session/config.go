package session

import "time"

// Config holds session registry settings. Load it through core/config.
type Config struct {
	// TTL applied to every session record. Zero disables expiry; sessions
	// then live until logout.
	TTL time.Duration `env:"SESSION_TTL" envDefault:"168h"`
}

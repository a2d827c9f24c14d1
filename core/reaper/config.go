package reaper

import "time"

// Config holds the reaper cadence. Load it through core/config.
type Config struct {
	// Interval between sweeps. Shorter intervals bound how long expired
	// entries stay enumerable on backends without native expiry.
	Interval time.Duration `env:"REAPER_INTERVAL" envDefault:"5m"`
}

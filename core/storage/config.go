package storage

import (
	"fmt"
	"strings"
)

// Driver names accepted by the factory.
const (
	DriverMemory    = "memory"
	DriverSQLite    = "sqlite"
	DriverRedis     = "redis"
	DriverMemcached = "memcached"
)

// Config selects the storage backend and its connection parameters.
// Load it through core/config to populate from the environment.
type Config struct {
	Driver        string `env:"STORAGE_DRIVER" envDefault:"memory"`
	SQLitePath    string `env:"STORAGE_SQLITE_PATH" envDefault:"sessionkit.db"`
	RedisURL      string `env:"STORAGE_REDIS_URL" envDefault:"redis://localhost:6379/0"`
	MemcachedAddr string `env:"STORAGE_MEMCACHED_ADDR" envDefault:"localhost:11211"`
}

// New constructs the Connector selected by cfg.Driver. The selection is a
// closed set; anything else fails with ErrUnknownDriver. Call it once at
// startup and share the returned connector between all stores.
func New(cfg Config) (Connector, error) {
	switch strings.ToLower(cfg.Driver) {
	case DriverMemory:
		return NewMemory(), nil
	case DriverSQLite:
		return NewSQLite(cfg.SQLitePath)
	case DriverRedis:
		return NewRedisFromURL(cfg.RedisURL)
	case DriverMemcached:
		return NewMemcached(strings.Split(cfg.MemcachedAddr, ",")...), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}

package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrParsingFailed wraps environment parsing errors with the config type
// that failed, for actionable startup diagnostics.
var ErrParsingFailed = errors.New("failed to parse environment variables")

var (
	mu     sync.Mutex
	loaded = make(map[reflect.Type]any)

	dotenvOnce sync.Once
)

// Load populates cfg from the environment using caarlos0/env struct tags.
// Each configuration type is parsed once per process and cached; later
// calls for the same type return the cached copy. A .env file in the
// working directory is loaded (once) before the first parse; a missing
// file is not an error.
func Load[T any](cfg *T) error {
	dotenvOnce.Do(func() {
		// Best-effort: real environments set variables directly.
		_ = godotenv.Load()
	})

	mu.Lock()
	defer mu.Unlock()

	t := reflect.TypeOf(*cfg)
	if cached, ok := loaded[t]; ok {
		*cfg = cached.(T)
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrParsingFailed, t.Name(), err)
	}

	loaded[t] = *cfg
	return nil
}

// MustLoad is Load but panics on failure, for use during startup wiring.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}

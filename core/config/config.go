package config

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	mu      sync.Mutex
	cache   = make(map[reflect.Type]any)
	envOnce sync.Once
)

// Load parses environment variables into cfg. Each configuration type
// is parsed once per process; later calls for the same type return the
// cached value. A .env file in the working directory is loaded before
// the first parse, without overriding variables already set.
func Load[T any](cfg *T) error {
	if cfg == nil {
		return ErrNilConfig
	}

	envOnce.Do(func() {
		// Missing .env is the normal case outside local development.
		_ = godotenv.Load()
	})

	mu.Lock()
	defer mu.Unlock()

	key := reflect.TypeOf(*cfg)
	if cached, ok := cache[key]; ok {
		*cfg = cached.(T)
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrParseFailed, key, err)
	}

	cache[key] = *cfg
	return nil
}

// MustLoad is Load that panics on failure, for use during startup.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}

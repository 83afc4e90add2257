package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	mu     sync.RWMutex
	loaded = make(map[string]any)

	dotenvOnce sync.Once
)

// Load populates the configuration struct from environment variables based
// on `env` field tags. The default .env file, if present, is loaded into
// the process environment first. Each configuration type is parsed once;
// subsequent calls return a cached copy.
//
//	type ClientConfig struct {
//	    BaseURL string `env:"INSIDECHURCH_API_URL,required"`
//	    Timeout time.Duration `env:"INSIDECHURCH_HTTP_TIMEOUT" envDefault:"15s"`
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	dotenvOnce.Do(func() {
		// Missing .env is fine; explicit env vars still apply.
		_ = godotenv.Load()
	})

	key := typeName[T]()

	mu.RLock()
	cached, ok := loaded[key]
	mu.RUnlock()
	if ok {
		*v = cached.(T)
		return nil
	}

	mu.Lock()
	defer mu.Unlock()

	if cached, ok := loaded[key]; ok {
		*v = cached.(T)
		return nil
	}

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	loaded[key] = *v
	return nil
}

// MustLoad works like Load but panics on failure. For configuration the
// process cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("config: failed to load %s: %v", typeName[T](), err))
	}
}

// Reset clears the cache so the next Load re-parses the environment.
// Intended for tests.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	loaded = make(map[string]any)
}

func typeName[T any]() string {
	var zero T
	if t := reflect.TypeOf(zero); t != nil {
		return t.String()
	}
	return fmt.Sprintf("%T", *new(T))
}

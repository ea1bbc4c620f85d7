package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// entry holds the outcome of parsing one configuration type.
type entry struct {
	once  sync.Once
	value any
	err   error
}

type registry struct {
	mu      sync.Mutex
	entries map[reflect.Type]*entry
}

func (r *registry) get(t reflect.Type) *entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[t]
	if !ok {
		e = &entry{}
		r.entries[t] = e
	}
	return e
}

func (r *registry) drop(t reflect.Type) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, t)
}

func (r *registry) reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = make(map[reflect.Type]*entry)
}

var (
	configs    = &registry{entries: make(map[reflect.Type]*entry)}
	dotenvOnce sync.Once
)

// Load fills v from the environment using its env struct tags. The default
// .env file in the working directory is read once, if present.
//
// Each configuration type is parsed once per process: later calls copy the
// cached value, and a failed parse keeps returning the same error until
// ResetCache or ForceReload.
//
//	type Config struct {
//		Language   string `env:"NOTIFY_LANG" envDefault:"en"`
//		LocalesDir string `env:"NOTIFY_LOCALES_DIR"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	dotenvOnce.Do(func() {
		// A missing .env is the common case.
		_ = godotenv.Load()
	})

	e := configs.get(reflect.TypeFor[T]())
	e.once.Do(func() {
		var cfg T
		if err := env.Parse(&cfg); err != nil {
			e.err = errors.Join(ErrParsingConfig, err)
			return
		}
		e.value = cfg
	})
	if e.err != nil {
		return e.err
	}

	*v = e.value.(T)
	return nil
}

// MustLoad is like Load but panics on failure.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("config: %v", err))
	}
}

// LoadEnv loads one or more .env files into the process environment.
// Variables already set in the environment are not overridden, and earlier
// files win over later ones. Without paths the default .env is loaded.
func LoadEnv(paths ...string) error {
	if err := godotenv.Load(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// MustLoadEnv is like LoadEnv but panics on failure.
func MustLoadEnv(paths ...string) {
	if err := LoadEnv(paths...); err != nil {
		panic(fmt.Sprintf("config: %v", err))
	}
}

// ResetCache forgets every parsed configuration, so the next Load of any
// type reads the environment again.
func ResetCache() {
	configs.reset()
}

// ForceReload parses the environment into v even if its type is cached and
// replaces the cached value.
func ForceReload[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	configs.drop(reflect.TypeFor[T]())
	return Load(v)
}

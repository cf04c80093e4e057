package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

var (
	cacheMu sync.RWMutex
	cache   = make(map[reflect.Type]any)

	defaultEnvOnce sync.Once

	validate = validator.New(validator.WithRequiredStructEnabled())
)

// LoadEnv loads the given .env files into the process environment.
// With no arguments it loads ./.env and fails if that file is missing.
func LoadEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// MustLoadEnv is LoadEnv that panics on failure.
func MustLoadEnv(files ...string) {
	if err := LoadEnv(files...); err != nil {
		panic(fmt.Sprintf("failed to load env files: %v", err))
	}
}

// Load populates v from the environment. The first successful load of a type
// is cached and returned by every later call for the same type.
// A missing ./.env is not an error.
func Load[T any](v *T) error {
	defaultEnvOnce.Do(func() {
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	key := reflect.TypeFor[T]()

	cacheMu.RLock()
	cached, ok := cache[key]
	cacheMu.RUnlock()
	if ok {
		*v = cached.(T)
		return nil
	}

	return parse(key, v)
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// ForceReload parses v again, ignoring and replacing any cached value.
func ForceReload[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	return parse(reflect.TypeFor[T](), v)
}

// ResetCache drops every cached configuration.
func ResetCache() {
	cacheMu.Lock()
	cache = make(map[reflect.Type]any)
	cacheMu.Unlock()
}

func parse[T any](key reflect.Type, v *T) error {
	var parsed T
	if err := env.Parse(&parsed); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	if err := validate.Struct(parsed); err != nil {
		return errors.Join(ErrInvalidConfig, err)
	}

	cacheMu.Lock()
	cache[key] = parsed
	cacheMu.Unlock()

	*v = parsed
	return nil
}

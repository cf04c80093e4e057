// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11, and
// validates the parsed struct with github.com/go-playground/validator/v10:
//
//   - LoadEnv reads one or more .env files into the process environment.
//     Without arguments it reads ./.env. Variables already set in the process
//     are never overwritten, and among files the first one to set a key wins.
//   - Load parses the environment into any struct using `env` tags, runs
//     `validate` tags and caches the result per type, so later calls are
//     served from memory.
//   - MustLoad and MustLoadEnv panic instead of returning an error, for
//     configuration a process cannot start without.
//   - ResetCache and ForceReload exist for tests that change the environment.
//
// # Usage
//
//	type Config struct {
//	    Env      string `env:"APP_ENV" envDefault:"development" validate:"oneof=development staging production"`
//	    LogLevel string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatal(err)
//	}
//
// # Error Handling
//
// Errors wrap one of the sentinels so callers can use errors.Is:
//
//   - ErrParsingConfig: environment could not be parsed into the struct.
//   - ErrInvalidConfig: a `validate` rule failed.
//   - ErrLoadingEnvFile: a .env file could not be read.
//   - ErrNilPointer: nil pointer passed to Load.
package config

package main

import (
	"io"
	"log/slog"

	"github.com/dmitrymomot/notifykit/pkg/config"
	"github.com/dmitrymomot/notifykit/pkg/environment"
	"github.com/dmitrymomot/notifykit/pkg/logger"
	"github.com/dmitrymomot/notifykit/pkg/notifications"
)

type appConfig struct {
	Env            string `env:"APP_ENV" envDefault:"development" validate:"oneof=development dev staging stage production prod"`
	LogLevel       string `env:"LOG_LEVEL" validate:"omitempty,oneof=debug info warn error"`
	SlackWorkspace string `env:"SLACK_WORKSPACE" envDefault:"empresa-workspace" validate:"required"`
	ServiceName    string `env:"SERVICE_NAME" envDefault:"notify" validate:"required"`
}

func loadConfig() (appConfig, error) {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return appConfig{}, err
	}
	return cfg, nil
}

// newLogger writes to w. LOG_LEVEL, when set, overrides the environment preset.
func newLogger(cfg appConfig, w io.Writer) (*slog.Logger, error) {
	env, err := environment.Parse(cfg.Env)
	if err != nil {
		return nil, err
	}

	opts := []logger.Option{
		logger.WithEnvironment(env, cfg.ServiceName),
		logger.WithOutput(w),
		logger.WithContextExtractors(notifications.MessageIDExtractor()),
	}
	if cfg.LogLevel != "" {
		level, err := logger.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logger.WithLevel(level))
	}
	return logger.New(opts...), nil
}

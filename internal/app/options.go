package app

import (
	"log/slog"

	"github.com/thenoetrevino/sazon/internal/services/generation"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	delay  generation.Delay
	logger *slog.Logger
}

// WithDelay sets the simulated generation delay
func WithDelay(d generation.Delay) Option {
	return func(cfg *appConfig) {
		cfg.delay = d
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}

package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/sazon/internal/history"
	"github.com/thenoetrevino/sazon/internal/services/generation"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	// Session-scoped history, discarded on Close
	history *history.Store

	logger *slog.Logger

	// Service layer (business logic)
	GenerationService generation.Service
}

// New creates a new App with all services initialized.
// This is the single entry point for creating the application container.
func New(ctx context.Context, opts ...Option) (*App, error) {
	cfg := &appConfig{
		delay:  generation.FixedDelay(generation.DefaultDelay),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	store, err := history.Open(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to open session history: %w", err)
	}

	return &App{
		history: store,
		logger:  cfg.logger,
		GenerationService: generation.NewService(
			generation.WithDelay(cfg.delay),
			generation.WithRecorder(store),
			generation.WithLogger(cfg.logger),
		),
	}, nil
}

// GeneratedCount returns how many recipes were generated this session
func (a *App) GeneratedCount(ctx context.Context) int {
	count, err := a.history.Count(ctx)
	if err != nil {
		a.logger.Error("failed to count session recipes", "error", err)
		return 0
	}
	return count
}

// Close performs cleanup of application resources.
func (a *App) Close() error {
	return a.history.Close()
}

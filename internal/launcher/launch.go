package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/sazon/internal/app"
	"github.com/thenoetrevino/sazon/internal/config"
	"github.com/thenoetrevino/sazon/internal/services/generation"
	"github.com/thenoetrevino/sazon/internal/tui/core"
)

// Launch starts the TUI application. The program stops when ctx is done.
func Launch(parent context.Context) error {
	// Create root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(
		parent,
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	application, err := app.New(ctx,
		app.WithDelay(generation.FixedDelay(cfg.Generation.Delay())),
		app.WithLogger(slog.Default()),
	)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	// Session history lives only as long as the program
	defer func() {
		if err := application.Close(); err != nil {
			slog.Error("error closing session history", "error", err)
		}
	}()

	tuiApp := core.New(ctx, application, cfg)
	p := tea.NewProgram(tuiApp, tea.WithContext(ctx))

	// goroutine to monitor cancellation
	errChan := make(chan error, 1)
	go func() {
		_, err := p.Run()
		errChan <- err
	}()

	// Wait for program completion or cancellation
	select {
	case err := <-errChan:
		if err != nil {
			return fmt.Errorf("error running program: %w", err)
		}
	case <-ctx.Done():
		slog.Info("shutdown signal received, cleaning up")
		// An in-flight generation returns as soon as ctx is done
		if err := <-errChan; err != nil {
			slog.Debug("program exited after signal", "error", err)
		}
	}

	return nil
}

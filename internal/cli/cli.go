package cli

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/sazon/internal/app"
)

// CLI represents the CLI application context
type CLI struct {
	App *app.App // Application container with services
	ctx context.Context
}

// NewCLI initializes the CLI with a fresh session
func NewCLI(ctx context.Context, opts ...app.Option) (*CLI, error) {
	application, err := app.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize application: %w", err)
	}

	return &CLI{
		App: application,
		ctx: ctx,
	}, nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	return c.App.Close()
}

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/sazon/internal/cli"
	"github.com/thenoetrevino/sazon/internal/cli/generate"
	"github.com/thenoetrevino/sazon/internal/launcher"
	"github.com/thenoetrevino/sazon/internal/logging"
)

// NewRootCmd builds the sazon command tree
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sazon",
		Short: "Sazon - A terminal recipe generator",
		Long: `Sazon turns a list of ingredients and dietary restrictions into a recipe.

Run without arguments to open the interactive form, or use 'sazon generate'
for scripting.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Log to file so stdout stays clean for the TUI and for piping
			if err := logging.Init(); err != nil {
				return fmt.Errorf("failed to initialize logging: %w", err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return launcher.Launch(cmd.Context())
		},
	}

	rootCmd.AddCommand(generate.GenerateCmd())

	return rootCmd
}

// Execute runs the root command and returns the process exit code
func Execute() int {
	return run(os.Args[1:])
}

// run executes args with a context that is cancelled on SIGINT or SIGTERM
func run(args []string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := NewRootCmd()
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return cli.ExitSuccess
	}

	var exitErr *cli.ExitCodeError
	if !errors.As(err, &exitErr) || !exitErr.Reported {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return cli.ExitCode(err)
}

package generate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/sazon/internal/app"
	"github.com/thenoetrevino/sazon/internal/cli"
	"github.com/thenoetrevino/sazon/internal/cli/handler"
	"github.com/thenoetrevino/sazon/internal/cli/styles"
	"github.com/thenoetrevino/sazon/internal/config"
	"github.com/thenoetrevino/sazon/internal/models"
	"github.com/thenoetrevino/sazon/internal/services/generation"
	"github.com/thenoetrevino/sazon/internal/tui/huhforms"
)

// GenerateCmd returns the generate command
func GenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate [ingredients...]",
		Short: "Generate a recipe from ingredients",
		Long: `Generate a recipe from a list of ingredients and dietary restrictions.

Ingredients may be separate arguments or comma separated. Blank and
duplicate ingredients are dropped.

Examples:
  # Simple recipe (human-readable output)
  sazon generate flour sugar eggs --vegetarian

  # JSON output for agents
  sazon generate "flour, sugar" --vegan --json

  # Restrictions by name
  sazon generate tofu --restriction vegan --restriction gluten-free

  # Quiet mode for bash capture
  RECIPE_ID=$(sazon generate rice --quiet)

  # Rendered markdown, no waiting
  sazon generate tofu broccoli --gluten-free --markdown --delay-ms 0

  # Prompt for everything
  sazon generate --interactive
`,
		RunE:          runGenerate,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	handler.AddRestrictionFlags(cmd)
	cmd.Flags().Int("delay-ms", config.DefaultDelayMS, "Simulated generation delay in milliseconds")
	cmd.Flags().Bool("markdown", false, "Render the recipe as markdown")
	cmd.Flags().BoolP("interactive", "i", false, "Prompt for ingredients and restrictions")

	// Agent-friendly flags
	handler.AddOutputFlags(cmd)

	return cmd
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	parser := handler.NewFlagParser(cmd)
	jsonOutput, quietMode, err := parser.OutputFormats()
	if err != nil {
		return cli.NewExitError(cli.ExitUsage, err)
	}

	formatter := &cli.OutputFormatter{
		JSON:   jsonOutput,
		Quiet:  quietMode,
		Out:    cmd.OutOrStdout(),
		ErrOut: cmd.ErrOrStderr(),
	}

	cfg, err := config.Load()
	if err != nil {
		reportError(formatter, "CONFIG_ERROR", err.Error(), "")
		return cli.NewExitError(cli.ExitError, err)
	}
	styles.Init(cfg.ColorScheme)

	restrictions, err := parser.ParseRestrictions()
	if err != nil {
		reportError(formatter, "INVALID_FLAG", err.Error(),
			"Valid restrictions: vegetarian, vegan, gluten-free, dairy-free")
		return cli.NewExitError(cli.ExitUsage, err)
	}

	delay, err := parser.ParseDelay("delay-ms", cfg)
	if err != nil {
		reportError(formatter, "INVALID_FLAG", err.Error(), "")
		return cli.NewExitError(cli.ExitUsage, err)
	}

	interactive, err := parser.ParseBool("interactive")
	if err != nil {
		reportError(formatter, "INVALID_FLAG", err.Error(), "")
		return cli.NewExitError(cli.ExitUsage, err)
	}

	markdown, err := parser.ParseBool("markdown")
	if err != nil {
		reportError(formatter, "INVALID_FLAG", err.Error(), "")
		return cli.NewExitError(cli.ExitUsage, err)
	}

	if interactive {
		prompted, promptedRestrictions, err := promptRecipe(ctx, cfg)
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return cli.NewExitError(cli.ExitInterrupted, err)
			}
			reportError(formatter, "PROMPT_ERROR", err.Error(), "")
			return cli.NewExitError(cli.ExitError, err)
		}
		args = append(args, prompted...)
		restrictions = mergeRestrictions(restrictions, promptedRestrictions)
	}

	ingredients := CollectIngredients(args)
	if len(ingredients) == 0 {
		reportError(formatter, "NO_INGREDIENTS",
			"at least one ingredient is required",
			"Pass ingredients as arguments, e.g. 'sazon generate flour sugar', or use --interactive")
		return cli.NewExitError(cli.ExitUsage, generation.ErrNoIngredients)
	}

	// Initialize CLI
	cliInstance, err := cli.NewCLI(ctx, app.WithDelay(generation.FixedDelay(delay)))
	if err != nil {
		reportError(formatter, "INITIALIZATION_ERROR", err.Error(), "")
		return cli.NewExitError(cli.ExitError, err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("error closing CLI", "error", err)
		}
	}()

	recipe, err := cliInstance.App.GenerationService.Generate(ctx, generation.GenerateRequest{
		Ingredients:  ingredients,
		Restrictions: restrictions,
	})
	if err != nil {
		if errors.Is(err, context.Canceled) {
			reportError(formatter, "INTERRUPTED", "generation interrupted", "")
			return cli.NewExitError(cli.ExitInterrupted, err)
		}
		reportError(formatter, "GENERATION_ERROR", err.Error(), "")
		return cli.NewExitError(cli.ExitError, err)
	}

	// Output based on mode (JSON/Quiet/Markdown/Human)
	if quietMode || jsonOutput {
		return formatter.Success(recipe)
	}

	if markdown {
		rendered, err := RenderMarkdown(recipe, styles.CardWidth, "")
		if err != nil {
			reportError(formatter, "RENDER_ERROR", err.Error(), "")
			return cli.NewExitError(cli.ExitError, err)
		}
		_, err = io.WriteString(cmd.OutOrStdout(), rendered)
		return err
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\n\n%s", styles.RenderRecipeHeader(recipe), recipe.Text)
	return err
}

// CollectIngredients flattens comma separated arguments into a distinct, ordered list
func CollectIngredients(args []string) []string {
	list := models.NewIngredientList()
	for _, arg := range args {
		for _, value := range huhforms.SplitIngredients(arg) {
			list.Add(value)
		}
	}
	return list.Items()
}

// promptRecipe asks for ingredients and restrictions with a huh form
func promptRecipe(ctx context.Context, cfg *config.Config) ([]string, []models.Restriction, error) {
	var input string
	var selected []models.Restriction

	form := huhforms.CreateRecipeForm(&input, &selected).
		WithTheme(huhforms.CreateSazonTheme(cfg.ColorScheme))
	if err := form.RunWithContext(ctx); err != nil {
		return nil, nil, err
	}

	return huhforms.SplitIngredients(input), selected, nil
}

// mergeRestrictions enables every selected restriction on top of the flags
func mergeRestrictions(base models.DietaryRestrictions, selected []models.Restriction) models.DietaryRestrictions {
	for _, r := range selected {
		base.Set(r, true)
	}
	return base
}

func reportError(formatter *cli.OutputFormatter, code, message, suggestion string) {
	if err := formatter.ErrorWithSuggestion(code, message, suggestion); err != nil {
		slog.Error("error formatting error message", "error", err)
	}
}

package generate

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/thenoetrevino/sazon/internal/models"
	"github.com/thenoetrevino/sazon/internal/recipe"
)

// RenderMarkdown renders a recipe through glamour.
// An empty style picks one based on the terminal background.
func RenderMarkdown(r *models.Recipe, width int, style string) (string, error) {
	styleOpt := glamour.WithAutoStyle()
	if style != "" {
		styleOpt = glamour.WithStandardStyle(style)
	}

	renderer, err := glamour.NewTermRenderer(
		styleOpt,
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}

	out, err := renderer.Render(recipe.Markdown(r.Ingredients, r.Restrictions))
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return out, nil
}

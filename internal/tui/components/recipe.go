package components

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"
)

type RecipeProps struct {
	Text  string
	Width int // card width
}

// RenderRecipe renders the generated recipe verbatim, wrapped to fit the card
func RenderRecipe(props RecipeProps) string {
	if props.Text == "" {
		return SubtleStyle.Render(RecipePlaceholder)
	}

	width := max(innerWidth(props.Width), minRecipeWidth)
	wrapped := wordwrap.String(strings.TrimRight(props.Text, "\n"), width)
	return NormalStyle.Render(wrapped)
}

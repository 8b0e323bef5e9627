package components

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/sazon/internal/config"
	"github.com/thenoetrevino/sazon/internal/models"
)

func init() {
	InitStyles(config.DefaultColorScheme())
}

func TestRenderCard(t *testing.T) {
	out := ansi.Strip(RenderCard(CardProps{Title: "Ingredients", Body: "rice", Width: 30}))

	assert.Contains(t, out, "Ingredients")
	assert.Contains(t, out, "rice")
	assert.Contains(t, out, "╭")
}

// TestRenderChips_Empty ensures an empty list shows a hint instead of nothing.
func TestRenderChips_Empty(t *testing.T) {
	out := ansi.Strip(RenderChips(ChipsProps{Width: 40}))
	assert.Equal(t, "No ingredients yet", out)
}

// TestRenderChips_WrapsRows ensures chips flow onto new rows when the card is narrow.
// Edge case: every chip still appears exactly once in order.
func TestRenderChips_WrapsRows(t *testing.T) {
	ingredients := []string{"flour", "sugar", "butter", "eggs", "vanilla"}

	out := ansi.Strip(RenderChips(ChipsProps{Ingredients: ingredients, Width: 24}))

	assert.Greater(t, strings.Count(out, "\n"), 0)
	last := -1
	for _, name := range ingredients {
		idx := strings.Index(out, name)
		assert.Greater(t, idx, last, "chip %q out of order", name)
		last = idx
	}
	assert.Equal(t, len(ingredients), strings.Count(out, "×"))
}

func TestRenderChecklist(t *testing.T) {
	out := ansi.Strip(RenderChecklist(ChecklistProps{
		Restrictions: models.DietaryRestrictions{Vegan: true},
		Cursor:       1,
		Focused:      true,
	}))

	lines := strings.Split(out, "\n")
	assert.Len(t, lines, len(models.AllRestrictions))
	assert.Equal(t, "  [ ] Vegetarian", lines[0])
	assert.Equal(t, "> [x] Vegan", lines[1])
	assert.Equal(t, "  [ ] GlutenFree", lines[2])
	assert.Equal(t, "  [ ] DairyFree", lines[3])
}

// TestRenderChecklist_UnfocusedHidesCursor ensures the cursor only shows with focus.
func TestRenderChecklist_UnfocusedHidesCursor(t *testing.T) {
	out := ansi.Strip(RenderChecklist(ChecklistProps{Cursor: 2}))
	assert.NotContains(t, out, ">")
}

func TestRenderGenerateButton(t *testing.T) {
	tests := []struct {
		name  string
		props ButtonProps
		want  string
		avoid string
	}{
		{"idle", ButtonProps{Enabled: true}, GenerateLabel, GeneratingLabel},
		{"disabled still labelled", ButtonProps{}, GenerateLabel, GeneratingLabel},
		{"generating", ButtonProps{Generating: true, Spinner: "*"}, "* " + GeneratingLabel, GenerateLabel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := ansi.Strip(RenderGenerateButton(tt.props))
			assert.Contains(t, out, tt.want)
			assert.NotContains(t, out, tt.avoid)
		})
	}
}

// TestRenderRecipe_Placeholder ensures the card is never blank before the first recipe.
func TestRenderRecipe_Placeholder(t *testing.T) {
	out := ansi.Strip(RenderRecipe(RecipeProps{Width: 40}))
	assert.Equal(t, RecipePlaceholder, out)
}

// TestRenderRecipe_Wraps ensures long lines are wrapped to the card.
func TestRenderRecipe_Wraps(t *testing.T) {
	text := "Recipe: Flour Delight\n\nInstructions:\n1. Bake for 25-30 minutes or until golden brown.\n"

	out := ansi.Strip(RenderRecipe(RecipeProps{Text: text, Width: 30}))

	assert.Contains(t, out, "Recipe: Flour Delight")
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 30)
	}
}

func TestRenderStatusBar(t *testing.T) {
	out := ansi.Strip(RenderStatusBar(StatusBarProps{Width: 80}))
	assert.Contains(t, out, "Sazon - Recipe Generator")
	assert.NotContains(t, out, "this session")
	assert.Contains(t, out, "press ? for help")

	out = ansi.Strip(RenderStatusBar(StatusBarProps{Width: 80, GeneratedCount: 1}))
	assert.Contains(t, out, "1 recipe this session")

	out = ansi.Strip(RenderStatusBar(StatusBarProps{Width: 80, GeneratedCount: 3}))
	assert.Contains(t, out, "3 recipes this session")
	assert.NotContains(t, out, "last:")

	out = ansi.Strip(RenderStatusBar(StatusBarProps{Width: 100, GeneratedCount: 2, LastTitle: "Rice Delight"}))
	assert.Contains(t, out, "2 recipes this session · last: Rice Delight")
}

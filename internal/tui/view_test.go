package tui

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/sazon/internal/tui/state"
)

func plainView(m Model) string {
	return ansi.Strip(m.View().Content)
}

// TestView_Loading ensures nothing is laid out before the first resize.
func TestView_Loading(t *testing.T) {
	m := setupTestModel(t)
	m.UiState.SetWidth(0)

	assert.Equal(t, "Loading...", m.View().Content)
}

// TestView_InitialLayout ensures every card renders on first paint.
func TestView_InitialLayout(t *testing.T) {
	m := setupTestModel(t)

	out := plainView(m)

	for _, want := range []string{
		"Recipe Generator",
		"Ingredients",
		"Dietary Restrictions",
		"[ ] Vegetarian",
		"[ ] Vegan",
		"[ ] GlutenFree",
		"[ ] DairyFree",
		"Generate Recipe",
		"Generated Recipe",
		"press ? for help",
	} {
		assert.Contains(t, out, want)
	}
}

// TestView_ChipsAndChecks ensures committed ingredients and toggles are visible.
func TestView_ChipsAndChecks(t *testing.T) {
	m := setupTestModel(t)
	m = addIngredient(t, m, "basil")
	m.FormState.ToggleRestriction(m.UiState.SelectedRestriction())

	out := plainView(m)

	assert.Contains(t, out, "basil")
	assert.Contains(t, out, "×")
	assert.Contains(t, out, "[x] Vegetarian")
}

// TestView_GeneratingLabel ensures the button reflects the in-flight state.
func TestView_GeneratingLabel(t *testing.T) {
	m := setupTestModel(t)
	m = addIngredient(t, m, "rice")
	_, ok := m.FormState.BeginGeneration()
	assert.True(t, ok)

	assert.Contains(t, plainView(m), "Generating...")
}

// TestView_NarrowStacksColumns ensures a narrow terminal still shows the recipe card.
func TestView_NarrowStacksColumns(t *testing.T) {
	m := setupTestModel(t)
	m.UiState.SetWidth(60)
	m.FormState.CompleteGeneration("Recipe: Rice Delight")

	out := plainView(m)

	assert.Contains(t, out, "Generated Recipe")
	assert.Contains(t, out, "Recipe: Rice Delight")
}

// TestView_HelpOverlay ensures the help layer lists the configured keys.
func TestView_HelpOverlay(t *testing.T) {
	m := setupTestModel(t)
	m.UiState.SetMode(state.HelpMode)

	out := plainView(m)

	assert.Contains(t, out, "SAZON - Keyboard Shortcuts")
	assert.Contains(t, out, m.Config.KeyMappings.Generate)
}

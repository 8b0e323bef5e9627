package tui

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/sazon/internal/services/generation"
	"github.com/thenoetrevino/sazon/internal/tui/state"
)

// startGeneration kicks off a recipe generation from the current form.
// A trigger while a generation is running, or with no ingredients, is dropped.
func (m Model) startGeneration() (tea.Model, tea.Cmd) {
	snapshot, ok := m.FormState.BeginGeneration()
	if !ok {
		return m, nil
	}

	slog.Debug("generation started", "ingredients", len(snapshot.Ingredients))
	return m, tea.Batch(m.Spinner.Tick, m.generateRecipe(snapshot))
}

// generateRecipe returns a command that runs the generation service off the UI loop.
func (m Model) generateRecipe(snapshot state.Snapshot) tea.Cmd {
	ctx := m.Ctx
	svc := m.App.GenerationService

	return func() tea.Msg {
		recipe, err := svc.Generate(ctx, generation.GenerateRequest{
			Ingredients:  snapshot.Ingredients,
			Restrictions: snapshot.Restrictions,
		})
		return RecipeGeneratedMsg{Recipe: recipe, Err: err}
	}
}

// handleRecipeGenerated stores the finished recipe text.
// Failures keep the previous text and are only logged.
func (m Model) handleRecipeGenerated(msg RecipeGeneratedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil || msg.Recipe == nil {
		slog.Error("recipe generation failed", "error", msg.Err)
		m.FormState.AbortGeneration()
		return m, nil
	}

	m.FormState.CompleteGeneration(msg.Recipe.Text)
	m.SessionCount = m.App.GeneratedCount(m.Ctx)
	m.LastTitle = m.lastRecipeTitle()
	return m, nil
}

// lastRecipeTitle reads the newest title from the session history
func (m Model) lastRecipeTitle() string {
	recipes, err := m.App.GenerationService.History(m.Ctx)
	if err != nil {
		slog.Error("failed to read session history", "error", err)
		return m.LastTitle
	}
	if len(recipes) == 0 {
		return ""
	}
	return recipes[len(recipes)-1].Title
}

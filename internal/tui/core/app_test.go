package core

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/sazon/internal/app"
	"github.com/thenoetrevino/sazon/internal/config"
	"github.com/thenoetrevino/sazon/internal/services/generation"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	ctx := context.Background()

	application, err := app.New(ctx, app.WithDelay(generation.FixedDelay(0)))
	require.NoError(t, err)
	t.Cleanup(func() { _ = application.Close() })

	return New(ctx, application, config.Default())
}

// TestApp_UpdateStoresModel ensures state changes survive the value-receiver round trip.
func TestApp_UpdateStoresModel(t *testing.T) {
	a := newTestApp(t)

	_, _ = a.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	assert.Equal(t, 120, a.GetModel().UiState.Width())
	assert.Equal(t, 40, a.GetModel().UiState.Height())
}

// TestApp_TypedIngredientCommits drives the wrapper with key presses only.
func TestApp_TypedIngredientCommits(t *testing.T) {
	a := newTestApp(t)

	for _, r := range "rice" {
		_, _ = a.Update(tea.KeyPressMsg(tea.Key{Text: string(r), Code: r}))
	}
	_, _ = a.Update(tea.KeyPressMsg(tea.Key{Code: tea.KeyEnter}))

	assert.Equal(t, []string{"rice"}, a.GetModel().FormState.Ingredients())
	assert.Empty(t, a.GetModel().FormState.PendingEntry())
}

// TestApp_ViewUsesAltScreen ensures the program renders in the alternate screen.
func TestApp_ViewUsesAltScreen(t *testing.T) {
	a := newTestApp(t)
	_, _ = a.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	view := a.View()
	assert.True(t, view.AltScreen)
	assert.Contains(t, view.Content, "Recipe Generator")
}

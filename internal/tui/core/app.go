package core

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/sazon/internal/app"
	"github.com/thenoetrevino/sazon/internal/config"
	"github.com/thenoetrevino/sazon/internal/tui"
)

// App is the tea.Model handed to the program. It holds the recipe form
// behind a pointer so the launcher and tests see the same state.
type App struct {
	model *tui.Model
}

// New builds the recipe form with the given services and config
func New(ctx context.Context, application *app.App, cfg *config.Config) *App {
	model := tui.InitialModel(ctx, application, cfg)
	return &App{model: &model}
}

// Init focuses the ingredient entry
func (a *App) Init() tea.Cmd {
	return a.model.Init()
}

// Update forwards msg to the form and keeps the resulting state
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := a.model.Update(msg)
	if m, ok := next.(tui.Model); ok {
		*a.model = m
	}
	return a, cmd
}

// View renders the form
func (a *App) View() tea.View {
	return a.model.View()
}

// GetModel exposes the form state, mainly for tests
func (a *App) GetModel() *tui.Model {
	return a.model
}

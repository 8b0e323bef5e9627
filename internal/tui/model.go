package tui

import (
	"context"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/sazon/internal/app"
	"github.com/thenoetrevino/sazon/internal/config"
	"github.com/thenoetrevino/sazon/internal/tui/components"
	"github.com/thenoetrevino/sazon/internal/tui/forms"
	"github.com/thenoetrevino/sazon/internal/tui/state"
	"github.com/thenoetrevino/sazon/internal/tui/theme"
)

// Model represents the application state for the TUI
type Model struct {
	Ctx    context.Context
	App    *app.App
	Config *config.Config

	FormState *state.FormState
	UiState   *state.UIState

	// Entry is the ingredient text input
	Entry *forms.TextInput

	// Spinner animates the generate button while a recipe is in flight
	Spinner spinner.Model

	// SessionCount is the number of recipes generated since launch
	SessionCount int

	// LastTitle is the title of the most recent recipe in the session history
	LastTitle string
}

// InitialModel creates and initializes the TUI model.
// The ingredient entry starts focused.
func InitialModel(ctx context.Context, application *app.App, cfg *config.Config) Model {
	if cfg == nil {
		cfg = config.Default()
	}

	components.InitStyles(cfg.ColorScheme)

	entry := forms.NewTextInput("ingredient", "Enter an ingredient")
	entry.Focus()

	s := spinner.New(spinner.WithSpinner(spinner.Dot))
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Highlight))

	return Model{
		Ctx:       ctx,
		App:       application,
		Config:    cfg,
		FormState: state.NewFormState(),
		UiState:   state.NewUIState(),
		Entry:     entry,
		Spinner:   s,
	}
}

// Init initializes the Bubble Tea application
// Required by tea.Model interface
func (m Model) Init() tea.Cmd {
	return m.Entry.Focus()
}

// syncEntryFocus focuses the entry when its section is active and blurs it otherwise
func (m *Model) syncEntryFocus() tea.Cmd {
	if m.UiState.Section() == state.EntrySection {
		return m.Entry.Focus()
	}
	m.Entry.Blur()
	return nil
}

package tui

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/sazon/internal/tui/components"
	"github.com/thenoetrevino/sazon/internal/tui/layers"
	"github.com/thenoetrevino/sazon/internal/tui/state"
)

// ============================================================================
// HELP MODE HANDLERS
// ============================================================================

// handleHelpMode handles input in the help screen.
func (m Model) handleHelpMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case m.Config.KeyMappings.ShowHelp, m.Config.KeyMappings.Quit, "esc", "enter", "space", " ":
		m.UiState.SetMode(state.NormalMode)
		return m, nil
	}
	return m, nil
}

// renderHelpLayer renders the keyboard shortcut overlay
func (m Model) renderHelpLayer() *lipgloss.Layer {
	helpBox := components.HelpBoxStyle.
		Width(layers.OverlayWidth(m.UiState.Width())).
		Render(m.generateHelpText())

	return layers.CreateCenteredLayer(helpBox, m.UiState.Width(), m.UiState.Height())
}

// generateHelpText creates help text based on current key mappings
func (m Model) generateHelpText() string {
	km := m.Config.KeyMappings
	return fmt.Sprintf(`SAZON - Keyboard Shortcuts

FORM
  %s     Next section
  %s     Previous section
  %s     Generate recipe

INGREDIENTS
  %s     Add the typed ingredient
  ←/→       Select ingredient
  %s     Remove selected ingredient

DIETARY RESTRICTIONS
  %s/%s       Move between restrictions
  %s     Toggle restriction

OTHER
  %s     Toggle this help
  %s     Quit (outside the entry)
  ctrl+c    Quit`,
		km.NextSection,
		km.PrevSection,
		km.Generate,
		km.CommitIngredient,
		km.RemoveIngredient,
		km.PrevItem,
		km.NextItem,
		km.ToggleRestriction,
		km.ShowHelp,
		km.Quit,
	)
}

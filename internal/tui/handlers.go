package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/sazon/internal/tui/state"
)

// ============================================================================
// NORMAL MODE HANDLERS
// ============================================================================

// handleNormalMode handles keys that work in every section, then hands off
// to the focused section.
func (m Model) handleNormalMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	km := m.Config.KeyMappings

	switch msg.String() {
	case km.Generate:
		return m.startGeneration()
	case km.NextSection:
		m.UiState.NextSection()
		return m, m.syncEntryFocus()
	case km.PrevSection:
		m.UiState.PrevSection()
		return m, m.syncEntryFocus()
	}

	// The entry swallows printable keys, so q and ? only act elsewhere
	if m.UiState.Section() == state.EntrySection {
		return m.handleEntryKey(msg)
	}

	switch msg.String() {
	case km.Quit:
		return m, tea.Quit
	case km.ShowHelp:
		m.UiState.SetMode(state.HelpMode)
		return m, nil
	}

	switch m.UiState.Section() {
	case state.IngredientsSection:
		return m.handleIngredientsKey(msg)
	case state.RestrictionsSection:
		return m.handleRestrictionsKey(msg)
	case state.GenerateSection:
		return m.handleGenerateKey(msg)
	}
	return m, nil
}

// handleEntryKey edits the pending ingredient and commits it on enter.
func (m Model) handleEntryKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if msg.String() == m.Config.KeyMappings.CommitIngredient {
		m.FormState.SetPendingEntry(m.Entry.Value())
		if m.FormState.CommitEntry() {
			m.Entry.Reset()
			m.UiState.ClampIngredientCursor(m.FormState.IngredientCount())
		}
		return m, nil
	}

	cmd := m.Entry.Update(msg)
	m.FormState.SetPendingEntry(m.Entry.Value())
	return m, cmd
}

// handleIngredientsKey moves between chips and removes the selected one.
func (m Model) handleIngredientsKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	km := m.Config.KeyMappings
	count := m.FormState.IngredientCount()

	switch msg.String() {
	case "left", "h", km.PrevItem:
		m.UiState.MoveIngredientCursor(-1, count)
	case "right", "l", km.NextItem:
		m.UiState.MoveIngredientCursor(1, count)
	case km.RemoveIngredient, "x", "backspace", "delete":
		if count == 0 {
			return m, nil
		}
		m.FormState.RemoveIngredient(m.FormState.IngredientAt(m.UiState.IngredientCursor()))
		m.UiState.ClampIngredientCursor(m.FormState.IngredientCount())
	}
	return m, nil
}

// handleRestrictionsKey moves between checkboxes and toggles the highlighted one.
func (m Model) handleRestrictionsKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	km := m.Config.KeyMappings

	switch msg.String() {
	case "up", km.PrevItem:
		m.UiState.MoveRestrictionCursor(-1)
	case "down", km.NextItem:
		m.UiState.MoveRestrictionCursor(1)
	case km.ToggleRestriction, "space", " ", "enter":
		m.FormState.ToggleRestriction(m.UiState.SelectedRestriction())
	}
	return m, nil
}

// handleGenerateKey fires the generate button.
func (m Model) handleGenerateKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "space", " ":
		return m.startGeneration()
	}
	return m, nil
}

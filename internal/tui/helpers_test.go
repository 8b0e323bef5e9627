package tui

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/sazon/internal/app"
	"github.com/thenoetrevino/sazon/internal/config"
	"github.com/thenoetrevino/sazon/internal/services/generation"
)

// setupTestModel builds a model backed by a real app with no generation delay
func setupTestModel(t *testing.T) Model {
	t.Helper()
	ctx := context.Background()

	application, err := app.New(ctx, app.WithDelay(generation.FixedDelay(0)))
	require.NoError(t, err)
	t.Cleanup(func() { _ = application.Close() })

	m := InitialModel(ctx, application, config.Default())
	m.UiState.SetWidth(120)
	m.UiState.SetHeight(40)
	return m
}

func runeKey(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg(tea.Key{Text: string(r), Code: r})
}

func codeKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg(tea.Key{Code: code})
}

func ctrlKey(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg(tea.Key{Code: r, Mod: tea.ModCtrl})
}

func shiftTab() tea.KeyPressMsg {
	return tea.KeyPressMsg(tea.Key{Code: tea.KeyTab, Mod: tea.ModShift})
}

// press sends a key through Update and returns the new model
func press(t *testing.T, m Model, msg tea.KeyPressMsg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok, "Update should return a tui.Model")
	return model, cmd
}

// typeText types s into the focused entry
func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		m, _ = press(t, m, runeKey(r))
	}
	return m
}

// addIngredient types s and presses enter
func addIngredient(t *testing.T, m Model, s string) Model {
	t.Helper()
	m = typeText(t, m, s)
	m, _ = press(t, m, codeKey(tea.KeyEnter))
	return m
}

// collectMsgs runs cmd and flattens any batch into the produced messages
func collectMsgs(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var msgs []tea.Msg
	for _, c := range batch {
		msgs = append(msgs, collectMsgs(c)...)
	}
	return msgs
}

// findRecipeMsg returns the RecipeGeneratedMsg produced by cmd, if any
func findRecipeMsg(cmd tea.Cmd) (RecipeGeneratedMsg, bool) {
	for _, msg := range collectMsgs(cmd) {
		if rm, ok := msg.(RecipeGeneratedMsg); ok {
			return rm, true
		}
	}
	return RecipeGeneratedMsg{}, false
}

// isQuit reports whether cmd asks the program to exit
func isQuit(cmd tea.Cmd) bool {
	for _, msg := range collectMsgs(cmd) {
		if _, ok := msg.(tea.QuitMsg); ok {
			return true
		}
	}
	return false
}

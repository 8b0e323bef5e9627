package tui

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/sazon/internal/tui/components"
	"github.com/thenoetrevino/sazon/internal/tui/layers"
	"github.com/thenoetrevino/sazon/internal/tui/state"
	"github.com/thenoetrevino/sazon/internal/tui/theme"
)

const (
	// Below this width the two columns stack vertically
	stackedLayoutWidth = 80
	columnGap          = 2
)

// View renders the current state of the application
// This implements the "View" part of the Model-View-Update pattern
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true                                   // Use alternate screen buffer
	view.BackgroundColor = lipgloss.Color(theme.Background) // Set root background color

	// Wait for terminal size to be initialized
	if m.UiState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	base := m.renderForm()
	if m.UiState.Mode() == state.HelpMode {
		view.Content = layers.Compose(base, m.renderHelpLayer())
		return view
	}

	view.Content = base
	return view
}

// renderForm renders the heading, both columns and the status bar
func (m Model) renderForm() string {
	width := m.UiState.Width()

	var body string
	if width < stackedLayoutWidth {
		body = lipgloss.JoinVertical(lipgloss.Left,
			m.renderInputColumn(width),
			m.renderRecipeCard(width),
		)
	} else {
		leftWidth := (width - columnGap) / 2
		rightWidth := width - columnGap - leftWidth
		body = lipgloss.JoinHorizontal(lipgloss.Top,
			m.renderInputColumn(leftWidth),
			lipgloss.NewStyle().Width(columnGap).Render(""),
			m.renderRecipeCard(rightWidth),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		components.HeadingStyle.Render("Recipe Generator"),
		body,
		components.RenderStatusBar(components.StatusBarProps{
			Width:          width,
			GeneratedCount: m.SessionCount,
			LastTitle:      m.LastTitle,
		}),
	)
}

// renderInputColumn renders the ingredients card, restrictions card and button
func (m Model) renderInputColumn(width int) string {
	section := m.UiState.Section()

	ingredientsBody := lipgloss.JoinVertical(lipgloss.Left,
		m.Entry.View(),
		"",
		components.RenderChips(components.ChipsProps{
			Ingredients: m.FormState.Ingredients(),
			Cursor:      m.UiState.IngredientCursor(),
			Focused:     section == state.IngredientsSection,
			Width:       width,
		}),
	)

	ingredients := components.RenderCard(components.CardProps{
		Title:   components.IngredientsTitle,
		Body:    ingredientsBody,
		Width:   width,
		Focused: section == state.EntrySection || section == state.IngredientsSection,
	})

	restrictions := components.RenderCard(components.CardProps{
		Title: components.RestrictionsTitle,
		Body: components.RenderChecklist(components.ChecklistProps{
			Restrictions: m.FormState.Restrictions(),
			Cursor:       m.UiState.RestrictionCursor(),
			Focused:      section == state.RestrictionsSection,
		}),
		Width:   width,
		Focused: section == state.RestrictionsSection,
	})

	spinnerFrame := ""
	if m.FormState.Generating() {
		spinnerFrame = m.Spinner.View()
	}
	button := components.RenderGenerateButton(components.ButtonProps{
		Enabled:    m.FormState.CanGenerate(),
		Generating: m.FormState.Generating(),
		Focused:    section == state.GenerateSection,
		Spinner:    spinnerFrame,
	})

	return lipgloss.JoinVertical(lipgloss.Left, ingredients, restrictions, "", button, "")
}

// renderRecipeCard renders the generated recipe card
func (m Model) renderRecipeCard(width int) string {
	return components.RenderCard(components.CardProps{
		Title: components.RecipeTitle,
		Body: components.RenderRecipe(components.RecipeProps{
			Text:  m.FormState.GeneratedText(),
			Width: width,
		}),
		Width: width,
	})
}

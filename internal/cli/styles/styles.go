package styles

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/sazon/internal/config"
	"github.com/thenoetrevino/sazon/internal/models"
)

var (
	// Card styles
	CardStyle lipgloss.Style
	CardWidth = 80

	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	ValueStyle    lipgloss.Style

	// Status styles
	SuccessStyle lipgloss.Style
	TagStyle     lipgloss.Style
)

// Init initializes all CLI styles with the given color scheme
func Init(colors config.ColorScheme) {
	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Accent)).
		Padding(1, 2).
		Width(CardWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Normal))

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Selected))

	TagStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.ChipFg)).
		Background(lipgloss.Color(colors.ChipBg)).
		Padding(0, 1)
}

// ═══════════════════════════════════════════════════════════════════
// HELPER FUNCTIONS
// ═══════════════════════════════════════════════════════════════════

// RenderRestrictionTags renders active restrictions as "[vegan]" style tags
func RenderRestrictionTags(r models.DietaryRestrictions) string {
	var out string
	for i, active := range r.Active() {
		if i > 0 {
			out += " "
		}
		out += TagStyle.Render(active.Phrase())
	}
	return out
}

// RenderRecipeHeader renders the one-line summary printed above a recipe
// Format: "✓ Flour Delight (id)"
func RenderRecipeHeader(recipe *models.Recipe) string {
	header := SuccessStyle.Render("✓ "+recipe.Title) + " " +
		SubtitleStyle.Render(fmt.Sprintf("(%s)", recipe.ID))

	if tags := RenderRestrictionTags(recipe.Restrictions); tags != "" {
		header += "\n" + tags
	}
	return header
}

// RenderCard wraps content in a styled card border
func RenderCard(content string) string {
	return CardStyle.Render(ValueStyle.Render(content))
}

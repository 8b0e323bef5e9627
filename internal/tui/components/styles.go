// Package components provides reusable UI components and styles.
// Call InitStyles() before use to initialize all style variables.
package components

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/sazon/internal/config/colors"
	"github.com/thenoetrevino/sazon/internal/tui/theme"
)

// These are cached to avoid recomputing on every redraw.
var (
	// HeadingStyle renders the application heading
	HeadingStyle lipgloss.Style

	// CardStyle defines an unfocused card
	CardStyle lipgloss.Style

	// FocusedCardStyle defines the card holding keyboard focus
	FocusedCardStyle lipgloss.Style

	// CardTitleStyle renders a card header
	CardTitleStyle lipgloss.Style

	// ChipStyle renders an ingredient chip
	ChipStyle lipgloss.Style

	// SelectedChipStyle renders the chip under the cursor
	SelectedChipStyle lipgloss.Style

	// RemoveMarkerStyle renders the × on chips
	RemoveMarkerStyle lipgloss.Style

	// ButtonStyle renders the enabled generate button
	ButtonStyle lipgloss.Style

	// DisabledButtonStyle renders the generate button when it cannot fire
	DisabledButtonStyle lipgloss.Style

	// SubtleStyle renders muted text
	SubtleStyle lipgloss.Style

	// NormalStyle renders body text
	NormalStyle lipgloss.Style

	// SelectedStyle highlights the row under the cursor
	SelectedStyle lipgloss.Style

	// HelpBoxStyle defines the base style for help screen
	HelpBoxStyle lipgloss.Style
)

// InitStyles initializes all styles with the given color scheme
func InitStyles(colors colors.ColorScheme) {
	// Initialize theme colors
	theme.Init(colors)

	HeadingStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Title)).
		MarginBottom(1)

	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.CardBorder)).
		Padding(0, 1)

	FocusedCardStyle = CardStyle.
		BorderForeground(lipgloss.Color(colors.FocusedBorder))

	CardTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Title))

	ChipStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.ChipFg)).
		Background(lipgloss.Color(colors.ChipBg)).
		Padding(0, 1)

	SelectedChipStyle = ChipStyle.
		Bold(true).
		Underline(true)

	RemoveMarkerStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Remove)).
		Background(lipgloss.Color(colors.ChipBg)).
		Bold(true)

	ButtonStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.ButtonFg)).
		Background(lipgloss.Color(colors.ButtonBg)).
		Bold(true).
		Padding(0, 2)

	DisabledButtonStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle)).
		Background(lipgloss.Color(colors.ButtonDisabled)).
		Padding(0, 2)

	SubtleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle))

	NormalStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Normal))

	SelectedStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Selected)).
		Bold(true)

	HelpBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Accent)).
		Padding(1, 2)
}

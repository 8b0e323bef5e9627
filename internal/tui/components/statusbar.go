package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
)

type StatusBarProps struct {
	Width          int
	GeneratedCount int
	LastTitle      string
}

// RenderStatusBar renders a status bar with left and right aligned text
// Left side: "Sazon - Recipe Generator" plus the session recipe count and last title
// Right side: "press ? for help"
func RenderStatusBar(props StatusBarProps) string {
	leftText := "Sazon - Recipe Generator"
	if props.GeneratedCount > 0 {
		noun := "recipes"
		if props.GeneratedCount == 1 {
			noun = "recipe"
		}
		leftText += fmt.Sprintf(" · %d %s this session", props.GeneratedCount, noun)
	}
	if props.LastTitle != "" {
		leftText += " · last: " + props.LastTitle
	}
	rightText := "press ? for help"

	leftRendered := SubtleStyle.Render(leftText)
	rightRendered := SubtleStyle.Render(rightText)

	// Calculate space between left and right text
	leftWidth := lipgloss.Width(leftRendered)
	rightWidth := lipgloss.Width(rightRendered)
	gapWidth := max(props.Width-leftWidth-rightWidth, 1)

	gap := strings.Repeat(" ", gapWidth)

	return lipgloss.JoinHorizontal(lipgloss.Top, leftRendered, gap, rightRendered)
}

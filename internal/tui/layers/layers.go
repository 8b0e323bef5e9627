// Package layers provides utility functions for creating and managing UI layers
package layers

import "charm.land/lipgloss/v2"

const (
	OverlayMinWidth = 40
	OverlayMaxWidth = 64
)

// CreateCenteredLayer creates a layer positioned at the center of the screen.
// Returns nil if content is empty.
func CreateCenteredLayer(content string, screenWidth int, screenHeight int) *lipgloss.Layer {
	if content == "" {
		return nil
	}

	contentWidth := lipgloss.Width(content)
	contentHeight := lipgloss.Height(content)

	x := (screenWidth - contentWidth) / 2
	y := (screenHeight - contentHeight) / 2

	x = max(x, 0)
	y = max(y, 0)

	return lipgloss.NewLayer(content).X(x).Y(y)
}

// OverlayWidth picks a width for a modal overlay on a screen of the given width
func OverlayWidth(screenWidth int) int {
	width := min(max(screenWidth/2, OverlayMinWidth), OverlayMaxWidth)
	return min(width, screenWidth)
}

// Compose stacks overlays above the base content.
// Nil overlays are skipped.
func Compose(base string, overlays ...*lipgloss.Layer) string {
	all := []*lipgloss.Layer{lipgloss.NewLayer(base)}
	for _, layer := range overlays {
		if layer != nil {
			all = append(all, layer)
		}
	}
	if len(all) == 1 {
		return base
	}
	return lipgloss.NewCanvas(all...).Render()
}

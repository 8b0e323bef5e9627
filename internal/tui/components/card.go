package components

import "charm.land/lipgloss/v2"

type CardProps struct {
	Title   string
	Body    string
	Width   int
	Focused bool
}

// RenderCard renders a bordered card with a bold title above its body.
// Width is the outer width including the border.
func RenderCard(props CardProps) string {
	style := CardStyle
	if props.Focused {
		style = FocusedCardStyle
	}

	content := CardTitleStyle.Render(props.Title)
	if props.Body != "" {
		content = lipgloss.JoinVertical(lipgloss.Left, content, "", props.Body)
	}

	if props.Width > 0 {
		style = style.Width(props.Width)
	}
	return style.Render(content)
}

// innerWidth returns the usable text width inside a card of the given width
func innerWidth(cardWidth int) int {
	return max(cardWidth-cardChromeWidth, 1)
}

package components

import (
	"strings"

	"github.com/thenoetrevino/sazon/internal/models"
)

type ChecklistProps struct {
	Restrictions models.DietaryRestrictions
	Cursor       int
	Focused      bool
}

// RenderChecklist renders one checkbox row per restriction in fixed order
func RenderChecklist(props ChecklistProps) string {
	rows := make([]string, 0, len(models.AllRestrictions))

	for i, r := range models.AllRestrictions {
		cursor := "  "
		if props.Focused && i == props.Cursor {
			cursor = SelectedStyle.Render("> ")
		}

		checkbox := "[ ] "
		if props.Restrictions.Enabled(r) {
			checkbox = "[x] "
		}

		labelStyle := NormalStyle
		if props.Restrictions.Enabled(r) {
			labelStyle = SelectedStyle
		}

		rows = append(rows, cursor+checkbox+labelStyle.Render(r.Label()))
	}

	return strings.Join(rows, "\n")
}

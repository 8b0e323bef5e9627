package components

import (
	"strings"

	"charm.land/lipgloss/v2"
)

type ChipsProps struct {
	Ingredients []string
	Cursor      int
	Focused     bool
	Width       int // card width the chips are laid out in
}

// RenderIngredientChip renders a single ingredient with its remove marker
func RenderIngredientChip(name string, selected bool) string {
	style := ChipStyle
	if selected {
		style = SelectedChipStyle
	}
	return style.Render(name) + RemoveMarkerStyle.Render("× ")
}

// RenderChips lays the ingredient chips out in rows that fit the card.
// The chip under the cursor is highlighted only while the section is focused.
func RenderChips(props ChipsProps) string {
	if len(props.Ingredients) == 0 {
		return SubtleStyle.Render("No ingredients yet")
	}

	limit := innerWidth(props.Width)
	var rows []string
	var row []string
	rowWidth := 0

	for i, name := range props.Ingredients {
		chip := RenderIngredientChip(name, props.Focused && i == props.Cursor)
		chipWidth := lipgloss.Width(chip)

		if len(row) > 0 && rowWidth+chipGap+chipWidth > limit {
			rows = append(rows, strings.Join(row, strings.Repeat(" ", chipGap)))
			row = nil
			rowWidth = 0
		}
		if len(row) > 0 {
			rowWidth += chipGap
		}
		row = append(row, chip)
		rowWidth += chipWidth
	}
	rows = append(rows, strings.Join(row, strings.Repeat(" ", chipGap)))

	return strings.Join(rows, "\n")
}

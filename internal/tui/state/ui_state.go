package state

import "github.com/thenoetrevino/sazon/internal/models"

// Mode represents the current interaction mode of the TUI.
type Mode int

const (
	NormalMode Mode = iota // Editing the form
	HelpMode               // Displaying help overlay
)

// Section identifies the focused part of the form.
// Tab order follows the declaration order.
type Section int

const (
	EntrySection        Section = iota // Ingredient text input
	IngredientsSection                 // Ingredient chips
	RestrictionsSection                // Dietary checkboxes
	GenerateSection                    // Generate button
	sectionCount
)

// UIState manages the user interface state.
// This includes focus, cursors inside each section, terminal dimensions and
// the current interaction mode.
type UIState struct {
	// width is the current terminal width in characters
	width int

	// height is the current terminal height in characters
	height int

	// mode is the current interaction mode
	mode Mode

	// section is the focused part of the form
	section Section

	// ingredientCursor is the selected chip index
	ingredientCursor int

	// restrictionCursor is the highlighted checkbox index
	restrictionCursor int
}

// NewUIState creates a new UIState focused on the ingredient entry.
func NewUIState() *UIState {
	return &UIState{
		mode:    NormalMode,
		section: EntrySection,
	}
}

// Width returns the current terminal width.
func (s *UIState) Width() int {
	return s.width
}

// SetWidth updates the terminal width.
func (s *UIState) SetWidth(width int) {
	s.width = width
}

// Height returns the current terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetHeight updates the terminal height.
func (s *UIState) SetHeight(height int) {
	s.height = height
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode changes the interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// Section returns the focused section.
func (s *UIState) Section() Section {
	return s.section
}

// SetSection focuses the given section.
func (s *UIState) SetSection(section Section) {
	if section < 0 || section >= sectionCount {
		return
	}
	s.section = section
}

// NextSection moves focus forward, wrapping around.
func (s *UIState) NextSection() {
	s.section = (s.section + 1) % sectionCount
}

// PrevSection moves focus backward, wrapping around.
func (s *UIState) PrevSection() {
	s.section = (s.section + sectionCount - 1) % sectionCount
}

// IngredientCursor returns the selected chip index.
func (s *UIState) IngredientCursor() int {
	return s.ingredientCursor
}

// MoveIngredientCursor shifts the chip selection by delta within [0, count).
func (s *UIState) MoveIngredientCursor(delta, count int) {
	s.ingredientCursor = clamp(s.ingredientCursor+delta, count)
}

// ClampIngredientCursor keeps the chip selection valid after removals.
func (s *UIState) ClampIngredientCursor(count int) {
	s.ingredientCursor = clamp(s.ingredientCursor, count)
}

// RestrictionCursor returns the highlighted checkbox index.
func (s *UIState) RestrictionCursor() int {
	return s.restrictionCursor
}

// MoveRestrictionCursor shifts the checkbox highlight by delta.
func (s *UIState) MoveRestrictionCursor(delta int) {
	s.restrictionCursor = clamp(s.restrictionCursor+delta, len(models.AllRestrictions))
}

// SelectedRestriction returns the restriction under the cursor.
func (s *UIState) SelectedRestriction() models.Restriction {
	return models.AllRestrictions[s.restrictionCursor]
}

// clamp bounds i to [0, count-1], or 0 when count is 0
func clamp(i, count int) int {
	if count <= 0 || i < 0 {
		return 0
	}
	if i >= count {
		return count - 1
	}
	return i
}

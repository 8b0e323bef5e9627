package state

import "github.com/thenoetrevino/sazon/internal/models"

// Snapshot is the form content captured when a generation starts
type Snapshot struct {
	Ingredients  []string
	Restrictions models.DietaryRestrictions
}

// FormState owns everything the recipe form edits.
// It is the single source of truth for the ingredient list, the pending
// entry, the restriction flags, the last generated text and the in-flight flag.
type FormState struct {
	// pendingEntry is text typed but not yet added to the list
	pendingEntry string

	// ingredients is the committed, de-duplicated ingredient list
	ingredients *models.IngredientList

	// restrictions holds the four dietary flags
	restrictions models.DietaryRestrictions

	// generatedText is the most recent recipe, empty before the first one
	generatedText string

	// generating guards against a second generation while one is running
	generating bool
}

// NewFormState creates an empty form.
func NewFormState() *FormState {
	return &FormState{
		ingredients: models.NewIngredientList(),
	}
}

// PendingEntry returns the uncommitted entry text.
func (s *FormState) PendingEntry() string {
	return s.pendingEntry
}

// SetPendingEntry replaces the entry text verbatim.
func (s *FormState) SetPendingEntry(text string) {
	s.pendingEntry = text
}

// CommitEntry appends the pending entry and clears it.
// Empty or duplicate entries are ignored and the pending text is kept.
// Returns true when an ingredient was added.
func (s *FormState) CommitEntry() bool {
	if !s.ingredients.Add(s.pendingEntry) {
		return false
	}
	s.pendingEntry = ""
	return true
}

// RemoveIngredient drops value from the list; absent values are ignored.
func (s *FormState) RemoveIngredient(value string) bool {
	return s.ingredients.Remove(value)
}

// Ingredients returns a copy of the ingredient list in insertion order.
func (s *FormState) Ingredients() []string {
	return s.ingredients.Items()
}

// IngredientCount returns the number of committed ingredients.
func (s *FormState) IngredientCount() int {
	return s.ingredients.Len()
}

// IngredientAt returns the ingredient at index i, or "" when out of range.
func (s *FormState) IngredientAt(i int) string {
	return s.ingredients.At(i)
}

// Restrictions returns the current dietary flags.
func (s *FormState) Restrictions() models.DietaryRestrictions {
	return s.restrictions
}

// ToggleRestriction flips one flag.
func (s *FormState) ToggleRestriction(r models.Restriction) {
	s.restrictions.Toggle(r)
}

// GeneratedText returns the last recipe text.
func (s *FormState) GeneratedText() string {
	return s.generatedText
}

// Generating reports whether a generation is in flight.
func (s *FormState) Generating() bool {
	return s.generating
}

// CanGenerate reports whether the generate trigger is available.
func (s *FormState) CanGenerate() bool {
	return !s.generating && s.ingredients.Len() > 0
}

// BeginGeneration marks a generation as in flight and snapshots the form.
// When a generation is already running or the list is empty it changes
// nothing and returns false; the request is dropped, not queued.
func (s *FormState) BeginGeneration() (Snapshot, bool) {
	if !s.CanGenerate() {
		return Snapshot{}, false
	}
	s.generating = true
	return Snapshot{
		Ingredients:  s.ingredients.Items(),
		Restrictions: s.restrictions,
	}, true
}

// CompleteGeneration replaces the generated text and clears the in-flight flag.
func (s *FormState) CompleteGeneration(text string) {
	s.generatedText = text
	s.generating = false
}

// AbortGeneration clears the in-flight flag and keeps the previous text.
func (s *FormState) AbortGeneration() {
	s.generating = false
}

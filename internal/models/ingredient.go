package models

import "slices"

// IngredientList is an ordered set of ingredient names.
// Entries are non-empty and unique by exact, case-sensitive match.
type IngredientList struct {
	items []string
}

// NewIngredientList builds a list from values, dropping empties and duplicates
func NewIngredientList(values ...string) *IngredientList {
	list := &IngredientList{}
	for _, v := range values {
		list.Add(v)
	}
	return list
}

// Add appends value unless it is empty or already present.
// Returns true when the list changed.
func (l *IngredientList) Add(value string) bool {
	if value == "" || l.Contains(value) {
		return false
	}
	l.items = append(l.items, value)
	return true
}

// Remove deletes value if present. Returns true when the list changed.
func (l *IngredientList) Remove(value string) bool {
	idx := slices.Index(l.items, value)
	if idx < 0 {
		return false
	}
	l.items = slices.Delete(l.items, idx, idx+1)
	return true
}

// Contains reports whether value is already in the list
func (l *IngredientList) Contains(value string) bool {
	return slices.Contains(l.items, value)
}

// Items returns a copy of the ingredients in insertion order
func (l *IngredientList) Items() []string {
	return slices.Clone(l.items)
}

// Len returns the number of ingredients
func (l *IngredientList) Len() int {
	return len(l.items)
}

// At returns the ingredient at index i, or "" when out of range
func (l *IngredientList) At(i int) string {
	if i < 0 || i >= len(l.items) {
		return ""
	}
	return l.items[i]
}

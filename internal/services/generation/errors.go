package generation

import "errors"

// Generation errors
var (
	// ErrNoIngredients is returned when generation is requested with an empty list
	ErrNoIngredients = errors.New("at least one ingredient is required")
)

package history

import "errors"

// ErrNilRecipe is returned when Record is called without a recipe
var ErrNilRecipe = errors.New("recipe cannot be nil")

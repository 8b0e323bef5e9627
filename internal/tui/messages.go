package tui

import "github.com/thenoetrevino/sazon/internal/models"

// RecipeGeneratedMsg is sent when a generation finishes.
// Err is only set when the process is shutting down mid-generation.
type RecipeGeneratedMsg struct {
	Recipe *models.Recipe
	Err    error
}

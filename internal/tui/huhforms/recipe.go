// Package huhforms builds the interactive prompts used outside the full-screen TUI.
package huhforms

import (
	"errors"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/thenoetrevino/sazon/internal/models"
)

// ErrNoIngredientsEntered is returned by the ingredient field validator
var ErrNoIngredientsEntered = errors.New("enter at least one ingredient")

// RestrictionOptions returns one multi-select option per restriction in fixed order
func RestrictionOptions() []huh.Option[models.Restriction] {
	options := make([]huh.Option[models.Restriction], 0, len(models.AllRestrictions))
	for _, r := range models.AllRestrictions {
		options = append(options, huh.NewOption(r.Label(), r))
	}
	return options
}

// SplitIngredients splits comma separated input into trimmed entries.
// Blank entries are dropped; duplicates are left for IngredientList to reject.
func SplitIngredients(input string) []string {
	var out []string
	for _, part := range strings.Split(input, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func validateIngredients(input string) error {
	if len(SplitIngredients(input)) == 0 {
		return ErrNoIngredientsEntered
	}
	return nil
}

// CreateRecipeForm creates a huh form asking for ingredients and dietary restrictions
func CreateRecipeForm(
	ingredients *string,
	restrictions *[]models.Restriction,
) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Key("ingredients").
			Title("Ingredients").
			Description("Comma separated, e.g. flour, sugar, eggs").
			Placeholder("Enter ingredients...").
			Validate(validateIngredients).
			Value(ingredients),

		huh.NewMultiSelect[models.Restriction]().
			Key("restrictions").
			Title("Dietary Restrictions").
			Options(RestrictionOptions()...).
			Value(restrictions),
	}

	return huh.NewForm(huh.NewGroup(fields...))
}

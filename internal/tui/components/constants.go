package components

const (
	cardChromeWidth = 4 // left/right border plus horizontal padding
	chipGap         = 1 // spaces between chips on a row
	minRecipeWidth  = 20

	// Button labels
	GenerateLabel   = "Generate Recipe"
	GeneratingLabel = "Generating..."

	// Card titles
	IngredientsTitle  = "Ingredients"
	RestrictionsTitle = "Dietary Restrictions"
	RecipeTitle       = "Generated Recipe"

	// Placeholder shown before the first recipe
	RecipePlaceholder = "Add ingredients and generate a recipe."
)

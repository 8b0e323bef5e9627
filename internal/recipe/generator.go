// Package recipe renders the fixed recipe template from an ingredient list
// and a set of dietary restrictions. Output is deterministic.
package recipe

import (
	"fmt"
	"strings"

	"github.com/thenoetrevino/sazon/internal/models"
)

// TitleSuffix is appended to the capitalized first ingredient
const TitleSuffix = "Delight"

// Title derives the recipe name from the first ingredient
func Title(first string) string {
	return models.CapitalizeFirst(first) + " " + TitleSuffix
}

// Steps returns the six instruction lines without numbering.
// Only the second step mentions ingredients; with a single ingredient it
// names just that one.
func Steps(ingredients []string) []string {
	combine := "In a large bowl, combine " + ingredients[0] + "."
	if len(ingredients) > 1 {
		combine = fmt.Sprintf("In a large bowl, combine %s and %s.", ingredients[0], ingredients[1])
	}

	return []string{
		"Preheat the oven to 350°F (175°C).",
		combine,
		"Add the remaining ingredients and mix well.",
		"Transfer the mixture to a baking dish.",
		"Bake for 25-30 minutes or until golden brown.",
		"Let it cool for 5 minutes before serving.",
	}
}

// Notes returns one advisory line per enabled restriction, in fixed order
func Notes(restrictions models.DietaryRestrictions) []string {
	var notes []string
	for _, r := range restrictions.Active() {
		notes = append(notes, "Note: This recipe is "+r.Phrase()+".")
	}
	return notes
}

// Generate renders the plain-text recipe.
// An empty ingredient list renders nothing.
func Generate(ingredients []string, restrictions models.DietaryRestrictions) string {
	if len(ingredients) == 0 {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Recipe: %s\n\n", Title(ingredients[0]))

	b.WriteString("Ingredients:\n")
	for _, ingredient := range ingredients {
		fmt.Fprintf(&b, "- %s\n", ingredient)
	}

	b.WriteString("\nInstructions:\n")
	for i, step := range Steps(ingredients) {
		fmt.Fprintf(&b, "%d. %s\n", i+1, step)
	}

	for _, note := range Notes(restrictions) {
		fmt.Fprintf(&b, "\n%s\n", note)
	}

	return b.String()
}

// Markdown renders the same template as Markdown for terminal rendering
func Markdown(ingredients []string, restrictions models.DietaryRestrictions) string {
	if len(ingredients) == 0 {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", Title(ingredients[0]))

	b.WriteString("## Ingredients\n\n")
	for _, ingredient := range ingredients {
		fmt.Fprintf(&b, "- %s\n", ingredient)
	}

	b.WriteString("\n## Instructions\n\n")
	for i, step := range Steps(ingredients) {
		fmt.Fprintf(&b, "%d. %s\n", i+1, step)
	}

	for _, note := range Notes(restrictions) {
		fmt.Fprintf(&b, "\n> %s\n", note)
	}

	return b.String()
}

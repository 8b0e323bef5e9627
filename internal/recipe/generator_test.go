package recipe

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/sazon/internal/models"
)

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func bulletLines(s string) []string {
	var bullets []string
	for _, line := range lines(s) {
		if strings.HasPrefix(line, "- ") {
			bullets = append(bullets, strings.TrimPrefix(line, "- "))
		}
	}
	return bullets
}

func noteLines(s string) []string {
	var notes []string
	for _, line := range lines(s) {
		if strings.HasPrefix(line, "Note: ") {
			notes = append(notes, line)
		}
	}
	return notes
}

func TestGenerate_FlourSugarVegan(t *testing.T) {
	out := Generate([]string{"flour", "sugar"}, models.DietaryRestrictions{Vegan: true})

	want := "Recipe: Flour Delight\n" +
		"\n" +
		"Ingredients:\n" +
		"- flour\n" +
		"- sugar\n" +
		"\n" +
		"Instructions:\n" +
		"1. Preheat the oven to 350°F (175°C).\n" +
		"2. In a large bowl, combine flour and sugar.\n" +
		"3. Add the remaining ingredients and mix well.\n" +
		"4. Transfer the mixture to a baking dish.\n" +
		"5. Bake for 25-30 minutes or until golden brown.\n" +
		"6. Let it cool for 5 minutes before serving.\n" +
		"\n" +
		"Note: This recipe is vegan-friendly.\n"

	assert.Equal(t, want, out)
}

func TestGenerate_TitleLine(t *testing.T) {
	tests := []struct {
		name  string
		first string
		want  string
	}{
		{"lowercase", "flour", "Recipe: Flour Delight"},
		{"already capitalized", "Butter", "Recipe: Butter Delight"},
		{"multi word", "brown rice", "Recipe: Brown rice Delight"},
		{"unicode", "ñame", "Recipe: Ñame Delight"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Generate([]string{tt.first, "water"}, models.DietaryRestrictions{})
			assert.Equal(t, tt.want, lines(out)[0])
		})
	}
}

func TestGenerate_OneBulletPerIngredientInOrder(t *testing.T) {
	ingredients := []string{"eggs", "milk", "flour", "salt", "butter"}

	out := Generate(ingredients, models.DietaryRestrictions{})

	assert.Equal(t, ingredients, bulletLines(out))
}

func TestGenerate_NoteLinesFollowFixedOrder(t *testing.T) {
	tests := []struct {
		name         string
		restrictions models.DietaryRestrictions
		want         []string
	}{
		{
			name:         "none",
			restrictions: models.DietaryRestrictions{},
			want:         nil,
		},
		{
			name:         "all",
			restrictions: models.DietaryRestrictions{Vegetarian: true, Vegan: true, GlutenFree: true, DairyFree: true},
			want: []string{
				"Note: This recipe is vegetarian-friendly.",
				"Note: This recipe is vegan-friendly.",
				"Note: This recipe is gluten-free.",
				"Note: This recipe is dairy-free.",
			},
		},
		{
			name:         "dairy free and vegetarian",
			restrictions: models.DietaryRestrictions{DairyFree: true, Vegetarian: true},
			want: []string{
				"Note: This recipe is vegetarian-friendly.",
				"Note: This recipe is dairy-free.",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Generate([]string{"rice", "beans"}, tt.restrictions)
			assert.Equal(t, tt.want, noteLines(out))
		})
	}
}

func TestGenerate_SingleIngredientOmitsSecondClause(t *testing.T) {
	out := Generate([]string{"potato"}, models.DietaryRestrictions{})

	assert.Contains(t, out, "2. In a large bowl, combine potato.\n")
	assert.NotContains(t, out, "combine potato and")
}

func TestGenerate_EmptyList(t *testing.T) {
	assert.Equal(t, "", Generate(nil, models.DietaryRestrictions{Vegan: true}))
	assert.Equal(t, "", Markdown(nil, models.DietaryRestrictions{}))
}

func TestGenerate_Deterministic(t *testing.T) {
	ingredients := []string{"tofu", "soy sauce", "ginger"}
	restrictions := models.DietaryRestrictions{Vegan: true, DairyFree: true}

	assert.Equal(t, Generate(ingredients, restrictions), Generate(ingredients, restrictions))
}

func TestSteps_AlwaysSix(t *testing.T) {
	assert.Len(t, Steps([]string{"a"}), 6)
	assert.Len(t, Steps([]string{"a", "b", "c"}), 6)
}

func TestMarkdown(t *testing.T) {
	out := Markdown([]string{"flour", "sugar"}, models.DietaryRestrictions{GlutenFree: true})
	md := lines(out)

	require.NotEmpty(t, md)
	assert.Equal(t, "# Flour Delight", md[0])
	assert.Contains(t, out, "## Ingredients\n\n- flour\n- sugar\n")
	assert.Contains(t, out, "2. In a large bowl, combine flour and sugar.\n")
	assert.Contains(t, out, "> Note: This recipe is gluten-free.\n")
}

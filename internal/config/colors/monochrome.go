package colors

// Monochrome returns a black and white color scheme
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",

		// Primary
		Accent: "#FFFFFF",

		// Background
		Background: "#121212",

		// Cards
		CardBorder:    "#585858",
		FocusedBorder: "#FFFFFF",

		// Chips
		ChipFg:   "#121212",
		ChipBg:   "#D0D0D0",
		Selected: "#FFFFFF",
		Remove:   "#FFFFFF",

		// Button
		ButtonFg:       "#121212",
		ButtonBg:       "#FFFFFF",
		ButtonDisabled: "#3A3A3A",

		// Text
		Title:  "#FFFFFF",
		Subtle: "#585858",
		Normal: "#D0D0D0",
	}
}

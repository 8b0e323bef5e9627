package colors

// Default returns the default color scheme (purple theme)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		// Primary
		Accent: "#874BFD",

		// Background
		Background: "#1C1C1C",

		// Cards
		CardBorder:    "#585858",
		FocusedBorder: "#D75FD7",

		// Chips
		ChipFg:   "#D0D0D0",
		ChipBg:   "#5F5FAF",
		Selected: "#D75FD7",
		Remove:   "#FF5F5F",

		// Button
		ButtonFg:       "#FFFFFF",
		ButtonBg:       "#874BFD",
		ButtonDisabled: "#3A3A3A",

		// Text
		Title:  "#D75FD7",
		Subtle: "#767676",
		Normal: "#D0D0D0",
	}
}

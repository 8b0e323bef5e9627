package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (used for the heading, focus and the generate button)
	Accent string `yaml:"accent"`

	// Root background
	Background string `yaml:"background"`

	// Card borders
	CardBorder    string `yaml:"card_border"`
	FocusedBorder string `yaml:"focused_border"`

	// Ingredient chips
	ChipFg   string `yaml:"chip_fg"`
	ChipBg   string `yaml:"chip_bg"`
	Selected string `yaml:"selected"` // Highlighted chip or checkbox row
	Remove   string `yaml:"remove"`   // The × marker on chips

	// Generate button
	ButtonFg       string `yaml:"button_fg"`
	ButtonBg       string `yaml:"button_bg"`
	ButtonDisabled string `yaml:"button_disabled"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	case "default", "":
		return Default()
	default:
		return Default()
	}
}

// ApplyDefaults fills in missing color values using the preset as base
// If preset is specified, loads that preset first, then overrides with custom values
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)
	if c.Preset == "" {
		c.Preset = preset.Preset
	}
	c.fillFrom(preset)
}

// MergeFrom overrides values with every non-empty field of other
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	if other.Preset != "" && other.Preset != c.Preset {
		// switching presets resets everything the override does not set
		*c = ColorScheme{Preset: other.Preset}
		c.fillFrom(&other)
		c.ApplyDefaults()
		return
	}
	merged := other
	merged.Preset = c.Preset
	merged.fillFrom(c)
	*c = merged
}

// fillFrom copies each field of src into c where c is empty
func (c *ColorScheme) fillFrom(src *ColorScheme) {
	for _, pair := range []struct {
		dst *string
		src string
	}{
		{&c.Accent, src.Accent},
		{&c.Background, src.Background},
		{&c.CardBorder, src.CardBorder},
		{&c.FocusedBorder, src.FocusedBorder},
		{&c.ChipFg, src.ChipFg},
		{&c.ChipBg, src.ChipBg},
		{&c.Selected, src.Selected},
		{&c.Remove, src.Remove},
		{&c.ButtonFg, src.ButtonFg},
		{&c.ButtonBg, src.ButtonBg},
		{&c.ButtonDisabled, src.ButtonDisabled},
		{&c.Title, src.Title},
		{&c.Subtle, src.Subtle},
		{&c.Normal, src.Normal},
	} {
		if *pair.dst == "" {
			*pair.dst = pair.src
		}
	}
}

package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Form
	Generate          string `yaml:"generate"`
	CommitIngredient  string `yaml:"commit_ingredient"`
	RemoveIngredient  string `yaml:"remove_ingredient"`
	ToggleRestriction string `yaml:"toggle_restriction"`

	// Navigation
	NextSection string `yaml:"next_section"`
	PrevSection string `yaml:"prev_section"`
	PrevItem    string `yaml:"prev_item"`
	NextItem    string `yaml:"next_item"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		// Form
		Generate:          "ctrl+g",
		CommitIngredient:  "enter",
		RemoveIngredient:  "d",
		ToggleRestriction: "space",

		// Navigation
		NextSection: "tab",
		PrevSection: "shift+tab",
		PrevItem:    "k",
		NextItem:    "j",

		// Other
		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	if k.Generate == "" {
		k.Generate = defaults.Generate
	}
	if k.CommitIngredient == "" {
		k.CommitIngredient = defaults.CommitIngredient
	}
	if k.RemoveIngredient == "" {
		k.RemoveIngredient = defaults.RemoveIngredient
	}
	if k.ToggleRestriction == "" {
		k.ToggleRestriction = defaults.ToggleRestriction
	}
	if k.NextSection == "" {
		k.NextSection = defaults.NextSection
	}
	if k.PrevSection == "" {
		k.PrevSection = defaults.PrevSection
	}
	if k.PrevItem == "" {
		k.PrevItem = defaults.PrevItem
	}
	if k.NextItem == "" {
		k.NextItem = defaults.NextItem
	}
	if k.ShowHelp == "" {
		k.ShowHelp = defaults.ShowHelp
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}

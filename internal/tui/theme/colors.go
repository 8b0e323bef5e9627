package theme

import "github.com/thenoetrevino/sazon/internal/config"

// Colors holds the current theme colors, initialized by Init
var (
	Highlight      string
	Background     string
	Subtle         string
	Normal         string
	Title          string
	CardBorder     string
	FocusedBorder  string
	ChipFg         string
	ChipBg         string
	Selected       string
	Remove         string
	ButtonFg       string
	ButtonBg       string
	ButtonDisabled string
)

// Init initializes the theme colors from the given color scheme
func Init(colors config.ColorScheme) {
	Highlight = colors.Accent
	Background = colors.Background
	Subtle = colors.Subtle
	Normal = colors.Normal
	Title = colors.Title
	CardBorder = colors.CardBorder
	FocusedBorder = colors.FocusedBorder
	ChipFg = colors.ChipFg
	ChipBg = colors.ChipBg
	Selected = colors.Selected
	Remove = colors.Remove
	ButtonFg = colors.ButtonFg
	ButtonBg = colors.ButtonBg
	ButtonDisabled = colors.ButtonDisabled
}

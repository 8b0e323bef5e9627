package components

type ButtonProps struct {
	Enabled    bool
	Generating bool
	Focused    bool
	Spinner    string // current spinner frame while generating
}

// RenderGenerateButton renders the generate trigger.
// A disabled button is drawn muted and cannot be activated.
func RenderGenerateButton(props ButtonProps) string {
	label := GenerateLabel
	if props.Generating {
		label = GeneratingLabel
		if props.Spinner != "" {
			label = props.Spinner + " " + label
		}
	}

	style := DisabledButtonStyle
	if props.Enabled {
		style = ButtonStyle
	}

	button := style.Render(label)
	if props.Focused {
		return SelectedStyle.Render("> ") + button
	}
	return "  " + button
}

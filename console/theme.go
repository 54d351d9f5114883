package console

import "github.com/fatih/color"

// Theme is the immutable set of styles console output is rendered
// with. It is built once at startup and passed around by value.
type Theme struct {
	Primary *color.Color
	Dim     *color.Color
}

// NewTheme builds the purple theme. With noColor set, styles degrade
// to plain text; fatih/color additionally drops colors on its own when
// stdout is not a terminal.
func NewTheme(noColor bool) Theme {
	primary := color.New(color.FgMagenta, color.Bold)
	dim := color.New(color.Faint)

	if noColor {
		primary.DisableColor()
		dim.DisableColor()
	}

	return Theme{
		Primary: primary,
		Dim:     dim,
	}
}

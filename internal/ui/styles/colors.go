// Package styles provides centralized Lipgloss styling for the smartedit UI.
package styles

import "github.com/charmbracelet/lipgloss"

// Palette is the set of colors a theme provides.
type Palette struct {
	Border     lipgloss.Color // panel borders
	Accent     lipgloss.Color // titles, focused borders
	Muted      lipgloss.Color // secondary text
	Text       lipgloss.Color
	StatusBg   lipgloss.Color
	SelectedFg lipgloss.Color
	SelectedBg lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
	Cursor     lipgloss.Color
}

// Dark is the default palette.
var Dark = Palette{
	Border:     lipgloss.Color("240"),
	Accent:     lipgloss.Color("6"),
	Muted:      lipgloss.Color("8"),
	Text:       lipgloss.Color("252"),
	StatusBg:   lipgloss.Color("236"),
	SelectedFg: lipgloss.Color("229"),
	SelectedBg: lipgloss.Color("57"),
	Success:    lipgloss.Color("10"),
	Warning:    lipgloss.Color("11"),
	Error:      lipgloss.Color("9"),
	Cursor:     lipgloss.Color("212"),
}

// Light is the palette for light terminals.
var Light = Palette{
	Border:     lipgloss.Color("250"),
	Accent:     lipgloss.Color("25"),
	Muted:      lipgloss.Color("244"),
	Text:       lipgloss.Color("235"),
	StatusBg:   lipgloss.Color("254"),
	SelectedFg: lipgloss.Color("231"),
	SelectedBg: lipgloss.Color("25"),
	Success:    lipgloss.Color("28"),
	Warning:    lipgloss.Color("130"),
	Error:      lipgloss.Color("160"),
	Cursor:     lipgloss.Color("161"),
}

// PaletteFor returns the palette for a theme name, defaulting to Dark.
func PaletteFor(theme string) Palette {
	if theme == "light" {
		return Light
	}
	return Dark
}

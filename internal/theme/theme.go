package theme

import "github.com/charmbracelet/lipgloss"

// Theme holds all visual configuration for the application.
type Theme struct {
	// Name is the key used in the config file
	Name string

	// Color palette
	Colors ColorPalette
}

// ColorPalette holds all color definitions.
type ColorPalette struct {
	Accent    lipgloss.Color
	Highlight lipgloss.Color
	Info      lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color

	TextPrimary lipgloss.Color
	TextMuted   lipgloss.Color
	TextDim     lipgloss.Color

	BgStatus    lipgloss.Color
	BgSelection lipgloss.Color
}

// DefaultTheme returns the theme applied at startup.
func DefaultTheme() *Theme {
	return HarborTheme()
}

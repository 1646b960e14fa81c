package theme

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Available themes
var themes []*Theme

func init() {
	themes = []*Theme{
		HarborTheme(),
		EmberTheme(),
		MossTheme(),
		PaperTheme(),
	}
	ApplyTheme(themes[0])
}

// AllThemes returns all available themes.
func AllThemes() []*Theme {
	return themes
}

// Names returns the theme names in display order.
func Names() []string {
	names := make([]string, 0, len(themes))
	for _, t := range AllThemes() {
		names = append(names, t.Name)
	}
	return names
}

// ByName looks a theme up by name, case-insensitively.
func ByName(name string) (*Theme, error) {
	for _, t := range themes {
		if strings.EqualFold(t.Name, name) {
			return t, nil
		}
	}
	return nil, fmt.Errorf("unknown theme %q", name)
}

// ApplyTheme sets all the global color variables to match the theme.
func ApplyTheme(t *Theme) {
	ColorAccent = t.Colors.Accent
	ColorHighlight = t.Colors.Highlight
	ColorInfo = t.Colors.Info
	ColorWarning = t.Colors.Warning
	ColorError = t.Colors.Error

	TextPrimary = t.Colors.TextPrimary
	TextMuted = t.Colors.TextMuted
	TextDim = t.Colors.TextDim

	BgStatus = t.Colors.BgStatus
	BgSelection = t.Colors.BgSelection

	regenerateStyles()
}

// HarborTheme - cool blues on slate
func HarborTheme() *Theme {
	return &Theme{
		Name: "harbor",
		Colors: ColorPalette{
			Accent:      lipgloss.Color("#4FB3FF"),
			Highlight:   lipgloss.Color("#FFB454"),
			Info:        lipgloss.Color("#7FD962"),
			Warning:     lipgloss.Color("#F2C94C"),
			Error:       lipgloss.Color("#F2545B"),
			TextPrimary: lipgloss.Color("#E6EDF3"),
			TextMuted:   lipgloss.Color("#8B96A3"),
			TextDim:     lipgloss.Color("#4A5563"),
			BgStatus:    lipgloss.Color("#111820"),
			BgSelection: lipgloss.Color("#1F3347"),
		},
	}
}

// EmberTheme - warm oranges on charcoal
func EmberTheme() *Theme {
	return &Theme{
		Name: "ember",
		Colors: ColorPalette{
			Accent:      lipgloss.Color("#FF8A3D"),
			Highlight:   lipgloss.Color("#FFD166"),
			Info:        lipgloss.Color("#9BD77A"),
			Warning:     lipgloss.Color("#FFD166"),
			Error:       lipgloss.Color("#EF476F"),
			TextPrimary: lipgloss.Color("#F4EDE4"),
			TextMuted:   lipgloss.Color("#A3958A"),
			TextDim:     lipgloss.Color("#5A4E46"),
			BgStatus:    lipgloss.Color("#1A1411"),
			BgSelection: lipgloss.Color("#3A2618"),
		},
	}
}

// MossTheme - muted greens
func MossTheme() *Theme {
	return &Theme{
		Name: "moss",
		Colors: ColorPalette{
			Accent:      lipgloss.Color("#A7C957"),
			Highlight:   lipgloss.Color("#F2CC8F"),
			Info:        lipgloss.Color("#81B29A"),
			Warning:     lipgloss.Color("#F4D35E"),
			Error:       lipgloss.Color("#BC4749"),
			TextPrimary: lipgloss.Color("#E8F5E9"),
			TextMuted:   lipgloss.Color("#7A9E7E"),
			TextDim:     lipgloss.Color("#4A6B4E"),
			BgStatus:    lipgloss.Color("#0B1A0F"),
			BgSelection: lipgloss.Color("#1D3A22"),
		},
	}
}

// PaperTheme - dark text for light terminals
func PaperTheme() *Theme {
	return &Theme{
		Name: "paper",
		Colors: ColorPalette{
			Accent:      lipgloss.Color("#0057B8"),
			Highlight:   lipgloss.Color("#B35C00"),
			Info:        lipgloss.Color("#2E7D32"),
			Warning:     lipgloss.Color("#9A6700"),
			Error:       lipgloss.Color("#C62828"),
			TextPrimary: lipgloss.Color("#1F2328"),
			TextMuted:   lipgloss.Color("#59636E"),
			TextDim:     lipgloss.Color("#A0A8B0"),
			BgStatus:    lipgloss.Color("#EAEEF2"),
			BgSelection: lipgloss.Color("#DDF4FF"),
		},
	}
}

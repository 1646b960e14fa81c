// Package selector renders a single value out of an ordered list with
// left/right affordances. It holds no state; the owner supplies the index.
package selector

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/avitaltamir/vibetools/internal/theme"
)

// Select describes one selector row.
type Select struct {
	Label      string
	LabelWidth int // Cells reserved for Label; 0 means len(Label)+1
	Items      []string
	Current    int
	Selected   bool // The field under the page cursor
	Focused    bool // The owning page has focus
}

// Render draws "Label < item      >" in exactly width cells. The left arrow
// is dimmed at the first item and the right arrow at the last.
func (s Select) Render(width int) string {
	if width <= 0 {
		return ""
	}

	labelWidth := s.LabelWidth
	if labelWidth == 0 && s.Label != "" {
		labelWidth = ansi.StringWidth(s.Label) + 1
	}
	labelWidth = min(labelWidth, width)

	tone := theme.ToneFor(s.Focused, s.Selected)
	label := tone.Style().Bold(s.Selected && s.Focused).Render(theme.FitWidth(s.Label, labelWidth))

	rest := width - labelWidth
	if rest < 5 {
		return label + strings.Repeat(" ", rest)
	}

	var item string
	cur := 0
	if len(s.Items) > 0 {
		cur = min(max(s.Current, 0), len(s.Items)-1)
		item = s.Items[cur]
	}

	left := s.partStyle(cur == 0).Render(theme.SelectLeft)
	right := s.partStyle(cur >= len(s.Items)-1).Render(theme.SelectRight)
	// "<" + space + item + padding + ">"
	middle := s.partStyle(false).Render(theme.FitWidth(ansi.Truncate(item, rest-3, "…"), rest-3))

	return label + left + " " + middle + right
}

func (s Select) partStyle(atEdge bool) lipgloss.Style {
	switch {
	case !s.Focused || atEdge:
		return theme.TextDimStyle
	case s.Selected:
		return lipgloss.NewStyle().Foreground(theme.ColorAccent)
	default:
		return theme.TextBody
	}
}

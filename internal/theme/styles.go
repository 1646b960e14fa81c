package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Border definitions
var (
	// HeavyBorder marks the focused pane
	HeavyBorder = lipgloss.Border{
		Top:         "━",
		Bottom:      "━",
		Left:        "┃",
		Right:       "┃",
		TopLeft:     "┏",
		TopRight:    "┓",
		BottomLeft:  "┗",
		BottomRight: "┛",
	}

	// RoundBorder is used for fields and unfocused panes
	RoundBorder = lipgloss.Border{
		Top:         "─",
		Bottom:      "─",
		Left:        "│",
		Right:       "│",
		TopLeft:     "╭",
		TopRight:    "╮",
		BottomLeft:  "╰",
		BottomRight: "╯",
	}
)

// Tone is the styling intensity of a widget.
type Tone int

const (
	// ToneDim is used when the owning pane is not focused.
	ToneDim Tone = iota
	// ToneNormal is a visible field that is not selected.
	ToneNormal
	// ToneSelected is the field under the cursor in a focused pane.
	ToneSelected
)

// ToneFor picks the tone of a widget. Unfocused widgets are always dimmed,
// never hidden.
func ToneFor(focused, selected bool) Tone {
	switch {
	case !focused:
		return ToneDim
	case selected:
		return ToneSelected
	default:
		return ToneNormal
	}
}

// Color returns the foreground color of the tone.
func (t Tone) Color() lipgloss.Color {
	switch t {
	case ToneSelected:
		return ColorAccent
	case ToneNormal:
		return TextPrimary
	default:
		return TextDim
	}
}

// Style returns a foreground style of the tone.
func (t Tone) Style() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Color())
}

// Text styles
var (
	TextBody       lipgloss.Style
	TextMutedStyle lipgloss.Style
	TextDimStyle   lipgloss.Style
	TextErrorStyle lipgloss.Style
)

// List styles
var (
	ListItem         lipgloss.Style
	ListItemSelected lipgloss.Style
)

// Status bar styles
var (
	StatusBarStyle lipgloss.Style
	StatusInfo     lipgloss.Style
	StatusWarn     lipgloss.Style
	StatusError    lipgloss.Style
	StatusHelp     lipgloss.Style
)

// regenerateStyles rebuilds all style variables based on current color values.
// Called when theme changes.
func regenerateStyles() {
	TextBody = lipgloss.NewStyle().
		Foreground(TextPrimary)

	TextMutedStyle = lipgloss.NewStyle().
		Foreground(TextMuted)

	TextDimStyle = lipgloss.NewStyle().
		Foreground(TextDim)

	TextErrorStyle = lipgloss.NewStyle().
		Foreground(ColorError)

	ListItem = lipgloss.NewStyle().
		Foreground(TextPrimary)

	ListItemSelected = lipgloss.NewStyle().
		Foreground(ColorHighlight).
		Background(BgSelection).
		Bold(true)

	StatusBarStyle = lipgloss.NewStyle().
		Background(BgStatus)

	StatusInfo = StatusBarStyle.
		Foreground(ColorInfo)

	StatusWarn = StatusBarStyle.
		Foreground(ColorWarning).
		Bold(true)

	StatusError = StatusBarStyle.
		Foreground(ColorError).
		Bold(true)

	StatusHelp = StatusBarStyle.
		Foreground(TextMuted)
}

// BoxOptions configures a bordered box.
type BoxOptions struct {
	Title string // Embedded in the top border
	Hint  string // Embedded in the bottom border
	Tone  Tone
	Heavy bool // Use HeavyBorder instead of RoundBorder
}

// RenderBox renders content lines inside a border of exactly width by height
// cells. Lines are truncated or padded to the inner width; missing rows are
// blank.
func RenderBox(content string, opts BoxOptions, width, height int) string {
	if width < 2 || height < 2 {
		return ""
	}

	border := RoundBorder
	if opts.Heavy {
		border = HeavyBorder
	}

	borderStyle := opts.Tone.Style()
	titleStyle := opts.Tone.Style().Bold(opts.Tone != ToneDim)
	hintStyle := lipgloss.NewStyle().Foreground(TextMuted)
	if opts.Tone == ToneDim {
		hintStyle = TextDimStyle
	}

	innerWidth := width - 2
	contentHeight := height - 2

	var lines []string
	if content != "" {
		lines = strings.Split(content, "\n")
	}

	var b strings.Builder
	b.WriteString(buildTopBorder(border, borderStyle, titleStyle, opts.Title, innerWidth))
	for i := 0; i < contentHeight; i++ {
		var line string
		if i < len(lines) {
			line = lines[i]
		}
		b.WriteString("\n")
		b.WriteString(borderStyle.Render(border.Left))
		b.WriteString(FitWidth(line, innerWidth))
		b.WriteString(borderStyle.Render(border.Right))
	}
	b.WriteString("\n")
	b.WriteString(buildBottomBorder(border, borderStyle, hintStyle, opts.Hint, innerWidth))

	return b.String()
}

// FitWidth truncates or pads s to exactly width cells, respecting ANSI
// sequences.
func FitWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	if w := ansi.StringWidth(s); w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}

// buildTopBorder creates the top border with the title segment "[ Title ]".
func buildTopBorder(border lipgloss.Border, borderStyle, titleStyle lipgloss.Style, title string, innerWidth int) string {
	if title == "" || innerWidth < 7 {
		return borderStyle.Render(border.TopLeft + strings.Repeat(border.Top, innerWidth) + border.TopRight)
	}

	leftFiller := 1
	title = ansi.Truncate(title, innerWidth-leftFiller-4, "…")
	segment := borderStyle.Render("[ ") + titleStyle.Render(title) + borderStyle.Render(" ]")
	rightFiller := max(innerWidth-leftFiller-ansi.StringWidth(title)-4, 0)

	var result strings.Builder
	result.WriteString(borderStyle.Render(border.TopLeft + strings.Repeat(border.Top, leftFiller)))
	result.WriteString(segment)
	result.WriteString(borderStyle.Render(strings.Repeat(border.Top, rightFiller) + border.TopRight))
	return result.String()
}

// buildBottomBorder creates the bottom border with optional key hints.
func buildBottomBorder(border lipgloss.Border, borderStyle, hintStyle lipgloss.Style, hint string, innerWidth int) string {
	if hint == "" || innerWidth < 7 {
		return borderStyle.Render(border.BottomLeft + strings.Repeat(border.Bottom, innerWidth) + border.BottomRight)
	}

	leftFiller := 1
	hint = ansi.Truncate(hint, innerWidth-leftFiller-4, "…")
	segment := borderStyle.Render("[ ") + hintStyle.Render(hint) + borderStyle.Render(" ]")
	rightFiller := max(innerWidth-leftFiller-ansi.StringWidth(hint)-4, 0)

	var result strings.Builder
	result.WriteString(borderStyle.Render(border.BottomLeft + strings.Repeat(border.Bottom, leftFiller)))
	result.WriteString(segment)
	result.WriteString(borderStyle.Render(strings.Repeat(border.Bottom, rightFiller) + border.BottomRight))
	return result.String()
}

package pages

import (
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/avitaltamir/vibetools/internal/components/scroll"
	"github.com/avitaltamir/vibetools/internal/components/selector"
	"github.com/avitaltamir/vibetools/internal/msg"
	"github.com/avitaltamir/vibetools/internal/theme"
)

const (
	labelWidth   = 10
	selectHeight = 2 // selector row plus spacing
	boxHeight    = 3 // single-line bordered field
	statusHeight = 1
)

// selectRow renders a selector followed by a blank spacer line.
func selectRow(label string, items []string, current int, selected, focused bool, width int) string {
	s := selector.Select{
		Label:      label,
		LabelWidth: labelWidth,
		Items:      items,
		Current:    current,
		Selected:   selected,
		Focused:    focused,
	}
	return s.Render(width) + "\n"
}

// wrap splits text into lines no wider than width cells.
func wrap(text string, width int) []string {
	if text == "" {
		return nil
	}
	if width <= 0 {
		return strings.Split(text, "\n")
	}
	return strings.Split(ansi.Hardwrap(text, width, true), "\n")
}

// viewport renders text in a scrollable box, wrapping to the box width.
func viewport(title, text string, selected, focused bool, width, height int, state *scroll.State) string {
	out := scroll.Output{
		Lines:    wrap(text, max(width-4, 1)),
		Title:    title,
		Focused:  focused,
		Selected: selected,
	}
	return out.Render(width, height, state)
}

// statusRow renders a one-line status message. Empty text renders a blank
// line.
func statusRow(text string, level msg.Level, focused bool, width int) string {
	style := lipgloss.NewStyle().Foreground(theme.ColorInfo)
	switch {
	case !focused:
		style = theme.TextDimStyle
	case level == msg.LevelWarn:
		style = lipgloss.NewStyle().Foreground(theme.ColorWarning)
	case level == msg.LevelError:
		style = theme.TextErrorStyle
	}
	return style.Render(theme.FitWidth(" "+text, width))
}

// newInput returns a single-line edit buffer with a static cursor.
func newInput() textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 4096
	ti.Cursor.SetMode(cursor.CursorStatic)
	return ti
}

// inputBox renders an edit buffer inside a bordered box. While editing the
// live textinput view, with its cursor, is shown.
func inputBox(title string, ti *textinput.Model, editing, selected, focused bool, width int) string {
	ti.Width = max(width-5, 1)

	content := ti.Value()
	if editing {
		content = ti.View()
	}
	tone := theme.ToneFor(focused, selected)
	if editing {
		title += " (editing)"
	}
	return theme.RenderBox(" "+content, theme.BoxOptions{Title: title, Tone: tone}, width, boxHeight)
}

// stack joins rendered segments vertically.
func stack(parts ...string) string {
	return strings.Join(parts, "\n")
}

// splitHeight divides avail rows between n viewports, each at least 3 rows.
func splitHeight(avail, n int) []int {
	out := make([]int, n)
	if n == 0 {
		return out
	}
	each := max(avail/n, 3)
	for i := range out {
		out[i] = each
	}
	out[n-1] = max(avail-each*(n-1), 3)
	return out
}

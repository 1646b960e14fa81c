// Package scroll renders a window of text lines inside a bordered box with a
// half-row resolution scrollbar.
package scroll

import (
	"math"
	"strings"

	"github.com/avitaltamir/vibetools/internal/theme"
)

// State is the persistent scroll position of an Output. ScrollDown and
// ScrollUp do not check bounds; Render clamps the offset.
type State struct {
	Offset int
}

// ScrollDown moves the window one line down.
func (s *State) ScrollDown() {
	s.Offset++
}

// ScrollUp moves the window one line up.
func (s *State) ScrollUp() {
	s.Offset--
}

// Reset moves the window back to the first line.
func (s *State) Reset() {
	s.Offset = 0
}

// Clamp limits offset to [0, max(0, n-rows)].
func Clamp(offset, n, rows int) int {
	maxOffset := max(n-rows, 0)
	return min(max(offset, 0), maxOffset)
}

// ThumbHeight returns the thumb length in half-rows for n lines shown in rows
// terminal rows. Only meaningful when n > rows.
func ThumbHeight(n, rows int) int {
	if n <= 0 || rows <= 0 {
		return 0
	}
	halfRows := float64(2 * rows)
	h := int(math.Round(halfRows * (halfRows / float64(2*n))))
	return max(h, 1)
}

// ThumbTop returns the first half-row covered by the thumb. Requires n > rows.
func ThumbTop(n, rows, offset, thumb int) int {
	if n <= rows {
		return 0
	}
	free := float64(2*rows - thumb)
	return int(math.Round(free * float64(2*offset) / float64(2*n-2*rows)))
}

// Bar returns one glyph per terminal row for the given thumb span in
// half-rows.
func Bar(rows, top, thumb int) []string {
	glyphs := make([]string, rows)
	end := top + thumb
	for i := range glyphs {
		upper := 2*i >= top && 2*i < end
		lower := 2*i+1 >= top && 2*i+1 < end
		switch {
		case upper && lower:
			glyphs[i] = theme.BarFull
		case upper:
			glyphs[i] = theme.BarUpper
		case lower:
			glyphs[i] = theme.BarLower
		default:
			glyphs[i] = theme.BarEmpty
		}
	}
	return glyphs
}

// Output is a bordered viewport over Lines.
type Output struct {
	Lines    []string
	Title    string
	Focused  bool
	Selected bool
}

// Render draws the viewport into width by height cells and clamps state.
// Each content row is a one-cell pad, the text, then the scrollbar column.
func (o Output) Render(width, height int, state *State) string {
	rows := max(height-2, 0)
	n := len(o.Lines)

	state.Offset = Clamp(state.Offset, n, rows)

	var bar []string
	if n > rows && rows > 0 {
		thumb := ThumbHeight(n, rows)
		bar = Bar(rows, ThumbTop(n, rows, state.Offset, thumb), thumb)
	}

	tone := theme.ToneFor(o.Focused, o.Selected)
	textWidth := max(width-4, 0)
	barStyle := tone.Style()

	body := make([]string, 0, rows)
	for i := 0; i < rows; i++ {
		var line string
		if idx := state.Offset + i; idx < n {
			line = o.Lines[idx]
		}
		right := " "
		if bar != nil {
			right = barStyle.Render(bar[i])
		}
		body = append(body, " "+theme.FitWidth(line, textWidth)+right)
	}

	return theme.RenderBox(strings.Join(body, "\n"), theme.BoxOptions{
		Title: o.Title,
		Tone:  tone,
	}, width, height)
}

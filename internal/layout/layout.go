package layout

// Layout constants
const (
	DefaultListWidth = 20
	MinListWidth     = 12
	MaxListWidth     = 60
	StatusBarHeight  = 1
	MinToolWidth     = 20
	MinPanelHeight   = 3
)

// Layout holds calculated dimensions for both panes and the status bar.
type Layout struct {
	// Total terminal width
	TotalWidth int

	// Pane widths
	ListWidth int
	ToolWidth int

	// Height of the pane row above the status bar
	MainHeight int

	// Status bar
	StatusHeight int
}

// Calculate computes the layout dimensions based on terminal size.
// listWidth is the fixed column width of the page list; out-of-range values
// fall back to the nearest bound.
func Calculate(width, height, listWidth int) Layout {
	l := Layout{
		TotalWidth:   width,
		StatusHeight: StatusBarHeight,
	}

	if listWidth < MinListWidth {
		listWidth = MinListWidth
	}
	if listWidth > MaxListWidth {
		listWidth = MaxListWidth
	}

	l.ListWidth = listWidth
	l.ToolWidth = max(width-l.ListWidth, min(MinToolWidth, width))

	// Narrow terminals squeeze the list before the tool pane, and a terminal
	// narrower than MinToolWidth gives it every column
	if l.ListWidth+l.ToolWidth > width {
		l.ListWidth = max(width-l.ToolWidth, 0)
	}

	l.MainHeight = max(height-l.StatusHeight, MinPanelHeight)

	return l
}

// ListBounds returns the position and size of the page list.
func (l Layout) ListBounds() (x, y, width, height int) {
	return 0, 0, l.ListWidth, l.MainHeight
}

// ToolBounds returns the position and size of the tool pane.
func (l Layout) ToolBounds() (x, y, width, height int) {
	return l.ListWidth, 0, l.ToolWidth, l.MainHeight
}

// StatusBarBounds returns the position and size of the status bar.
func (l Layout) StatusBarBounds() (x, y, width, height int) {
	return 0, l.MainHeight, l.TotalWidth, l.StatusHeight
}

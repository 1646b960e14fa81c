package theme

// Scrollbar glyphs. Each terminal row holds two half-rows.
const (
	BarFull  = "█"
	BarUpper = "▀"
	BarLower = "▄"
	BarEmpty = " "
)

// Selector affordances
const (
	SelectLeft  = "<"
	SelectRight = ">"
)

// List cursor marker
const ListMarker = "▸ "

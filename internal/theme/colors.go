package theme

import "github.com/charmbracelet/lipgloss"

// Accent colors. These are reassigned by ApplyTheme.
var (
	ColorAccent    = lipgloss.Color("#4FB3FF") // Selected field, focused border
	ColorHighlight = lipgloss.Color("#FFB454") // List cursor
	ColorInfo      = lipgloss.Color("#7FD962") // Info notifications
	ColorWarning   = lipgloss.Color("#F2C94C") // Warn notifications
	ColorError     = lipgloss.Color("#F2545B") // Error notifications, invalid input
)

// Text colors, from bright to dim
var (
	TextPrimary = lipgloss.Color("#E6EDF3")
	TextMuted   = lipgloss.Color("#8B96A3")
	TextDim     = lipgloss.Color("#4A5563")
)

// Background colors
var (
	BgStatus    = lipgloss.Color("#111820")
	BgSelection = lipgloss.Color("#1F3347")
)

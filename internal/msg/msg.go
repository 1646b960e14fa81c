// Package msg defines the closed set of messages routed between the shell,
// the panes and the mounted page within a single input cycle.
package msg

import tea "github.com/charmbracelet/bubbletea"

// Msg is a value passed through the dispatch trampoline. A nil Msg means no
// follow-up. The set of implementations is closed to this package.
type Msg interface {
	isMsg()
}

// QuitMsg stops the program after the current cycle.
type QuitMsg struct{}

// SwitchPaneMsg moves focus to the other pane.
type SwitchPaneMsg struct{}

// ToggleHelpMsg shows or hides the key hints of the mounted page.
type ToggleHelpMsg struct{}

// ListSelectNextMsg advances the page list selection.
type ListSelectNextMsg struct{}

// ListSelectPrevMsg retreats the page list selection.
type ListSelectPrevMsg struct{}

// ToolSelectPageMsg mounts a fresh instance of Page in the tool pane.
type ToolSelectPageMsg struct {
	Page PageID
}

// NotifyMsg replaces the status line notification.
type NotifyMsg struct {
	Level Level
	Text  string
}

// PageMsg carries a page-local action to the page identified by Page.
type PageMsg struct {
	Page   PageID
	Action Action
	// Key is set for EditKey and holds the keystroke to feed the edit buffer.
	Key tea.KeyMsg
}

func (QuitMsg) isMsg()           {}
func (SwitchPaneMsg) isMsg()     {}
func (ToggleHelpMsg) isMsg()     {}
func (ListSelectNextMsg) isMsg() {}
func (ListSelectPrevMsg) isMsg() {}
func (ToolSelectPageMsg) isMsg() {}
func (NotifyMsg) isMsg()         {}
func (PageMsg) isMsg()           {}

// Level is the severity of a notification.
type Level int

const (
	LevelInfo Level = iota
	LevelWarn
	LevelError
)

// String returns the level name.
func (l Level) String() string {
	switch l {
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

// Info builds an informational notification.
func Info(text string) NotifyMsg {
	return NotifyMsg{Level: LevelInfo, Text: text}
}

// Warn builds a warning notification.
func Warn(text string) NotifyMsg {
	return NotifyMsg{Level: LevelWarn, Text: text}
}

// Error builds an error notification.
func Error(text string) NotifyMsg {
	return NotifyMsg{Level: LevelError, Text: text}
}

// Action is the page-local intent carried by a PageMsg.
type Action int

const (
	SelectNextItem Action = iota
	SelectPrevItem
	CurrentItemSelectNext
	CurrentItemSelectPrev
	ScrollDown
	ScrollUp
	Generate
	Copy
	Paste
	EditStart
	EditEnd
	EditKey
)

var actionNames = [...]string{
	SelectNextItem:        "SelectNextItem",
	SelectPrevItem:        "SelectPrevItem",
	CurrentItemSelectNext: "CurrentItemSelectNext",
	CurrentItemSelectPrev: "CurrentItemSelectPrev",
	ScrollDown:            "ScrollDown",
	ScrollUp:              "ScrollUp",
	Generate:              "Generate",
	Copy:                  "Copy",
	Paste:                 "Paste",
	EditStart:             "EditStart",
	EditEnd:               "EditEnd",
	EditKey:               "EditKey",
}

// String returns the action name for logging.
func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "Unknown"
	}
	return actionNames[a]
}

package components

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/key"

	"github.com/avitaltamir/vibetools/internal/msg"
)

// Pane is one of the two top-level screen regions. Panes never reference
// each other; they only exchange msg.Msg values through the shell.
type Pane interface {
	// Translate maps a key to a message, or nil when the key is not bound
	Translate(k tea.KeyMsg) msg.Msg
	// Dispatch reacts to a message and may return a follow-up
	Dispatch(m msg.Msg) msg.Msg
	// View renders the pane at its current size
	View() string

	// Focus gives focus to this pane
	Focus()
	// Blur removes focus from this pane
	Blur()
	// Focused returns whether this pane currently has focus
	Focused() bool

	// SetSize updates the pane's dimensions
	SetSize(width, height int)

	// Helps returns the key hints for the current state
	Helps() []string
	// Capturing reports whether the pane consumes all keys, such as while
	// a text field is being edited
	Capturing() bool
}

// Base provides common functionality for all panes and pages.
// Embed this in your structs to get default implementations.
type Base struct {
	focused bool
	width   int
	height  int
}

// Focus sets the focused state to true.
func (b *Base) Focus() {
	b.focused = true
}

// Blur sets the focused state to false.
func (b *Base) Blur() {
	b.focused = false
}

// Focused returns the current focus state.
func (b Base) Focused() bool {
	return b.focused
}

// SetSize updates the component's dimensions.
func (b *Base) SetSize(width, height int) {
	b.width = width
	b.height = height
}

// Size returns the component's current dimensions.
func (b Base) Size() (width, height int) {
	return b.width, b.height
}

// HelpText formats a binding as a hint such as "<j/k> Select item".
func HelpText(b key.Binding) string {
	h := b.Help()
	return "<" + h.Key + "> " + h.Desc
}

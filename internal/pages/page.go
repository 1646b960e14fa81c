// Package pages implements the tools mounted in the tool pane. Each page owns
// its field cursor, value selectors, text buffers and derived output, and
// reacts only to msg.PageMsg values addressed to its own id.
package pages

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/avitaltamir/vibetools/internal/clipboard"
	"github.com/avitaltamir/vibetools/internal/msg"
)

// Page is the capability set shared by every tool.
type Page interface {
	ID() msg.PageID

	// Translate maps a key to a PageMsg for this page, or nil
	Translate(k tea.KeyMsg) msg.Msg
	// Dispatch handles a message and may return a follow-up such as a
	// notification
	Dispatch(m msg.Msg) msg.Msg
	// View renders the page at its current size
	View() string

	SetSize(width, height int)
	Focus()
	Blur()
	Focused() bool

	// Editing reports whether a text field is in edit mode
	Editing() bool
	// Helps returns key hints for the selected field
	Helps() []string
}

// Env carries the collaborators a page needs.
type Env struct {
	Clipboard clipboard.Clipboard
	// Local is the zone offered as "Local" by the unix time page
	Local *time.Location
}

func (e Env) withDefaults() Env {
	if e.Clipboard == nil {
		e.Clipboard = clipboard.NewMemory("")
	}
	if e.Local == nil {
		e.Local = time.Local
	}
	return e
}

// New builds a fresh page for id.
func New(id msg.PageID, focused bool, env Env) (Page, error) {
	env = env.withDefaults()

	var p Page
	switch id {
	case msg.PageUUID:
		p = NewUUID(env)
	case msg.PageULID:
		p = NewULID(env)
	case msg.PageBase64:
		p = NewBase64(env)
	case msg.PageURL:
		p = NewURL(env)
	case msg.PageHash:
		p = NewHash(env)
	case msg.PageUnixTime:
		p = NewUnixTime(env)
	case msg.PageNumberBase:
		p = NewNumberBase(env)
	default:
		return nil, fmt.Errorf("no page registered for %s", id)
	}

	if focused {
		p.Focus()
	}
	return p, nil
}

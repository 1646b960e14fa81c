// Package listpane implements the pane listing every available page.
package listpane

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/key"

	"github.com/avitaltamir/vibetools/internal/components"
	"github.com/avitaltamir/vibetools/internal/cursor"
	"github.com/avitaltamir/vibetools/internal/msg"
	"github.com/avitaltamir/vibetools/internal/theme"
)

// KeyMap defines the list pane bindings.
type KeyMap struct {
	Down key.Binding
	Up   key.Binding
}

// DefaultKeyMap returns the default list bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/k", "Select item"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
		),
	}
}

// Model owns the page registry and the selected index. The index wraps at
// both ends.
type Model struct {
	components.Base
	pages  []msg.PageID
	cursor int
	keys   KeyMap
}

// New returns a list over pages with the first one selected.
func New(pages []msg.PageID) *Model {
	return &Model{
		pages: pages,
		keys:  DefaultKeyMap(),
	}
}

// Select moves the cursor to id. It reports false when id is not listed.
func (m *Model) Select(id msg.PageID) bool {
	for i, p := range m.pages {
		if p == id {
			m.cursor = i
			return true
		}
	}
	return false
}

// Selected returns the page under the cursor.
func (m *Model) Selected() msg.PageID {
	if len(m.pages) == 0 {
		return 0
	}
	return m.pages[m.cursor]
}

// Translate maps list navigation keys.
func (m *Model) Translate(k tea.KeyMsg) msg.Msg {
	switch {
	case key.Matches(k, m.keys.Down):
		return msg.ListSelectNextMsg{}
	case key.Matches(k, m.keys.Up):
		return msg.ListSelectPrevMsg{}
	}
	return nil
}

// Dispatch moves the cursor and asks for the newly selected page.
func (m *Model) Dispatch(message msg.Msg) msg.Msg {
	if len(m.pages) == 0 {
		return nil
	}
	switch message.(type) {
	case msg.ListSelectNextMsg:
		m.cursor = cursor.Next(m.cursor, len(m.pages))
	case msg.ListSelectPrevMsg:
		m.cursor = cursor.Prev(m.cursor, len(m.pages))
	default:
		return nil
	}
	return msg.ToolSelectPageMsg{Page: m.Selected()}
}

// Helps returns the list hints.
func (m *Model) Helps() []string {
	return []string{components.HelpText(m.keys.Down)}
}

// Capturing is always false.
func (m *Model) Capturing() bool {
	return false
}

// View renders the page labels inside the pane border.
func (m *Model) View() string {
	w, h := m.Size()
	if w == 0 || h == 0 {
		return ""
	}

	focused := m.Focused()
	inner := max(w-2, 0)
	marker := theme.ListMarker
	pad := strings.Repeat(" ", len([]rune(marker)))

	lines := make([]string, 0, len(m.pages))
	for i, p := range m.pages {
		label := pad + p.String()
		style := theme.ListItem
		if i == m.cursor {
			label = marker + p.String()
			style = theme.ListItemSelected
		}
		if !focused {
			style = theme.TextDimStyle
			if i == m.cursor {
				style = style.Bold(true)
			}
		}
		lines = append(lines, style.Render(theme.FitWidth(label, inner)))
	}

	return theme.RenderBox(strings.Join(lines, "\n"), theme.BoxOptions{
		Title: "Tools",
		Tone:  theme.ToneFor(focused, false),
		Heavy: focused,
	}, w, h)
}

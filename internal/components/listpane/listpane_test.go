package listpane

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avitaltamir/vibetools/internal/msg"
)

func TestTranslate(t *testing.T) {
	m := New(msg.AllPages())

	tests := []struct {
		name     string
		key      tea.KeyMsg
		expected msg.Msg
	}{
		{"j", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}, msg.ListSelectNextMsg{}},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, msg.ListSelectNextMsg{}},
		{"k", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}}, msg.ListSelectPrevMsg{}},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, msg.ListSelectPrevMsg{}},
		{"unbound", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, m.Translate(tt.key))
		})
	}
}

func TestDispatchWraps(t *testing.T) {
	pages := msg.AllPages()
	m := New(pages)

	out := m.Dispatch(msg.ListSelectPrevMsg{})
	assert.Equal(t, msg.ToolSelectPageMsg{Page: pages[len(pages)-1]}, out)

	out = m.Dispatch(msg.ListSelectNextMsg{})
	assert.Equal(t, msg.ToolSelectPageMsg{Page: pages[0]}, out)

	for i := 1; i < len(pages); i++ {
		m.Dispatch(msg.ListSelectNextMsg{})
		assert.Equal(t, pages[i], m.Selected())
	}
}

func TestDispatchIgnoresOtherMessages(t *testing.T) {
	m := New(msg.AllPages())

	assert.Nil(t, m.Dispatch(msg.ToggleHelpMsg{}))
	assert.Nil(t, m.Dispatch(msg.ToolSelectPageMsg{Page: msg.PageHash}))
	assert.Nil(t, m.Dispatch(msg.PageMsg{Page: msg.PageUUID}))
	assert.Equal(t, msg.PageUUID, m.Selected())
}

func TestEmptyRegistry(t *testing.T) {
	m := New(nil)
	assert.Nil(t, m.Dispatch(msg.ListSelectNextMsg{}))
}

func TestSelect(t *testing.T) {
	m := New(msg.AllPages())

	require.True(t, m.Select(msg.PageUnixTime))
	assert.Equal(t, msg.PageUnixTime, m.Selected())
	assert.False(t, m.Select(msg.PageID(42)))
	assert.Equal(t, msg.PageUnixTime, m.Selected())
}

func TestView(t *testing.T) {
	m := New(msg.AllPages())
	m.SetSize(20, 10)
	m.Focus()
	m.Select(msg.PageURL)

	lines := strings.Split(ansi.Strip(m.View()), "\n")
	require.Len(t, lines, 10)
	assert.Contains(t, lines[0], "Tools")
	assert.Contains(t, lines[1], "UUID")
	assert.Contains(t, lines[4], "▸ URL encode")
	for _, l := range lines {
		assert.Equal(t, 20, ansi.StringWidth(l))
	}

	assert.Empty(t, New(nil).View())
}

func TestCapturing(t *testing.T) {
	assert.False(t, New(msg.AllPages()).Capturing())
}

package toolpane

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avitaltamir/vibetools/internal/clipboard"
	"github.com/avitaltamir/vibetools/internal/msg"
	"github.com/avitaltamir/vibetools/internal/pages"
)

func newModel(t *testing.T, id msg.PageID) *Model {
	t.Helper()
	m, err := New(id, pages.Env{Clipboard: clipboard.NewMemory("")})
	require.NoError(t, err)
	return m
}

func TestSelectPageReplacesPage(t *testing.T) {
	m := newModel(t, msg.PageUUID)
	m.Focus()

	out := m.Dispatch(msg.ToolSelectPageMsg{Page: msg.PageHash})
	assert.Nil(t, out)
	assert.Equal(t, msg.PageHash, m.Page().ID())
	assert.True(t, m.Page().Focused(), "new page takes the pane focus")

	m.Blur()
	m.Dispatch(msg.ToolSelectPageMsg{Page: msg.PageULID})
	assert.False(t, m.Page().Focused())
}

func TestSelectPageStartsFresh(t *testing.T) {
	m := newModel(t, msg.PageUUID)
	m.Dispatch(msg.PageMsg{Page: msg.PageUUID, Action: msg.SelectNextItem})
	before := m.Page()

	m.Dispatch(msg.ToolSelectPageMsg{Page: msg.PageUUID})
	assert.NotSame(t, before, m.Page())
}

func TestUnknownPage(t *testing.T) {
	m := newModel(t, msg.PageUUID)
	out := m.Dispatch(msg.ToolSelectPageMsg{Page: msg.PageID(77)})
	assert.Equal(t, msg.Error("Unknown page"), out)
	assert.Equal(t, msg.PageUUID, m.Page().ID())
}

func TestPageMsgForOtherPageIsDropped(t *testing.T) {
	m := newModel(t, msg.PageNumberBase)
	m.Focus()

	assert.Nil(t, m.Dispatch(msg.PageMsg{Page: msg.PageUnixTime, Action: msg.EditStart}))
	assert.False(t, m.Capturing())

	m.Dispatch(msg.PageMsg{Page: msg.PageNumberBase, Action: msg.EditStart})
	assert.True(t, m.Capturing())
}

func TestHelpToggle(t *testing.T) {
	m := newModel(t, msg.PageUUID)
	m.Focus()

	m.Dispatch(msg.ToggleHelpMsg{})
	assert.True(t, m.HelpVisible())
	m.Dispatch(msg.ToggleHelpMsg{})
	assert.False(t, m.HelpVisible())

	m.Dispatch(msg.ToggleHelpMsg{})
	m.Blur()
	assert.False(t, m.HelpVisible(), "blur hides help")
}

func TestTranslateDelegates(t *testing.T) {
	m := newModel(t, msg.PageUUID)
	out := m.Translate(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, msg.PageMsg{Page: msg.PageUUID, Action: msg.Generate}, out)
}

func TestView(t *testing.T) {
	m := newModel(t, msg.PageHash)
	m.SetSize(60, 24)
	m.Focus()

	view := m.View()
	lines := strings.Split(ansi.Strip(view), "\n")
	require.Len(t, lines, 24)
	assert.Contains(t, lines[0], "[ Hash ]")
	for _, l := range lines {
		assert.Equal(t, 60, ansi.StringWidth(l))
	}
	assert.NotContains(t, ansi.Strip(view), "Select item")
	assert.Contains(t, lines[23], "[ <h/l> Select current item value ]")

	m.Dispatch(msg.ToggleHelpMsg{})
	assert.Contains(t, ansi.Strip(m.View()), "<j/k> Select item")

	assert.Empty(t, newModel(t, msg.PageHash).View())
}

// Package toolpane implements the pane hosting the active page.
package toolpane

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/avitaltamir/vibetools/internal/components"
	"github.com/avitaltamir/vibetools/internal/layout"
	"github.com/avitaltamir/vibetools/internal/logger"
	"github.com/avitaltamir/vibetools/internal/msg"
	"github.com/avitaltamir/vibetools/internal/pages"
	"github.com/avitaltamir/vibetools/internal/theme"
)

// DefaultDelimiter separates hints on a help line.
const DefaultDelimiter = ", "

// Model owns the mounted page. A page is replaced wholesale on every
// ToolSelectPageMsg; no state carries over.
type Model struct {
	components.Base
	page     pages.Page
	env      pages.Env
	showHelp bool
	delim    string
}

// New mounts the page id.
func New(id msg.PageID, env pages.Env) (*Model, error) {
	p, err := pages.New(id, false, env)
	if err != nil {
		return nil, err
	}
	return &Model{page: p, env: env, delim: DefaultDelimiter}, nil
}

// SetDelimiter changes the help hint separator.
func (m *Model) SetDelimiter(delim string) {
	m.delim = delim
}

// Page returns the mounted page.
func (m *Model) Page() pages.Page {
	return m.page
}

// HelpVisible reports whether the help panel is shown.
func (m *Model) HelpVisible() bool {
	return m.showHelp
}

// Focus focuses the pane and its page.
func (m *Model) Focus() {
	m.Base.Focus()
	m.page.Focus()
}

// Blur unfocuses the pane and its page and hides help.
func (m *Model) Blur() {
	m.Base.Blur()
	m.page.Blur()
	m.showHelp = false
}

// Capturing reports whether the page is editing text.
func (m *Model) Capturing() bool {
	return m.page.Editing()
}

// Helps returns the page hints.
func (m *Model) Helps() []string {
	return m.page.Helps()
}

// Translate delegates to the page.
func (m *Model) Translate(k tea.KeyMsg) msg.Msg {
	return m.page.Translate(k)
}

// Dispatch swaps pages, toggles help or forwards to the page.
func (m *Model) Dispatch(message msg.Msg) msg.Msg {
	switch message := message.(type) {
	case msg.ToolSelectPageMsg:
		return m.mount(message.Page)
	case msg.ToggleHelpMsg:
		m.showHelp = !m.showHelp
		return nil
	case msg.PageMsg:
		if message.Page != m.page.ID() {
			logger.Debug("toolpane: dropping %s for %s", message.Action, message.Page)
			return nil
		}
	}
	return m.page.Dispatch(message)
}

func (m *Model) mount(id msg.PageID) msg.Msg {
	p, err := pages.New(id, m.Focused(), m.env)
	if err != nil {
		logger.Error("toolpane: %v", err)
		return msg.Error("Unknown page")
	}
	m.page = p
	logger.Debug("toolpane: mounted %s", id)
	return nil
}

// helpLines packs the page hints into the inner width.
func (m *Model) helpLines(width int) []string {
	groups := layout.Pack(m.page.Helps(), width, m.delim)
	lines := make([]string, 0, len(groups))
	for _, g := range groups {
		lines = append(lines, strings.Join(g, m.delim))
	}
	return lines
}

// View renders the page in a bordered box titled with its label, with the
// packed help above it when visible. Otherwise the most specific hint of the
// selected field sits in the bottom border.
func (m *Model) View() string {
	w, h := m.Size()
	if w == 0 || h == 0 {
		return ""
	}

	focused := m.Focused()
	inner := max(w-4, 0)

	var header []string
	var hint string
	if m.showHelp && focused {
		for _, l := range m.helpLines(inner) {
			header = append(header, " "+theme.TextMutedStyle.Render(l))
		}
		header = append(header, "")
	} else if helps := m.page.Helps(); focused && len(helps) > 1 {
		hint = helps[len(helps)-1]
	}

	m.page.SetSize(inner, max(h-2-len(header), 0))

	body := strings.Split(m.page.View(), "\n")
	for i, l := range body {
		body[i] = " " + l
	}

	return theme.RenderBox(strings.Join(append(header, body...), "\n"), theme.BoxOptions{
		Title: m.page.ID().String(),
		Hint:  hint,
		Tone:  theme.ToneFor(focused, false),
		Heavy: focused,
	}, w, h)
}

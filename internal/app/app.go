package app

import (
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/avitaltamir/vibetools/internal/clipboard"
	"github.com/avitaltamir/vibetools/internal/components"
	"github.com/avitaltamir/vibetools/internal/components/listpane"
	"github.com/avitaltamir/vibetools/internal/components/toolpane"
	"github.com/avitaltamir/vibetools/internal/config"
	"github.com/avitaltamir/vibetools/internal/layout"
	"github.com/avitaltamir/vibetools/internal/logger"
	"github.com/avitaltamir/vibetools/internal/msg"
	"github.com/avitaltamir/vibetools/internal/pages"
	"github.com/avitaltamir/vibetools/internal/theme"
)

// MaxHops bounds the follow-up messages handled for a single key.
const MaxHops = 8

// ErrMessageLoop is returned when a message chain does not settle within
// MaxHops dispatches.
var ErrMessageLoop = errors.New("message chain exceeded hop limit")

// Option configures a Model.
type Option func(*options)

type options struct {
	clipboard clipboard.Clipboard
	local     *time.Location
}

// WithClipboard sets the clipboard used by the pages.
func WithClipboard(c clipboard.Clipboard) Option {
	return func(o *options) { o.clipboard = c }
}

// WithLocation sets the zone offered as "Local" by the unix time page.
func WithLocation(loc *time.Location) Option {
	return func(o *options) { o.local = loc }
}

// Model is the root application model. It owns both panes, the focus and the
// notification slot.
type Model struct {
	list *listpane.Model
	tool *toolpane.Model

	// Focus state
	focus PanelID

	// Cleared at the start of every key
	note *msg.NotifyMsg

	quitting bool
	keys     KeyMap

	// Layout
	layout    layout.Layout
	listWidth int
	delim     string

	// Window dimensions
	width  int
	height int
	ready  bool
}

// New creates the application model with the list focused and the configured
// start page mounted.
func New(cfg config.Config, opts ...Option) (*Model, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	list := listpane.New(msg.AllPages())
	if !list.Select(cfg.Page()) {
		logger.Warn("start page %q is not listed", cfg.StartPage)
	}

	tool, err := toolpane.New(list.Selected(), pages.Env{
		Clipboard: o.clipboard,
		Local:     o.local,
	})
	if err != nil {
		return nil, err
	}

	delim := cfg.HelpDelimiter
	if delim == "" {
		delim = toolpane.DefaultDelimiter
	}
	tool.SetDelimiter(delim)

	m := &Model{
		list:      list,
		tool:      tool,
		focus:     PanelList,
		keys:      DefaultKeyMap(),
		listWidth: cfg.ListWidth,
		delim:     delim,
	}
	m.list.Focus()
	return m, nil
}

// Init initializes the application.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Focus returns the focused pane.
func (m *Model) Focus() PanelID {
	return m.focus
}

// Notification returns the current notification, or nil.
func (m *Model) Notification() *msg.NotifyMsg {
	return m.note
}

// Quitting reports whether a Quit message has been handled.
func (m *Model) Quitting() bool {
	return m.quitting
}

func (m *Model) pane(id PanelID) components.Pane {
	if id == PanelTool {
		return m.tool
	}
	return m.list
}

func (m *Model) focused() components.Pane {
	return m.pane(m.focus)
}

// Translate maps a key to a message. Global bindings win unless the focused
// pane is capturing text, in which case only Interrupt is global.
func (m *Model) Translate(k tea.KeyMsg) msg.Msg {
	if key.Matches(k, m.keys.Interrupt) {
		return msg.QuitMsg{}
	}

	p := m.focused()
	if p.Capturing() {
		return p.Translate(k)
	}

	switch {
	case key.Matches(k, m.keys.Quit):
		return msg.QuitMsg{}
	case key.Matches(k, m.keys.SwitchPane):
		return msg.SwitchPaneMsg{}
	case key.Matches(k, m.keys.ToggleHelp):
		return msg.ToggleHelpMsg{}
	}
	return p.Translate(k)
}

// Dispatch handles one message and returns its follow-up, if any.
func (m *Model) Dispatch(message msg.Msg) msg.Msg {
	switch message := message.(type) {
	case msg.QuitMsg:
		m.quitting = true
		return nil
	case msg.SwitchPaneMsg:
		m.switchFocus()
		return nil
	case msg.NotifyMsg:
		m.note = &message
		return nil
	case msg.PageMsg:
		return m.tool.Dispatch(message)
	}

	// Both panes see the message; the list answers first.
	fromList := m.list.Dispatch(message)
	fromTool := m.tool.Dispatch(message)
	if fromList != nil {
		return fromList
	}
	return fromTool
}

// switchFocus moves focus to the other pane. The old pane is blurred before
// the new one is focused so exactly one pane is focused afterwards.
func (m *Model) switchFocus() {
	next := m.focus.other()
	m.pane(m.focus).Blur()
	m.pane(next).Focus()
	m.focus = next
}

// runTrampoline dispatches first and every follow-up until the chain ends.
func runTrampoline(first msg.Msg, dispatch func(msg.Msg) msg.Msg) error {
	hops := 0
	for next := first; next != nil; hops++ {
		if hops == MaxHops {
			return ErrMessageLoop
		}
		next = dispatch(next)
	}
	return nil
}

// HandleKey runs one input cycle for k.
func (m *Model) HandleKey(k tea.KeyMsg) {
	m.note = nil
	if err := runTrampoline(m.Translate(k), m.Dispatch); err != nil {
		logger.Error("key %q: %v", k.String(), err)
		note := msg.Error("Internal error: message loop")
		m.note = &note
	}
}

// Update handles key and resize events. Everything else is ignored.
func (m *Model) Update(teaMsg tea.Msg) (tea.Model, tea.Cmd) {
	switch teaMsg := teaMsg.(type) {
	case tea.KeyMsg:
		m.HandleKey(teaMsg)
		if m.quitting {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.resize(teaMsg.Width, teaMsg.Height)
	}
	return m, nil
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.ready = true
	m.layout = layout.Calculate(width, height, m.listWidth)

	_, _, w, h := m.layout.ListBounds()
	m.list.SetSize(w, h)
	_, _, w, h = m.layout.ToolBounds()
	m.tool.SetSize(w, h)
}

// View renders both panes and the status line.
func (m *Model) View() string {
	if !m.ready || m.quitting {
		return ""
	}

	main := lipgloss.JoinHorizontal(lipgloss.Top, m.list.View(), m.tool.View())
	return lipgloss.JoinVertical(lipgloss.Left, main, m.statusBar())
}

// statusBar shows the notification, or the first line of packed hints.
func (m *Model) statusBar() string {
	_, _, width, _ := m.layout.StatusBarBounds()

	if m.note != nil {
		style := theme.StatusInfo
		switch m.note.Level {
		case msg.LevelWarn:
			style = theme.StatusWarn
		case msg.LevelError:
			style = theme.StatusError
		}
		return style.Render(theme.FitWidth(" "+m.note.Text, width))
	}

	var text string
	helps := append(m.focused().Helps(), m.keys.Helps()...)
	if groups := layout.Pack(helps, max(width-2, 1), m.delim); len(groups) > 0 {
		text = strings.Join(groups[0], m.delim)
	}
	return theme.StatusHelp.Render(theme.FitWidth(" "+text, width))
}

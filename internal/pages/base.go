package pages

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/key"

	"github.com/avitaltamir/vibetools/internal/components"
	"github.com/avitaltamir/vibetools/internal/logger"
	"github.com/avitaltamir/vibetools/internal/msg"
)

// binding pairs a key with the page action it produces.
type binding struct {
	key    key.Binding
	action msg.Action
}

// base holds what every page shares: focus, size, identity and clipboard.
type base struct {
	components.Base
	id   msg.PageID
	env  Env
	keys KeyMap
}

func newBase(id msg.PageID, env Env) base {
	return base{
		id:   id,
		env:  env.withDefaults(),
		keys: DefaultKeyMap(),
	}
}

// ID returns the page identity.
func (b *base) ID() msg.PageID {
	return b.id
}

// Editing is false for pages without text fields.
func (b *base) Editing() bool {
	return false
}

func (b *base) action(a msg.Action) msg.Msg {
	return msg.PageMsg{Page: b.id, Action: a}
}

// own unwraps m when it is addressed to this page.
func (b *base) own(m msg.Msg) (msg.PageMsg, bool) {
	pm, ok := m.(msg.PageMsg)
	if !ok || pm.Page != b.id {
		return msg.PageMsg{}, false
	}
	return pm, true
}

// translate returns the action of the first binding matching k.
func (b *base) translate(k tea.KeyMsg, bindings []binding) msg.Msg {
	for _, bd := range bindings {
		if key.Matches(k, bd.key) {
			return b.action(bd.action)
		}
	}
	return nil
}

// translateEdit maps keys while a text field is being edited. Every key
// except the terminator is forwarded to the buffer.
func (b *base) translateEdit(k tea.KeyMsg) msg.Msg {
	if key.Matches(k, b.keys.EditEnd) {
		return b.action(msg.EditEnd)
	}
	return msg.PageMsg{Page: b.id, Action: msg.EditKey, Key: k}
}

func (b *base) copy(text string) msg.Msg {
	if err := b.env.Clipboard.Copy(text); err != nil {
		logger.Error("%s: copy failed: %v", b.id, err)
		return msg.Error("Copy failed")
	}
	return msg.Info("Copy succeeded")
}

// paste returns the clipboard text, or a notification when it cannot be read.
func (b *base) paste() (string, msg.Msg) {
	text, err := b.env.Clipboard.Paste()
	if err != nil {
		logger.Error("%s: paste failed: %v", b.id, err)
		return "", msg.Error("Paste failed")
	}
	return text, nil
}

func help(b key.Binding) string {
	return components.HelpText(b)
}

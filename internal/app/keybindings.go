package app

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/avitaltamir/vibetools/internal/components"
)

// KeyMap defines the global key bindings. They take precedence over pane
// bindings, except that only Interrupt reaches the shell while a page is
// editing text.
type KeyMap struct {
	Interrupt  key.Binding
	Quit       key.Binding
	SwitchPane key.Binding
	ToggleHelp key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Interrupt: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "Quit"),
		),
		SwitchPane: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("Tab", "Next pane"),
		),
		ToggleHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Help"),
		),
	}
}

// Helps returns the global hints shown after the pane hints.
func (k KeyMap) Helps() []string {
	return []string{
		components.HelpText(k.SwitchPane),
		components.HelpText(k.ToggleHelp),
		components.HelpText(k.Quit),
	}
}

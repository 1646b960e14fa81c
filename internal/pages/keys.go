package pages

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the page-local key bindings.
type KeyMap struct {
	NextField  key.Binding
	PrevField  key.Binding
	NextValue  key.Binding
	PrevValue  key.Binding
	ScrollDown key.Binding
	ScrollUp   key.Binding
	Copy       key.Binding
	Paste      key.Binding
	Generate   key.Binding
	EditStart  key.Binding
	EditEnd    key.Binding
}

// DefaultKeyMap returns the default page bindings. Help text for a pair of
// bindings lives on the first of the pair.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextField: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/k", "Select item"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("k", "up"),
		),
		NextValue: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("h/l", "Select current item value"),
		),
		PrevValue: key.NewBinding(
			key.WithKeys("h", "left"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("ctrl+e"),
			key.WithHelp("C-e/C-y", "Scroll down/up"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("ctrl+y"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "Copy to clipboard"),
		),
		Paste: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "Paste from clipboard"),
		),
		Generate: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "Generate"),
		),
		EditStart: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "Edit"),
		),
		EditEnd: key.NewBinding(
			key.WithKeys("esc", "enter"),
			key.WithHelp("Esc/Enter", "End edit"),
		),
	}
}

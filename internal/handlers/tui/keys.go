package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the alias browser. Printable keys
// always go to the search query, so navigation and actions use arrows
// and control chords only.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Reset  key.Binding
	Edit   key.Binding
	Quit   key.Binding
}

// DefaultKeyMap is the built-in key binding set.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "ctrl+p"),
		key.WithHelp("↑/C-p", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "ctrl+n"),
		key.WithHelp("↓/C-n", "down"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	Reset: key.NewBinding(
		key.WithKeys("ctrl+r"),
		key.WithHelp("C-r", "reset"),
	),
	Edit: key.NewBinding(
		key.WithKeys("ctrl+e"),
		key.WithHelp("C-e", "edit"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c", "esc"),
		key.WithHelp("esc", "quit"),
	),
}

// ShortHelp returns the bindings shown in the footer.
func (keys KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{keys.Up, keys.Down, keys.Select, keys.Reset, keys.Edit, keys.Quit}
}

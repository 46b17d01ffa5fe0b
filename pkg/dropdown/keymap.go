package dropdown

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap holds the widget's key bindings. It satisfies the bubbles
// help package's KeyMap interface so hosts can surface the bindings in
// a help bar.
type KeyMap struct {
	Open   key.Binding
	Up     key.Binding
	Down   key.Binding
	Commit key.Binding
	Close  key.Binding
	Tab    key.Binding
}

// DefaultKeyMap returns the standard bindings. With filtering enabled,
// printable keys go to the query first, so j/k type into it and
// navigation falls back to the arrows.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Open: key.NewBinding(
			key.WithKeys("enter", " ", "down"),
			key.WithHelp("enter", "open"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Commit: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "next field"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.Up, k.Down, k.Commit, k.Close}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Open, k.Commit, k.Close},
		{k.Up, k.Down, k.Tab},
	}
}

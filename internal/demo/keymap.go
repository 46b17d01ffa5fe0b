package demo

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/marcus/dropdown/pkg/dropdown"
)

// appKeyMap is the demo's bindings on top of the widget's own. It
// implements help.KeyMap, folding the widget bindings into the help
// view.
type appKeyMap struct {
	Next          key.Binding
	Prev          key.Binding
	PageDown      key.Binding
	PageUp        key.Binding
	ToggleDisable key.Binding
	Help          key.Binding
	Quit          key.Binding
	ForceQuit     key.Binding

	widget dropdown.KeyMap
}

func newAppKeyMap() appKeyMap {
	return appKeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous field"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("pgdn", "scroll down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("pgup", "scroll up"),
		),
		ToggleDisable: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "toggle log level field"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
		widget: dropdown.DefaultKeyMap(),
	}
}

// ShortHelp implements help.KeyMap.
func (k appKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.widget.Open, k.Next, k.ToggleDisable, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k appKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.widget.Open, k.widget.Up, k.widget.Down, k.widget.Commit, k.widget.Close},
		{k.Next, k.Prev, k.PageUp, k.PageDown},
		{k.ToggleDisable, k.Help, k.Quit},
	}
}

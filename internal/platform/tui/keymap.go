package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the key bindings that are handled by the host rather than
// the game. Every other key toggles pause.
type KeyMap struct {
	Reload key.Binding
	Quit   key.Binding
	Pause  key.Binding // help text only, any key pauses
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Reload, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Pause, k.Reload},
		{k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Reload: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "play again"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Pause: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("any key", "pause"),
		),
	}
}

package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/termim/qsquaremap/pkg/squaremap"
)

// KeyMap defines all keyboard shortcuts.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Home     key.Binding
	End      key.Binding
	Activate key.Binding
	Rescan   key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous sibling"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next sibling"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "parent"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "first child"),
		),
		Home: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "first node"),
		),
		End: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "last node"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "activate"),
		),
		Rescan: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "rescan"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns a brief help string.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Activate, k.Rescan, k.Quit}
}

// navKey translates a pressed binding into a widget navigation key,
// KeyNone when the key is not a navigation key.
func (k KeyMap) navKey(msgKey string) squaremap.Key {
	pressed := func(b key.Binding) bool {
		for _, kk := range b.Keys() {
			if kk == msgKey {
				return true
			}
		}
		return false
	}
	switch {
	case pressed(k.Up):
		return squaremap.KeyUp
	case pressed(k.Down):
		return squaremap.KeyDown
	case pressed(k.Left):
		return squaremap.KeyLeft
	case pressed(k.Right):
		return squaremap.KeyRight
	case pressed(k.Home):
		return squaremap.KeyHome
	case pressed(k.End):
		return squaremap.KeyEnd
	case pressed(k.Activate):
		return squaremap.KeyEnter
	}
	return squaremap.KeyNone
}

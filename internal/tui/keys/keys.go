// Package keys holds the key bindings shared by the root model and the
// stage views.
package keys

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Quit       key.Binding
	Help       key.Binding
	Enter      key.Binding
	Music      key.Binding
	VolumeUp   key.Binding
	VolumeDown key.Binding
	Another    key.Binding
	Replay     key.Binding
	Stay       key.Binding
	Exit       key.Binding
}

func Default() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "continue"),
		),
		Music: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "music on/off"),
		),
		VolumeUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "louder"),
		),
		VolumeDown: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "softer"),
		),
		Another: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "try another gift"),
		),
		Replay: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "replay"),
		),
		Stay: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sit with the music"),
		),
		Exit: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "exit"),
		),
	}
}

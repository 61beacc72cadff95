package main

import (
	"github.com/charmbracelet/bubbles/key"
)

type Keymap struct {
	Quit       key.Binding
	PlayPause  key.Binding
	Restart    key.Binding
	NextStim   key.Binding
	PrevStim   key.Binding
	SpeedUp    key.Binding
	SpeedDown  key.Binding
	Overlay    key.Binding
	OpenHelp   key.Binding
	CopyStatus key.Binding
}

var Keys = Keymap{
	Quit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),
	PlayPause: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "play / pause"),
	),
	Restart: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "restart from the first sample"),
	),
	NextStim: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("l/→", "next stimulus"),
	),
	PrevStim: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("h/←", "previous stimulus"),
	),
	SpeedUp: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "faster playback"),
	),
	SpeedDown: key.NewBinding(
		key.WithKeys("-"),
		key.WithHelp("-", "slower playback"),
	),
	Overlay: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "toggle all-samples overlay"),
	),
	OpenHelp: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help / keys"),
	),
	CopyStatus: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "copy playback status"),
	),
}

func (k Keymap) Legend() []key.Binding {
	return []key.Binding{
		k.PlayPause,
		k.Restart,
		k.PrevStim,
		k.NextStim,
		k.SpeedUp,
		k.SpeedDown,
		k.Overlay,
		k.CopyStatus,
		k.OpenHelp,
		k.Quit,
	}
}

package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap holds the key bindings of a pong session.
type KeyMap struct {
	P1Up   key.Binding
	P1Down key.Binding
	P2Up   key.Binding
	P2Down key.Binding
	Serve  key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	bindings := []key.Binding{k.P1Up, k.P1Down}
	if k.P2Up.Enabled() {
		bindings = append(bindings, k.P2Up, k.P2Down)
	}
	return append(bindings, k.Serve, k.Help, k.Quit)
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.P1Up, k.P1Down},
		{k.P2Up, k.P2Down},
		{k.Serve, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns the bindings for a session. With two keyboard players
// Player1 uses w/s and Player2 the arrow keys; otherwise Player1 gets both.
func DefaultKeyMap(twoKeyboards bool) KeyMap {
	km := KeyMap{
		P1Up: key.NewBinding(
			key.WithKeys("w", "up"),
			key.WithHelp("w/↑", "up"),
		),
		P1Down: key.NewBinding(
			key.WithKeys("s", "down"),
			key.WithHelp("s/↓", "down"),
		),
		P2Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "p2 up"),
		),
		P2Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "p2 down"),
		),
		Serve: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "serve"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}

	if twoKeyboards {
		km.P1Up.SetKeys("w")
		km.P1Up.SetHelp("w", "p1 up")
		km.P1Down.SetKeys("s")
		km.P1Down.SetHelp("s", "p1 down")
	} else {
		km.P2Up.SetEnabled(false)
		km.P2Down.SetEnabled(false)
	}
	return km
}

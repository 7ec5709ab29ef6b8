package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnookala/flappy-claude/internal/core"
)

// KeyMap binds terminal keys to game inputs.
type KeyMap struct {
	Flap       key.Binding
	Quit       key.Binding
	Confirm    key.Binding
	Decline    key.Binding
	Screenshot key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Flap, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Flap, k.Quit},
		{k.Confirm, k.Decline, k.Screenshot},
	}
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Flap: key.NewBinding(
			key.WithKeys(" ", "space", "up", "w"),
			key.WithHelp("space", "flap"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "Q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("y", "Y"),
			key.WithHelp("y", "return to session"),
		),
		Decline: key.NewBinding(
			key.WithKeys("n", "N"),
			key.WithHelp("n", "keep playing"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// Input translates a key press into the simulation's input token.
// Keys without a binding become InputAnyKey; the screenshot key is
// handled by the model and maps to InputNone.
func (k KeyMap) Input(msg tea.KeyMsg) core.Input {
	switch {
	case key.Matches(msg, k.Quit):
		return core.InputQuit
	case key.Matches(msg, k.Screenshot):
		return core.InputNone
	case key.Matches(msg, k.Flap):
		return core.InputFlap
	case key.Matches(msg, k.Confirm):
		return core.InputConfirm
	case key.Matches(msg, k.Decline):
		return core.InputDecline
	}
	return core.InputAnyKey
}

package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dino-runner/internal/core"
)

// KeyMap holds the key bindings for the game screen.
// Game bindings map to core actions; the rest are handled by the Model.
type KeyMap struct {
	Jump       key.Binding
	JumpAlt    key.Binding
	Duck       key.Binding
	Restart    key.Binding
	Mute       key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default game bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Jump: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "jump"),
		),
		JumpAlt: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("up/w", "jump"),
		),
		Duck: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("down/s", "duck"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r", "enter"),
			key.WithHelp("r", "restart"),
		),
		Mute: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mute"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
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
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Jump, k.Duck, k.Restart, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Jump, k.JumpAlt, k.Duck},
		{k.Restart, k.Mute, k.Screenshot},
		{k.Help, k.Quit},
	}
}

// Action translates a key message to the game action it triggers.
// Returns core.ActionNone for keys that are not game bindings.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Jump):
		return core.ActionJumpPrimary
	case key.Matches(msg, k.JumpAlt):
		return core.ActionJumpSecondary
	case key.Matches(msg, k.Duck):
		return core.ActionDuck
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}

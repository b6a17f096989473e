package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snakeboy/internal/core"
)

// KeyMap defines the key bindings of the game window.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Start  key.Binding
	Select key.Binding
	A      key.Binding
	B      key.Binding

	Debug      key.Binding
	Mute       key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Start, k.Mute, k.Debug, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Start, k.Select, k.A, k.B},
		{k.Mute, k.Debug, k.Screenshot, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "start"),
		),
		Select: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "select"),
		),
		A: key.NewBinding(
			key.WithKeys("z"),
			key.WithHelp("z", "A"),
		),
		B: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "B"),
		),
		Debug: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "debug"),
		),
		Mute: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mute"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("C-s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Buttons translates a key message to the joypad buttons it presses.
func (k KeyMap) Buttons(msg tea.KeyMsg) core.Buttons {
	bindings := []struct {
		binding key.Binding
		button  core.Buttons
	}{
		{k.Up, core.ButtonUp},
		{k.Down, core.ButtonDown},
		{k.Left, core.ButtonLeft},
		{k.Right, core.ButtonRight},
		{k.Start, core.ButtonStart},
		{k.Select, core.ButtonSelect},
		{k.A, core.ButtonA},
		{k.B, core.ButtonB},
	}

	var b core.Buttons
	for _, kb := range bindings {
		if key.Matches(msg, kb.binding) {
			b.Press(kb.button)
		}
	}
	return b
}

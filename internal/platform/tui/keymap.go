package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/robotrun/internal/core"
)

// KeyMap holds the terminal key bindings.
// This centralizes key bindings and makes them testable.
type KeyMap struct {
	Quit    key.Binding
	Restart key.Binding
	Toggle  key.Binding
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Enter   key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r", "R"),
			key.WithHelp("r", "restart"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "gates"),
		),
		Up:    key.NewBinding(key.WithKeys("up", "w")),
		Down:  key.NewBinding(key.WithKeys("down", "s")),
		Left:  key.NewBinding(key.WithKeys("left", "a")),
		Right: key.NewBinding(key.WithKeys("right", "d")),
		Enter: key.NewBinding(key.WithKeys("enter")),
	}
}

// ShortHelp returns the bindings shown in the status bar.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Restart, km.Toggle, km.Quit}
}

// MapKey translates a key message to a game key.
// Returns KeyUnknown for keys the game does not use and whether the key is
// a quit request.
func (km KeyMap) MapKey(msg tea.KeyMsg) (k core.Key, isQuit bool) {
	switch {
	case key.Matches(msg, km.Quit):
		return core.KeyUnknown, true
	case key.Matches(msg, km.Restart):
		return core.KeyR, false
	case key.Matches(msg, km.Toggle):
		return core.KeySpace, false
	case key.Matches(msg, km.Up):
		return core.KeyUp, false
	case key.Matches(msg, km.Down):
		return core.KeyDown, false
	case key.Matches(msg, km.Left):
		return core.KeyLeft, false
	case key.Matches(msg, km.Right):
		return core.KeyRight, false
	case key.Matches(msg, km.Enter):
		return core.KeyEnter, false
	}
	return core.KeyUnknown, false
}

// mapMouse translates a mouse message to a button event.
func mapMouse(msg tea.MouseMsg) (core.ButtonEvent, bool) {
	var ev core.ButtonEvent
	switch msg.Button {
	case tea.MouseButtonLeft:
		ev.Button = core.MouseButtonLeft
	case tea.MouseButtonRight:
		ev.Button = core.MouseButtonRight
	case tea.MouseButtonMiddle:
		ev.Button = core.MouseButtonMiddle
	default:
		return ev, false
	}

	switch msg.Action {
	case tea.MouseActionPress:
		ev.Action = core.ActionPress
	case tea.MouseActionRelease:
		ev.Action = core.ActionRelease
	default:
		return ev, false
	}

	if msg.Shift {
		ev.Mods |= core.ModShift
	}
	if msg.Ctrl {
		ev.Mods |= core.ModControl
	}
	if msg.Alt {
		ev.Mods |= core.ModAlt
	}
	return ev, true
}

package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/firescreen/internal/core"
)

// KeyMap binds keyboard keys to pad buttons.
// This centralizes key bindings and makes them testable.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Cross    key.Binding
	Circle   key.Binding
	Square   key.Binding
	Triangle key.Binding
	Start    key.Binding
	Select   key.Binding
	Snapshot key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "w", "k"), key.WithHelp("↑/w", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "s", "j"), key.WithHelp("↓/s", "down")),
		Left:     key.NewBinding(key.WithKeys("left", "a", "h"), key.WithHelp("←/a", "left")),
		Right:    key.NewBinding(key.WithKeys("right", "d", "l"), key.WithHelp("→/d", "right")),
		Cross:    key.NewBinding(key.WithKeys("x", " "), key.WithHelp("x", "cross")),
		Circle:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "circle")),
		Square:   key.NewBinding(key.WithKeys("z"), key.WithHelp("z", "square")),
		Triangle: key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "triangle")),
		Start:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "start")),
		Select:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "select")),
		Snapshot: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "snapshot")),
		Quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Cross, k.Square, k.Triangle, k.Start, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Cross, k.Circle, k.Square, k.Triangle},
		{k.Start, k.Select, k.Snapshot, k.Quit},
	}
}

// MapKey translates a key message to a pad button.
// Returns ok=false for keys that are not pad buttons.
func (k KeyMap) MapKey(msg tea.KeyMsg) (b core.Button, ok bool) {
	pairs := []struct {
		binding key.Binding
		button  core.Button
	}{
		{k.Up, core.ButtonUp},
		{k.Down, core.ButtonDown},
		{k.Left, core.ButtonLeft},
		{k.Right, core.ButtonRight},
		{k.Cross, core.ButtonCross},
		{k.Circle, core.ButtonCircle},
		{k.Square, core.ButtonSquare},
		{k.Triangle, core.ButtonTriangle},
		{k.Start, core.ButtonStart},
		{k.Select, core.ButtonSelect},
	}
	for _, p := range pairs {
		if key.Matches(msg, p.binding) {
			return p.button, true
		}
	}
	return 0, false
}

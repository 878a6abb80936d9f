package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/water-sort/internal/games/watersort"
)

// tubeKeys lists the keys selecting tubes 0..9 in order.
var tubeKeys = []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "0"}

// KeyMap defines the key bindings for the board.
type KeyMap struct {
	Select  key.Binding
	Restart key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.Restart, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Select, k.Restart},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Select: key.NewBinding(
			key.WithKeys(tubeKeys[:watersort.TubeCount]...),
			key.WithHelp("1-0/click", "pick tube"),
		),
		Restart: key.NewBinding(
			key.WithKeys(" ", "r"),
			key.WithHelp("space/r", "new game"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// TubeForKey returns the tube a digit key selects.
func TubeForKey(msg tea.KeyMsg) (int, bool) {
	k := msg.String()
	for i, tk := range tubeKeys[:watersort.TubeCount] {
		if k == tk {
			return i, true
		}
	}
	return 0, false
}

// TubeForMouse returns the tube under a left button press.
func TubeForMouse(msg tea.MouseMsg, l watersort.Layout) (int, bool) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return 0, false
	}
	return l.TubeAt(msg.X, msg.Y)
}

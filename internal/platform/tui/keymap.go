package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/towerflap/internal/core"
	"github.com/vovakirdan/towerflap/internal/games/flappy"
)

// KeyMap defines the key bindings of the game screen.
type KeyMap struct {
	Jump    key.Binding
	Restart key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Jump, k.Restart, k.Quit, k.Help}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Jump, k.Restart},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Jump: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space/↑", "jump"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r", "enter"),
			key.WithHelp("r/click play", "restart"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey translates a key message into an input frame.
// The restart key is a shortcut for clicking the center of the restart
// control, so it only does something while the game-over view is shown.
// Returns true if the key was a quit request.
func (k KeyMap) MapKey(msg tea.KeyMsg, snap flappy.Snapshot, frame *core.InputFrame) bool {
	switch {
	case key.Matches(msg, k.Quit):
		frame.Set(core.ActionQuit)
		return true
	case key.Matches(msg, k.Jump):
		frame.Set(core.ActionJump)
	case key.Matches(msg, k.Restart):
		if snap.GameOver != nil {
			frame.Click(snap.GameOver.RestartControl.Center())
		}
	}
	return false
}

// MapMouse translates a left click into a restart click at the logical
// point under the cell. Clicks outside the playfield are dropped.
func MapMouse(msg tea.MouseMsg, vp Viewport, frame *core.InputFrame) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return
	}
	if p, ok := vp.Logical(msg.X, msg.Y); ok {
		frame.Click(p)
	}
}

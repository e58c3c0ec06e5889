package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bunny-catch/internal/core"
)

// GameKeyMap defines the key bindings used while the game is on screen.
type GameKeyMap struct {
	Left        key.Binding
	Right       key.Binding
	Pause       key.Binding
	Easy        key.Binding
	Hard        key.Binding
	Acknowledge key.Binding
	Scores      key.Binding
	Screenshot  key.Binding
	Quit        key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Pause},
		{k.Easy, k.Hard, k.Scores, k.Screenshot},
		{k.Acknowledge, k.Quit},
	}
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p/esc", "pause"),
		),
		Easy: key.NewBinding(
			key.WithKeys("1", "e"),
			key.WithHelp("1/e", "easy"),
		),
		Hard: key.NewBinding(
			key.WithKeys("2", "h"),
			key.WithHelp("2/h", "hard"),
		),
		Acknowledge: key.NewBinding(
			key.WithKeys("enter", " ", "r"),
			key.WithHelp("enter", "continue"),
		),
		Scores: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scores"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys GameKeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultGameKeyMap()}
}

// Keys returns the bindings used by the mapper.
func (km *KeyMapper) Keys() GameKeyMap {
	return km.keys
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, km.keys.Left):
		return core.ActionMoveLeft, false
	case key.Matches(msg, km.keys.Right):
		return core.ActionMoveRight, false
	case key.Matches(msg, km.keys.Pause):
		return core.ActionPause, false
	case key.Matches(msg, km.keys.Easy):
		return core.ActionSelectEasy, false
	case key.Matches(msg, km.keys.Hard):
		return core.ActionSelectHard, false
	case key.Matches(msg, km.keys.Acknowledge):
		return core.ActionAcknowledge, false
	}

	return core.ActionNone, false
}

// IsScores reports whether msg opens the scoreboard.
func (km *KeyMapper) IsScores(msg tea.KeyMsg) bool {
	return key.Matches(msg, km.keys.Scores)
}

// IsScreenshot reports whether msg requests a screenshot.
func (km *KeyMapper) IsScreenshot(msg tea.KeyMsg) bool {
	return key.Matches(msg, km.keys.Screenshot)
}

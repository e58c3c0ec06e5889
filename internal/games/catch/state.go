package catch

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/bunny-catch/internal/core"
)

// Mode is the authoritative game mode.
type Mode int

const (
	ModeMenu     Mode = iota // Waiting for a difficulty selection
	ModePlaying              // Simulation running
	ModePaused               // Simulation frozen
	ModeGameOver             // Run ended, waiting for acknowledgement
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModePlaying:
		return "playing"
	case ModePaused:
		return "paused"
	case ModeGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Level is the selected difficulty.
type Level int

const (
	LevelEasy Level = iota // Straight falls at constant speed
	LevelHard              // Speed variance and horizontal drift with wall bounces
)

// String returns the level name.
func (l Level) String() string {
	switch l {
	case LevelEasy:
		return "easy"
	case LevelHard:
		return "hard"
	default:
		return "unknown"
	}
}

// ParseLevel converts a level name to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy", "1":
		return LevelEasy, nil
	case "hard", "2":
		return LevelHard, nil
	default:
		return LevelEasy, fmt.Errorf("catch: unknown level %q (want easy or hard)", s)
	}
}

// Levels lists every level in menu order.
func Levels() []Level {
	return []Level{LevelEasy, LevelHard}
}

// GameOverReason records why a run ended.
type GameOverReason int

const (
	ReasonNone         GameOverReason = iota
	ReasonHazardCaught                // The paddle caught a hazard
	ReasonObjectMissed                // A normal object fell past the bottom
)

// String returns a short description of the reason.
func (r GameOverReason) String() string {
	switch r {
	case ReasonHazardCaught:
		return "hazard caught"
	case ReasonObjectMissed:
		return "object missed"
	default:
		return "none"
	}
}

// Transition returns the mode that follows mode when action is applied, and
// whether the action is legal there. Illegal actions leave the mode unchanged.
// The resolver's Playing -> GameOver edge is internal and not reachable here.
func Transition(mode Mode, action core.Action) (Mode, bool) {
	switch mode {
	case ModeMenu:
		if action == core.ActionSelectEasy || action == core.ActionSelectHard {
			return ModePlaying, true
		}
	case ModePlaying:
		if action == core.ActionPause {
			return ModePaused, true
		}
	case ModePaused:
		if action == core.ActionPause {
			return ModePlaying, true
		}
	case ModeGameOver:
		if action == core.ActionAcknowledge {
			return ModeMenu, true
		}
	}
	return mode, false
}

// levelForAction maps a selection action to its level.
func levelForAction(action core.Action) (Level, bool) {
	switch action {
	case core.ActionSelectEasy:
		return LevelEasy, true
	case core.ActionSelectHard:
		return LevelHard, true
	default:
		return LevelEasy, false
	}
}

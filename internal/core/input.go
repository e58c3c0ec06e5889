package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the simulation to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone        Action = iota
	ActionMoveLeft           // Left arrow, A - paddle held left this frame
	ActionMoveRight          // Right arrow, D - paddle held right this frame
	ActionPause              // P, Escape - pause/resume toggle
	ActionSelectEasy         // 1, E - start a session on easy
	ActionSelectHard         // 2, H - start a session on hard
	ActionAcknowledge        // Enter, Space, R - leave the game over screen
	ActionQuit               // Q, Ctrl+C - exit the program (handled by the platform)
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionPause:
		return "Pause"
	case ActionSelectEasy:
		return "SelectEasy"
	case ActionSelectHard:
		return "SelectHard"
	case ActionAcknowledge:
		return "Acknowledge"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Direction folds the two movement actions into -1, 0 or +1.
// Holding both directions cancels out.
func (f InputFrame) Direction() int {
	dir := 0
	if f.Has(ActionMoveLeft) {
		dir--
	}
	if f.Has(ActionMoveRight) {
		dir++
	}
	return dir
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionUpLeft           // Q/Y - cursor one cell up-left
	ActionUpRight          // E/U - cursor one cell up-right
	ActionLeft             // A/H, Left arrow - cursor one cell left
	ActionRight            // D/L, Right arrow - cursor one cell right
	ActionDownLeft         // Z/B - cursor one cell down-left
	ActionDownRight        // C/N - cursor one cell down-right
	ActionUp               // Up arrow - cursor up, alternating sides
	ActionDown             // Down arrow - cursor down, alternating sides
	ActionSelect           // Space, Enter - pick the cell under the cursor
	ActionClear            // X - drop the current selection
	ActionUndo             // Backspace, - - undo the last move
	ActionRedo             // Tab, = - redo the last undone move
	ActionPreview          // V - toggle the solved-board preview
	ActionNext             // ] - continue with the next level once solved
	ActionRestart          // R - rebuild the current level
	ActionBack             // Escape - go back to menu
	ActionQuit             // Ctrl+C - exit game/session
	ActionPause            // P - pause/unpause
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUpLeft:
		return "UpLeft"
	case ActionUpRight:
		return "UpRight"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionDownLeft:
		return "DownLeft"
	case ActionDownRight:
		return "DownRight"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionSelect:
		return "Select"
	case ActionClear:
		return "Clear"
	case ActionUndo:
		return "Undo"
	case ActionRedo:
		return "Redo"
	case ActionPreview:
		return "Preview"
	case ActionNext:
		return "Next"
	case ActionRestart:
		return "Restart"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state during one tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
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

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	for _, on := range f.Actions {
		if on {
			return false
		}
	}
	return true
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

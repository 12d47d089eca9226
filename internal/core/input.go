package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, K, Up arrow - move cursor up
	ActionDown           // S, J, Down arrow - move cursor down
	ActionLeft           // A, H, Left arrow - move cursor left
	ActionRight          // D, L, Right arrow - move cursor right
	ActionErase          // Space, Enter - erase the group under the cursor
	ActionRestart        // R key - start a fresh board
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionErase:
		return "Erase"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick.
// It carries the actions triggered this frame plus pointer state, so the
// game can drive its cursor from either the keyboard or the mouse.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool

	// MouseMoved is true when the pointer position changed this frame;
	// MouseX/MouseY are then the pointer cell in screen coordinates.
	MouseMoved bool
	// MouseClick is true when the primary button was pressed this frame.
	MouseClick bool
	MouseX     int
	MouseY     int
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

// SetMouse records a pointer position in screen coordinates.
func (f *InputFrame) SetMouse(x, y int, click bool) {
	f.MouseMoved = true
	f.MouseX = x
	f.MouseY = y
	if click {
		f.MouseClick = true
	}
}

// Clear resets all actions and pointer state for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.MouseMoved = false
	f.MouseClick = false
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.MouseMoved = f.MouseMoved
	clone.MouseClick = f.MouseClick
	clone.MouseX = f.MouseX
	clone.MouseY = f.MouseY
	return clone
}

package core

// Action represents a semantic game action, abstracted from physical key presses
// and mouse clicks. Front ends translate raw input into actions.
type Action int

const (
	ActionNone    Action = iota
	ActionJump           // Space, W, Up, primary action
	ActionRestart        // Click on the restart control (carries a point)
	ActionQuit           // Q, Ctrl+C, window close
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Input is a single action delivered by a front end.
// At is only meaningful for ActionRestart and is in logical canvas coordinates.
type Input struct {
	Action Action
	At     Point
}

// InputFrame collects the inputs that arrived during one simulation tick,
// in arrival order.
type InputFrame struct {
	Inputs []Input
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set records an action without a point.
func (f *InputFrame) Set(a Action) {
	f.Inputs = append(f.Inputs, Input{Action: a})
}

// Click records a restart click at the given logical point.
func (f *InputFrame) Click(p Point) {
	f.Inputs = append(f.Inputs, Input{Action: ActionRestart, At: p})
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	for _, in := range f.Inputs {
		if in.Action == a {
			return true
		}
	}
	return false
}

// Empty reports whether no inputs arrived this frame.
func (f InputFrame) Empty() bool {
	return len(f.Inputs) == 0
}

// Clear resets all inputs for the next frame, keeping the backing array.
func (f *InputFrame) Clear() {
	f.Inputs = f.Inputs[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := InputFrame{Inputs: make([]Input, len(f.Inputs))}
	copy(clone.Inputs, f.Inputs)
	return clone
}

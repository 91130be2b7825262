package core

// Action represents a logical button, abstracted from physical keys.
// Frontends translate their key events into edges on these actions.
type Action int

const (
	ActionNone          Action = iota
	ActionJumpPrimary          // Space
	ActionJumpSecondary        // Up arrow
	ActionDuck                 // Down arrow
	ActionRestart              // R, Enter, pointer on the restart control
	ActionQuit                 // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJumpPrimary:
		return "JumpPrimary"
	case ActionJumpSecondary:
		return "JumpSecondary"
	case ActionDuck:
		return "Duck"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame holds the input edges observed during one simulation tick.
// A down edge means the button went from released to pressed since the
// previous tick; an up edge means the opposite. Held buttons produce no edge.
type InputFrame struct {
	Down map[Action]bool
	Up   map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Down: make(map[Action]bool),
		Up:   make(map[Action]bool),
	}
}

// Press records a down edge for the action.
func (f *InputFrame) Press(a Action) {
	if f.Down == nil {
		f.Down = make(map[Action]bool)
	}
	f.Down[a] = true
}

// Release records an up edge for the action.
func (f *InputFrame) Release(a Action) {
	if f.Up == nil {
		f.Up = make(map[Action]bool)
	}
	f.Up[a] = true
}

// Pressed reports whether the action had a down edge this tick.
func (f InputFrame) Pressed(a Action) bool {
	return f.Down[a]
}

// Released reports whether the action had an up edge this tick.
func (f InputFrame) Released(a Action) bool {
	return f.Up[a]
}

// JumpPressed reports a down edge on either jump binding.
func (f InputFrame) JumpPressed() bool {
	return f.Pressed(ActionJumpPrimary) || f.Pressed(ActionJumpSecondary)
}

// Empty reports whether the frame carries no edges at all.
func (f InputFrame) Empty() bool {
	return len(f.Down) == 0 && len(f.Up) == 0
}

// Clear resets all edges for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Down)
	clear(f.Up)
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Down {
		clone.Down[k] = v
	}
	for k, v := range f.Up {
		clone.Up[k] = v
	}
	return clone
}

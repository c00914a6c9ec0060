package core

// Action represents a semantic simulation command, abstracted from physical key presses.
type Action int

const (
	ActionNone       Action = iota
	ActionUp                // Move cursor up
	ActionDown              // Move cursor down
	ActionLeft              // Move cursor left
	ActionRight             // Move cursor right
	ActionToggleCell        // Flip the cell under the cursor
	ActionToggleRun         // Start or pause the simulation
	ActionStep              // Advance exactly one generation
	ActionReset             // Pause and regenerate the map
	ActionFaster            // Next speed level
	ActionSlower            // Previous speed level
	ActionNewSeed           // Generate a random seed
	ActionEditSeed          // Focus the seed input
	ActionDenser            // Raise living probability
	ActionSparser           // Lower living probability
	ActionBounds            // Show/hide the live-region bounding box
	ActionHistory           // Open run history
	ActionQuit              // Exit the session
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
	case ActionToggleCell:
		return "ToggleCell"
	case ActionToggleRun:
		return "ToggleRun"
	case ActionStep:
		return "Step"
	case ActionReset:
		return "Reset"
	case ActionFaster:
		return "Faster"
	case ActionSlower:
		return "Slower"
	case ActionNewSeed:
		return "NewSeed"
	case ActionEditSeed:
		return "EditSeed"
	case ActionDenser:
		return "Denser"
	case ActionSparser:
		return "Sparser"
	case ActionBounds:
		return "Bounds"
	case ActionHistory:
		return "History"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects the actions triggered during one front-end tick,
// in the order they arrived.
type InputFrame struct {
	actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{actions: make([]Action, 0, 8)}
}

// Set records an action for this frame.
func (f *InputFrame) Set(a Action) {
	f.actions = append(f.actions, a)
}

// Actions returns the recorded actions in arrival order.
func (f InputFrame) Actions() []Action {
	return f.actions
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.actions = f.actions[:0]
}

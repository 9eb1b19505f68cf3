package core

// Action represents a semantic intent, abstracted from physical key presses.
// Lessons work with these intents rather than raw keys.
type Action int

const (
	ActionNone     Action = iota
	ActionUp              // Up arrow, k
	ActionDown            // Down arrow, j
	ActionLeft            // Left arrow, h
	ActionRight           // Right arrow, l
	ActionConfirm         // Enter - place, pick, toggle or press the focused button
	ActionFocus           // Tab - cycle focus between widget areas
	ActionClear           // x - clear the item under the cursor
	ActionIncrease        // + - raise the focused slider
	ActionDecrease        // - - lower the focused slider
	ActionNext            // n - follow the next-level button
	ActionRestart         // Ctrl+R - restart the adventure
	ActionQuit            // Ctrl+C, q - exit
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
	case ActionConfirm:
		return "Confirm"
	case ActionFocus:
		return "Focus"
	case ActionClear:
		return "Clear"
	case ActionIncrease:
		return "Increase"
	case ActionDecrease:
		return "Decrease"
	case ActionNext:
		return "Next"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input collected during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Text carries the current content of a text-entry field, for lessons
	// that ask for typed input. HasText is false when no field is shown.
	Text    string
	HasText bool
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

// SetText records the content of the visible text field.
func (f *InputFrame) SetText(text string) {
	f.Text = text
	f.HasText = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame. Text is kept since it mirrors
// a field that persists between frames.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

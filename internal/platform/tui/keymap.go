package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/diffusion-adventure/internal/core"
)

// KeyMap holds the key bindings of the adventure screens.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Confirm  key.Binding
	Focus    key.Binding
	Clear    key.Binding
	Increase key.Binding
	Decrease key.Binding
	Next     key.Binding
	Restart  key.Binding
	Quit     key.Binding

	// Bindings that stay live while a text field has focus.
	TextNext key.Binding
	TextQuit key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "focus"),
		),
		Clear: key.NewBinding(
			key.WithKeys("x", "backspace", "delete"),
			key.WithHelp("x", "clear"),
		),
		Increase: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+/-", "adjust"),
		),
		Decrease: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "lower"),
		),
		Next: key.NewBinding(
			key.WithKeys("n", "ctrl+n", "pgdown"),
			key.WithHelp("n", "next level"),
		),
		Restart: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		TextNext: key.NewBinding(
			key.WithKeys("ctrl+n", "pgdown"),
			key.WithHelp("ctrl+n", "next level"),
		),
		TextQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Left, k.Confirm, k.Focus, k.Next, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Confirm, k.Focus, k.Clear, k.Increase},
		{k.Next, k.Restart, k.Quit},
	}
}

// textHelp is shown while a text field has focus.
type textHelp struct {
	k KeyMap
}

func (t textHelp) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "go")),
		t.k.Focus, t.k.TextNext, t.k.Restart, t.k.TextQuit,
	}
}

func (t textHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{t.ShortHelp()}
}

// KeyMapper translates Bubble Tea key messages to lesson actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultKeyMap()}
}

// Keys returns the bindings used by the mapper.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey translates a key message to an action.
// While textFocused is true, printable keys belong to the text field and
// only a reduced set of keys maps to actions; ActionNone tells the caller
// to forward the key to the field.
func (km *KeyMapper) MapKey(msg tea.KeyMsg, textFocused bool) core.Action {
	k := km.keys

	switch {
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	case key.Matches(msg, k.Focus):
		return core.ActionFocus
	}

	if textFocused {
		switch {
		case key.Matches(msg, k.TextQuit):
			return core.ActionQuit
		case key.Matches(msg, k.TextNext):
			return core.ActionNext
		case msg.Type == tea.KeyEnter:
			return core.ActionConfirm
		case msg.Type == tea.KeyUp:
			return core.ActionUp
		case msg.Type == tea.KeyDown:
			return core.ActionDown
		}
		return core.ActionNone
	}

	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Confirm):
		return core.ActionConfirm
	case key.Matches(msg, k.Clear):
		return core.ActionClear
	case key.Matches(msg, k.Increase):
		return core.ActionIncrease
	case key.Matches(msg, k.Decrease):
		return core.ActionDecrease
	case key.Matches(msg, k.Next):
		return core.ActionNext
	}

	return core.ActionNone
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns the mapped action.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, textFocused bool, frame *core.InputFrame) core.Action {
	action := km.MapKey(msg, textFocused)
	switch action {
	case core.ActionNone, core.ActionQuit, core.ActionRestart, core.ActionNext:
		// Handled by the platform, not the lesson.
	default:
		frame.Set(action)
	}
	return action
}

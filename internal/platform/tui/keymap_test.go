package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/diffusion-adventure/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"vim j", runeKey('j'), core.ActionDown},
		{"vim h", runeKey('h'), core.ActionLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionConfirm},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, core.ActionFocus},
		{"x", runeKey('x'), core.ActionClear},
		{"plus", runeKey('+'), core.ActionIncrease},
		{"minus", runeKey('-'), core.ActionDecrease},
		{"n", runeKey('n'), core.ActionNext},
		{"ctrl+r", tea.KeyMsg{Type: tea.KeyCtrlR}, core.ActionRestart},
		{"q", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey('z'), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.MapKey(tt.msg, false); got != tt.want {
				t.Errorf("MapKey(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestMapKeyTextFocused(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		// Letters that are bindings elsewhere must reach the text field.
		{"q types", runeKey('q'), core.ActionNone},
		{"n types", runeKey('n'), core.ActionNone},
		{"x types", runeKey('x'), core.ActionNone},
		{"h types", runeKey('h'), core.ActionNone},
		{"space types", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionNone},
		{"backspace edits", tea.KeyMsg{Type: tea.KeyBackspace}, core.ActionNone},
		{"enter confirms", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{"tab focuses", tea.KeyMsg{Type: tea.KeyTab}, core.ActionFocus},
		{"ctrl+n next", tea.KeyMsg{Type: tea.KeyCtrlN}, core.ActionNext},
		{"pgdown next", tea.KeyMsg{Type: tea.KeyPgDown}, core.ActionNext},
		{"ctrl+r restart", tea.KeyMsg{Type: tea.KeyCtrlR}, core.ActionRestart},
		{"ctrl+c quit", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.MapKey(tt.msg, true); got != tt.want {
				t.Errorf("MapKey(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyEnter}, false, &frame)
	if !frame.Has(core.ActionConfirm) {
		t.Error("enter should reach the lesson")
	}

	frame.Clear()
	if got := km.MapKeyToFrame(runeKey('n'), false, &frame); got != core.ActionNext {
		t.Errorf("MapKeyToFrame(n) = %v, expected Next", got)
	}
	if frame.Has(core.ActionNext) {
		t.Error("next is a platform action and must not reach the lesson")
	}
}

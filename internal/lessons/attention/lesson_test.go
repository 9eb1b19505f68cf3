package attention

import (
	"testing"
	"time"

	"github.com/vovakirdan/diffusion-adventure/internal/config"
	"github.com/vovakirdan/diffusion-adventure/internal/core"
	"github.com/vovakirdan/diffusion-adventure/internal/progress"
)

func newLesson(t *testing.T) (*Lesson, *progress.Store) {
	t.Helper()
	store := progress.NewStore()
	l := New(store, config.Default().Attention)
	l.Reset(core.DefaultConfig())
	return l, store
}

func toggle(t *testing.T, l *Lesson, words ...string) {
	t.Helper()
	for _, w := range words {
		if err := l.Toggle(w); err != nil {
			t.Fatalf("Toggle(%q) error: %v", w, err)
		}
	}
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name     string
		toggle   []string
		found    int
		complete bool
		button   string
	}{
		{"three important", []string{"red", "car", "drives"}, 3, true, "Perfect! You found the important words!"},
		{"all important", []string{"red", "car", "drives", "fast"}, 4, true, "Perfect! You found the important words!"},
		{"everything", []string{"The", "red", "car", "drives", "fast"}, 4, true, "Perfect! You found the important words!"},
		{"only red", []string{"red"}, 1, false, "Good! Try finding 3 more important words."},
		{"nothing", nil, 0, false, "Good! Try finding 4 more important words."},
		{"only the", []string{"The"}, 0, false, "Good! Try finding 4 more important words."},
		{"toggled off", []string{"red", "car", "drives", "car"}, 2, false, "Good! Try finding 2 more important words."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, store := newLesson(t)
			toggle(t, l, tt.toggle...)

			if got := l.Check(); got != tt.found {
				t.Errorf("Check() = %d, expected %d", got, tt.found)
			}
			snap := l.Snapshot()
			if snap.Complete != tt.complete || store.Complete(core.LevelAttention) != tt.complete {
				t.Errorf("complete = %v, expected %v", snap.Complete, tt.complete)
			}
			if snap.Button != tt.button {
				t.Errorf("button = %q, expected %q", snap.Button, tt.button)
			}
		})
	}
}

func TestHintReverts(t *testing.T) {
	l, _ := newLesson(t)
	toggle(t, l, "red")
	l.Check()

	l.Step(core.NewInputFrame(), 2999*time.Millisecond)
	if l.Snapshot().Button == restingLabel {
		t.Error("hint reverted too early")
	}
	l.Step(core.NewInputFrame(), time.Millisecond)
	if l.Snapshot().Button != restingLabel {
		t.Errorf("button = %q, expected resting label after 3s", l.Snapshot().Button)
	}
}

func TestSuccessIsPermanent(t *testing.T) {
	l, store := newLesson(t)
	toggle(t, l, "red", "car", "drives")
	l.Check()

	// Un-highlighting and checking again keeps the success state.
	toggle(t, l, "red", "car")
	l.Check()
	l.Step(core.NewInputFrame(), 10*time.Second)

	snap := l.Snapshot()
	if snap.Button != "Perfect! You found the important words!" {
		t.Errorf("button = %q, success should stay", snap.Button)
	}
	if got := store.Snapshot().AttentionScore; got != 3 {
		t.Errorf("AttentionScore = %d, expected 3", got)
	}
}

func TestToggleUnknownWord(t *testing.T) {
	l, _ := newLesson(t)
	if err := l.Toggle("blue"); err == nil {
		t.Error("expected error for a word outside the sentence")
	}
}

func TestKeyboard(t *testing.T) {
	l, store := newLesson(t)
	right := core.NewInputFrame()
	right.Set(core.ActionRight)
	enter := core.NewInputFrame()
	enter.Set(core.ActionConfirm)

	// Skip "The", toggle red, car, drives, then move to the button.
	for range 3 {
		l.Step(right, 0)
		l.Step(enter, 0)
	}
	l.Step(right, 0)
	l.Step(right, 0)
	l.Step(enter, 0)

	if !store.Complete(core.LevelAttention) {
		t.Errorf("highlighted %v, expected completion", l.Snapshot().Highlighted)
	}
}

func TestRender(t *testing.T) {
	l, _ := newLesson(t)
	toggle(t, l, "car")
	screen := core.NewScreen(72, 14)
	l.Render(screen)
	for _, want := range []string{"The", "drives", "★", restingLabel} {
		if !screen.Contains(want) {
			t.Errorf("render is missing %q", want)
		}
	}
}

func TestBackdropData(t *testing.T) {
	l, _ := newLesson(t)
	toggle(t, l, "car")
	data := l.BackdropData()
	if len(data) != len(Sentence) || data[2] != 0.9 || data[0] != 0.2 {
		t.Errorf("BackdropData() = %v", data)
	}
}

package patterns

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
	l := New(store, config.Default().Patterns)
	l.Reset(core.DefaultConfig())
	return l, store
}

func wait(l *Lesson, d time.Duration) {
	l.Step(core.NewInputFrame(), d)
}

func mustAnswer(t *testing.T, l *Lesson, option string) Result {
	t.Helper()
	res, err := l.Answer(option)
	if err != nil {
		t.Fatalf("Answer(%q) error: %v", option, err)
	}
	return res
}

func TestAllCorrect(t *testing.T) {
	l, store := newLesson(t)

	for i, q := range Questions {
		if l.Cursor() != i {
			t.Fatalf("cursor = %d, expected %d", l.Cursor(), i)
		}
		if res := mustAnswer(t, l, q.Answer); res != ResultCorrect {
			t.Fatalf("question %d: result = %v, expected correct", i, res)
		}
		wait(l, 1500*time.Millisecond)
	}

	snap := store.Snapshot()
	if !snap.LevelComplete(core.LevelPatterns) {
		t.Error("level 3 should be complete")
	}
	// The snapshot uses the already-incremented score, not score+1.
	if snap.PatternScore != 3 {
		t.Errorf("PatternScore = %d, expected 3", snap.PatternScore)
	}
}

func TestWrongThenRight(t *testing.T) {
	l, _ := newLesson(t)

	if res := mustAnswer(t, l, "west"); res != ResultWrong {
		t.Fatalf("result = %v, expected wrong", res)
	}
	snap := l.Snapshot()
	if snap.Tones[1] != core.ToneError {
		t.Error("wrong option should be marked red")
	}
	if snap.Tones[0] != core.ToneNeutral || snap.Tones[2] != core.ToneNeutral {
		t.Error("only the chosen option should show feedback")
	}

	wait(l, 5*time.Second)
	if l.Cursor() != 0 || l.Score() != 0 {
		t.Errorf("cursor=%d score=%d, a wrong answer must not move or score", l.Cursor(), l.Score())
	}
	if l.Snapshot().Tones[1] != core.ToneNeutral {
		t.Error("wrong feedback should revert after 1s")
	}

	mustAnswer(t, l, "east")
	if l.Cursor() != 0 {
		t.Error("cursor should wait for the advance delay")
	}
	wait(l, 1500*time.Millisecond)
	if l.Cursor() != 1 || l.Score() != 1 {
		t.Errorf("cursor=%d score=%d, expected 1/1", l.Cursor(), l.Score())
	}
}

func TestScoreNeverExceedsCorrectAnswers(t *testing.T) {
	l, store := newLesson(t)

	mustAnswer(t, l, "north")
	mustAnswer(t, l, "east")
	// Repeated answers during the advance window must be ignored.
	for range 3 {
		if res := mustAnswer(t, l, "east"); res != ResultIgnored {
			t.Errorf("result = %v, expected ignored while advancing", res)
		}
	}
	wait(l, 1500*time.Millisecond)

	mustAnswer(t, l, "trees")
	mustAnswer(t, l, "water")
	wait(l, 1500*time.Millisecond)
	mustAnswer(t, l, "reading")
	wait(l, 1500*time.Millisecond)

	if l.Score() != 3 {
		t.Errorf("Score() = %d, expected 3", l.Score())
	}
	if got := store.Snapshot().PatternScore; got != 3 {
		t.Errorf("PatternScore = %d, expected 3", got)
	}

	if res := mustAnswer(t, l, "reading"); res != ResultIgnored {
		t.Error("answers after completion should be ignored")
	}
}

func TestUnknownOption(t *testing.T) {
	l, _ := newLesson(t)
	if _, err := l.Answer("south"); err == nil {
		t.Error("expected error for an option that is not offered")
	}
}

func TestCompletionNotBeforeDelay(t *testing.T) {
	l, store := newLesson(t)
	for _, q := range Questions[:2] {
		mustAnswer(t, l, q.Answer)
		wait(l, 1500*time.Millisecond)
	}
	mustAnswer(t, l, Questions[2].Answer)
	wait(l, 1499*time.Millisecond)
	if store.Complete(core.LevelPatterns) {
		t.Error("completion fired before the advance delay")
	}
	wait(l, time.Millisecond)
	if !store.Complete(core.LevelPatterns) {
		t.Error("level 3 should be complete")
	}
}

func TestKeyboard(t *testing.T) {
	l, _ := newLesson(t)

	in := core.NewInputFrame()
	in.Set(core.ActionConfirm)
	l.Step(in, 0)
	if l.Score() != 1 {
		t.Fatalf("Enter on the first option should answer %q", Questions[0].Options[0])
	}
	wait(l, 1500*time.Millisecond)

	// "water" is the first option of question 2; move right then back.
	right := core.NewInputFrame()
	right.Set(core.ActionRight)
	l.Step(right, 0)
	left := core.NewInputFrame()
	left.Set(core.ActionLeft)
	l.Step(left, 0)
	l.Step(in, 0)
	if l.Score() != 2 {
		t.Errorf("Score() = %d, expected 2", l.Score())
	}
}

func TestRender(t *testing.T) {
	l, _ := newLesson(t)
	screen := core.NewScreen(72, 14)
	l.Render(screen)
	for _, want := range []string{"The sun rises in the ____", "east", "west", "north", "Score: 0/3"} {
		if !screen.Contains(want) {
			t.Errorf("render is missing %q", want)
		}
	}
}

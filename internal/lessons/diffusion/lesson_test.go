package diffusion

import (
	"testing"
	"time"

	"github.com/vovakirdan/diffusion-adventure/internal/config"
	"github.com/vovakirdan/diffusion-adventure/internal/core"
	"github.com/vovakirdan/diffusion-adventure/internal/progress"
)

// countingRecorder counts completion events.
type countingRecorder struct {
	progress.Store
	marks int
}

func (r *countingRecorder) MarkComplete(id core.LevelID) {
	r.marks++
	r.Store.MarkComplete(id)
}

func newLesson(t *testing.T) (*Lesson, *countingRecorder) {
	t.Helper()
	rec := &countingRecorder{Store: *progress.NewStore()}
	l := New(rec, config.Default().Diffusion)
	l.Reset(core.DefaultConfig())
	return l, rec
}

func wait(l *Lesson, d time.Duration) {
	l.Step(core.NewInputFrame(), d)
}

// active reports whether stage i is drawn as active.
func active(l *Lesson, i int) bool {
	screen := core.NewScreen(72, 14)
	l.Render(screen)
	return screen.Get(0, i*2) == '●'
}

func TestPlayAdvancesInOrder(t *testing.T) {
	l, rec := newLesson(t)
	l.Play()

	if l.CurrentStep() != 0 {
		t.Fatalf("CurrentStep() = %d right after play, expected 0", l.CurrentStep())
	}
	for want := 1; want < len(Stages); want++ {
		wait(l, 1500*time.Millisecond)
		if l.CurrentStep() != want {
			t.Fatalf("CurrentStep() = %d, expected %d", l.CurrentStep(), want)
		}
	}

	// The 6s tick finds the last stage and only schedules completion.
	wait(l, 1500*time.Millisecond)
	if l.CurrentStep() != len(Stages)-1 {
		t.Errorf("CurrentStep() = %d, expected %d", l.CurrentStep(), len(Stages)-1)
	}
	if rec.marks != 0 || !l.Running() {
		t.Error("completion should wait 1s after the last advance")
	}

	wait(l, time.Second)
	snap := l.Snapshot()
	if !snap.Complete || snap.Status != "Diffusion Complete!" {
		t.Errorf("snapshot = %+v, expected completion", snap)
	}
	if snap.Running {
		t.Error("sequence should be finished")
	}

	wait(l, time.Minute)
	if rec.marks != 1 {
		t.Errorf("MarkComplete called %d times, expected 1", rec.marks)
	}
}

func TestCompletesAtSevenSeconds(t *testing.T) {
	l, rec := newLesson(t)
	l.Play()
	wait(l, 7*time.Second-time.Millisecond)
	if rec.marks != 0 {
		t.Fatal("completed before 7s")
	}

	wait(l, time.Millisecond)
	if l.CurrentStep() != len(Stages)-1 || rec.marks != 1 {
		t.Errorf("step=%d marks=%d, expected %d/1", l.CurrentStep(), rec.marks, len(Stages)-1)
	}
}

func TestFirstStageActive(t *testing.T) {
	l, _ := newLesson(t)
	if !active(l, 0) || active(l, 1) {
		t.Error("at rest only the first stage should be active")
	}

	l.Play()
	if !active(l, 0) {
		t.Error("first stage should be active right after play")
	}
	if active(l, 1) {
		t.Error("second stage should wait for the first tick")
	}

	wait(l, 3*time.Second)
	if !active(l, 0) || !active(l, 1) || !active(l, 2) || active(l, 3) {
		t.Error("at 3s stages 1 to 3 should be active")
	}

	l.Rewind()
	if !active(l, 0) {
		t.Error("first stage should stay active after rewind")
	}
	if active(l, 1) {
		t.Error("rewind should dim every later stage")
	}
}

func TestPlaySupersedes(t *testing.T) {
	l, rec := newLesson(t)

	// Mash play; only the last press counts.
	for range 5 {
		l.Play()
		wait(l, 700*time.Millisecond)
	}
	if l.CurrentStep() != 0 {
		t.Errorf("CurrentStep() = %d, restarting play should go back to the first stage", l.CurrentStep())
	}

	wait(l, 800*time.Millisecond)
	if l.CurrentStep() != 1 {
		t.Errorf("CurrentStep() = %d, expected 1 at 1.5s after the last play", l.CurrentStep())
	}
	wait(l, 1500*time.Millisecond)
	if l.CurrentStep() != 2 {
		t.Errorf("CurrentStep() = %d, a stray timer advanced the counter", l.CurrentStep())
	}

	wait(l, time.Minute)
	if rec.marks != 1 {
		t.Errorf("MarkComplete called %d times, expected 1", rec.marks)
	}
}

func TestRewindMidSequence(t *testing.T) {
	l, _ := newLesson(t)
	l.Play()
	wait(l, 3*time.Second)
	if l.CurrentStep() != 2 {
		t.Fatalf("CurrentStep() = %d, expected 2", l.CurrentStep())
	}

	l.Rewind()
	if l.CurrentStep() != 0 || l.Running() {
		t.Errorf("after rewind step=%d running=%v", l.CurrentStep(), l.Running())
	}
	wait(l, time.Minute)
	if l.CurrentStep() != 0 {
		t.Error("a rewound sequence must not keep advancing")
	}
}

func TestRewindKeepsCompletion(t *testing.T) {
	l, rec := newLesson(t)
	l.Play()
	wait(l, 7*time.Second)
	l.Rewind()

	if l.CurrentStep() != 0 {
		t.Errorf("CurrentStep() = %d, expected 0", l.CurrentStep())
	}
	if !l.State().Complete || !rec.Complete(core.LevelDiffusion) {
		t.Error("rewind must not clear completion")
	}

	// Playing again is allowed and does not complete twice.
	l.Play()
	wait(l, 7*time.Second)
	if rec.marks != 1 {
		t.Errorf("MarkComplete called %d times, expected 1", rec.marks)
	}
}

func TestKeyboard(t *testing.T) {
	l, _ := newLesson(t)
	enter := core.NewInputFrame()
	enter.Set(core.ActionConfirm)
	l.Step(enter, 1500*time.Millisecond)
	if l.CurrentStep() != 1 {
		t.Fatalf("CurrentStep() = %d, expected 1", l.CurrentStep())
	}

	rewind := core.NewInputFrame()
	rewind.Set(core.ActionClear)
	l.Step(rewind, 0)
	if l.CurrentStep() != 0 {
		t.Error("x should rewind")
	}
}

func TestRender(t *testing.T) {
	l, _ := newLesson(t)
	l.Play()
	wait(l, 1500*time.Millisecond)

	screen := core.NewScreen(72, 14)
	l.Render(screen)
	if !screen.Contains("@#$%^&*()_+") || !screen.Contains("Th# c@t r*ns") {
		t.Error("stages up to the current step should be visible")
	}
	if screen.Contains("The cat runs fast") {
		t.Error("last stage should still be hidden")
	}
	if !screen.Contains("Step 4: Perfect Text!") {
		t.Error("hidden stages still show their label")
	}
}

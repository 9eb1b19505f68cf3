package tokens

import (
	"math/rand"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/diffusion-adventure/internal/config"
	"github.com/vovakirdan/diffusion-adventure/internal/core"
	"github.com/vovakirdan/diffusion-adventure/internal/progress"
)

func newLesson(t *testing.T) (*Lesson, *progress.Store) {
	t.Helper()
	store := progress.NewStore()
	l := New(store, config.Default().Tokens)
	cfg := core.DefaultConfig()
	cfg.Seed = 42
	l.Reset(cfg)
	return l, store
}

func TestTransformOneTokenPerCharacter(t *testing.T) {
	l, store := newLesson(t)
	l.SetInput("hi")

	toks, ok := l.Transform()
	if !ok {
		t.Fatal("Transform() rejected non-empty input")
	}
	if len(toks) != 2 {
		t.Fatalf("len(tokens) = %d, expected 2", len(toks))
	}
	for i, tok := range toks {
		if tok < i*100 || tok >= 1000+i*100 {
			t.Errorf("token %d = %d, expected in [%d, %d)", i, tok, i*100, 1000+i*100)
		}
	}

	// Completion lands one second after display, not before.
	if store.Complete(core.LevelTokens) {
		t.Error("completion should wait for the delay")
	}
	l.Step(core.NewInputFrame(), 999*time.Millisecond)
	if store.Complete(core.LevelTokens) {
		t.Error("completion fired early")
	}
	l.Step(core.NewInputFrame(), time.Millisecond)
	if !store.Complete(core.LevelTokens) {
		t.Error("level 2 should be complete 1s after transform")
	}
}

func TestTransformEmptyInput(t *testing.T) {
	for _, input := range []string{"", "   "} {
		l, store := newLesson(t)
		l.SetInput(input)

		if _, ok := l.Transform(); ok {
			t.Errorf("Transform(%q) should be rejected", input)
		}
		if !l.Error() {
			t.Errorf("Transform(%q) should set the error state", input)
		}

		l.Step(core.NewInputFrame(), 5*time.Second)
		if store.Complete(core.LevelTokens) || l.State().Complete {
			t.Errorf("empty input %q must never complete the lesson", input)
		}
		if l.Error() {
			t.Error("error state should revert after 2s")
		}
	}
}

func TestInputIsLimited(t *testing.T) {
	l, _ := newLesson(t)
	l.SetInput(strings.Repeat("a", 30))

	toks, _ := l.Transform()
	if len(toks) != 20 {
		t.Errorf("len(tokens) = %d, expected input capped at 20", len(toks))
	}
}

func TestRepeatedTransformsRerandomize(t *testing.T) {
	l, store := newLesson(t)
	l.SetInput("diffusion")

	first, _ := l.Transform()
	first = append([]int(nil), first...)
	l.Step(core.NewInputFrame(), 500*time.Millisecond)
	second, _ := l.Transform()

	same := true
	for i := range first {
		if first[i] != second[i] {
			same = false
		}
	}
	if same {
		t.Error("a second transform should draw new numbers")
	}

	// The second transform restarted the completion delay.
	l.Step(core.NewInputFrame(), 600*time.Millisecond)
	if store.Complete(core.LevelTokens) {
		t.Error("completion should be measured from the latest transform")
	}
	l.Step(core.NewInputFrame(), 400*time.Millisecond)
	if !store.Complete(core.LevelTokens) {
		t.Error("lesson should be complete")
	}
}

func TestStepUsesTextAndConfirm(t *testing.T) {
	l, _ := newLesson(t)
	in := core.NewInputFrame()
	in.SetText("cat")
	in.Set(core.ActionConfirm)

	l.Step(in, 0)
	if len(l.Tokens()) != 3 {
		t.Errorf("len(Tokens()) = %d, expected 3", len(l.Tokens()))
	}
	if !l.State().Busy {
		t.Error("lesson should report a pending completion")
	}
}

func TestTokenize(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	toks := Tokenize(rng, "héllo")
	if len(toks) != 5 {
		t.Errorf("Tokenize counts characters, got %d tokens", len(toks))
	}
}

func TestRenderShowsTokens(t *testing.T) {
	l, _ := newLesson(t)
	screen := core.NewScreen(72, 14)
	l.Render(screen)
	if !screen.Contains("Numbers will appear here!") {
		t.Error("placeholder should show before any transform")
	}

	l.SetInput("ok")
	toks, _ := l.Transform()
	screen = core.NewScreen(72, 14)
	l.Render(screen)
	for _, tok := range toks {
		if !screen.Contains(strconv.Itoa(tok)) {
			t.Errorf("render is missing token %d", tok)
		}
	}
}

func TestBackdropData(t *testing.T) {
	l, _ := newLesson(t)
	if l.BackdropData() != nil {
		t.Error("no payload before the first transform")
	}
	l.SetInput("abc")
	toks, _ := l.Transform()
	data := l.BackdropData()
	if len(data) != 3 || data[2] != float64(toks[2]) {
		t.Errorf("BackdropData() = %v, expected %v", data, toks)
	}
}

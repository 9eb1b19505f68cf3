// Package attention implements level 4: highlighting the words of a
// sentence that carry its meaning.
package attention

import (
	"fmt"
	"slices"
	"time"

	"github.com/vovakirdan/diffusion-adventure/internal/config"
	"github.com/vovakirdan/diffusion-adventure/internal/core"
	"github.com/vovakirdan/diffusion-adventure/internal/progress"
	"github.com/vovakirdan/diffusion-adventure/internal/registry"
)

// Sentence is the fixed sentence, one entry per clickable word.
var Sentence = []string{"The", "red", "car", "drives", "fast"}

// Important lists the words that carry the meaning.
var Important = []string{"red", "car", "drives", "fast"}

const restingLabel = "Check My Attention!"

// Lesson is the word-highlighting activity.
type Lesson struct {
	cfg   config.AttentionConfig
	rec   progress.Recorder
	sched *core.Scheduler

	highlighted map[string]bool
	button      core.Feedback
	found       int // Important words found at the last check
	selected    int // Keyboard cursor; len(Sentence) is the check button
	complete    bool
}

func init() {
	registry.Register(core.LevelAttention, "attention", func(env registry.Env) registry.Lesson {
		return New(env.Recorder, env.Config.Attention)
	})
}

// New creates the lesson. Call Reset before use.
func New(rec progress.Recorder, cfg config.AttentionConfig) *Lesson {
	return &Lesson{cfg: cfg, rec: rec}
}

// Level returns the level this lesson is bound to.
func (l *Lesson) Level() core.LevelID {
	return core.LevelAttention
}

// Reset clears every highlight.
func (l *Lesson) Reset(_ core.RuntimeConfig) {
	if l.sched != nil {
		l.sched.StopAll()
	}
	l.sched = core.NewScheduler()
	l.highlighted = make(map[string]bool)
	l.button = core.NewFeedback(restingLabel)
	l.found = 0
	l.selected = 0
	l.complete = false
}

// Toggle flips the highlight of a word. There is no limit on how many
// words may be highlighted.
func (l *Lesson) Toggle(word string) error {
	if !slices.Contains(Sentence, word) {
		return fmt.Errorf("attention: %q is not in the sentence", word)
	}
	l.highlighted[word] = !l.highlighted[word]
	return nil
}

// Highlighted reports whether word is highlighted.
func (l *Lesson) Highlighted(word string) bool {
	return l.highlighted[word]
}

// Found counts the important words currently highlighted.
func (l *Lesson) Found() int {
	n := 0
	for _, w := range Important {
		if l.highlighted[w] {
			n++
		}
	}
	return n
}

// Check compares the highlights with the important words. Reaching the
// threshold completes the lesson; otherwise a hint flashes on the button.
// Returns the number of important words found.
func (l *Lesson) Check() int {
	l.found = l.Found()

	if l.found >= l.cfg.Threshold {
		l.button.Hold("Perfect! You found the important words!", core.ToneSuccess)
		if !l.complete {
			l.complete = true
			l.rec.SetAttentionScore(l.found)
			l.rec.MarkComplete(core.LevelAttention)
		}
		return l.found
	}

	if l.complete {
		return l.found
	}
	missing := len(Important) - l.found
	l.button.Flash(l.sched, fmt.Sprintf("Good! Try finding %d more important words.", missing),
		core.ToneWarning, l.cfg.HintFeedback)
	return l.found
}

// BackdropData returns one attention weight per sentence word: high for
// highlighted words, low for the rest.
func (l *Lesson) BackdropData() []float64 {
	out := make([]float64, len(Sentence))
	for i, w := range Sentence {
		out[i] = 0.2
		if l.highlighted[w] {
			out[i] = 0.9
		}
	}
	return out
}

// Step maps keyboard intents onto Toggle and Check and advances timers.
func (l *Lesson) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	n := len(Sentence) + 1
	switch {
	case in.Has(core.ActionLeft), in.Has(core.ActionUp):
		l.selected = core.Wrap(l.selected-1, n)
	case in.Has(core.ActionRight), in.Has(core.ActionDown), in.Has(core.ActionFocus):
		l.selected = core.Wrap(l.selected+1, n)
	case in.Has(core.ActionConfirm):
		if l.selected == len(Sentence) {
			l.Check()
		} else {
			//nolint:errcheck // the cursor always points into Sentence
			l.Toggle(Sentence[l.selected])
		}
	}
	l.sched.Advance(dt)
	return core.StepResult{State: l.State()}
}

// State returns the lesson's current status.
func (l *Lesson) State() core.LessonState {
	st := core.LessonState{Complete: l.complete, Score: l.found}
	if l.button.Active() {
		st.Message = l.button.Text()
	}
	return st
}

// Close cancels every pending timer.
func (l *Lesson) Close() {
	if l.sched != nil {
		l.sched.StopAll()
	}
}

// Snapshot captures the lesson state for tests.
type Snapshot struct {
	Highlighted []string
	Found       int
	Button      string
	Tone        core.Tone
	Complete    bool
}

// Snapshot returns the current lesson snapshot.
func (l *Lesson) Snapshot() Snapshot {
	s := Snapshot{
		Found:    l.found,
		Button:   l.button.Text(),
		Tone:     l.button.Tone(),
		Complete: l.complete,
	}
	for _, w := range Sentence {
		if l.highlighted[w] {
			s.Highlighted = append(s.Highlighted, w)
		}
	}
	return s
}

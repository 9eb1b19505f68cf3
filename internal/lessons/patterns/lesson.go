// Package patterns implements level 3: a fill-in-the-blank quiz about
// predictable word patterns.
package patterns

import (
	"fmt"
	"slices"
	"time"

	"github.com/vovakirdan/diffusion-adventure/internal/config"
	"github.com/vovakirdan/diffusion-adventure/internal/core"
	"github.com/vovakirdan/diffusion-adventure/internal/progress"
	"github.com/vovakirdan/diffusion-adventure/internal/registry"
)

// Question is one quiz item with exactly one correct option.
type Question struct {
	Prompt  string
	Options []string
	Answer  string
}

// Questions is the fixed quiz, asked in order.
var Questions = []Question{
	{Prompt: "The sun rises in the ____", Options: []string{"east", "west", "north"}, Answer: "east"},
	{Prompt: "Fish live in ____", Options: []string{"water", "trees", "sky"}, Answer: "water"},
	{Prompt: "Books are for ____", Options: []string{"eating", "reading", "flying"}, Answer: "reading"},
}

// Result is the outcome of one answer.
type Result int

const (
	ResultIgnored Result = iota // Answer arrived while advancing or after completion
	ResultCorrect
	ResultWrong
)

// Lesson is the pattern quiz.
type Lesson struct {
	cfg   config.PatternsConfig
	rec   progress.Recorder
	sched *core.Scheduler

	cursor   int // Index into Questions
	score    int
	options  []core.Feedback // Per-option feedback for the current question
	advance  *core.Timer
	selected int // Keyboard cursor over options
	complete bool
}

func init() {
	registry.Register(core.LevelPatterns, "patterns", func(env registry.Env) registry.Lesson {
		return New(env.Recorder, env.Config.Patterns)
	})
}

// New creates the lesson. Call Reset before use.
func New(rec progress.Recorder, cfg config.PatternsConfig) *Lesson {
	return &Lesson{cfg: cfg, rec: rec}
}

// Level returns the level this lesson is bound to.
func (l *Lesson) Level() core.LevelID {
	return core.LevelPatterns
}

// Reset starts the quiz from the first question.
func (l *Lesson) Reset(_ core.RuntimeConfig) {
	if l.sched != nil {
		l.sched.StopAll()
	}
	l.sched = core.NewScheduler()
	l.cursor = 0
	l.score = 0
	l.advance = nil
	l.selected = 0
	l.complete = false
	l.loadOptions()
}

func (l *Lesson) loadOptions() {
	q := Questions[l.cursor]
	l.options = make([]core.Feedback, len(q.Options))
	for i, opt := range q.Options {
		l.options[i] = core.NewFeedback(opt)
	}
}

// Current returns the question being asked.
func (l *Lesson) Current() Question {
	return Questions[l.cursor]
}

// Cursor returns the index of the question being asked.
func (l *Lesson) Cursor() int {
	return l.cursor
}

// Score returns the number of correct answers so far.
func (l *Lesson) Score() int {
	return l.score
}

// Answer selects an option of the current question.
// A correct answer scores, then moves on (or completes the quiz) after the
// advance delay. Answers are ignored while that move is pending.
func (l *Lesson) Answer(option string) (Result, error) {
	q := Questions[l.cursor]
	idx := slices.Index(q.Options, option)
	if idx < 0 {
		return ResultIgnored, fmt.Errorf("patterns: %q is not an option of question %d", option, l.cursor+1)
	}
	if l.complete || l.advance.Pending() {
		return ResultIgnored, nil
	}

	if option != q.Answer {
		l.options[idx].Flash(l.sched, option+" ✗", core.ToneError, l.cfg.ErrorFlash)
		return ResultWrong, nil
	}

	l.score++
	l.options[idx].Flash(l.sched, option+" ✓", core.ToneSuccess, l.cfg.SuccessFlash)
	l.advance = l.sched.After(l.cfg.AdvanceDelay, l.next)
	return ResultCorrect, nil
}

// next moves to the following question or finishes the quiz.
func (l *Lesson) next() {
	if l.cursor < len(Questions)-1 {
		for i := range l.options {
			l.options[i].Reset(Questions[l.cursor].Options[i])
		}
		l.cursor++
		l.selected = 0
		l.loadOptions()
		return
	}
	if !l.complete {
		l.complete = true
		l.rec.SetPatternScore(l.score)
		l.rec.MarkComplete(core.LevelPatterns)
	}
}

// Step maps keyboard intents onto Answer and advances timers.
func (l *Lesson) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	n := len(Questions[l.cursor].Options)
	switch {
	case in.Has(core.ActionLeft), in.Has(core.ActionUp):
		l.selected = core.Wrap(l.selected-1, n)
	case in.Has(core.ActionRight), in.Has(core.ActionDown), in.Has(core.ActionFocus):
		l.selected = core.Wrap(l.selected+1, n)
	case in.Has(core.ActionConfirm):
		//nolint:errcheck // the selected option always belongs to the question
		l.Answer(Questions[l.cursor].Options[l.selected])
	}
	l.sched.Advance(dt)
	return core.StepResult{State: l.State()}
}

// State returns the lesson's current status.
func (l *Lesson) State() core.LessonState {
	st := core.LessonState{
		Complete: l.complete,
		Busy:     l.advance.Pending(),
		Score:    l.score,
	}
	if l.complete {
		st.Message = fmt.Sprintf("Quiz complete! You scored %d/%d.", l.score, len(Questions))
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
	Cursor   int
	Score    int
	Options  []string
	Tones    []core.Tone
	Complete bool
}

// Snapshot returns the current lesson snapshot.
func (l *Lesson) Snapshot() Snapshot {
	s := Snapshot{Cursor: l.cursor, Score: l.score, Complete: l.complete}
	for _, f := range l.options {
		s.Options = append(s.Options, f.Text())
		s.Tones = append(s.Tones, f.Tone())
	}
	return s
}

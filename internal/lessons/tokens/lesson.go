// Package tokens implements level 2: turning a typed word into pretend
// token numbers. The numbers are random stand-ins, not a real tokenizer.
package tokens

import (
	"math/rand"
	"strings"
	"time"

	"github.com/vovakirdan/diffusion-adventure/internal/config"
	"github.com/vovakirdan/diffusion-adventure/internal/core"
	"github.com/vovakirdan/diffusion-adventure/internal/progress"
	"github.com/vovakirdan/diffusion-adventure/internal/registry"
)

const restingLabel = "Transform!"

// Lesson is the word-to-numbers activity.
type Lesson struct {
	cfg   config.TokensConfig
	rec   progress.Recorder
	sched *core.Scheduler
	rng   *rand.Rand

	input    string
	word     string // Input that produced the current tokens
	tokens   []int
	button   core.Feedback
	pending  *core.Timer
	complete bool
}

func init() {
	registry.Register(core.LevelTokens, "tokens", func(env registry.Env) registry.Lesson {
		return New(env.Recorder, env.Config.Tokens)
	})
}

// New creates the lesson. Call Reset before use.
func New(rec progress.Recorder, cfg config.TokensConfig) *Lesson {
	return &Lesson{cfg: cfg, rec: rec}
}

// Level returns the level this lesson is bound to.
func (l *Lesson) Level() core.LevelID {
	return core.LevelTokens
}

// Reset clears the input and output and seeds the number generator.
func (l *Lesson) Reset(cfg core.RuntimeConfig) {
	if l.sched != nil {
		l.sched.StopAll()
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	l.sched = core.NewScheduler()
	l.rng = rand.New(rand.NewSource(seed))
	l.input = ""
	l.word = ""
	l.tokens = nil
	l.button = core.NewFeedback(restingLabel)
	l.pending = nil
	l.complete = false
}

// Placeholder is shown in the empty text field.
func (l *Lesson) Placeholder() string {
	return "Type a word..."
}

// CharLimit is the longest accepted input.
func (l *Lesson) CharLimit() int {
	return l.cfg.MaxInput
}

// TextFocused reports that the text field always has focus here.
func (l *Lesson) TextFocused() bool {
	return true
}

// SetInput replaces the typed text, keeping at most CharLimit characters.
func (l *Lesson) SetInput(text string) {
	l.input = core.TruncateRunes(text, l.cfg.MaxInput)
}

// Transform turns the current input into tokens, one per character.
// Blank input flashes an error and returns false. The lesson completes a
// short moment after the tokens are shown.
func (l *Lesson) Transform() ([]int, bool) {
	if strings.TrimSpace(l.input) == "" {
		l.button.Flash(l.sched, "Please type a word first!", core.ToneError, l.cfg.ErrorFeedback)
		return nil, false
	}

	l.word = l.input
	l.tokens = Tokenize(l.rng, l.input)
	l.pending = l.sched.Replace(l.pending, l.cfg.CompleteDelay, func() {
		if l.complete {
			return
		}
		l.complete = true
		l.rec.MarkComplete(core.LevelTokens)
	})
	return l.tokens, true
}

// Tokenize produces one pseudo token per character: a random value in
// [0, 1000) offset by the character's index times 100.
func Tokenize(rng *rand.Rand, word string) []int {
	runes := []rune(word)
	out := make([]int, len(runes))
	for i := range runes {
		out[i] = rng.Intn(1000) + i*100
	}
	return out
}

// Error reports whether the empty-input error is showing.
func (l *Lesson) Error() bool {
	return l.button.Active() && l.button.Tone() == core.ToneError
}

// Tokens returns the tokens on display.
func (l *Lesson) Tokens() []int {
	return l.tokens
}

// BackdropData returns the tokens as animation payload, or nil before the
// first transform.
func (l *Lesson) BackdropData() []float64 {
	if len(l.tokens) == 0 {
		return nil
	}
	out := make([]float64, len(l.tokens))
	for i, t := range l.tokens {
		out[i] = float64(t)
	}
	return out
}

// Step applies text and key input, then advances timers.
func (l *Lesson) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	if in.HasText {
		l.SetInput(in.Text)
	}
	if in.Has(core.ActionConfirm) {
		l.Transform()
	}
	l.sched.Advance(dt)
	return core.StepResult{State: l.State()}
}

// State returns the lesson's current status.
func (l *Lesson) State() core.LessonState {
	st := core.LessonState{
		Complete: l.complete,
		Busy:     l.pending.Pending(),
	}
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

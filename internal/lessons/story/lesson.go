// Package story implements level 6: a pretend story generator with a
// prompt and two sliders. The output is one of a few canned stories; the
// prompt and sliders are only logged.
package story

import (
	"math/rand"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/diffusion-adventure/internal/config"
	"github.com/vovakirdan/diffusion-adventure/internal/core"
	"github.com/vovakirdan/diffusion-adventure/internal/progress"
	"github.com/vovakirdan/diffusion-adventure/internal/registry"
)

// Thinking is shown while a story is being "generated".
const Thinking = "🤖 AI is thinking..."

// Templates are the stories a generation can produce.
var Templates = []string{
	"Once upon a time, there was a magical robot who loved to help children learn about AI. It could transform any word into sparkling numbers and create amazing stories from thin air!",
	"In a digital world far away, words danced and played together in harmony. Each word had its own special number code, and together they created the most beautiful sentences.",
	"The brave little algorithm set out on a journey to understand the mysteries of language. Along the way, it discovered the secret of attention and learned to focus on the most important words.",
	"Deep in the computer's memory, tokens sparkled like stars in the night sky. Through the magic of diffusion, chaos slowly transformed into perfect, meaningful text.",
}

// Focus identifies the control receiving keyboard input.
type Focus int

const (
	FocusPrompt Focus = iota
	FocusCreativity
	FocusLength
	FocusGenerate
	focusCount
)

// Lesson is the story generator.
type Lesson struct {
	cfg    config.StoryConfig
	rec    progress.Recorder
	logger *log.Logger
	sched  *core.Scheduler
	rng    *rand.Rand

	prompt     string
	creativity int
	length     int
	text       string // Empty until the first generation
	pending    *core.Timer
	focus      Focus
	complete   bool
}

func init() {
	registry.Register(core.LevelStory, "story", func(env registry.Env) registry.Lesson {
		return New(env.Recorder, env.Config.Story, env.Logger)
	})
}

// New creates the lesson. A nil logger disables logging.
// Call Reset before use.
func New(rec progress.Recorder, cfg config.StoryConfig, logger *log.Logger) *Lesson {
	return &Lesson{cfg: cfg, rec: rec, logger: logger}
}

// Level returns the level this lesson is bound to.
func (l *Lesson) Level() core.LevelID {
	return core.LevelStory
}

// Reset clears the prompt and story and puts the sliders at their defaults.
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
	l.prompt = ""
	l.creativity = l.cfg.DefaultCreativity
	l.length = l.cfg.DefaultLength
	l.text = ""
	l.pending = nil
	l.focus = FocusPrompt
	l.complete = false
}

// Placeholder is shown in the empty prompt field.
func (l *Lesson) Placeholder() string {
	return "Start your story... (e.g., 'Once upon a time')"
}

// CharLimit is the longest accepted prompt.
func (l *Lesson) CharLimit() int {
	return l.cfg.PromptLimit
}

// TextFocused reports whether the prompt field has focus.
func (l *Lesson) TextFocused() bool {
	return l.focus == FocusPrompt
}

// SetPrompt replaces the prompt, keeping at most CharLimit characters.
func (l *Lesson) SetPrompt(text string) {
	l.prompt = core.TruncateRunes(text, l.cfg.PromptLimit)
}

// SetCreativity sets the creativity slider, clamped to its range.
func (l *Lesson) SetCreativity(v int) {
	l.creativity = core.Clamp(v, config.SliderMin, config.SliderMax)
}

// SetLength sets the length slider, clamped to its range.
func (l *Lesson) SetLength(v int) {
	l.length = core.Clamp(v, config.SliderMin, config.SliderMax)
}

// Creativity returns the creativity slider value.
func (l *Lesson) Creativity() int {
	return l.creativity
}

// Length returns the length slider value.
func (l *Lesson) Length() int {
	return l.length
}

// Generate shows the thinking placeholder, then a random story after the
// thinking delay, then completes the lesson after the settle delay.
// Generating again while a story is pending starts over.
func (l *Lesson) Generate() {
	if l.logger != nil {
		l.logger.Info("story requested", "prompt", l.prompt, "creativity", l.creativity, "length", l.length)
	}
	l.text = Thinking
	l.pending = l.sched.Replace(l.pending, l.cfg.ThinkingDelay, func() {
		l.text = Templates[l.rng.Intn(len(Templates))]
		l.pending = l.sched.After(l.cfg.SettleDelay, func() {
			l.pending = nil
			if !l.complete {
				l.complete = true
				l.rec.MarkComplete(core.LevelStory)
			}
		})
	})
}

// Text returns the story area content: empty, the thinking placeholder or
// a story.
func (l *Lesson) Text() string {
	return l.text
}

// Thinking reports whether the placeholder is showing.
func (l *Lesson) Thinking() bool {
	return l.text == Thinking
}

// Step maps keyboard intents and typed text onto the lesson and advances
// timers.
func (l *Lesson) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	if in.HasText {
		l.SetPrompt(in.Text)
	}
	l.handleInput(in)
	l.sched.Advance(dt)
	return core.StepResult{State: l.State()}
}

func (l *Lesson) handleInput(in core.InputFrame) {
	switch {
	case in.Has(core.ActionFocus), in.Has(core.ActionDown):
		l.focus = Focus(core.Wrap(int(l.focus)+1, int(focusCount)))
	case in.Has(core.ActionUp):
		l.focus = Focus(core.Wrap(int(l.focus)-1, int(focusCount)))
	case in.Has(core.ActionIncrease), in.Has(core.ActionRight):
		l.nudge(1)
	case in.Has(core.ActionDecrease), in.Has(core.ActionLeft):
		l.nudge(-1)
	case in.Has(core.ActionConfirm):
		if slices.Contains([]Focus{FocusPrompt, FocusGenerate}, l.focus) {
			l.Generate()
		}
	}
}

func (l *Lesson) nudge(delta int) {
	switch l.focus {
	case FocusCreativity:
		l.SetCreativity(l.creativity + delta)
	case FocusLength:
		l.SetLength(l.length + delta)
	}
}

// State returns the lesson's current status.
func (l *Lesson) State() core.LessonState {
	return core.LessonState{
		Complete: l.complete,
		Busy:     l.pending.Pending(),
	}
}

// Close cancels every pending timer.
func (l *Lesson) Close() {
	if l.sched != nil {
		l.sched.StopAll()
	}
}

// Snapshot captures the lesson state for tests.
type Snapshot struct {
	Prompt     string
	Creativity int
	Length     int
	Text       string
	Focus      Focus
	Complete   bool
}

// Snapshot returns the current lesson snapshot.
func (l *Lesson) Snapshot() Snapshot {
	return Snapshot{
		Prompt:     l.prompt,
		Creativity: l.creativity,
		Length:     l.length,
		Text:       l.text,
		Focus:      l.focus,
		Complete:   l.complete,
	}
}

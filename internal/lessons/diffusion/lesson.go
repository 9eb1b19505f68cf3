// Package diffusion implements level 5: a scripted reveal that turns noise
// into a sentence, one refinement stage at a time.
package diffusion

import (
	"time"

	"github.com/vovakirdan/diffusion-adventure/internal/config"
	"github.com/vovakirdan/diffusion-adventure/internal/core"
	"github.com/vovakirdan/diffusion-adventure/internal/progress"
	"github.com/vovakirdan/diffusion-adventure/internal/registry"
)

// Stage is one step from noise to text.
type Stage struct {
	Text  string
	Label string
}

// Stages are shown in order, up to and including the current step.
var Stages = []Stage{
	{Text: "@#$%^&*()_+", Label: "Random Noise"},
	{Text: "Th# c@t r*ns", Label: "Finding Patterns"},
	{Text: "The cat runs", Label: "Refining Words"},
	{Text: "The cat runs fast", Label: "Perfect Text!"},
}

// Controls under the stage list.
const (
	controlPlay = iota
	controlReset
	controlCount
)

// Lesson is the diffusion animation.
type Lesson struct {
	cfg   config.DiffusionConfig
	rec   progress.Recorder
	sched *core.Scheduler

	step     int // Index of the current stage
	next     *core.Timer
	status   core.Feedback
	control  int
	complete bool
}

func init() {
	registry.Register(core.LevelDiffusion, "diffusion", func(env registry.Env) registry.Lesson {
		return New(env.Recorder, env.Config.Diffusion)
	})
}

// New creates the lesson. Call Reset before use.
func New(rec progress.Recorder, cfg config.DiffusionConfig) *Lesson {
	return &Lesson{cfg: cfg, rec: rec}
}

// Level returns the level this lesson is bound to.
func (l *Lesson) Level() core.LevelID {
	return core.LevelDiffusion
}

// Reset prepares a fresh, stopped animation.
func (l *Lesson) Reset(_ core.RuntimeConfig) {
	if l.sched != nil {
		l.sched.StopAll()
	}
	l.sched = core.NewScheduler()
	l.step = 0
	l.next = nil
	l.status = core.NewFeedback("Press Play to start")
	l.control = controlPlay
	l.complete = false
}

// Play restarts the reveal from the first stage. A sequence already running
// is cancelled first, so there is only ever one chain of timers.
func (l *Lesson) Play() {
	l.step = 0
	l.next = l.sched.Replace(l.next, l.cfg.StageInterval, l.advance)
}

// advance moves to the next stage. The tick that finds the last stage
// already shown schedules completion instead.
func (l *Lesson) advance() {
	if l.step < len(Stages)-1 {
		l.step++
		l.next = l.sched.After(l.cfg.StageInterval, l.advance)
		return
	}
	l.next = l.sched.After(l.cfg.SettleDelay, l.finish)
}

func (l *Lesson) finish() {
	l.next = nil
	l.status.Hold("Diffusion Complete!", core.ToneSuccess)
	if !l.complete {
		l.complete = true
		l.rec.MarkComplete(core.LevelDiffusion)
	}
}

// Rewind stops the animation and goes back to the first stage. Completion
// is kept.
func (l *Lesson) Rewind() {
	l.next.Stop()
	l.next = nil
	l.step = 0
}

// CurrentStep returns the index of the current stage. Stages up to and
// including it are shown as active.
func (l *Lesson) CurrentStep() int {
	return l.step
}

// Running reports whether a sequence is in progress.
func (l *Lesson) Running() bool {
	return l.next.Pending()
}

// Step maps keyboard intents onto Play and Rewind and advances timers.
func (l *Lesson) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	switch {
	case in.Has(core.ActionLeft), in.Has(core.ActionRight), in.Has(core.ActionFocus):
		l.control = core.Wrap(l.control+1, controlCount)
	case in.Has(core.ActionClear):
		l.Rewind()
	case in.Has(core.ActionConfirm):
		if l.control == controlPlay {
			l.Play()
		} else {
			l.Rewind()
		}
	}
	l.sched.Advance(dt)
	return core.StepResult{State: l.State()}
}

// State returns the lesson's current status.
func (l *Lesson) State() core.LessonState {
	st := core.LessonState{
		Complete: l.complete,
		Busy:     l.Running(),
		Score:    l.step,
	}
	if l.status.Permanent() {
		st.Message = l.status.Text()
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
	Step     int
	Running  bool
	Status   string
	Complete bool
}

// Snapshot returns the current lesson snapshot.
func (l *Lesson) Snapshot() Snapshot {
	return Snapshot{
		Step:     l.step,
		Running:  l.Running(),
		Status:   l.status.Text(),
		Complete: l.complete,
	}
}

// Package adventure implements the level state machine. It owns the current
// level, the progress store and the lesson bound to the current level.
//
// The machine is driven from a single goroutine: the platform calls Step once
// per tick and the transition methods in response to key presses.
package adventure

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/diffusion-adventure/internal/config"
	"github.com/vovakirdan/diffusion-adventure/internal/core"
	"github.com/vovakirdan/diffusion-adventure/internal/progress"
	"github.com/vovakirdan/diffusion-adventure/internal/registry"
)

var (
	// ErrInvalidTransition is returned when a transition does not start
	// from a level that allows it.
	ErrInvalidTransition = errors.New("adventure: invalid transition")

	// ErrLevelIncomplete is returned when leaving a lesson whose completion
	// flag is not set yet.
	ErrLevelIncomplete = errors.New("adventure: level not complete")
)

// Summary describes a finished adventure.
type Summary struct {
	Progress   progress.State
	StartedAt  time.Time
	FinishedAt time.Time
}

// Duration returns the wall time between start and finish.
func (s Summary) Duration() time.Duration {
	return s.FinishedAt.Sub(s.StartedAt)
}

// Options configure a Machine.
type Options struct {
	Config  config.Config
	Runtime core.RuntimeConfig
	Logger  *log.Logger // May be nil

	// OnFinish is called once each time the completion screen is reached.
	OnFinish func(Summary)

	// Now overrides the wall clock, for tests.
	Now func() time.Time
}

// Machine is the level state machine.
type Machine struct {
	opts    Options
	current core.LevelID
	store   *progress.Store
	lesson  registry.Lesson
	started time.Time
}

// New creates a machine on the welcome screen with empty progress.
func New(opts Options) *Machine {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Machine{
		opts:    opts,
		current: core.LevelWelcome,
		store:   progress.NewStore(),
	}
}

// Current returns the level on screen.
func (m *Machine) Current() core.LevelID {
	return m.current
}

// Progress returns a copy of the progress state.
func (m *Machine) Progress() progress.State {
	return m.store.Snapshot()
}

// Lesson returns the lesson bound to the current level, or nil on the
// welcome and completion screens.
func (m *Machine) Lesson() registry.Lesson {
	return m.lesson
}

// CanAdvance reports whether the next-level action is available.
func (m *Machine) CanAdvance() bool {
	switch {
	case m.current == core.LevelWelcome:
		return true
	case m.current.IsLesson():
		return m.store.Complete(m.current)
	default:
		return false
	}
}

// Start leaves the welcome screen for the first lesson.
func (m *Machine) Start() error {
	if m.current != core.LevelWelcome {
		return fmt.Errorf("%w: start from %s", ErrInvalidTransition, m.current)
	}
	m.started = m.opts.Now()
	return m.enter(core.LevelWords)
}

// Advance moves from the current lesson to target. Target must be the next
// lesson and the current lesson must be complete. Leaving the last lesson
// uses Complete instead.
func (m *Machine) Advance(target core.LevelID) error {
	if m.current < core.LevelWords || m.current >= core.LevelStory {
		return fmt.Errorf("%w: advance from %s", ErrInvalidTransition, m.current)
	}
	if target != m.current.Next() {
		return fmt.Errorf("%w: %s to %s", ErrInvalidTransition, m.current, target)
	}
	if !m.store.Complete(m.current) {
		return fmt.Errorf("%w: %s", ErrLevelIncomplete, m.current)
	}
	return m.enter(target)
}

// Complete leaves the last lesson for the completion screen.
func (m *Machine) Complete() error {
	if m.current != core.LevelStory {
		return fmt.Errorf("%w: complete from %s", ErrInvalidTransition, m.current)
	}
	if !m.store.Complete(m.current) {
		return fmt.Errorf("%w: %s", ErrLevelIncomplete, m.current)
	}
	if err := m.enter(core.LevelCompletion); err != nil {
		return err
	}
	if m.opts.OnFinish != nil {
		m.opts.OnFinish(Summary{
			Progress:   m.store.Snapshot(),
			StartedAt:  m.started,
			FinishedAt: m.opts.Now(),
		})
	}
	return nil
}

// Next performs whichever forward transition fits the current level.
func (m *Machine) Next() error {
	switch {
	case m.current == core.LevelWelcome:
		return m.Start()
	case m.current == core.LevelStory:
		return m.Complete()
	default:
		return m.Advance(m.current.Next())
	}
}

// Restart returns to the welcome screen and clears all progress.
// Valid from any level.
func (m *Machine) Restart() {
	m.logger().Debug("restart", "from", m.current, "progress", m.store.String())
	m.closeLesson()
	m.store.Reset()
	m.current = core.LevelWelcome
	m.started = time.Time{}
}

// Step forwards one tick of input to the current lesson. Outside the
// lessons it returns a zero result.
func (m *Machine) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	if m.lesson == nil {
		return core.StepResult{}
	}
	return m.lesson.Step(in, dt)
}

// Close releases the current lesson.
func (m *Machine) Close() {
	m.closeLesson()
}

// enter builds a fresh lesson for level (if it is one) and makes it current.
func (m *Machine) enter(level core.LevelID) error {
	var next registry.Lesson
	if level.IsLesson() {
		l, err := registry.Create(level, registry.Env{
			Recorder: m.store,
			Config:   m.opts.Config,
			Logger:   m.opts.Logger,
		})
		if err != nil {
			return fmt.Errorf("adventure: enter %s: %w", level, err)
		}
		l.Reset(m.opts.Runtime)
		next = l
	}

	m.logger().Debug("transition", "from", m.current, "to", level)
	m.closeLesson()
	m.lesson = next
	m.current = level
	return nil
}

func (m *Machine) closeLesson() {
	if m.lesson != nil {
		m.lesson.Close()
		m.lesson = nil
	}
}

func (m *Machine) logger() *log.Logger {
	if m.opts.Logger == nil {
		return log.Default()
	}
	return m.opts.Logger
}

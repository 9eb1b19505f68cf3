// Package registry provides a global registry of lesson factories.
// Lessons register themselves in init() functions, allowing the state
// machine to build a fresh lesson for a level without hardcoded imports.
package registry

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/diffusion-adventure/internal/config"
	"github.com/vovakirdan/diffusion-adventure/internal/core"
	"github.com/vovakirdan/diffusion-adventure/internal/progress"
)

// Lesson is the interface every interaction module implements.
// Lessons contain pure logic with no Bubble Tea dependency; the platform
// handles key mapping, timing and framing.
type Lesson interface {
	// Level returns the level this lesson is bound to.
	Level() core.LevelID

	// Reset initializes the lesson's transient state.
	// Called once when the level is entered.
	Reset(cfg core.RuntimeConfig)

	// Step applies the input of one tick, then advances the lesson's
	// scheduler by dt, firing any timers that fall due.
	Step(in core.InputFrame, dt time.Duration) core.StepResult

	// Render draws the activity widget into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the lesson's current status.
	State() core.LessonState

	// Close cancels every pending timer. The lesson must not be used after.
	Close()
}

// TextEntry is implemented by lessons that take typed input. The platform
// shows a text field and copies its content into InputFrame.Text.
type TextEntry interface {
	Placeholder() string
	CharLimit() int

	// TextFocused reports whether typed keys belong to the text field.
	// While true, the platform only maps a reduced set of keys to actions.
	TextFocused() bool
}

// Env carries the collaborators a lesson is built with.
type Env struct {
	Recorder progress.Recorder
	Config   config.Config
	Logger   *log.Logger // May be nil
}

// LessonInfo contains metadata about a registered lesson.
type LessonInfo struct {
	Level core.LevelID
	Name  string
}

// Factory is a function that creates a new instance of a lesson.
type Factory func(env Env) Lesson

var (
	factories = make(map[core.LevelID]Factory)
	names     = make(map[core.LevelID]string)
	mu        sync.RWMutex
)

// Register adds a lesson factory for a level.
// Typically called from a lesson's init() function.
// Panics if the level is not a lesson or already has a factory.
func Register(level core.LevelID, name string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if !level.IsLesson() {
		panic(fmt.Sprintf("registry: level %d is not a lesson", level))
	}
	if _, exists := factories[level]; exists {
		panic(fmt.Sprintf("registry: lesson for level %d already registered", level))
	}

	factories[level] = f
	names[level] = name
}

// List returns information about all registered lessons, in level order.
func List() []LessonInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]LessonInfo, 0, len(factories))
	for level := range factories {
		result = append(result, LessonInfo{
			Level: level,
			Name:  names[level],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Level < result[j].Level
	})

	return result
}

// Create instantiates a new lesson for the given level.
// Returns an error if no lesson is registered for it.
func Create(level core.LevelID, env Env) (Lesson, error) {
	mu.RLock()
	f, ok := factories[level]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: no lesson for level %d", level)
	}
	if env.Recorder == nil {
		return nil, fmt.Errorf("registry: lesson %d needs a progress recorder", level)
	}

	return f(env), nil
}

// Exists checks if a lesson is registered for the level.
func Exists(level core.LevelID) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[level]
	return ok
}

package core

import "time"

// RuntimeConfig contains configuration passed to lessons at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Widget area width in characters
	ScreenH  int   // Widget area height in characters
	TickRate int   // Simulation ticks per second (default 30)
	Seed     int64 // RNG seed; 0 means the platform picks one from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  72,
		ScreenH:  14,
		TickRate: 30,
		Seed:     0,
	}
}

// TickInterval returns the simulated time covered by one tick.
func (c RuntimeConfig) TickInterval() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 30
	}
	return time.Second / time.Duration(c.TickRate)
}

// LessonState is the status a lesson reports to the platform.
type LessonState struct {
	Complete bool   // Completion flag for this lesson is set
	Busy     bool   // A timed sequence (animation, generation) is running
	Score    int    // Lesson-specific score, 0 when the lesson has none
	Message  string // Current advisory text, empty when none is shown
}

// StepResult is returned by a lesson after each simulation tick.
type StepResult struct {
	State LessonState
}

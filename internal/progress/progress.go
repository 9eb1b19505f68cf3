// Package progress holds the per-session record of finished lessons and
// quiz scores. Nothing here is persisted; a restart returns the store to its
// initial value.
package progress

import (
	"fmt"

	"github.com/vovakirdan/diffusion-adventure/internal/core"
)

// Score bounds.
const (
	MaxPatternScore   = 3 // Number of pattern quiz questions
	MaxAttentionScore = 4 // Number of important words in the attention lesson
)

// State is a snapshot of the store.
type State struct {
	Complete       [core.LessonCount]bool // Index 0 is level 1
	PatternScore   int
	AttentionScore int
}

// LevelComplete reports the flag for a lesson id; non-lessons report false.
func (s State) LevelComplete(id core.LevelID) bool {
	if !id.IsLesson() {
		return false
	}
	return s.Complete[id-core.LevelWords]
}

// CompletedCount returns how many lesson flags are set.
func (s State) CompletedCount() int {
	n := 0
	for _, done := range s.Complete {
		if done {
			n++
		}
	}
	return n
}

// Recorder is the only write path lessons get into the store.
type Recorder interface {
	MarkComplete(id core.LevelID)
	SetPatternScore(score int)
	SetAttentionScore(score int)
}

// Store holds the progress of the current session.
type Store struct {
	state State
}

// NewStore creates a store with every flag false and scores zero.
func NewStore() *Store {
	return &Store{}
}

// MarkComplete sets the flag for a lesson. Flags only ever go from false to
// true; setting an already-true flag is a no-op.
func (s *Store) MarkComplete(id core.LevelID) {
	if !id.IsLesson() {
		return
	}
	s.state.Complete[id-core.LevelWords] = true
}

// SetPatternScore records the final pattern quiz score, clamped to its bounds.
func (s *Store) SetPatternScore(score int) {
	s.state.PatternScore = core.Clamp(score, 0, MaxPatternScore)
}

// SetAttentionScore records the attention score, clamped to its bounds.
func (s *Store) SetAttentionScore(score int) {
	s.state.AttentionScore = core.Clamp(score, 0, MaxAttentionScore)
}

// Complete reports whether a lesson's flag is set.
func (s *Store) Complete(id core.LevelID) bool {
	return s.state.LevelComplete(id)
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() State {
	return s.state
}

// Reset returns the store to its initial value.
func (s *Store) Reset() {
	s.state = State{}
}

// String summarizes the store for logs.
func (s *Store) String() string {
	return fmt.Sprintf("%d/%d lessons, pattern %d/%d, attention %d/%d",
		s.state.CompletedCount(), core.LessonCount,
		s.state.PatternScore, MaxPatternScore,
		s.state.AttentionScore, MaxAttentionScore)
}

var _ Recorder = (*Store)(nil)

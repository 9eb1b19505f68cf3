// Package core provides fundamental types and utilities for the adventure.
// It contains no external dependencies (especially no Bubble Tea) to keep
// lesson logic pure and testable.
package core

import "fmt"

// LevelID identifies one screen of the adventure.
// Ids are dense and ordered: 0 is the welcome screen, 1-6 are the lessons
// and 7 is the completion screen.
type LevelID int

const (
	LevelWelcome LevelID = iota
	LevelWords
	LevelTokens
	LevelPatterns
	LevelAttention
	LevelDiffusion
	LevelStory
	LevelCompletion
)

// LessonCount is the number of instructional levels (1-6).
const LessonCount = 6

// Valid reports whether id is inside [LevelWelcome, LevelCompletion].
func (id LevelID) Valid() bool {
	return id >= LevelWelcome && id <= LevelCompletion
}

// IsLesson reports whether id is one of the six instructional levels.
func (id LevelID) IsLesson() bool {
	return id >= LevelWords && id <= LevelStory
}

// Next returns the level that follows id.
func (id LevelID) Next() LevelID {
	if id >= LevelCompletion {
		return LevelCompletion
	}
	return id + 1
}

// String returns a short machine-friendly name.
func (id LevelID) String() string {
	switch id {
	case LevelWelcome:
		return "welcome"
	case LevelWords:
		return "words"
	case LevelTokens:
		return "tokens"
	case LevelPatterns:
		return "patterns"
	case LevelAttention:
		return "attention"
	case LevelDiffusion:
		return "diffusion"
	case LevelStory:
		return "story"
	case LevelCompletion:
		return "completion"
	default:
		return fmt.Sprintf("level(%d)", int(id))
	}
}

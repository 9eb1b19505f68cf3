// Package levels is the static catalog of adventure screens: titles, icons,
// explanations and the badges awarded on the completion screen.
package levels

import "github.com/vovakirdan/diffusion-adventure/internal/core"

// Level describes one screen of the adventure.
type Level struct {
	ID          core.LevelID
	Title       string
	Icon        string
	Explanation string // Short lesson text shown above the activity
	Activity    string // Activity heading
	NextLabel   string // Label of the button that leaves a completed lesson
	Badge       string // Badge earned for the lesson, empty for non-lessons
	Backdrop    string // Decorative animation kind shown behind the screen
}

// Term is one glossary entry of the completion screen.
type Term struct {
	Name    string
	Meaning string
}

// Levels lists every screen in play order. Index equals ID.
var Levels = []Level{
	{
		ID:       core.LevelWelcome,
		Title:    "Welcome",
		Icon:     "🚀",
		Backdrop: "wordCloud",
	},
	{
		ID:          core.LevelWords,
		Title:       "What Are Words?",
		Icon:        "🔤",
		Explanation: "Words are the building blocks of language! Let's explore how they work together.",
		Activity:    "Build a Sentence!",
		NextLabel:   "Next Level!",
		Badge:       "Word Master",
		Backdrop:    "wordCloud",
	},
	{
		ID:          core.LevelTokens,
		Title:       "The Magic Recipe",
		Icon:        "🔢",
		Explanation: "Computers turn words into special numbers called tokens! Watch the magic happen!",
		Activity:    "Word to Numbers Magic!",
		NextLabel:   "Next Level!",
		Badge:       "Token Expert",
		Backdrop:    "tokenVisualization",
	},
	{
		ID:          core.LevelPatterns,
		Title:       "The Pattern Detective",
		Icon:        "🕵️",
		Explanation: "AI models are like super detectives! They find patterns in text to predict what comes next.",
		Activity:    "Complete the Pattern!",
		NextLabel:   "Next Level!",
		Badge:       "Pattern Detective",
		Backdrop:    "patternFlow",
	},
	{
		ID:          core.LevelAttention,
		Title:       "The Attention Spotlight",
		Icon:        "💡",
		Explanation: "AI uses attention to focus on important words, just like a spotlight on a stage!",
		Activity:    "Shine the Spotlight!",
		NextLabel:   "Next Level!",
		Badge:       "Attention Master",
		Backdrop:    "attentionMap",
	},
	{
		ID:          core.LevelDiffusion,
		Title:       "The Diffusion Dance",
		Icon:        "🌊",
		Explanation: "Diffusion is how AI creates text step by step, like a magic dance from chaos to perfect words!",
		Activity:    "Watch the Diffusion Magic!",
		NextLabel:   "Final Level!",
		Badge:       "Diffusion Dancer",
		Backdrop:    "diffusionWave",
	},
	{
		ID:          core.LevelStory,
		Title:       "Build Your Own Story",
		Icon:        "📚",
		Explanation: "Now you're an AI expert! Create your own stories using everything you've learned!",
		Activity:    "AI Story Generator!",
		NextLabel:   "Complete Adventure!",
		Badge:       "Story Creator",
		Backdrop:    "wordCloud",
	},
	{
		ID:       core.LevelCompletion,
		Title:    "Completion",
		Icon:     "🎉",
		Backdrop: "diffusionWave",
	},
}

// Terms is the glossary shown once the adventure is finished.
var Terms = []Term{
	{Name: "Tokens", Meaning: "Number codes for words"},
	{Name: "Patterns", Meaning: "Repeated structures in text"},
	{Name: "Attention", Meaning: "Focusing on important words"},
	{Name: "Diffusion", Meaning: "Step-by-step text creation"},
	{Name: "AI Model", Meaning: "Computer that learns patterns"},
	{Name: "Training", Meaning: "Teaching AI from examples"},
}

// Count returns the number of screens.
func Count() int {
	return len(Levels)
}

// Get returns the level with the given id, or nil if id is out of range.
func Get(id core.LevelID) *Level {
	if !id.Valid() || int(id) >= len(Levels) {
		return nil
	}
	return &Levels[id]
}

// Lessons returns the six instructional levels in order.
func Lessons() []Level {
	return Levels[core.LevelWords : core.LevelStory+1]
}

// Badges returns the badge names in lesson order.
func Badges() []string {
	lessons := Lessons()
	names := make([]string, len(lessons))
	for i, lvl := range lessons {
		names[i] = lvl.Badge
	}
	return names
}

// ProgressPercent is how far through the lessons a level sits, as shown by
// the header progress bar: level 1 is 1/6, level 6 is 100%.
func ProgressPercent(id core.LevelID) float64 {
	if !id.IsLesson() {
		if id == core.LevelCompletion {
			return 1
		}
		return 0
	}
	return float64(id) / float64(core.LessonCount)
}

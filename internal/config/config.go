// Package config provides YAML-based configuration loading and pace presets
// for the adventure.
package config

import "time"

// Config contains all tunable values of the adventure.
type Config struct {
	TickRate  int             `yaml:"tick_rate"`
	Backdrop  BackdropConfig  `yaml:"backdrop"`
	Words     WordsConfig     `yaml:"words"`
	Tokens    TokensConfig    `yaml:"tokens"`
	Patterns  PatternsConfig  `yaml:"patterns"`
	Attention AttentionConfig `yaml:"attention"`
	Diffusion DiffusionConfig `yaml:"diffusion"`
	Story     StoryConfig     `yaml:"story"`
}

// BackdropConfig controls the decorative animation strip.
type BackdropConfig struct {
	Enabled bool `yaml:"enabled"`
	Height  int  `yaml:"height"` // Rows given to the animation
}

// WordsConfig tunes the sentence-building lesson.
type WordsConfig struct {
	MinWords      int           `yaml:"min_words"`      // Words needed before a sentence is judged
	EmptyFeedback time.Duration `yaml:"empty_feedback"` // How long "drag some words" stays
	ShortFeedback time.Duration `yaml:"short_feedback"` // How long "add N more" stays
}

// TokensConfig tunes the tokenization lesson.
type TokensConfig struct {
	MaxInput      int           `yaml:"max_input"`      // Characters accepted from the input field
	ErrorFeedback time.Duration `yaml:"error_feedback"` // How long the empty-input error stays
	CompleteDelay time.Duration `yaml:"complete_delay"` // Delay between showing tokens and completion
}

// PatternsConfig tunes the pattern quiz.
type PatternsConfig struct {
	AdvanceDelay time.Duration `yaml:"advance_delay"` // Delay before the next question (or completion)
	SuccessFlash time.Duration `yaml:"success_flash"` // How long a correct option stays green
	ErrorFlash   time.Duration `yaml:"error_flash"`   // How long a wrong option stays red
}

// AttentionConfig tunes the attention lesson.
type AttentionConfig struct {
	Threshold    int           `yaml:"threshold"`     // Important words needed to pass
	HintFeedback time.Duration `yaml:"hint_feedback"` // How long the hint stays
}

// DiffusionConfig tunes the diffusion animation.
type DiffusionConfig struct {
	StageInterval time.Duration `yaml:"stage_interval"` // Time between revealed stages
	SettleDelay   time.Duration `yaml:"settle_delay"`   // Delay after the last stage before completion
}

// StoryConfig tunes the story generator.
type StoryConfig struct {
	PromptLimit       int           `yaml:"prompt_limit"`
	DefaultCreativity int           `yaml:"default_creativity"`
	DefaultLength     int           `yaml:"default_length"`
	ThinkingDelay     time.Duration `yaml:"thinking_delay"` // Placeholder time before the story appears
	SettleDelay       time.Duration `yaml:"settle_delay"`   // Delay after the story before completion
}

// Slider bounds of the story generator.
const (
	SliderMin = 1
	SliderMax = 5
)

package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/adventure.yaml
var defaultAdventureYAML []byte

// Default returns the built-in configuration. It matches the embedded
// defaults/adventure.yaml and is used when that file cannot be parsed.
func Default() Config {
	return Config{
		TickRate: 30,
		Backdrop: BackdropConfig{
			Enabled: true,
			Height:  5,
		},
		Words: WordsConfig{
			MinWords:      3,
			EmptyFeedback: 2 * time.Second,
			ShortFeedback: 2500 * time.Millisecond,
		},
		Tokens: TokensConfig{
			MaxInput:      20,
			ErrorFeedback: 2 * time.Second,
			CompleteDelay: time.Second,
		},
		Patterns: PatternsConfig{
			AdvanceDelay: 1500 * time.Millisecond,
			SuccessFlash: time.Second,
			ErrorFlash:   time.Second,
		},
		Attention: AttentionConfig{
			Threshold:    3,
			HintFeedback: 3 * time.Second,
		},
		Diffusion: DiffusionConfig{
			StageInterval: 1500 * time.Millisecond,
			SettleDelay:   time.Second,
		},
		Story: StoryConfig{
			PromptLimit:       50,
			DefaultCreativity: 3,
			DefaultLength:     3,
			ThinkingDelay:     2 * time.Second,
			SettleDelay:       time.Second,
		},
	}
}

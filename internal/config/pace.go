package config

import (
	"fmt"
	"time"
)

// Pace is a named timing preset. It scales every delay of the adventure
// without touching counts or thresholds.
type Pace string

const (
	PaceRelaxed Pace = "relaxed"
	PaceNormal  Pace = "normal"
	PaceQuick   Pace = "quick"
)

// ParsePace validates a pace name. An empty name means normal.
func ParsePace(name string) (Pace, error) {
	switch Pace(name) {
	case "", PaceNormal:
		return PaceNormal, nil
	case PaceRelaxed, PaceQuick:
		return Pace(name), nil
	default:
		return PaceNormal, fmt.Errorf("config: unknown pace %q (want relaxed, normal or quick)", name)
	}
}

// Factor returns the multiplier a pace applies to delays.
func (p Pace) Factor() float64 {
	switch p {
	case PaceRelaxed:
		return 1.5
	case PaceQuick:
		return 0.5
	default:
		return 1.0
	}
}

// ApplyPace scales every delay in cfg by the pace factor.
func ApplyPace(cfg *Config, p Pace) {
	f := p.Factor()
	if f == 1.0 {
		return
	}
	for _, d := range cfg.delays() {
		*d = scale(*d, f)
	}
}

// delays returns pointers to every duration in the config.
func (c *Config) delays() []*time.Duration {
	return []*time.Duration{
		&c.Words.EmptyFeedback,
		&c.Words.ShortFeedback,
		&c.Tokens.ErrorFeedback,
		&c.Tokens.CompleteDelay,
		&c.Patterns.AdvanceDelay,
		&c.Patterns.SuccessFlash,
		&c.Patterns.ErrorFlash,
		&c.Attention.HintFeedback,
		&c.Diffusion.StageInterval,
		&c.Diffusion.SettleDelay,
		&c.Story.ThinkingDelay,
		&c.Story.SettleDelay,
	}
}

func scale(d time.Duration, f float64) time.Duration {
	return time.Duration(float64(d) * f)
}

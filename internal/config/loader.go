package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the adventure configuration.
// Search order: customPath -> ~/.adventure/config.yaml -> ./configs/adventure.yaml -> embedded default.
// Values missing from a file keep their defaults.
func Load(customPath string) (Config, error) {
	cfg := Default()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Default(), fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg.normalized(), nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg.normalized(), nil
			}
			cfg = Default()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "adventure.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg.normalized(), nil
		}
		cfg = Default()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultAdventureYAML, &cfg); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg.normalized(), nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".adventure", filename)
}

// normalized replaces out-of-range values with defaults.
func (c Config) normalized() Config {
	def := Default()
	if c.TickRate <= 0 {
		c.TickRate = def.TickRate
	}
	if c.Backdrop.Height < 0 {
		c.Backdrop.Height = 0
	}
	if c.Words.MinWords <= 0 {
		c.Words.MinWords = def.Words.MinWords
	}
	if c.Tokens.MaxInput <= 0 {
		c.Tokens.MaxInput = def.Tokens.MaxInput
	}
	if c.Attention.Threshold <= 0 || c.Attention.Threshold > 4 {
		c.Attention.Threshold = def.Attention.Threshold
	}
	if c.Story.PromptLimit <= 0 {
		c.Story.PromptLimit = def.Story.PromptLimit
	}
	c.Story.DefaultCreativity = clampSlider(c.Story.DefaultCreativity)
	c.Story.DefaultLength = clampSlider(c.Story.DefaultLength)

	ds := c.delays()
	for i, d := range def.delays() {
		if *ds[i] < 0 {
			*ds[i] = *d
		}
	}
	return c
}

func clampSlider(v int) int {
	if v < SliderMin {
		return SliderMin
	}
	if v > SliderMax {
		return SliderMax
	}
	return v
}

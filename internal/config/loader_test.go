package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchCode(t *testing.T) {
	var fromYAML Config
	if err := yaml.Unmarshal(defaultAdventureYAML, &fromYAML); err != nil {
		t.Fatalf("embedded yaml does not parse: %v", err)
	}
	if fromYAML != Default() {
		t.Errorf("embedded yaml = %+v\nexpected %+v", fromYAML, Default())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "adventure.yaml")
	data := []byte("diffusion:\n  stage_interval: 500ms\nstory:\n  default_creativity: 9\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Diffusion.StageInterval != 500*time.Millisecond {
		t.Errorf("StageInterval = %v, expected 500ms", cfg.Diffusion.StageInterval)
	}
	// Untouched values keep their defaults.
	if cfg.Diffusion.SettleDelay != time.Second {
		t.Errorf("SettleDelay = %v, expected default 1s", cfg.Diffusion.SettleDelay)
	}
	if cfg.Story.DefaultCreativity != SliderMax {
		t.Errorf("DefaultCreativity = %d, expected clamp to %d", cfg.Story.DefaultCreativity, SliderMax)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Error("Load() with a missing custom path should fail")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("tick_rate: [oops"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err == nil {
		t.Error("Load() should report a parse error")
	}
	if cfg != Default() {
		t.Error("Load() should fall back to defaults on parse error")
	}
}

func TestParsePace(t *testing.T) {
	tests := []struct {
		name     string
		expected Pace
		wantErr  bool
	}{
		{"", PaceNormal, false},
		{"normal", PaceNormal, false},
		{"relaxed", PaceRelaxed, false},
		{"quick", PaceQuick, false},
		{"turbo", PaceNormal, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, err := ParsePace(tc.name)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParsePace(%q) error = %v", tc.name, err)
			}
			if p != tc.expected {
				t.Errorf("ParsePace(%q) = %q, expected %q", tc.name, p, tc.expected)
			}
		})
	}
}

func TestApplyPace(t *testing.T) {
	cfg := Default()
	ApplyPace(&cfg, PaceQuick)

	if cfg.Diffusion.StageInterval != 750*time.Millisecond {
		t.Errorf("StageInterval = %v, expected 750ms", cfg.Diffusion.StageInterval)
	}
	if cfg.Story.ThinkingDelay != time.Second {
		t.Errorf("ThinkingDelay = %v, expected 1s", cfg.Story.ThinkingDelay)
	}
	if cfg.Attention.Threshold != 3 {
		t.Error("pace must not change thresholds")
	}

	normal := Default()
	ApplyPace(&normal, PaceNormal)
	if normal != Default() {
		t.Error("normal pace should leave the config unchanged")
	}
}

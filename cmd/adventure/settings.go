package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"

	"github.com/vovakirdan/diffusion-adventure/internal/config"
)

// settings are the resolved global flags.
type settings struct {
	Adventure config.Config
	Pace      config.Pace
	TickRate  int
	Seed      int64
	DBPath    string
}

// loadSettings resolves flags, environment and the config file search.
func loadSettings() (settings, error) {
	pace, err := config.ParsePace(viper.GetString("pace"))
	if err != nil {
		return settings{}, err
	}

	cfg, err := config.Load(viper.GetString("config"))
	if err != nil {
		return settings{}, err
	}
	config.ApplyPace(&cfg, pace)

	// An explicit --fps wins over the file
	tickRate := cfg.TickRate
	if viper.IsSet("fps") && viper.GetInt("fps") > 0 {
		tickRate = viper.GetInt("fps")
	}

	return settings{
		Adventure: cfg,
		Pace:      pace,
		TickRate:  tickRate,
		Seed:      viper.GetInt64("seed"),
		DBPath:    viper.GetString("db"),
	}, nil
}

// newLogger returns a logger writing to --log-file, or a silent one. The
// terminal belongs to the adventure while it runs.
func newLogger(prefix string) (*log.Logger, func(), error) {
	path := viper.GetString("log-file")
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           log.DebugLevel,
		Prefix:          prefix,
	})
	return logger, func() { f.Close() }, nil
}

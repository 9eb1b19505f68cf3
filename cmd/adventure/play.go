package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/diffusion-adventure/internal/core"
	"github.com/vovakirdan/diffusion-adventure/internal/platform/tui"
	"github.com/vovakirdan/diffusion-adventure/internal/storage"
)

var flagPlayer string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the adventure",
	Long: `Start the adventure at the welcome screen.

Controls:
  Arrows/hjkl  - Move the cursor
  Enter/Space  - Place, pick, toggle or press
  Tab          - Switch between areas (opens the hall of fame on the welcome screen)
  x            - Clear a sentence slot
  +/-          - Adjust the focused slider
  n            - Next level, once the lesson is done
  Ctrl+R       - Restart the adventure
  Ctrl+S       - Save a screenshot of the activity
  q/Ctrl+C     - Quit

While a text field has focus, use Ctrl+N or PgDown for the next level and
Ctrl+C to quit.

Pace options:
  relaxed - Every delay is 50% longer
  normal  - Original timings
  quick   - Every delay is halved

Examples:
  adventure play
  adventure play --pace quick
  adventure play --player ada --seed 42`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Name recorded in the hall of fame (default: your user name)")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	s, err := loadSettings()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger("adventure")
	if err != nil {
		return err
	}
	defer closeLog()

	// Get terminal size early
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Open hall of fame storage
	store, err := storage.Open(s.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open hall of fame database: %v\n", err)
		// Continue without storage - the adventure still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	logger.Debug("starting adventure", "pace", s.Pace, "fps", s.TickRate, "seed", s.Seed)
	runErr := tui.Run(tui.Options{
		Config: s.Adventure,
		Pace:   s.Pace,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: s.TickRate,
			Seed:     s.Seed,
		},
		Store:  store,
		Player: playerName(),
		Logger: logger,
	})
	if runErr != nil {
		return fmt.Errorf("error running adventure: %w", runErr)
	}
	return nil
}

// playerName picks --player, then the login name.
func playerName() string {
	if flagPlayer != "" {
		return flagPlayer
	}
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "player"
}

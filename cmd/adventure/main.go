// adventure is a terminal edition of the Text Diffusion Adventure, a
// six-lesson tour of how AI language models build text.
//
// Usage:
//
//	adventure                 - Play the adventure (same as play)
//	adventure play            - Play the adventure
//	adventure levels          - List the levels and their badges
//	adventure scores          - Show the hall of fame
//	adventure serve           - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default: 30)
//	--seed <value>    - Set RNG seed for reproducible lessons
//	--db <path>       - Set database path (default: ~/.adventure/adventure.db)
//	--config <path>   - Load a custom adventure YAML
//	--pace <name>     - relaxed, normal or quick
//	--log-file <path> - Write debug logs to a file
//
// Every global flag can also be set with an ADVENTURE_ environment variable,
// for example ADVENTURE_PACE=quick.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	// Import lessons to register them
	_ "github.com/vovakirdan/diffusion-adventure/internal/lessons/attention"
	_ "github.com/vovakirdan/diffusion-adventure/internal/lessons/diffusion"
	_ "github.com/vovakirdan/diffusion-adventure/internal/lessons/patterns"
	_ "github.com/vovakirdan/diffusion-adventure/internal/lessons/story"
	_ "github.com/vovakirdan/diffusion-adventure/internal/lessons/tokens"
	_ "github.com/vovakirdan/diffusion-adventure/internal/lessons/words"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "adventure",
	Short: "Text Diffusion Adventure - Learn how AI writes, in your terminal",
	Long: `Text Diffusion Adventure walks you through six short lessons with
Diffi, your AI guide: words, tokens, patterns, attention, diffusion and
finally building your own story.

Available commands:
  play     - Play the adventure (default)
  levels   - List the levels and badges
  scores   - View the hall of fame
  serve    - Start SSH server for remote play

Examples:
  adventure
  adventure play --pace relaxed
  adventure scores --player ada
  adventure serve --ssh :2222`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global persistent flags
	flags := rootCmd.PersistentFlags()
	flags.Int("fps", 30, "Tick rate (frames per second)")
	flags.Int64("seed", 0, "RNG seed (0 = random based on time)")
	flags.String("db", "~/.adventure/adventure.db", "Path to hall of fame database")
	flags.String("config", "", "Path to custom adventure config YAML")
	flags.String("pace", "normal", "Timing preset: relaxed, normal, quick")
	flags.String("log-file", "", "Write debug logs to this file")

	for _, name := range []string{"fps", "seed", "db", "config", "pace", "log-file"} {
		//nolint:errcheck // Flags are registered above
		viper.BindPFlag(name, flags.Lookup(name))
	}

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// initConfig reads ADVENTURE_* environment variables.
func initConfig() {
	viper.SetEnvPrefix("ADVENTURE")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

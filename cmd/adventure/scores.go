package main

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vovakirdan/diffusion-adventure/internal/platform/tui"
	"github.com/vovakirdan/diffusion-adventure/internal/progress"
	"github.com/vovakirdan/diffusion-adventure/internal/storage"
)

var (
	flagScoresPlayer string
	flagScoresRecent bool
	flagScoresLimit  int
	flagScoresTUI    bool
	flagScoresClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the hall of fame",
	Long: `Display the best finished adventures.

Runs are ranked by pattern plus attention score, then by time.

Examples:
  adventure scores
  adventure scores --recent
  adventure scores --player ada
  adventure scores --tui`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresPlayer, "player", "", "Only show runs of this player")
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "Show the newest runs instead of the best")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Open the interactive hall of fame")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every recorded run")
}

func runScores(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(viper.GetString("db"))
	if err != nil {
		return fmt.Errorf("error opening hall of fame database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearRuns(); err != nil {
			return fmt.Errorf("error clearing runs: %w", err)
		}
		fmt.Println("Hall of fame cleared.")
		return nil
	}

	if flagScoresTUI {
		_, err := tui.RunScoreboard(store, 80, 24)
		return err
	}

	var runs []storage.Run
	title := "Hall of Fame - Best"
	switch {
	case flagScoresPlayer != "":
		title = "Hall of Fame - " + flagScoresPlayer
		runs, err = store.PlayerRuns(flagScoresPlayer, flagScoresLimit)
	case flagScoresRecent:
		title = "Hall of Fame - Recent"
		runs, err = store.RecentRuns(flagScoresLimit)
	default:
		runs, err = store.BestRuns(flagScoresLimit)
	}
	if err != nil {
		return fmt.Errorf("error retrieving runs: %w", err)
	}

	fmt.Println(title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No adventures finished yet.")
		fmt.Println()
		fmt.Println("Play 'adventure play' and finish all six lessons to be the first!")
		return nil
	}

	perfect := progress.MaxPatternScore + progress.MaxAttentionScore

	// Print header
	fmt.Printf("  %-4s  %-14s  %-6s  %-8s  %-8s  %s\n", "Rank", "Player", "Points", "Time", "Pace", "When")
	fmt.Printf("  %-4s  %-14s  %-6s  %-8s  %-8s  %s\n", "----", "------", "------", "----", "----", "----")

	// Print runs
	for i, r := range runs {
		fmt.Printf("  %-4d  %-14s  %-6s  %-8s  %-8s  %s\n",
			i+1,
			r.Player,
			fmt.Sprintf("%d/%d", r.Points(), perfect),
			r.Duration.Round(time.Second),
			r.Pace,
			humanize.Time(r.CreatedAt),
		)
	}

	// Show summary
	stats, err := store.Stats(perfect)
	if err == nil && stats.Runs > 0 {
		fmt.Println()
		fmt.Printf("%s runs, %s perfect, fastest %s\n",
			humanize.Comma(int64(stats.Runs)),
			humanize.Comma(int64(stats.PerfectRuns)),
			stats.FastestRun.Round(time.Second))
	}
	return nil
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/diffusion-adventure/internal/levels"
	"github.com/vovakirdan/diffusion-adventure/internal/registry"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the levels of the adventure",
	Long:  `Shows every screen of the adventure with the badge each lesson awards.`,
	Run:   runLevels,
}

func runLevels(cmd *cobra.Command, args []string) {
	fmt.Println("Adventure levels:")
	fmt.Println()

	// Calculate column widths
	maxTitleLen := 5 // "Title" header
	for _, lvl := range levels.Levels {
		if len(lvl.Title) > maxTitleLen {
			maxTitleLen = len(lvl.Title)
		}
	}

	// Print header
	fmt.Printf("  %-2s  %-*s  %-18s  %s\n", "#", maxTitleLen, "Title", "Badge", "Lesson")
	fmt.Printf("  %-2s  %-*s  %-18s  %s\n", "-", maxTitleLen, "-----", "-----", "------")

	// Print levels
	for _, lvl := range levels.Levels {
		badge := lvl.Badge
		if badge == "" {
			badge = "-"
		}
		lesson := "-"
		if lvl.ID.IsLesson() {
			lesson = "missing"
			if registry.Exists(lvl.ID) {
				lesson = lvl.ID.String()
			}
		}
		fmt.Printf("  %-2d  %-*s  %-18s  %s\n", int(lvl.ID), maxTitleLen, lvl.Title, badge, lesson)
	}

	fmt.Println()
	fmt.Println("Run 'adventure play' to start.")
}

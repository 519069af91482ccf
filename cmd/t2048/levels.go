package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List goal presets",
	Long:  `Shows the goal presets that can be passed to 'play --level'.`,
	Args:  cobra.NoArgs,
	Run:   runLevels,
}

func runLevels(_ *cobra.Command, _ []string) {
	// Calculate column widths
	maxNameLen := len("Name")
	for _, l := range t2048.Levels {
		maxNameLen = max(maxNameLen, len(l.Name))
	}

	fmt.Println("Goal presets:")
	fmt.Println()
	fmt.Printf("  %-2s  %-*s  %s\n", "ID", maxNameLen, "Name", "Goal")
	fmt.Printf("  %-2s  %-*s  %s\n", "--", maxNameLen, "----", "----")
	for _, l := range t2048.Levels {
		fmt.Printf("  %-2d  %-*s  %d\n", l.ID, maxNameLen, l.Name, l.Target)
	}

	fmt.Println()
	fmt.Println("Run 't2048 play --level <id>' to play a preset.")
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	flagScoresClear bool
	flagScoresPlain bool
	flagScoresLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the highscore board.

In a terminal the board opens as a scrollable table; with --plain, or when
stdout is not a terminal, it is printed as text.

Examples:
  t2048 scores
  t2048 scores --plain --limit 5
  t2048 scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded scores")
	scoresCmd.Flags().BoolVar(&flagScoresPlain, "plain", false, "Print scores as text")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
}

func runScores(_ *cobra.Command, _ []string) error {
	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(); err != nil {
			return err
		}
		fmt.Println("All scores cleared.")
		return nil
	}

	summary := ""
	if stats, err := store.GetStats(); err == nil && stats.GamesCount > 0 {
		summary = fmt.Sprintf("%d plays by %d players, average %.0f", stats.GamesCount, stats.Players, stats.AvgScore)
	}

	width, height, termErr := term.GetSize(int(os.Stdout.Fd()))
	if flagScoresPlain || termErr != nil {
		return printScores(store, summary)
	}

	board, err := store.LoadBoard(flagScoresLimit)
	if err != nil {
		return err
	}
	return tui.RunScoreboard(board, summary, width, height)
}

func printScores(store *storage.Store, summary string) error {
	scores, err := store.TopScores(flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Println("High Scores")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 't2048 play' to set the first high score!")
		return nil
	}

	// Calculate column widths
	maxNameLen := len("Player")
	for _, s := range scores {
		maxNameLen = max(maxNameLen, len(s.Player))
	}

	// Print header
	fmt.Printf("  %-4s  %-*s  %-10s  %s\n", "Rank", maxNameLen, "Player", "Score", "Date")
	fmt.Printf("  %-4s  %-*s  %-10s  %s\n", "----", maxNameLen, "------", "-----", "----")

	// Print scores
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-*s  %-10d  %s\n", i+1, maxNameLen, entry.Player, entry.Score, dateStr)
	}

	fmt.Println()
	if summary != "" {
		fmt.Println(summary)
	}
	return nil
}

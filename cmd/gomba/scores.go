package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gomba/internal/platform/tui"
	"github.com/vovakirdan/gomba/internal/storage"
)

var (
	flagScoresLimit int
	flagRounds      bool
	flagInteractive bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores and recent rounds",
	Long: `Display the top high scores, or the most recent rounds with their
kill and jump-over counts.

Examples:
  gomba scores
  gomba scores --limit 20
  gomba scores --rounds
  gomba scores --interactive
  gomba scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of entries to show")
	scoresCmd.Flags().BoolVar(&flagRounds, "rounds", false, "Show recent rounds instead of high scores")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Open the interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded scores and rounds")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	switch {
	case flagClear:
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Println("Scores cleared.")
		return nil
	case flagInteractive:
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, gameID, width, height)
	case flagRounds:
		return printRounds(store)
	default:
		return printScores(store)
	}
}

func printScores(store *storage.Store) error {
	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Println("High Scores - Gomba")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'gomba play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	stats, err := store.GetGameStats(gameID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  Games: %d  Average: %.0f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	}
	return nil
}

func printRounds(store *storage.Store) error {
	rounds, err := store.RecentRounds(gameID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving rounds: %w", err)
	}

	fmt.Println("Recent Rounds - Gomba")
	fmt.Println()

	if len(rounds) == 0 {
		fmt.Println("No rounds recorded yet.")
		return nil
	}

	fmt.Printf("  %-16s  %-7s  %-6s  %-4s  %-6s  %-7s  %s\n", "Date", "Score", "Stomps", "Axes", "Jumps", "Time", "Difficulty")
	for _, r := range rounds {
		fmt.Printf("  %-16s  %-7d  %-6d  %-4d  %-6d  %-7s  %s\n",
			r.CreatedAt.Format("2006-01-02 15:04"),
			r.Score,
			r.PatrollerKills,
			r.AxePatrollerKills,
			r.JumpOvers,
			fmt.Sprintf("%.1fs", r.DurationSecs),
			r.Difficulty,
		)
	}
	return nil
}

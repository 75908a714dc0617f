package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/shadow-strike/internal/games/strike"
	"github.com/vovakirdan/shadow-strike/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the score history",
	Long: `Display the best finished games and the stored high score.

Examples:
  strike scores
  strike scores --limit 25
  strike scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the score history (the high score is kept)")
}

func runScores(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := storage.Open(dbPath())
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(strike.ID); err != nil {
			return err
		}
		fmt.Println("Score history cleared.")
		return nil
	}

	scores, err := store.TopScores(strike.ID, flagLimit)
	if err != nil {
		return err
	}
	high, err := store.LoadHighScore(cfg.Scoring.HighScoreKey)
	if err != nil {
		return err
	}

	fmt.Println("High Scores - Shadow Strike")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'strike play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	fmt.Printf("Best: %d\n", high)
	return nil
}

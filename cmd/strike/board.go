package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/shadow-strike/internal/games/strike"
	"github.com/vovakirdan/shadow-strike/internal/platform/tui"
	"github.com/vovakirdan/shadow-strike/internal/storage"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Browse the score history interactively",
	Args:  cobra.NoArgs,
	RunE:  runBoard,
}

func runBoard(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := storage.Open(dbPath())
	if err != nil {
		return err
	}
	defer store.Close()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	return tui.RunScoreboard(store, strike.ID, cfg.Scoring.HighScoreKey, width, height)
}

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/shadow-strike/internal/core"
	"github.com/vovakirdan/shadow-strike/internal/platform/tui"
	"github.com/vovakirdan/shadow-strike/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Shadow Strike in this terminal",
	Long: `Start a Shadow Strike session in this terminal.

Controls:
  Enter/R         - Start (from the menu or after game over)
  Space/Up/W      - Jump
  F/X/Right       - Throw shuriken
  Q/Esc/Ctrl+C    - Quit

Logs go to --log-file so they do not draw over the game.

Examples:
  strike play
  strike play --seed 42
  strike play --difficulty fixed
  strike play --config ./my-strike.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logFile, err := openLogFile()
	if err != nil {
		return err
	}
	defer logFile.Close()

	logger, err := newLogger(logFile)
	if err != nil {
		return err
	}

	suggester, err := newSuggester(cfg)
	if err != nil {
		return err
	}

	// Open score storage; the game still works without it
	store, err := storage.Open(dbPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores database unavailable", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	logger.Info("session starting",
		"backend", cfg.Difficulty.Backend,
		"seed", seed,
		"fps", flagFPS,
	)

	game := newGame(cfg, suggester, store, seed, logger)

	var scores tui.ScoreRecorder
	if store != nil {
		scores = store
	}

	return tui.Run(game, scores, logger, core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed,
	})
}

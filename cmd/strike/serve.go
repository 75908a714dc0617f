package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/shadow-strike/internal/games/strike"
	"github.com/vovakirdan/shadow-strike/internal/platform/tui"
	"github.com/vovakirdan/shadow-strike/internal/storage"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Shadow Strike SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own game and difficulty controller.
Scores are stored per-server (all users share the same high score).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.strike/host_key

Examples:
  strike serve                           # Listen on :23234 with auto-generated key
  strike serve --ssh :2222               # Listen on port 2222
  strike serve --host-key ./my_host_key  # Use specific host key
  strike serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	def := tui.DefaultSSHServerConfig()
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", def.Address, "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", int(def.IdleTimeout/time.Minute), "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}

	suggester, err := newSuggester(cfg)
	if err != nil {
		return err
	}

	store, err := storage.Open(dbPath())
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	var scores tui.ScoreRecorder
	if store != nil {
		scores = store
	}

	serverCfg := tui.DefaultSSHServerConfig()
	serverCfg.Address = flagSSHAddr
	serverCfg.HostKeyPath = flagHostKey
	serverCfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	if flagFPS > 0 {
		serverCfg.TickRate = flagFPS
	}

	factory := func(seed int64, sessionLogger *log.Logger) *strike.Game {
		return newGame(cfg, suggester, store, seed, sessionLogger)
	}

	server, err := tui.NewSSHServer(serverCfg, factory, scores, logger)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Starting Shadow Strike SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}

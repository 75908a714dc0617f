package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/shadow-strike/internal/difficulty/remote"
)

var (
	flagListen  string
	flagBackend string
)

var suggestServerCmd = &cobra.Command{
	Use:   "suggest-server",
	Short: "Serve difficulty suggestions over HTTP",
	Long: `Start an HTTP difficulty suggestion service backed by a local backend.

Clients POST {"playerScore": n} to /difficulty and receive
{"enemySpawnRate": .., "obstacleComplexity": .., "gameSpeedMultiplier": ..}.

Examples:
  strike suggest-server
  strike suggest-server --listen :9090 --backend fixed
  strike play --difficulty remote --suggest-url http://localhost:8080/difficulty`,
	Args: cobra.NoArgs,
	RunE: runSuggestServer,
}

func init() {
	suggestServerCmd.Flags().StringVar(&flagListen, "listen", ":8080", "HTTP listen address (host:port)")
	suggestServerCmd.Flags().StringVar(&flagBackend, "backend", "linear", "Backend answering requests")
}

func runSuggestServer(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}

	if flagBackend == "remote" {
		return errors.New("suggest-server cannot proxy to another suggestion service")
	}
	suggester, err := createBackend(flagBackend, cfg.Difficulty)
	if err != nil {
		return err
	}

	mux := http.NewServeMux()
	mux.Handle(remote.Path, remote.Handler(suggester, logger))

	server := &http.Server{
		Addr:              flagListen,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	logger.Info("serving difficulty suggestions", "address", flagListen, "path", remote.Path, "backend", flagBackend)

	select {
	case <-done:
	case err := <-errCh:
		return fmt.Errorf("suggest server: %w", err)
	}

	logger.Info("shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(ctx)
}

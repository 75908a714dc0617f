package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/shadow-strike/internal/config"
	"github.com/vovakirdan/shadow-strike/internal/difficulty"
	"github.com/vovakirdan/shadow-strike/internal/games/strike"
	"github.com/vovakirdan/shadow-strike/internal/registry"
	"github.com/vovakirdan/shadow-strike/internal/storage"
)

const (
	defaultDBPath  = "~/.strike/scores.db"
	defaultLogPath = "~/.strike/strike.log"
)

// loadConfig loads the YAML config and applies flag and environment overrides.
func loadConfig() (config.StrikeConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.StrikeConfig{}, err
	}

	if flagDifficulty != "" {
		cfg.Difficulty.Backend = flagDifficulty
	}
	if flagSuggestURL != "" {
		cfg.Difficulty.URL = flagSuggestURL
	} else {
		cfg.Difficulty.URL = config.GetEnv("STRIKE_SUGGEST_URL", cfg.Difficulty.URL)
	}

	return cfg, nil
}

// dbPath returns the database path from --db, STRIKE_DB or the default.
func dbPath() string {
	if flagDBPath != "" {
		return flagDBPath
	}
	return config.GetEnv("STRIKE_DB", defaultDBPath)
}

// newLogger creates the application logger writing to w.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "strike",
		Level:           level,
	}), nil
}

// openLogFile opens the play log for appending, creating its directory.
func openLogFile() (*os.File, error) {
	path := flagLogFile
	if path == "" {
		path = defaultLogPath
	}
	path, err := expandHome(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, nil
}

func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// newSuggester creates the configured difficulty backend.
func newSuggester(cfg config.StrikeConfig) (difficulty.Suggester, error) {
	return createBackend(cfg.Difficulty.Backend, cfg.Difficulty)
}

// createBackend creates the named backend, pointing unknown names at the
// backends command.
func createBackend(name string, cfg config.DifficultyConfig) (difficulty.Suggester, error) {
	if !registry.Exists(name) {
		return nil, fmt.Errorf("unknown difficulty backend %q (run 'strike backends' to list them)", name)
	}
	return registry.Create(name, cfg)
}

// newGame creates a game wired to the suggester and, when non-nil, the store.
func newGame(cfg config.StrikeConfig, s difficulty.Suggester, store *storage.Store, seed int64, logger *log.Logger) *strike.Game {
	opts := []strike.Option{
		strike.WithSeed(seed),
		strike.WithLogger(logger),
	}
	if store != nil {
		opts = append(opts, strike.WithStore(store))
	}
	return strike.New(cfg, s, opts...)
}

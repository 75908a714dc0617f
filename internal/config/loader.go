package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads Shadow Strike configuration.
// Search order: customPath -> ~/.strike/strike.yaml -> ./configs/strike.yaml -> embedded default.
// Files only need to set the fields they change; everything else keeps its default.
func Load(customPath string) (StrikeConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return StrikeConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return StrikeConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("strike.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/strike.yaml"); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultStrikeYAML)
	if err != nil {
		return DefaultStrikeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the hardcoded defaults and validates the result.
func Parse(data []byte) (StrikeConfig, error) {
	cfg := DefaultStrikeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return StrikeConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return StrikeConfig{}, err
	}
	return cfg, nil
}

// Validate rejects geometry that would break the simulation invariants.
func (c StrikeConfig) Validate() error {
	var errs []error

	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}

	positive("playfield.width", c.Playfield.Width)
	positive("playfield.height", c.Playfield.Height)
	positive("player.width", c.Player.Width)
	positive("player.height", c.Player.Height)
	positive("projectile.width", c.Projectile.Width)
	positive("projectile.height", c.Projectile.Height)
	positive("enemy.width", c.Enemy.Width)
	positive("enemy.height", c.Enemy.Height)
	positive("obstacle.min_width", c.Obstacle.MinWidth)
	positive("obstacle.min_height", c.Obstacle.MinHeight)
	positive("spawn.enemy_threshold", c.Spawn.EnemyThreshold)
	positive("spawn.obstacle_threshold", c.Spawn.ObstacleThreshold)

	if c.Playfield.GroundHeight < 0 || c.Playfield.GroundHeight >= c.Playfield.Height {
		errs = append(errs, fmt.Errorf("playfield.ground_height must be in [0, height), got %v", c.Playfield.GroundHeight))
	}
	if c.Obstacle.MaxWidth < c.Obstacle.MinWidth {
		errs = append(errs, errors.New("obstacle.max_width must not be below min_width"))
	}
	if c.Obstacle.MaxHeight < c.Obstacle.MinHeight {
		errs = append(errs, errors.New("obstacle.max_height must not be below min_height"))
	}
	if c.Physics.FrameTime <= 0 {
		errs = append(errs, fmt.Errorf("physics.frame_time must be positive, got %v", c.Physics.FrameTime))
	}
	if c.Scoring.PerKill < 0 {
		errs = append(errs, fmt.Errorf("scoring.per_kill must not be negative, got %d", c.Scoring.PerKill))
	}
	if c.Scoring.HighScoreKey == "" {
		errs = append(errs, errors.New("scoring.high_score_key must not be empty"))
	}
	if c.Difficulty.RefreshInterval <= 0 {
		errs = append(errs, fmt.Errorf("difficulty.refresh_interval must be positive, got %v", c.Difficulty.RefreshInterval))
	}

	return errors.Join(errs...)
}

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".strike", filename)
}

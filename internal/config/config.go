// Package config provides YAML-based game configuration loading and the
// difficulty parameter bounds shared by the simulation and the controller.
package config

import "time"

// StrikeConfig contains all configuration for Shadow Strike.
type StrikeConfig struct {
	Playfield  PlayfieldConfig  `yaml:"playfield"`
	Player     PlayerConfig     `yaml:"player"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Enemy      EnemyConfig      `yaml:"enemy"`
	Obstacle   ObstacleConfig   `yaml:"obstacle"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PlayfieldConfig defines the fixed coordinate space.
type PlayfieldConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundHeight float64 `yaml:"ground_height"`
}

// PlayerConfig defines the player's fixed geometry.
type PlayerConfig struct {
	X      float64 `yaml:"x"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ProjectileConfig defines projectile geometry and speed.
type ProjectileConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
}

// EnemyConfig defines enemy geometry.
type EnemyConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ObstacleConfig defines the range obstacle sizes are drawn from.
type ObstacleConfig struct {
	MinWidth  float64 `yaml:"min_width"`
	MaxWidth  float64 `yaml:"max_width"`
	MinHeight float64 `yaml:"min_height"`
	MaxHeight float64 `yaml:"max_height"`
}

// PhysicsConfig defines per-frame physics constants.
type PhysicsConfig struct {
	Gravity      float64       `yaml:"gravity"`
	JumpVelocity float64       `yaml:"jump_velocity"` // Negative = upward
	GroundSpeed  float64       `yaml:"ground_speed"`
	FrameTime    time.Duration `yaml:"frame_time"` // Reference frame for delta normalization
}

// SpawnConfig defines the base spawn thresholds, divided by the current rates.
type SpawnConfig struct {
	EnemyThreshold    float64 `yaml:"enemy_threshold"`
	ObstacleThreshold float64 `yaml:"obstacle_threshold"`
}

// ScoringConfig defines scoring and high score persistence.
type ScoringConfig struct {
	PerKill      int    `yaml:"per_kill"`
	HighScoreKey string `yaml:"high_score_key"`
}

// DifficultyConfig defines how the adaptive difficulty is refreshed.
type DifficultyConfig struct {
	Backend         string        `yaml:"backend"`          // Registered suggestion backend name
	URL             string        `yaml:"url"`              // Suggestion service URL for the remote backend
	RefreshInterval time.Duration `yaml:"refresh_interval"` // Simulated time between refreshes
	Timeout         time.Duration `yaml:"timeout"`          // Per-request timeout
	MaxScore        int           `yaml:"max_score"`        // Score at which suggestions saturate
	KeepOnError     bool          `yaml:"keep_on_error"`    // Keep last values instead of falling back to floor
}

// GroundY returns the y-coordinate of the top of the ground band.
func (c StrikeConfig) GroundY() float64 {
	return c.Playfield.Height - c.Playfield.GroundHeight
}

// PlayerGroundY returns the player's y position when standing on the ground.
func (c StrikeConfig) PlayerGroundY() float64 {
	return c.GroundY() - c.Player.Height
}

package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/strike.yaml
var defaultStrikeYAML []byte

// DefaultStrikeConfig returns the default Shadow Strike configuration.
func DefaultStrikeConfig() StrikeConfig {
	return StrikeConfig{
		Playfield: PlayfieldConfig{
			Width:        800,
			Height:       600,
			GroundHeight: 40,
		},
		Player: PlayerConfig{
			X:      100,
			Width:  50,
			Height: 70,
		},
		Projectile: ProjectileConfig{
			Width:  30,
			Height: 30,
			Speed:  10,
		},
		Enemy: EnemyConfig{
			Width:  50,
			Height: 50,
		},
		Obstacle: ObstacleConfig{
			MinWidth:  30,
			MaxWidth:  80,
			MinHeight: 40,
			MaxHeight: 100,
		},
		Physics: PhysicsConfig{
			Gravity:      0.6,
			JumpVelocity: -15,
			GroundSpeed:  4,
			FrameTime:    16 * time.Millisecond,
		},
		Spawn: SpawnConfig{
			EnemyThreshold:    300,
			ObstacleThreshold: 400,
		},
		Scoring: ScoringConfig{
			PerKill:      100,
			HighScoreKey: "shadow-strike-highscore",
		},
		Difficulty: DifficultyConfig{
			Backend:         "linear",
			RefreshInterval: 5 * time.Second,
			Timeout:         2 * time.Second,
			MaxScore:        10000,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultStrikeYAML
}

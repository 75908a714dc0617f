package config

import (
	"math"

	"github.com/vovakirdan/shadow-strike/internal/core"
)

// Range is a closed interval a difficulty parameter must stay within.
type Range struct {
	Min float64
	Max float64
}

// Safe operating bounds for each difficulty parameter. Min doubles as the
// floor value used when a suggestion is missing.
var (
	EnemySpawnRateRange      = Range{Min: 1, Max: 5}
	ObstacleComplexityRange  = Range{Min: 1, Max: 10}
	GameSpeedMultiplierRange = Range{Min: 1.0, Max: 1.5}
)

// Clamp restricts v to the range. NaN maps to Min.
func (r Range) Clamp(v float64) float64 {
	if math.IsNaN(v) {
		return r.Min
	}
	return core.ClampF(v, r.Min, r.Max)
}

// Contains reports whether v lies within the range.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Lerp interpolates linearly from Min (t=0) to Max (t=1). t is clamped to [0, 1].
func (r Range) Lerp(t float64) float64 {
	t = core.ClampF(t, 0, 1)
	return r.Min + t*(r.Max-r.Min)
}

// Params holds the tunable difficulty parameters read by the spawner and
// the physics integrator.
type Params struct {
	EnemySpawnRate      float64 `json:"enemySpawnRate"`
	ObstacleComplexity  float64 `json:"obstacleComplexity"`
	GameSpeedMultiplier float64 `json:"gameSpeedMultiplier"`
}

// FloorParams returns the lowest difficulty, {1, 1, 1.0}.
func FloorParams() Params {
	return Params{
		EnemySpawnRate:      EnemySpawnRateRange.Min,
		ObstacleComplexity:  ObstacleComplexityRange.Min,
		GameSpeedMultiplier: GameSpeedMultiplierRange.Min,
	}
}

// Clamped returns a copy with every field forced into its range.
func (p Params) Clamped() Params {
	return Params{
		EnemySpawnRate:      EnemySpawnRateRange.Clamp(p.EnemySpawnRate),
		ObstacleComplexity:  ObstacleComplexityRange.Clamp(p.ObstacleComplexity),
		GameSpeedMultiplier: GameSpeedMultiplierRange.Clamp(p.GameSpeedMultiplier),
	}
}

// Valid reports whether every field lies within its range.
func (p Params) Valid() bool {
	return EnemySpawnRateRange.Contains(p.EnemySpawnRate) &&
		ObstacleComplexityRange.Contains(p.ObstacleComplexity) &&
		GameSpeedMultiplierRange.Contains(p.GameSpeedMultiplier)
}

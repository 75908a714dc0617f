// Package difficulty keeps the difficulty parameters in step with the
// player's score by asking a suggestion service in the background.
package difficulty

import (
	"context"
	"errors"
	"math"

	"github.com/vovakirdan/shadow-strike/internal/config"
)

// ErrUnavailable is returned by suggesters that cannot produce a suggestion.
var ErrUnavailable = errors.New("difficulty: suggestion service unavailable")

// Suggestion is a best-effort answer from a suggestion service. A nil field
// means the service did not provide it.
type Suggestion struct {
	EnemySpawnRate      *float64 `json:"enemySpawnRate,omitempty"`
	ObstacleComplexity  *float64 `json:"obstacleComplexity,omitempty"`
	GameSpeedMultiplier *float64 `json:"gameSpeedMultiplier,omitempty"`
}

// Full returns a suggestion with every field set from p.
func Full(p config.Params) Suggestion {
	return Suggestion{
		EnemySpawnRate:      &p.EnemySpawnRate,
		ObstacleComplexity:  &p.ObstacleComplexity,
		GameSpeedMultiplier: &p.GameSpeedMultiplier,
	}
}

// Suggester maps a score to suggested difficulty parameters.
// Implementations may be slow or fail; they must honor ctx cancellation.
type Suggester interface {
	Suggest(ctx context.Context, score int) (Suggestion, error)
}

// SuggesterFunc adapts a function to the Suggester interface.
type SuggesterFunc func(ctx context.Context, score int) (Suggestion, error)

// Suggest calls f(ctx, score).
func (f SuggesterFunc) Suggest(ctx context.Context, score int) (Suggestion, error) {
	return f(ctx, score)
}

// Resolve turns a suggestion into parameters consumers can use: each missing
// or non-finite field falls back to its floor, then every field is clamped.
func Resolve(s Suggestion) config.Params {
	p := config.Params{
		EnemySpawnRate:      orFloor(s.EnemySpawnRate, config.EnemySpawnRateRange),
		ObstacleComplexity:  orFloor(s.ObstacleComplexity, config.ObstacleComplexityRange),
		GameSpeedMultiplier: orFloor(s.GameSpeedMultiplier, config.GameSpeedMultiplierRange),
	}
	return p.Clamped()
}

func orFloor(v *float64, r config.Range) float64 {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return r.Min
	}
	return *v
}

// Saturate limits a score to [0, max].
func Saturate(score, max int) int {
	if score < 0 {
		return 0
	}
	if max > 0 && score > max {
		return max
	}
	return score
}

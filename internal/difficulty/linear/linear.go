// Package linear provides local suggestion backends that need no network:
// a linear score curve and a fixed floor.
package linear

import (
	"context"

	"github.com/vovakirdan/shadow-strike/internal/config"
	"github.com/vovakirdan/shadow-strike/internal/difficulty"
	"github.com/vovakirdan/shadow-strike/internal/registry"
)

// DefaultMaxScore is the score at which the curve reaches its ceiling.
const DefaultMaxScore = 10000

func init() {
	registry.Register("linear", "scale difficulty linearly with score up to max_score", func(cfg config.DifficultyConfig) (difficulty.Suggester, error) {
		return New(cfg.MaxScore), nil
	})
	registry.Register("fixed", "always play at the easiest setting", func(cfg config.DifficultyConfig) (difficulty.Suggester, error) {
		return Fixed{}, nil
	})
}

// Suggester interpolates every parameter between its bounds by the
// saturated score fraction.
type Suggester struct {
	MaxScore int
}

// New creates a linear suggester; a non-positive maxScore uses DefaultMaxScore.
func New(maxScore int) *Suggester {
	if maxScore <= 0 {
		maxScore = DefaultMaxScore
	}
	return &Suggester{MaxScore: maxScore}
}

// Suggest implements difficulty.Suggester.
func (s *Suggester) Suggest(ctx context.Context, score int) (difficulty.Suggestion, error) {
	if err := ctx.Err(); err != nil {
		return difficulty.Suggestion{}, err
	}
	return difficulty.Full(s.At(score)), nil
}

// At returns the parameters for score.
func (s *Suggester) At(score int) config.Params {
	t := float64(difficulty.Saturate(score, s.MaxScore)) / float64(s.MaxScore)
	return config.Params{
		EnemySpawnRate:      config.EnemySpawnRateRange.Lerp(t),
		ObstacleComplexity:  config.ObstacleComplexityRange.Lerp(t),
		GameSpeedMultiplier: config.GameSpeedMultiplierRange.Lerp(t),
	}
}

// Fixed answers every request with an empty suggestion, which resolves to
// the floor parameters.
type Fixed struct{}

// Suggest implements difficulty.Suggester.
func (Fixed) Suggest(ctx context.Context, score int) (difficulty.Suggestion, error) {
	return difficulty.Suggestion{}, ctx.Err()
}

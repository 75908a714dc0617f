package difficulty

import (
	"math"
	"testing"

	"github.com/vovakirdan/shadow-strike/internal/config"
)

func f(v float64) *float64 {
	return &v
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		in   Suggestion
		want config.Params
	}{
		{
			name: "missing everything",
			in:   Suggestion{},
			want: config.Params{EnemySpawnRate: 1, ObstacleComplexity: 1, GameSpeedMultiplier: 1.0},
		},
		{
			name: "partial",
			in:   Suggestion{ObstacleComplexity: f(7)},
			want: config.Params{EnemySpawnRate: 1, ObstacleComplexity: 7, GameSpeedMultiplier: 1.0},
		},
		{
			name: "in range",
			in:   Suggestion{EnemySpawnRate: f(2.5), ObstacleComplexity: f(4), GameSpeedMultiplier: f(1.25)},
			want: config.Params{EnemySpawnRate: 2.5, ObstacleComplexity: 4, GameSpeedMultiplier: 1.25},
		},
		{
			name: "out of range",
			in:   Suggestion{EnemySpawnRate: f(-3), ObstacleComplexity: f(99), GameSpeedMultiplier: f(0.2)},
			want: config.Params{EnemySpawnRate: 1, ObstacleComplexity: 10, GameSpeedMultiplier: 1.0},
		},
		{
			name: "non-finite",
			in:   Suggestion{EnemySpawnRate: f(math.NaN()), ObstacleComplexity: f(math.Inf(1)), GameSpeedMultiplier: f(math.Inf(-1))},
			want: config.Params{EnemySpawnRate: 1, ObstacleComplexity: 1, GameSpeedMultiplier: 1.0},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Resolve(tc.in)
			if got != tc.want {
				t.Errorf("Resolve() = %+v, expected %+v", got, tc.want)
			}
			if !got.Valid() {
				t.Errorf("Resolve() = %+v is out of bounds", got)
			}
		})
	}
}

func TestFullRoundTrip(t *testing.T) {
	p := config.Params{EnemySpawnRate: 3, ObstacleComplexity: 6, GameSpeedMultiplier: 1.3}
	if got := Resolve(Full(p)); got != p {
		t.Errorf("Resolve(Full(%+v)) = %+v", p, got)
	}
}

func TestSaturate(t *testing.T) {
	tests := []struct {
		score, max, want int
	}{
		{500, 10000, 500},
		{25000, 10000, 10000},
		{-10, 10000, 0},
		{42, 0, 42},
	}
	for _, tc := range tests {
		if got := Saturate(tc.score, tc.max); got != tc.want {
			t.Errorf("Saturate(%d, %d) = %d, expected %d", tc.score, tc.max, got, tc.want)
		}
	}
}

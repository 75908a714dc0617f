package sim

import (
	"math"
	"testing"

	"github.com/vovakirdan/shadow-strike/internal/config"
)

func TestSpawnEnemyThreshold(t *testing.T) {
	s := newTestState()
	floor := config.FloorParams()

	// Base threshold 300 at rate 1: the accumulator must exceed 300
	for i := 0; i < 300; i++ {
		s.Spawn(1, floor)
	}
	if len(s.Enemies) != 0 {
		t.Fatalf("enemy spawned early, got %d", len(s.Enemies))
	}

	s.Spawn(1, floor)
	if len(s.Enemies) != 1 {
		t.Fatalf("expected 1 enemy after 301 frames, got %d", len(s.Enemies))
	}
	if acc, _ := s.SpawnerState(); acc != 0 {
		t.Errorf("enemy accumulator = %v after spawn, expected 0", acc)
	}

	e := s.Enemies[0]
	if e.X != 800 {
		t.Errorf("enemy x = %v, expected right edge 800", e.X)
	}
	if e.Y+s.Config().Enemy.Height != s.Config().GroundY() {
		t.Errorf("enemy should stand on the ground, y = %v", e.Y)
	}
}

func TestSpawnObstacleBounds(t *testing.T) {
	s := newTestState()
	p := config.Params{EnemySpawnRate: 1, ObstacleComplexity: 10, GameSpeedMultiplier: 1}
	oc := s.Config().Obstacle

	for i := 0; i < 5000; i++ {
		s.Spawn(1, p)
	}
	if len(s.Obstacles) == 0 {
		t.Fatal("no obstacles spawned")
	}

	for _, o := range s.Obstacles {
		if o.Width < oc.MinWidth || o.Width > oc.MaxWidth {
			t.Errorf("obstacle width %v outside [%v, %v]", o.Width, oc.MinWidth, oc.MaxWidth)
		}
		if o.Height < oc.MinHeight || o.Height > oc.MaxHeight {
			t.Errorf("obstacle height %v outside [%v, %v]", o.Height, oc.MinHeight, oc.MaxHeight)
		}
		if math.Abs(o.Y+o.Height-s.Config().GroundY()) > 1e-9 {
			t.Errorf("obstacle not ground-anchored: y=%v h=%v", o.Y, o.Height)
		}
		if o.X != 800 {
			t.Errorf("obstacle x = %v, expected 800", o.X)
		}
	}
}

func TestSpawnRateIncreasesFrequency(t *testing.T) {
	prev := -1
	for rate := 1.0; rate <= 5; rate++ {
		s := newTestState()
		p := config.Params{EnemySpawnRate: rate, ObstacleComplexity: 1, GameSpeedMultiplier: 1}
		for i := 0; i < 1000; i++ {
			s.Spawn(1, p)
		}
		if len(s.Enemies) <= prev {
			t.Errorf("rate %v spawned %d enemies, not more than %d at the lower rate", rate, len(s.Enemies), prev)
		}
		prev = len(s.Enemies)
	}
}

func TestSpawnDeterministic(t *testing.T) {
	cfg := config.DefaultStrikeConfig()
	p := config.Params{EnemySpawnRate: 3, ObstacleComplexity: 7, GameSpeedMultiplier: 1.2}

	run := func() []Obstacle {
		s := NewState(cfg, 12345)
		for i := 0; i < 3000; i++ {
			s.Integrate(1, p)
			s.Spawn(1, p)
		}
		return append([]Obstacle(nil), s.Obstacles...)
	}

	a, b := run(), run()
	if len(a) != len(b) {
		t.Fatalf("runs differ in obstacle count: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("obstacle %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestEntityIDsUnique(t *testing.T) {
	s := newTestState()
	p := config.Params{EnemySpawnRate: 5, ObstacleComplexity: 10, GameSpeedMultiplier: 1.5}

	seen := make(map[EntityID]bool)
	for i := 0; i < 500; i++ {
		seen[s.Shoot()] = true
		s.Spawn(1, p)
	}
	for _, e := range s.Enemies {
		if seen[e.ID] {
			t.Fatalf("duplicate id %d", e.ID)
		}
		seen[e.ID] = true
	}
	for _, o := range s.Obstacles {
		if seen[o.ID] {
			t.Fatalf("duplicate id %d", o.ID)
		}
		seen[o.ID] = true
	}
}

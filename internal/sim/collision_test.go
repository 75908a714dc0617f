package sim

import (
	"testing"
	"time"

	"github.com/vovakirdan/shadow-strike/internal/config"
)

func TestResolveProjectileKillsEnemy(t *testing.T) {
	s := newTestState()
	s.Projectiles = append(s.Projectiles, Projectile{ID: 1, X: 130, Y: 300})
	s.Enemies = append(s.Enemies, Enemy{ID: 2, X: 140, Y: 295})

	if !s.ProjectileRect(s.Projectiles[0]).Intersects(s.EnemyRect(s.Enemies[0])) {
		t.Fatal("projectile and enemy should overlap")
	}

	out := s.Resolve()

	if out.Fatal {
		t.Fatal("no fatal collision expected")
	}
	if out.Kills != 1 || out.Points != 100 {
		t.Errorf("outcome = %+v, expected 1 kill for 100 points", out)
	}
	if s.Score != 100 {
		t.Errorf("score = %d, expected 100", s.Score)
	}
	if len(s.Enemies) != 0 || len(s.Projectiles) != 0 {
		t.Errorf("expected enemy and projectile removed, got %d enemies %d projectiles", len(s.Enemies), len(s.Projectiles))
	}
}

func TestResolveOneKillPerProjectile(t *testing.T) {
	s := newTestState()
	s.Projectiles = append(s.Projectiles, Projectile{ID: 1, X: 300, Y: 300})
	s.Enemies = append(s.Enemies,
		Enemy{ID: 2, X: 290, Y: 290},
		Enemy{ID: 3, X: 310, Y: 290},
	)

	out := s.Resolve()

	if out.Kills != 1 {
		t.Errorf("kills = %d, expected 1", out.Kills)
	}
	assertIDs(t, "enemies", enemyIDs(s), []EntityID{3})
	if len(s.Projectiles) != 0 {
		t.Error("projectile should be consumed")
	}
}

func TestResolveSecondProjectileSurvives(t *testing.T) {
	s := newTestState()
	s.Projectiles = append(s.Projectiles,
		Projectile{ID: 1, X: 300, Y: 300},
		Projectile{ID: 2, X: 305, Y: 300},
	)
	s.Enemies = append(s.Enemies, Enemy{ID: 3, X: 300, Y: 290})

	out := s.Resolve()

	if out.Kills != 1 || s.Score != 100 {
		t.Errorf("kills=%d score=%d, expected 1 and 100", out.Kills, s.Score)
	}
	assertIDs(t, "projectiles", projectileIDs(s), []EntityID{2})
}

func TestResolveFatal(t *testing.T) {
	tests := []struct {
		name  string
		setup func(s *State)
		cause Cause
	}{
		{
			name: "enemy",
			setup: func(s *State) {
				s.Enemies = append(s.Enemies, Enemy{ID: 10, X: 120, Y: 510})
			},
			cause: CauseEnemy,
		},
		{
			name: "obstacle",
			setup: func(s *State) {
				s.Obstacles = append(s.Obstacles, Obstacle{ID: 10, X: 140, Y: 520, Width: 30, Height: 40})
			},
			cause: CauseObstacle,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestState()
			// A kill that would score if processing continued
			s.Projectiles = append(s.Projectiles, Projectile{ID: 1, X: 400, Y: 300})
			s.Enemies = append(s.Enemies, Enemy{ID: 2, X: 400, Y: 300})
			tc.setup(s)

			out := s.Resolve()

			if !out.Fatal || out.Cause != tc.cause {
				t.Errorf("outcome = %+v, expected fatal %v", out, tc.cause)
			}
			if s.Score != 0 || len(s.Projectiles) != 1 {
				t.Errorf("fatal tick should abort scoring: score=%d projectiles=%d", s.Score, len(s.Projectiles))
			}
		})
	}
}

func TestResolveTouchingIsNotFatal(t *testing.T) {
	s := newTestState()
	// Player spans x [100, 150); enemy starts exactly at the right edge
	s.Enemies = append(s.Enemies, Enemy{ID: 1, X: 150, Y: 510})
	// Obstacle ends exactly at the player's left edge
	s.Obstacles = append(s.Obstacles, Obstacle{ID: 2, X: 60, Y: 520, Width: 40, Height: 40})

	if out := s.Resolve(); out.Fatal {
		t.Errorf("touching edges should not be fatal, got %+v", out)
	}
}

func TestTickBoundsBeforeCollision(t *testing.T) {
	s := newTestState()
	// The projectile overlaps the enemy now, but leaves the playfield during
	// physics, so it never gets to collide.
	s.Projectiles = append(s.Projectiles, Projectile{ID: 1, X: 795, Y: 300})
	s.Enemies = append(s.Enemies, Enemy{ID: 2, X: 790, Y: 300})

	out := s.Tick(16*time.Millisecond, config.FloorParams())

	if out.Kills != 0 {
		t.Errorf("kills = %d, expected 0", out.Kills)
	}
	if len(s.Projectiles) != 0 {
		t.Error("projectile should have despawned")
	}
	assertIDs(t, "enemies", enemyIDs(s), []EntityID{2})
}

func TestTickClampsParams(t *testing.T) {
	s := newTestState()

	// Zero rates would divide by zero in the spawner without clamping
	for i := 0; i < 400; i++ {
		s.Tick(16*time.Millisecond, config.Params{})
	}
	if len(s.Enemies) == 0 {
		t.Error("enemies should spawn at the floor rate")
	}
}

func TestShootPosition(t *testing.T) {
	s := newTestState()

	id := s.Shoot()

	if len(s.Projectiles) != 1 || s.Projectiles[0].ID != id {
		t.Fatalf("Shoot() should append one projectile, got %+v", s.Projectiles)
	}
	p := s.Projectiles[0]
	if p.X != 150 {
		t.Errorf("projectile x = %v, expected 150", p.X)
	}
	if p.Y != 510 {
		t.Errorf("projectile y = %v, expected 510", p.Y)
	}
	if next := s.Shoot(); next <= id {
		t.Errorf("ids should increase, got %d after %d", next, id)
	}
}

func TestReset(t *testing.T) {
	s := newTestState()
	s.Jump()
	s.Shoot()
	s.Score = 700
	for i := 0; i < 500; i++ {
		s.Spawn(1, config.FloorParams())
	}

	s.Reset(2)

	if s.Score != 0 || len(s.Projectiles) != 0 || len(s.Enemies) != 0 || len(s.Obstacles) != 0 {
		t.Errorf("Reset left entities or score behind: %+v", s)
	}
	if s.Player.Airborne || s.Player.Velocity != 0 || s.Player.Y != s.Config().PlayerGroundY() {
		t.Errorf("Reset should put the player on the ground, got %+v", s.Player)
	}
	if e, o := s.SpawnerState(); e != 0 || o != 0 {
		t.Errorf("Reset should clear accumulators, got %v %v", e, o)
	}
}

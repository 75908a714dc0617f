package sim

import (
	"time"

	"github.com/vovakirdan/shadow-strike/internal/config"
)

// Normalize converts elapsed wall-clock time into frames of the reference
// duration. Negative elapsed time counts as zero.
func Normalize(elapsed, frame time.Duration) float64 {
	if elapsed <= 0 || frame <= 0 {
		return 0
	}
	return float64(elapsed) / float64(frame)
}

// Integrate advances the player and every scrolling entity by dt frames and
// drops entities that have left the playfield.
func (s *State) Integrate(dt float64, p config.Params) {
	s.integratePlayer(dt)

	speed := p.GameSpeedMultiplier * dt

	// Projectiles fly right until they pass the right edge
	projDX := s.cfg.Projectile.Speed * speed
	validProjectiles := s.Projectiles[:0]
	for _, pr := range s.Projectiles {
		pr.X += projDX
		if pr.X < s.cfg.Playfield.Width {
			validProjectiles = append(validProjectiles, pr)
		}
	}
	s.Projectiles = validProjectiles

	// Enemies and obstacles scroll left until fully offscreen
	groundDX := s.cfg.Physics.GroundSpeed * speed

	validEnemies := s.Enemies[:0]
	for _, e := range s.Enemies {
		e.X -= groundDX
		if e.X > -s.cfg.Enemy.Width {
			validEnemies = append(validEnemies, e)
		}
	}
	s.Enemies = validEnemies

	validObstacles := s.Obstacles[:0]
	for _, o := range s.Obstacles {
		o.X -= groundDX
		if o.X > -o.Width {
			validObstacles = append(validObstacles, o)
		}
	}
	s.Obstacles = validObstacles
}

// integratePlayer applies gravity and clamps the player to the ground line.
func (s *State) integratePlayer(dt float64) {
	ground := s.cfg.PlayerGroundY()

	s.Player.Velocity += s.cfg.Physics.Gravity * dt
	s.Player.Y += s.Player.Velocity * dt

	if s.Player.Y >= ground {
		s.Player.Y = ground
		s.Player.Velocity = 0
		s.Player.Airborne = false
	}
}

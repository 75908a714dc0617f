// Package sim implements the Shadow Strike simulation: entity storage,
// physics integration, spawning and collision resolution.
//
// A State is owned by exactly one goroutine. Tick advances it by one frame;
// everything it does is a function of the previous state, the elapsed time,
// the difficulty parameters and the state's own seeded RNG.
package sim

import (
	"math/rand"

	"github.com/vovakirdan/shadow-strike/internal/config"
	"github.com/vovakirdan/shadow-strike/internal/core"
)

// State is the complete simulation state of one session.
type State struct {
	cfg config.StrikeConfig

	Player      Player
	Projectiles []Projectile
	Enemies     []Enemy
	Obstacles   []Obstacle
	Score       int

	spawner Spawner
	nextID  EntityID
}

// NewState creates a state with the player standing on the ground and no
// entities.
func NewState(cfg config.StrikeConfig, seed int64) *State {
	s := &State{
		cfg:         cfg,
		Projectiles: make([]Projectile, 0, 8),
		Enemies:     make([]Enemy, 0, 8),
		Obstacles:   make([]Obstacle, 0, 8),
	}
	s.Reset(seed)
	return s
}

// Reset returns the state to the start of a session.
func (s *State) Reset(seed int64) {
	s.Player = Player{Y: s.cfg.PlayerGroundY()}
	s.Projectiles = s.Projectiles[:0]
	s.Enemies = s.Enemies[:0]
	s.Obstacles = s.Obstacles[:0]
	s.Score = 0
	s.spawner = Spawner{rng: rand.New(rand.NewSource(seed))}
	s.nextID = 0
}

// Config returns the configuration the state was built with.
func (s *State) Config() config.StrikeConfig {
	return s.cfg
}

func (s *State) newID() EntityID {
	s.nextID++
	return s.nextID
}

// PlayerRect returns the player's collision rectangle.
func (s *State) PlayerRect() core.Rect {
	return core.NewRect(s.cfg.Player.X, s.Player.Y, s.cfg.Player.Width, s.cfg.Player.Height)
}

// ProjectileRect returns the collision rectangle of a projectile.
func (s *State) ProjectileRect(p Projectile) core.Rect {
	return core.NewRect(p.X, p.Y, s.cfg.Projectile.Width, s.cfg.Projectile.Height)
}

// EnemyRect returns the collision rectangle of an enemy.
func (s *State) EnemyRect(e Enemy) core.Rect {
	return core.NewRect(e.X, e.Y, s.cfg.Enemy.Width, s.cfg.Enemy.Height)
}

// Jump starts a jump if the player is on the ground.
// Returns false if the player is already airborne.
func (s *State) Jump() bool {
	if s.Player.Airborne {
		return false
	}
	s.Player.Airborne = true
	s.Player.Velocity = s.cfg.Physics.JumpVelocity
	return true
}

// Shoot throws a projectile from the player's front edge, vertically
// centered on the player.
func (s *State) Shoot() EntityID {
	player := s.PlayerRect()
	_, cy := player.Center()
	p := Projectile{
		ID: s.newID(),
		X:  player.Right(),
		Y:  cy - s.cfg.Projectile.Height/2,
	}
	s.Projectiles = append(s.Projectiles, p)
	return p.ID
}

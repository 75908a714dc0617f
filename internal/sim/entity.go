package sim

import "github.com/vovakirdan/shadow-strike/internal/core"

// EntityID identifies an entity within one session. IDs come from a
// per-session counter and are never reused.
type EntityID uint64

// Player is the player character. Only its vertical kinematics change.
type Player struct {
	Y        float64 // Top edge; never greater than the ground line
	Velocity float64 // Vertical velocity, negative = upward
	Airborne bool
}

// Projectile is a thrown shuriken moving rightward.
type Projectile struct {
	ID   EntityID
	X, Y float64
}

// Enemy walks in from the right and can be destroyed by projectiles.
type Enemy struct {
	ID   EntityID
	X, Y float64
}

// Obstacle is a ground-anchored block of random size. Projectiles pass
// through it.
type Obstacle struct {
	ID     EntityID
	X, Y   float64
	Width  float64
	Height float64
}

// Rect returns the collision rectangle for this obstacle.
func (o Obstacle) Rect() core.Rect {
	return core.NewRect(o.X, o.Y, o.Width, o.Height)
}

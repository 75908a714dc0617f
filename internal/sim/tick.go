package sim

import (
	"time"

	"github.com/vovakirdan/shadow-strike/internal/config"
)

// Tick advances the simulation by one frame: physics, then spawning, then
// collisions.
//
// Because physics runs first, an entity that leaves the playfield during
// this tick is already gone when collisions are checked.
func (s *State) Tick(elapsed time.Duration, p config.Params) Outcome {
	dt := Normalize(elapsed, s.cfg.Physics.FrameTime)
	// Rates are divisors in the spawner
	p = p.Clamped()

	s.Integrate(dt, p)
	s.Spawn(dt, p)
	return s.Resolve()
}

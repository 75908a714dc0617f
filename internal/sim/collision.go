package sim

// Cause identifies what ended a session.
type Cause int

const (
	CauseNone Cause = iota
	CauseEnemy
	CauseObstacle
)

// String returns the cause name.
func (c Cause) String() string {
	switch c {
	case CauseEnemy:
		return "enemy"
	case CauseObstacle:
		return "obstacle"
	default:
		return "none"
	}
}

// Outcome reports what happened during collision resolution.
type Outcome struct {
	Fatal  bool  // The player touched a hazard; the session is over
	Cause  Cause // Hazard kind when Fatal
	Kills  int   // Enemies destroyed by projectiles this tick
	Points int   // Score gained this tick
}

// Resolve checks the player against every hazard, then projectiles against
// enemies. A fatal hit returns immediately without touching projectiles,
// enemies or score.
func (s *State) Resolve() Outcome {
	player := s.PlayerRect()

	for _, e := range s.Enemies {
		if player.Intersects(s.EnemyRect(e)) {
			return Outcome{Fatal: true, Cause: CauseEnemy}
		}
	}

	for _, o := range s.Obstacles {
		if player.Intersects(o.Rect()) {
			return Outcome{Fatal: true, Cause: CauseObstacle}
		}
	}

	// Each projectile takes out at most the first enemy it overlaps and is
	// consumed by the hit.
	kills := 0
	survivors := s.Projectiles[:0]
	for _, pr := range s.Projectiles {
		rect := s.ProjectileRect(pr)

		hit := -1
		for i, e := range s.Enemies {
			if rect.Intersects(s.EnemyRect(e)) {
				hit = i
				break
			}
		}

		if hit >= 0 {
			s.Enemies = append(s.Enemies[:hit], s.Enemies[hit+1:]...)
			kills++
			continue
		}
		survivors = append(survivors, pr)
	}
	s.Projectiles = survivors

	points := kills * s.cfg.Scoring.PerKill
	s.Score += points

	return Outcome{Kills: kills, Points: points}
}

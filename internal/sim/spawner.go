package sim

import (
	"math/rand"

	"github.com/vovakirdan/shadow-strike/internal/config"
)

// Spawner decides when new enemies and obstacles enter from the right edge.
// Each kind has its own accumulator of speed-scaled frames; when it passes
// the base threshold divided by the current rate, one entity spawns and the
// accumulator restarts from zero.
type Spawner struct {
	enemyAcc    float64
	obstacleAcc float64
	rng         *rand.Rand
}

// Spawn advances the spawn accumulators by dt frames and appends any
// entities that became due.
func (s *State) Spawn(dt float64, p config.Params) {
	speed := p.GameSpeedMultiplier * dt

	s.spawner.enemyAcc += speed
	if s.spawner.enemyAcc > s.cfg.Spawn.EnemyThreshold/p.EnemySpawnRate {
		s.spawner.enemyAcc = 0
		s.spawnEnemy()
	}

	s.spawner.obstacleAcc += speed
	if s.spawner.obstacleAcc > s.cfg.Spawn.ObstacleThreshold/p.ObstacleComplexity {
		s.spawner.obstacleAcc = 0
		s.spawnObstacle()
	}
}

// SpawnerState returns a copy of the accumulators.
func (s *State) SpawnerState() (enemyAcc, obstacleAcc float64) {
	return s.spawner.enemyAcc, s.spawner.obstacleAcc
}

// spawnEnemy places an enemy at the right edge, standing on the ground.
func (s *State) spawnEnemy() {
	s.Enemies = append(s.Enemies, Enemy{
		ID: s.newID(),
		X:  s.cfg.Playfield.Width,
		Y:  s.cfg.GroundY() - s.cfg.Enemy.Height,
	})
}

// spawnObstacle places a randomly sized obstacle at the right edge,
// anchored to the ground.
func (s *State) spawnObstacle() {
	oc := s.cfg.Obstacle
	width := oc.MinWidth + s.spawner.rng.Float64()*(oc.MaxWidth-oc.MinWidth)
	height := oc.MinHeight + s.spawner.rng.Float64()*(oc.MaxHeight-oc.MinHeight)

	s.Obstacles = append(s.Obstacles, Obstacle{
		ID:     s.newID(),
		X:      s.cfg.Playfield.Width,
		Y:      s.cfg.GroundY() - height,
		Width:  width,
		Height: height,
	})
}

package systems

import (
	"time"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/octosurvivors/components"
)

// TowerSystem fires a bullet each time a tower's shooting timer completes.
// It does nothing unless Enabled.
type TowerSystem struct {
	filter  *ecs.Filter1[components.Tower]
	spawner *Spawner
	Enabled bool
}

// NewTowerSystem creates a new tower system.
func NewTowerSystem(w *ecs.World, spawner *Spawner, enabled bool) *TowerSystem {
	return &TowerSystem{
		filter:  ecs.NewFilter1[components.Tower](w),
		spawner: spawner,
		Enabled: enabled,
	}
}

// Update ticks tower timers and returns the number of bullets spawned.
func (s *TowerSystem) Update(dt time.Duration) int {
	if !s.Enabled {
		return 0
	}

	// First pass: tick timers (no structural changes during the query)
	shots := 0
	query := s.filter.Query()
	for query.Next() {
		tower := query.Get()
		if tower.ShootingTimer.Tick(dt).JustFinished() {
			shots++
		}
	}

	// Second pass: spawn
	for i := 0; i < shots; i++ {
		s.spawner.SpawnBullet()
	}
	return shots
}

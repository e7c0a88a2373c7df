package systems

import "github.com/mlange-42/ark/ecs"

// Hooks observe entity lifecycle events. Nil callbacks are skipped.
type Hooks struct {
	OnSpawn   func(e ecs.Entity, name string)
	OnDespawn func(e ecs.Entity, name string)
}

func (h *Hooks) spawned(e ecs.Entity, name string) {
	if h != nil && h.OnSpawn != nil {
		h.OnSpawn(e, name)
	}
}

func (h *Hooks) despawned(e ecs.Entity, name string) {
	if h != nil && h.OnDespawn != nil {
		h.OnDespawn(e, name)
	}
}

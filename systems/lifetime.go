package systems

import (
	"time"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/octosurvivors/components"
)

// LifetimeSystem removes entities whose one-shot lifetime has run out,
// together with everything parented to them.
type LifetimeSystem struct {
	world    *ecs.World
	filter   *ecs.Filter1[components.Lifetime]
	children *ecs.Filter1[components.Parent]
	parents  *ecs.Map[components.Parent]
	names    *ecs.Map[components.Name]
	hooks    *Hooks
}

// NewLifetimeSystem creates a new lifetime system.
func NewLifetimeSystem(w *ecs.World, hooks *Hooks) *LifetimeSystem {
	return &LifetimeSystem{
		world:    w,
		filter:   ecs.NewFilter1[components.Lifetime](w),
		children: ecs.NewFilter1[components.Parent](w),
		parents:  ecs.NewMap[components.Parent](w),
		names:    ecs.NewMap[components.Name](w),
		hooks:    hooks,
	}
}

// Update ticks every lifetime by dt and despawns the entities whose timer
// finished this tick. Returns the number of entities removed.
func (s *LifetimeSystem) Update(dt time.Duration) int {
	// First pass: collect expired entities (must complete before removing)
	var expired []ecs.Entity
	query := s.filter.Query()
	for query.Next() {
		life := query.Get()
		if life.Timer.Tick(dt).JustFinished() {
			expired = append(expired, query.Entity())
		}
	}

	// Second pass: remove subtrees (query iteration complete)
	removed := 0
	for _, e := range expired {
		removed += s.DespawnRecursive(e)
	}
	return removed
}

// Attach parents child to parent so it is removed along with it.
func (s *LifetimeSystem) Attach(child, parent ecs.Entity) {
	if s.parents.Has(child) {
		s.parents.Get(child).Entity = parent
		return
	}
	s.parents.Add(child, &components.Parent{Entity: parent})
}

// DespawnRecursive removes e and all of its descendants, deepest first.
// Returns the number of entities removed; zero if e is already gone.
func (s *LifetimeSystem) DespawnRecursive(e ecs.Entity) int {
	if !s.world.Alive(e) {
		return 0
	}

	kids := s.childIndex()
	seen := make(map[ecs.Entity]bool)
	var order []ecs.Entity
	var visit func(ecs.Entity)
	visit = func(n ecs.Entity) {
		// Parent cycles end at the first revisit
		if seen[n] {
			return
		}
		seen[n] = true
		for _, c := range kids[n] {
			visit(c)
		}
		order = append(order, n)
	}
	visit(e)

	for _, n := range order {
		name := ""
		if s.names.Has(n) {
			name = s.names.Get(n).Value
		}
		s.world.RemoveEntity(n)
		s.hooks.despawned(n, name)
	}
	return len(order)
}

// childIndex maps each parent to its direct children.
func (s *LifetimeSystem) childIndex() map[ecs.Entity][]ecs.Entity {
	kids := make(map[ecs.Entity][]ecs.Entity)
	query := s.children.Query()
	for query.Next() {
		p := query.Get()
		kids[p.Entity] = append(kids[p.Entity], query.Entity())
	}
	return kids
}

package telemetry

import "github.com/kamstrup/intmap"

// LifetimeStats tracks one entity from spawn to removal.
type LifetimeStats struct {
	Name      string
	BirthTick int32
	BirthTime float64 // Simulation seconds
}

// LifetimeTracker records when each live entity was spawned.
type LifetimeTracker struct {
	stats *intmap.Map[uint32, *LifetimeStats]
}

// NewLifetimeTracker creates a new lifetime tracker.
func NewLifetimeTracker() *LifetimeTracker {
	return &LifetimeTracker{
		stats: intmap.New[uint32, *LifetimeStats](64),
	}
}

// Register starts tracking an entity.
func (lt *LifetimeTracker) Register(entityID uint32, name string, birthTick int32, birthTime float64) {
	lt.stats.Put(entityID, &LifetimeStats{Name: name, BirthTick: birthTick, BirthTime: birthTime})
}

// Get returns the lifetime stats for an entity, or nil if not found.
func (lt *LifetimeTracker) Get(entityID uint32) *LifetimeStats {
	s, ok := lt.stats.Get(entityID)
	if !ok {
		return nil
	}
	return s
}

// Remove stops tracking an entity and returns its age in seconds at now.
// Returns -1 for an entity that was never registered.
func (lt *LifetimeTracker) Remove(entityID uint32, now float64) float64 {
	s, ok := lt.stats.Get(entityID)
	if !ok {
		return -1
	}
	lt.stats.Del(entityID)
	return now - s.BirthTime
}

// Count returns the number of tracked entities.
func (lt *LifetimeTracker) Count() int {
	return lt.stats.Len()
}

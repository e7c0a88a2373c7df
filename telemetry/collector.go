package telemetry

// Collector accumulates events within time windows and produces WindowStats.
type Collector struct {
	windowDurationTicks int32
	dt                  float64

	// Current window tracking
	windowStartTick int32

	// Event counters for current window
	spawns       int
	despawns     int
	bulletsFired int
	toggles      int
	ages         []float64
}

// NewCollector creates a new stats collector.
// windowDurationSec: how long each stats window lasts in simulation seconds
// dt: seconds per tick (used for tick-to-time conversion)
func NewCollector(windowDurationSec float64, dt float64) *Collector {
	ticksPerWindow := int32(windowDurationSec / dt)
	if ticksPerWindow < 1 {
		ticksPerWindow = 1
	}
	return &Collector{
		windowDurationTicks: ticksPerWindow,
		dt:                  dt,
	}
}

// RecordSpawn records an entity spawn. Bullets also count as fired.
func (c *Collector) RecordSpawn(bullet bool) {
	c.spawns++
	if bullet {
		c.bulletsFired++
	}
}

// RecordDespawn records an entity removal and its age in seconds
// (negative if unknown).
func (c *Collector) RecordDespawn(ageSec float64) {
	c.despawns++
	if ageSec >= 0 {
		c.ages = append(c.ages, ageSec)
	}
}

// RecordToggle records a free-cam toggle.
func (c *Collector) RecordToggle() {
	c.toggles++
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int32) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// Snapshot is the world state sampled when a window is flushed.
type Snapshot struct {
	GameState    string
	FreeCamState string
	Entities     int
	Bullets      int
}

// Flush produces a WindowStats and resets counters for the next window.
func (c *Collector) Flush(currentTick int32, snap Snapshot) WindowStats {
	mean, p50, max := ComputeAgeStats(c.ages)

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      float64(currentTick) * c.dt,

		GameState:    snap.GameState,
		FreeCamState: snap.FreeCamState,
		Entities:     snap.Entities,
		Bullets:      snap.Bullets,

		Spawns:         c.spawns,
		Despawns:       c.despawns,
		BulletsFired:   c.bulletsFired,
		FreeCamToggles: c.toggles,

		DespawnAgeMean: mean,
		DespawnAgeP50:  p50,
		DespawnAgeMax:  max,
	}

	// Reset for next window
	c.windowStartTick = currentTick
	c.spawns = 0
	c.despawns = 0
	c.bulletsFired = 0
	c.toggles = 0
	c.ages = c.ages[:0]

	return stats
}

// WindowDurationTicks returns the number of ticks per window.
func (c *Collector) WindowDurationTicks() int32 {
	return c.windowDurationTicks
}

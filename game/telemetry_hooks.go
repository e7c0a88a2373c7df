package game

import (
	"log/slog"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/octosurvivors/systems"
	"github.com/pthm-cable/octosurvivors/telemetry"
)

// onSpawn records a new entity.
func (g *Game) onSpawn(e ecs.Entity, name string) {
	g.lifetimeTracker.Register(e.ID(), name, g.tick, g.simTime)
	g.collector.RecordSpawn(name == systems.NameBullet)
	slog.Info("entity_spawned", "entity", e.ID(), "name", name, "tick", g.tick)
}

// onDespawn records a removed entity and its age.
func (g *Game) onDespawn(e ecs.Entity, name string) {
	age := g.lifetimeTracker.Remove(e.ID(), g.simTime)
	g.collector.RecordDespawn(age)
	slog.Info("entity_despawned", "entity", e.ID(), "name", name, "age", age, "tick", g.tick)
}

// flushTelemetry checks if the stats window should be flushed.
func (g *Game) flushTelemetry() {
	if !g.collector.ShouldFlush(g.tick) {
		return
	}

	stats := g.collector.Flush(g.tick, telemetry.Snapshot{
		GameState:    g.gameState.Get().Current().String(),
		FreeCamState: g.freeCam.Get().Current().String(),
		Entities:     g.countNamed(),
		Bullets:      g.countBullets(),
	})
	perfStats := g.perfCollector.Stats()

	if g.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if g.outputManager != nil {
		if err := g.outputManager.WriteStats(stats); err != nil {
			slog.Error("failed to write stats", "error", err)
		}
		if err := g.outputManager.WritePerf(perfStats, stats.WindowEndTick); err != nil {
			slog.Error("failed to write perf", "error", err)
		}
	}
}

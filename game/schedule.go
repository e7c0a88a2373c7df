package game

import (
	"log/slog"
	"time"

	"github.com/pthm-cable/octosurvivors/state"
	"github.com/pthm-cable/octosurvivors/telemetry"
)

// advancer is implemented by scripted input sources.
type advancer interface {
	Advance()
}

// Step runs one frame of the schedule with dt as the previous frame's
// duration. Order: asset poll, player spawn (Ready, once), animate and
// face camera (Ready), cursor toggle, fly camera (Free), lifetime, tower
// shooting.
func (g *Game) Step(dt time.Duration) {
	g.perfCollector.StartTick()

	if a, ok := g.input.(advancer); ok {
		a.Advance()
	}
	g.tracker.Update(g.input)
	g.overlays.HandleInput(&g.tracker)

	g.simTime += dt.Seconds()

	g.perfCollector.StartPhase(telemetry.PhaseAssets)
	g.pollAssets(dt)

	ready := g.gameState.Get().InState(state.Ready)

	g.perfCollector.StartPhase(telemetry.PhaseSpawnPlayer)
	if g.latch.Fire(ready) {
		g.spawner.SpawnPlayerSprite(&g.loader.Assets().Run)
	}

	if ready {
		g.perfCollector.StartPhase(telemetry.PhaseAnimateSprite)
		g.animate.Update(dt)

		g.perfCollector.StartPhase(telemetry.PhaseFaceCamera)
		g.face.Update()
	}

	g.perfCollector.StartPhase(telemetry.PhaseToggleCursor)
	if g.freeCamS.Toggle(&g.tracker, g.freeCam.Get(), &g.cursor, g.cursorBk) {
		g.collector.RecordToggle()
	}

	if g.freeCam.Get().IsFree() {
		g.perfCollector.StartPhase(telemetry.PhaseFlyCamera)
		g.freeCamS.Fly(&g.tracker, dt)
	}

	// Bullets fired this frame start ageing on the next one
	g.perfCollector.StartPhase(telemetry.PhaseLifetime)
	g.lifetime.Update(dt)

	g.perfCollector.StartPhase(telemetry.PhaseTowerShooting)
	g.towers.Update(dt)

	g.tick++

	g.perfCollector.StartPhase(telemetry.PhaseTelemetry)
	g.flushTelemetry()

	g.perfCollector.EndTick()
}

// pollAssets drives the loader and fires the single Loading -> Ready
// transition. A failed load keeps the game in Loading.
func (g *Game) pollAssets(dt time.Duration) {
	gs := g.gameState.Get()
	if !gs.InState(state.Loading) {
		return
	}
	done, err := g.loader.Poll(dt)
	if err != nil || !done {
		return
	}
	slog.Info("assets_loaded",
		"path", g.loader.Assets().Run.Path,
		"frames", g.loader.Assets().Run.Layout.Len(),
		"tick", g.tick,
	)
	if gs.MarkReady() {
		slog.Info("game_state_changed",
			"from", state.Loading.String(),
			"to", state.Ready.String(),
			"tick", g.tick,
		)
	}
}

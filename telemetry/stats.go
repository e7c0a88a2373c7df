package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a time window.
type WindowStats struct {
	WindowStartTick int32   `csv:"-"`
	WindowEndTick   int32   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// State machines at window end
	GameState    string `csv:"game_state"`
	FreeCamState string `csv:"free_cam_state"`

	// Population at window end
	Entities int `csv:"entities"`
	Bullets  int `csv:"bullets"`

	// Events during window
	Spawns         int `csv:"spawns"`
	Despawns       int `csv:"despawns"`
	BulletsFired   int `csv:"bullets_fired"`
	FreeCamToggles int `csv:"free_cam_toggles"`

	// Age at removal of entities despawned during the window
	DespawnAgeMean float64 `csv:"despawn_age_mean"`
	DespawnAgeP50  float64 `csv:"despawn_age_p50"`
	DespawnAgeMax  float64 `csv:"despawn_age_max"`
}

// ComputeAgeStats returns mean, median and maximum of ages in seconds.
func ComputeAgeStats(ages []float64) (mean, p50, max float64) {
	if len(ages) == 0 {
		return 0, 0, 0
	}
	sorted := make([]float64, len(ages))
	copy(sorted, ages)
	sort.Float64s(sorted)

	mean = stat.Mean(sorted, nil)
	p50 = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	max = sorted[len(sorted)-1]
	return mean, p50, max
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", int(s.WindowStartTick)),
		slog.Int("window_end", int(s.WindowEndTick)),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.String("game_state", s.GameState),
		slog.String("free_cam_state", s.FreeCamState),
		slog.Int("entities", s.Entities),
		slog.Int("bullets", s.Bullets),
		slog.Int("spawns", s.Spawns),
		slog.Int("despawns", s.Despawns),
		slog.Int("bullets_fired", s.BulletsFired),
		slog.Int("free_cam_toggles", s.FreeCamToggles),
		slog.Float64("despawn_age_mean", s.DespawnAgeMean),
		slog.Float64("despawn_age_p50", s.DespawnAgeP50),
		slog.Float64("despawn_age_max", s.DespawnAgeMax),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("window_stats", "stats", s)
}

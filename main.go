package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/octosurvivors/config"
	"github.com/pthm-cable/octosurvivors/game"
	"github.com/pthm-cable/octosurvivors/platform"
	"github.com/pthm-cable/octosurvivors/renderer"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics")
	logStats := flag.Bool("log-stats", false, "Output stats via slog")
	statsWindow := flag.Float64("stats-window", 0, "Stats window size in seconds (0 = use config)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N ticks (0 = unlimited)")
	towerShooting := flag.Bool("tower-shooting", false, "Enable tower shooting (overrides config)")
	loadDelay := flag.Float64("load-delay", 0, "Simulated asset load time in headless mode, seconds (0 = use config)")

	flag.Parse()

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	opts := game.Options{
		Headless:       *headless,
		MaxTicks:       *maxTicks,
		OutputDir:      *outputDir,
		LogStats:       *logStats,
		StatsWindowSec: *statsWindow,
		TowerShooting:  *towerShooting,
		LoadDelay:      *loadDelay,
	}

	if *headless {
		// Headless mode - no window, simulated assets, fixed step
		g, err := game.NewGameWithOptions(opts)
		if err != nil {
			slog.Error("failed to start game", "error", err)
			os.Exit(1)
		}
		defer g.Unload()

		slog.Info("starting headless run",
			"stats_window", *statsWindow,
			"max_ticks", *maxTicks,
			"tower_shooting", *towerShooting,
		)

		for !g.Done() {
			g.UpdateHeadless()
		}
		slog.Info("max ticks reached", "tick", g.Tick())
		return
	}

	// Graphical mode
	if cfg.Screen.Resizable {
		rl.SetConfigFlags(rl.FlagWindowResizable)
	}
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), cfg.Screen.Title)
	defer rl.CloseWindow()

	// Escape toggles the free camera; it must not close the window
	rl.SetExitKey(0)
	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	textures := platform.NewTextures()
	opts.Input = platform.Input{}
	opts.Cursor = platform.Cursor{}
	opts.Textures = textures

	g, err := game.NewGameWithOptions(opts)
	if err != nil {
		slog.Error("failed to start game", "error", err)
		os.Exit(1)
	}
	defer g.Unload()
	g.SetDrawer(renderer.New(g.World(), cfg, textures))

	for !rl.WindowShouldClose() && !g.Done() {
		g.Update(time.Duration(float64(rl.GetFrameTime()) * float64(time.Second)))
		g.Draw()
	}
}

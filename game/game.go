// Package game wires the world, the state machines and the frame schedule.
package game

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/octosurvivors/assets"
	"github.com/pthm-cable/octosurvivors/components"
	"github.com/pthm-cable/octosurvivors/config"
	"github.com/pthm-cable/octosurvivors/input"
	"github.com/pthm-cable/octosurvivors/state"
	"github.com/pthm-cable/octosurvivors/systems"
	"github.com/pthm-cable/octosurvivors/telemetry"
	"github.com/pthm-cable/octosurvivors/timer"
)

// Drawer renders a frame of the world.
type Drawer interface {
	Draw(w *ecs.World, s Status)
}

// Options configures the game.
type Options struct {
	Headless       bool
	MaxTicks       int     // Stop after N ticks (0 = unlimited)
	OutputDir      string  // CSV output directory (empty = disabled)
	LogStats       bool    // Log window and perf stats
	StatsWindowSec float64 // 0 = use config
	TowerShooting  bool    // Enables towers in addition to config
	LoadDelay      float64 // Simulated asset load seconds when headless (0 = use config)

	// Input source; nil uses Script (or an empty one).
	Input  input.Source
	Script *input.Script

	// Window boundaries; nil values fall back to headless stand-ins.
	Cursor   input.CursorBackend
	Textures assets.Backend
	Drawer   Drawer
}

// Status is the read-only view handed to the drawer.
type Status struct {
	Tick          int32
	SimTime       float64
	GameState     state.GameState
	FreeCamState  state.FreeCamState
	Cursor        input.Cursor
	Entities      int
	Bullets       int
	TowerShooting bool
	Toggles       int
	AssetsReady   bool
	Textures      int
	LoadErr       error
	Perf          telemetry.PerfStats
	Overlays      *OverlayRegistry
	Registry      *systems.SystemRegistry
}

// Game holds the complete game state.
type Game struct {
	cfg   *config.Config
	world *ecs.World

	// State machines, held as world resources
	gameState ecs.Resource[state.Game]
	freeCam   ecs.Resource[state.FreeCam]
	latch     state.Latch

	// Input and window
	input    input.Source
	tracker  input.Tracker
	cursor   input.Cursor
	cursorBk input.CursorBackend
	overlays *OverlayRegistry
	drawer   Drawer

	// Assets
	loader *assets.Loader

	// Systems
	hooks    *systems.Hooks
	spawner  *systems.Spawner
	animate  *systems.AnimationSystem
	face     *systems.FaceCameraSystem
	freeCamS *systems.FreeCamSystem
	towers   *systems.TowerSystem
	lifetime *systems.LifetimeSystem
	registry *systems.SystemRegistry

	// Queries for stats
	named   *ecs.Filter1[components.Name]
	bullets *ecs.Filter1[components.Bullet]

	// Telemetry
	collector       *telemetry.Collector
	perfCollector   *telemetry.PerfCollector
	lifetimeTracker *telemetry.LifetimeTracker
	outputManager   *telemetry.OutputManager
	logStats        bool

	// Time
	tick     int32
	simTime  float64
	maxTicks int
	headless bool
}

// NewGameWithOptions creates a game from the global config and spawns the
// startup entities.
func NewGameWithOptions(opts Options) (*Game, error) {
	return newGame(config.Cfg(), opts)
}

func newGame(cfg *config.Config, opts Options) (*Game, error) {
	toggleKey, err := input.ParseKey(cfg.Camera.ToggleKey)
	if err != nil {
		return nil, fmt.Errorf("camera.toggle_key: %w", err)
	}

	world := ecs.NewWorld()

	g := &Game{
		cfg:      cfg,
		world:    world,
		cursor:   input.NewCursor(),
		cursorBk: opts.Cursor,
		overlays: NewOverlayRegistry(),
		drawer:   opts.Drawer,
		registry: systems.NewSystemRegistry(),
		named:    ecs.NewFilter1[components.Name](world),
		bullets:  ecs.NewFilter1[components.Bullet](world),
		logStats: opts.LogStats,
		maxTicks: opts.MaxTicks,
		headless: opts.Headless,
	}
	g.gameState = ecs.NewResource[state.Game](world)
	g.gameState.Add(state.NewGame())
	g.freeCam = ecs.NewResource[state.FreeCam](world)
	g.freeCam.Add(state.NewFreeCam())

	// Input
	switch {
	case opts.Input != nil:
		g.input = opts.Input
	case opts.Script != nil:
		g.input = opts.Script
	default:
		g.input = input.NewScript()
	}
	if g.cursorBk == nil {
		g.cursorBk = input.NopCursor{}
	}

	// Assets
	backend := opts.Textures
	if backend == nil {
		delay := cfg.Assets.HeadlessLoadDelay
		if opts.LoadDelay > 0 {
			delay = opts.LoadDelay
		}
		backend = assets.NewSimulated(timer.Seconds(delay))
	}
	g.loader = assets.NewLoader(backend, assets.NewImageAssets(cfg.Assets))

	// Telemetry
	statsWindow := cfg.Telemetry.StatsWindow
	if opts.StatsWindowSec > 0 {
		statsWindow = opts.StatsWindowSec
	}
	g.collector = telemetry.NewCollector(statsWindow, cfg.Physics.DT)
	g.perfCollector = telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow)
	g.lifetimeTracker = telemetry.NewLifetimeTracker()
	g.outputManager, err = telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	if err := g.outputManager.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config snapshot", "error", err)
	}

	// Systems
	g.hooks = &systems.Hooks{OnSpawn: g.onSpawn, OnDespawn: g.onDespawn}
	g.spawner = systems.NewSpawner(world, cfg, g.hooks)
	g.animate = systems.NewAnimationSystem(world)
	g.face = systems.NewFaceCameraSystem(world)
	g.freeCamS = systems.NewFreeCamSystem(world, toggleKey, systems.FlySettings{
		Speed:       cfg.Camera.FlySpeed,
		Sensitivity: cfg.Derived.SensitivityRad,
		MaxPitch:    cfg.Derived.MaxPitchRad,
	})
	g.towers = systems.NewTowerSystem(world, g.spawner, cfg.Tower.Shooting || opts.TowerShooting)
	g.lifetime = systems.NewLifetimeSystem(world, g.hooks)

	// Startup
	g.spawner.SpawnCamera()
	g.spawner.SpawnScene()
	g.spawner.SpawnTower()

	slog.Info("game_started",
		"game_state", g.gameState.Get().Current().String(),
		"free_cam_state", g.freeCam.Get().Current().String(),
		"tower_shooting", g.towers.Enabled,
		"headless", g.headless,
	)
	return g, nil
}

// Update advances one frame by the duration of the previous frame.
func (g *Game) Update(frameTime time.Duration) {
	g.Step(frameTime)
}

// UpdateHeadless advances one frame by the fixed physics step.
func (g *Game) UpdateHeadless() {
	g.Step(timer.Seconds(g.cfg.Physics.DT))
}

// Draw renders the current frame, if a drawer is attached.
func (g *Game) Draw() {
	g.perfCollector.RecordFrame()
	if g.drawer != nil {
		g.drawer.Draw(g.world, g.Status())
	}
}

// SetDrawer attaches the frame drawer. Drawers usually need World, so they
// are created after the game.
func (g *Game) SetDrawer(d Drawer) {
	g.drawer = d
}

// Unload releases assets and closes output files.
func (g *Game) Unload() {
	g.loader.Unload()
	if err := g.outputManager.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
}

// Tick returns the number of frames simulated.
func (g *Game) Tick() int32 {
	return g.tick
}

// Done reports whether the tick limit has been reached.
func (g *Game) Done() bool {
	return g.maxTicks > 0 && int(g.tick) >= g.maxTicks
}

// World returns the ECS world.
func (g *Game) World() *ecs.World {
	return g.world
}

// GameState returns the loading state.
func (g *Game) GameState() state.GameState {
	return g.gameState.Get().Current()
}

// FreeCamState returns the camera mode.
func (g *Game) FreeCamState() state.FreeCamState {
	return g.freeCam.Get().Current()
}

// Cursor returns the window cursor state.
func (g *Game) Cursor() input.Cursor {
	return g.cursor
}

// Overlays returns the overlay registry.
func (g *Game) Overlays() *OverlayRegistry {
	return g.overlays
}

// Status samples the state handed to the drawer.
func (g *Game) Status() Status {
	return Status{
		Tick:          g.tick,
		SimTime:       g.simTime,
		GameState:     g.gameState.Get().Current(),
		FreeCamState:  g.freeCam.Get().Current(),
		Toggles:       g.freeCam.Get().Toggles(),
		AssetsReady:   g.loader.Ready(),
		Textures:      g.loader.Live(),
		Cursor:        g.cursor,
		Entities:      g.countNamed(),
		Bullets:       g.countBullets(),
		TowerShooting: g.towers.Enabled,
		LoadErr:       g.loader.Err(),
		Perf:          g.perfCollector.Stats(),
		Overlays:      g.overlays,
		Registry:      g.registry,
	}
}

func (g *Game) countNamed() int {
	n := 0
	query := g.named.Query()
	for query.Next() {
		n++
	}
	return n
}

func (g *Game) countBullets() int {
	n := 0
	query := g.bullets.Query()
	for query.Next() {
		n++
	}
	return n
}

// Package config provides configuration loading and access for the game.
package config

import (
	_ "embed"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all game configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Assets    AssetsConfig    `yaml:"assets"`
	Camera    CameraConfig    `yaml:"camera"`
	Scene     SceneConfig     `yaml:"scene"`
	Tower     TowerConfig     `yaml:"tower"`
	Player    PlayerConfig    `yaml:"player"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// Vec3 is a YAML-friendly 3D vector written as [x, y, z].
type Vec3 [3]float64

// R3 converts the vector to a gonum r3.Vec.
func (v Vec3) R3() r3.Vec {
	return r3.Vec{X: v[0], Y: v[1], Z: v[2]}
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	TargetFPS  int    `yaml:"target_fps"`
	Title      string `yaml:"title"`
	ClearColor string `yaml:"clear_color"`
	Resizable  bool   `yaml:"resizable"`
}

// PhysicsConfig holds simulation stepping parameters.
type PhysicsConfig struct {
	DT float64 `yaml:"dt"` // Fixed step used in headless mode
}

// AssetsConfig declares the assets that gate the Loading state.
type AssetsConfig struct {
	Root              string      `yaml:"root"`
	Player            AtlasConfig `yaml:"player"`
	HeadlessLoadDelay float64     `yaml:"headless_load_delay"` // Simulated load time without a window
}

// AtlasConfig describes a texture atlas on disk.
type AtlasConfig struct {
	Path    string `yaml:"path"`
	TileW   int    `yaml:"tile_w"`
	TileH   int    `yaml:"tile_h"`
	Columns int    `yaml:"columns"`
	Rows    int    `yaml:"rows"`
}

// CameraConfig holds the player camera and fly-camera parameters.
type CameraConfig struct {
	Position    Vec3    `yaml:"position"`
	Target      Vec3    `yaml:"target"`
	Fovy        float64 `yaml:"fovy"`
	ToggleKey   string  `yaml:"toggle_key"`
	FlySpeed    float64 `yaml:"fly_speed"`
	Sensitivity float64 `yaml:"sensitivity"` // Degrees per pixel of mouse motion
	MaxPitch    float64 `yaml:"max_pitch"`   // Degrees
}

// SceneConfig holds static scenery parameters.
type SceneConfig struct {
	PlaneSize  float64     `yaml:"plane_size"`
	PlaneColor string      `yaml:"plane_color"`
	CubeSize   float64     `yaml:"cube_size"`
	CubeColor  string      `yaml:"cube_color"`
	CubeAt     Vec3        `yaml:"cube_at"`
	Light      LightConfig `yaml:"light"`
}

// LightConfig holds point light parameters.
type LightConfig struct {
	Position  Vec3    `yaml:"position"`
	Intensity float64 `yaml:"intensity"`
	Shadows   bool    `yaml:"shadows"`
}

// TowerConfig holds tower and projectile parameters.
type TowerConfig struct {
	Position      Vec3         `yaml:"position"`
	Size          Vec3         `yaml:"size"`
	Color         string       `yaml:"color"`
	ShootInterval float64      `yaml:"shoot_interval"`
	Shooting      bool         `yaml:"shooting"` // Projectile spawning; off unless explicitly enabled
	Bullet        BulletConfig `yaml:"bullet"`
}

// BulletConfig holds projectile parameters.
type BulletConfig struct {
	Position Vec3    `yaml:"position"` // World position, not relative to the tower
	Yaw      float64 `yaml:"yaw"`      // Radians about +Y
	Size     float64 `yaml:"size"`
	Color    string  `yaml:"color"`
	Lifetime float64 `yaml:"lifetime"`
}

// PlayerConfig holds player sprite parameters.
type PlayerConfig struct {
	Spawn          Vec3    `yaml:"spawn"`
	LookAt         Vec3    `yaml:"look_at"`
	PixelsPerMetre float64 `yaml:"pixels_per_metre"`
	StartIndex     int     `yaml:"start_index"`
	FramePeriod    float64 `yaml:"frame_period"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window"`
	PerfCollectorWindow int     `yaml:"perf_collector_window"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	AtlasLen       int     // Player atlas frame count
	MaxPitchRad    float64 // Camera.MaxPitch in radians
	SensitivityRad float64 // Camera.Sensitivity in radians per pixel
	ClearRGBA      RGBA    // Screen.ClearColor parsed
}

// RGBA is an 8-bit color.
type RGBA struct {
	R, G, B, A uint8
}

// ParseColor parses "#rrggbb" or "#rrggbbaa" (the leading # is optional).
func ParseColor(s string) (RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// MustColor is like ParseColor but panics on error.
func MustColor(s string) RGBA {
	c, err := ParseColor(s)
	if err != nil {
		panic(fmt.Sprintf("config: %v", err))
	}
	return c
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

// validate rejects values the game cannot run with.
func (c *Config) validate() error {
	a := c.Assets.Player
	if a.Columns < 1 || a.Rows < 1 {
		return fmt.Errorf("assets.player: atlas needs at least one column and row, got %dx%d", a.Columns, a.Rows)
	}
	if a.TileW < 1 || a.TileH < 1 {
		return fmt.Errorf("assets.player: tile size must be positive, got %dx%d", a.TileW, a.TileH)
	}
	if c.Player.StartIndex < 0 || c.Player.StartIndex >= a.Columns*a.Rows {
		return fmt.Errorf("player.start_index %d outside atlas of %d frames", c.Player.StartIndex, a.Columns*a.Rows)
	}
	if c.Player.FramePeriod <= 0 || c.Tower.ShootInterval <= 0 || c.Tower.Bullet.Lifetime <= 0 {
		return fmt.Errorf("timer periods must be positive")
	}
	if c.Physics.DT <= 0 {
		return fmt.Errorf("physics.dt must be positive, got %g", c.Physics.DT)
	}
	for _, s := range []string{c.Screen.ClearColor, c.Scene.PlaneColor, c.Scene.CubeColor, c.Tower.Color, c.Tower.Bullet.Color} {
		if _, err := ParseColor(s); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.AtlasLen = c.Assets.Player.Columns * c.Assets.Player.Rows
	c.Derived.MaxPitchRad = c.Camera.MaxPitch * math.Pi / 180
	c.Derived.SensitivityRad = c.Camera.Sensitivity * math.Pi / 180
	c.Derived.ClearRGBA = MustColor(c.Screen.ClearColor)
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

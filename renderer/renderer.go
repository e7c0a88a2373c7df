// Package renderer draws the game world and debug overlays with raylib.
package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/octosurvivors/components"
	"github.com/pthm-cable/octosurvivors/config"
	"github.com/pthm-cable/octosurvivors/game"
	"github.com/pthm-cable/octosurvivors/platform"
	"github.com/pthm-cable/octosurvivors/state"
	"github.com/pthm-cable/octosurvivors/ui"
)

// Renderer draws a frame: the 3D scene from the player camera, then the
// HUD and whichever overlays are enabled. It implements game.Drawer.
type Renderer struct {
	cfg     *config.Config
	cameras *ecs.Filter3[components.Transform, components.Camera, components.PlayerCamera]

	scene   *SceneRenderer
	sprites *SpriteRenderer

	hud       *ui.HUD
	perfPanel *ui.PerfPanel
	controls  *ui.ControlsPanel
	inspector *ui.Inspector
}

// New creates a renderer for w. Call after the window is open.
func New(w *ecs.World, cfg *config.Config, textures *platform.Textures) *Renderer {
	return &Renderer{
		cfg:       cfg,
		cameras:   ecs.NewFilter3[components.Transform, components.Camera, components.PlayerCamera](w),
		scene:     NewSceneRenderer(w),
		sprites:   NewSpriteRenderer(w, textures),
		hud:       ui.NewHUD(),
		perfPanel: ui.NewPerfPanel(10, 260),
		controls:  ui.NewControlsPanel(10, 0, 260),
		inspector: ui.NewInspector(w),
	}
}

// Draw implements game.Drawer.
func (r *Renderer) Draw(w *ecs.World, s game.Status) {
	screenW := int32(rl.GetScreenWidth())
	screenH := int32(rl.GetScreenHeight())

	rl.BeginDrawing()
	rl.ClearBackground(color(r.cfg.Derived.ClearRGBA))

	if cam, ok := r.camera(); ok {
		rl.BeginMode3D(cam)
		r.scene.Draw()
		r.scene.DrawLights()
		if s.GameState == state.Ready {
			r.sprites.Draw(cam)
		}
		rl.EndMode3D()
	}

	if s.GameState == state.Loading {
		r.hud.DrawLoading(s, screenW, screenH)
	}
	r.hud.Draw(r.cfg.Screen.Title, s, screenW, screenH)

	if s.Overlays.IsEnabled(game.OverlayDiagnostics) {
		bottom := r.perfPanel.Draw(s)
		r.controls.SetPosition(10, bottom+10)
		r.controls.Draw(s.Overlays)
		rl.DrawFPS(screenW-90, screenH-25)
	}
	if s.Overlays.IsEnabled(game.OverlayInspector) {
		r.inspector.Draw(screenW, screenH)
	}

	rl.EndDrawing()
}

// camera returns the raylib camera for the player camera entity.
func (r *Renderer) camera() (rl.Camera3D, bool) {
	var out rl.Camera3D
	found := false
	query := r.cameras.Query()
	for query.Next() {
		if !found {
			tr, cam, _ := query.Get()
			out = camera3D(tr, cam)
			found = true
		}
	}
	return out, found
}

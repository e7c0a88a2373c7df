package systems

import (
	"log/slog"
	"time"

	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/octosurvivors/camera"
	"github.com/pthm-cable/octosurvivors/components"
	"github.com/pthm-cable/octosurvivors/input"
	"github.com/pthm-cable/octosurvivors/state"
)

// FlySettings configures the controller granted to cameras in free mode.
type FlySettings struct {
	Speed       float64 // Units per second
	Sensitivity float64 // Radians per pixel
	MaxPitch    float64 // Radians
}

// FreeCamSystem switches the player camera between locked and free flight.
type FreeCamSystem struct {
	toggleKey input.Key
	settings  FlySettings

	cameras    *ecs.Filter1[components.PlayerCamera]
	flyers     *ecs.Filter2[components.Transform, components.FlyCamera]
	flyMap     *ecs.Map[components.FlyCamera]
	transforms *ecs.Map[components.Transform]
}

// NewFreeCamSystem creates a new free-camera system.
func NewFreeCamSystem(w *ecs.World, toggleKey input.Key, settings FlySettings) *FreeCamSystem {
	return &FreeCamSystem{
		toggleKey:  toggleKey,
		settings:   settings,
		cameras:    ecs.NewFilter1[components.PlayerCamera](w),
		flyers:     ecs.NewFilter2[components.Transform, components.FlyCamera](w),
		flyMap:     ecs.NewMap[components.FlyCamera](w),
		transforms: ecs.NewMap[components.Transform](w),
	}
}

// Toggle runs on every frame. On a press edge of the toggle key it flips the
// cursor, flips the free-cam state and grants or revokes FlyCamera on every
// PlayerCamera present now. Returns true if a toggle happened.
func (s *FreeCamSystem) Toggle(tracker *input.Tracker, fc *state.FreeCam, cursor *input.Cursor, backend input.CursorBackend) bool {
	if !tracker.JustPressed(s.toggleKey) {
		return false
	}

	cursor.Toggle()
	backend.ApplyCursor(*cursor)
	next := fc.Toggle()

	// Collect first: adding or removing components is a structural change
	var cams []ecs.Entity
	query := s.cameras.Query()
	for query.Next() {
		cams = append(cams, query.Entity())
	}

	for _, e := range cams {
		switch next {
		case state.Free:
			if !s.flyMap.Has(e) {
				fly := components.FlyCamera{Controller: *s.controllerFor(e)}
				s.flyMap.Add(e, &fly)
			}
		case state.Locked:
			if s.flyMap.Has(e) {
				s.flyMap.Remove(e)
			}
		}
	}

	slog.Info("free_cam_toggled",
		"state", next.String(),
		"cursor_grab", cursor.Grab.String(),
		"cursor_visible", cursor.Visible,
		"cameras", len(cams),
	)
	return true
}

// controllerFor builds a controller matching the entity's current view.
func (s *FreeCamSystem) controllerFor(e ecs.Entity) *camera.Controller {
	pos := r3.Vec{}
	target := r3.Vec{Z: -1}
	if s.transforms.Has(e) {
		tr := s.transforms.Get(e)
		pos = tr.Translation
		target = r3.Add(pos, tr.Forward())
	}
	return camera.New(pos, target, s.settings.Speed, s.settings.Sensitivity, s.settings.MaxPitch)
}

// Fly moves every FlyCamera entity from the tracked input.
// W/S move forward and back, D/A strafe, Space/LeftShift rise and sink,
// the mouse looks around and Home restores the initial orientation.
func (s *FreeCamSystem) Fly(tracker *input.Tracker, dt time.Duration) {
	dx, dy := tracker.MouseDelta()
	axes := camera.Axes{
		Forward: tracker.Axis(input.KeyW, input.KeyS),
		Right:   tracker.Axis(input.KeyD, input.KeyA),
		Up:      tracker.Axis(input.KeySpace, input.KeyLeftShift),
	}
	reset := tracker.JustPressed(input.KeyHome)

	query := s.flyers.Query()
	for query.Next() {
		tr, fly := query.Get()
		if reset {
			fly.Reset()
		}
		fly.Look(dx, dy)
		tr.Translation = fly.Move(tr.Translation, axes, dt.Seconds())
		tr.Rotation = fly.Rotation()
	}
}

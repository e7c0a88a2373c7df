// Package components defines ECS components for the game world.
package components

import (
	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/octosurvivors/assets"
	"github.com/pthm-cable/octosurvivors/camera"
	"github.com/pthm-cable/octosurvivors/config"
	"github.com/pthm-cable/octosurvivors/timer"
)

// Name is a human-readable label shown in the inspector.
type Name struct {
	Value string
}

// Player holds the player sprite's movement state.
type Player struct {
	LookingAt r3.Vec  // Point the sprite initially faces
	FacingVel float32 // Angular velocity of the facing direction
	Position  r3.Vec
	Velocity  r3.Vec
}

// DefaultPlayer returns a player looking at the default camera position.
func DefaultPlayer() Player {
	return Player{
		LookingAt: r3.Vec{X: 10, Y: 10, Z: 10},
	}
}

// Tower shoots on a repeating timer.
type Tower struct {
	ShootingTimer timer.Timer `inspect:"bar"`
}

// Lifetime removes its entity (and descendants) when the timer finishes.
// The timer is one-shot and never reset.
type Lifetime struct {
	Timer timer.Timer `inspect:"bar"`
}

// AnimationTimer advances an AtlasSprite frame on each completion.
type AnimationTimer struct {
	Timer timer.Timer `inspect:"bar"`
}

// AtlasSprite is a flat sprite drawn from one frame of a texture atlas.
type AtlasSprite struct {
	Texture        assets.TextureID `inspect:"skip"`
	Index          int              // Current frame
	Len            int              // Frames in the atlas
	Columns        int              `inspect:"skip"`
	TileW, TileH   int
	PixelsPerMetre float32 `inspect:"label,fmt:%.0f"`
	PartialAlpha   bool
	Unlit          bool
}

// Advance moves to the next frame, wrapping at Len.
func (s *AtlasSprite) Advance() {
	if s.Len <= 0 {
		return
	}
	s.Index = (s.Index + 1) % s.Len
}

// Size returns the sprite's world-space width and height.
func (s *AtlasSprite) Size() (w, h float32) {
	ppm := s.PixelsPerMetre
	if ppm <= 0 {
		ppm = 1
	}
	return float32(s.TileW) / ppm, float32(s.TileH) / ppm
}

// FaceCamera tags entities that turn toward the player camera every frame.
type FaceCamera struct{}

// PlayerCamera tags the single active camera.
type PlayerCamera struct{}

// Bullet tags projectiles spawned by towers.
type Bullet struct{}

// Camera holds projection parameters.
type Camera struct {
	Fovy float32 // Vertical field of view in degrees
}

// FlyCamera grants free movement to a camera entity.
// Its presence is the capability: it is added and removed as a unit.
type FlyCamera struct {
	camera.Controller
}

// Shape selects a primitive mesh.
type Shape uint8

const (
	ShapePlane Shape = iota
	ShapeCube
	ShapeBox
	ShapeSphere
)

func (s Shape) String() string {
	switch s {
	case ShapePlane:
		return "plane"
	case ShapeCube:
		return "cube"
	case ShapeBox:
		return "box"
	case ShapeSphere:
		return "sphere"
	default:
		return "unknown"
	}
}

// Mesh is a primitive shape. Size is the full extent on each axis
// (plane: X/Z, sphere: X is the radius).
type Mesh struct {
	Shape Shape
	Size  r3.Vec
}

// Material holds surface color.
type Material struct {
	Color config.RGBA
}

// PointLight emits light from its transform's translation.
type PointLight struct {
	Intensity float32
	Shadows   bool
}

// Parent links a child entity to its parent for recursive despawn.
type Parent struct {
	Entity ecs.Entity
}

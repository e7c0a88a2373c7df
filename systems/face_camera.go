package systems

import (
	"fmt"

	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/octosurvivors/components"
)

// FaceCameraSystem turns billboard entities toward the camera about the
// vertical axis only.
type FaceCameraSystem struct {
	cameras *ecs.Filter2[components.Transform, components.Camera]
	sprites *ecs.Filter2[components.Transform, components.FaceCamera]
}

// NewFaceCameraSystem creates a new face-camera system.
func NewFaceCameraSystem(w *ecs.World) *FaceCameraSystem {
	return &FaceCameraSystem{
		cameras: ecs.NewFilter2[components.Transform, components.Camera](w),
		sprites: ecs.NewFilter2[components.Transform, components.FaceCamera](w).
			Without(ecs.C[components.Camera]()),
	}
}

// Update orients every FaceCamera entity so its forward axis points at the
// camera projected onto the entity's own height, with +Y up.
// It panics unless exactly one camera exists.
func (s *FaceCameraSystem) Update() {
	cam := s.cameraPosition()

	query := s.sprites.Query()
	for query.Next() {
		tr, _ := query.Get()
		target := r3.Vec{X: cam.X, Y: tr.Translation.Y, Z: cam.Z}
		// Camera straight overhead: keep the previous facing
		tr.LookAt(target, Up)
	}
}

func (s *FaceCameraSystem) cameraPosition() r3.Vec {
	var pos r3.Vec
	n := 0
	query := s.cameras.Query()
	for query.Next() {
		tr, _ := query.Get()
		pos = tr.Translation
		n++
	}
	if n != 1 {
		panic(fmt.Sprintf("systems: expected exactly one camera, found %d", n))
	}
	return pos
}

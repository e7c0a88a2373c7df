package renderer

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/octosurvivors/components"
	"github.com/pthm-cable/octosurvivors/config"
)

func vec3(v r3.Vec) rl.Vector3 {
	return rl.NewVector3(float32(v.X), float32(v.Y), float32(v.Z))
}

func color(c config.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

// axisAngle converts a unit quaternion to a rotation in degrees about an axis,
// as rl.Rotatef expects.
func axisAngle(q quat.Number) (deg float32, axis rl.Vector3) {
	if q.Real > 1 {
		q.Real = 1
	} else if q.Real < -1 {
		q.Real = -1
	}
	angle := 2 * math.Acos(q.Real)
	s := math.Sqrt(1 - q.Real*q.Real)
	if s < 1e-9 {
		return 0, rl.NewVector3(0, 1, 0)
	}
	return float32(angle * 180 / math.Pi), rl.NewVector3(float32(q.Imag/s), float32(q.Jmag/s), float32(q.Kmag/s))
}

// camera3D builds the raylib camera for a transform. Local -Z is forward.
func camera3D(tr *components.Transform, cam *components.Camera) rl.Camera3D {
	pos := tr.Translation
	return rl.Camera3D{
		Position:   vec3(pos),
		Target:     vec3(r3.Add(pos, tr.Forward())),
		Up:         vec3(tr.Up()),
		Fovy:       cam.Fovy,
		Projection: rl.CameraPerspective,
	}
}

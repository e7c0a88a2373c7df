package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/octosurvivors/components"
)

// SceneRenderer draws primitive meshes and point lights.
type SceneRenderer struct {
	meshes *ecs.Filter3[components.Transform, components.Mesh, components.Material]
	lights *ecs.Filter2[components.Transform, components.PointLight]
}

// NewSceneRenderer creates a scene renderer for w.
func NewSceneRenderer(w *ecs.World) *SceneRenderer {
	return &SceneRenderer{
		meshes: ecs.NewFilter3[components.Transform, components.Mesh, components.Material](w),
		lights: ecs.NewFilter2[components.Transform, components.PointLight](w),
	}
}

// Draw renders every mesh at its transform. Must be called inside BeginMode3D.
func (r *SceneRenderer) Draw() {
	query := r.meshes.Query()
	for query.Next() {
		tr, mesh, mat := query.Get()
		r.drawMesh(tr, mesh, mat)
	}
}

func (r *SceneRenderer) drawMesh(tr *components.Transform, mesh *components.Mesh, mat *components.Material) {
	c := color(mat.Color)
	size := vec3(mesh.Size)
	deg, axis := axisAngle(tr.Rotation)

	rl.PushMatrix()
	rl.Translatef(float32(tr.Translation.X), float32(tr.Translation.Y), float32(tr.Translation.Z))
	if deg != 0 {
		rl.Rotatef(deg, axis.X, axis.Y, axis.Z)
	}
	rl.Scalef(float32(tr.Scale.X), float32(tr.Scale.Y), float32(tr.Scale.Z))

	origin := rl.Vector3Zero()
	switch mesh.Shape {
	case components.ShapePlane:
		rl.DrawPlane(origin, rl.NewVector2(size.X, size.Z), c)
	case components.ShapeCube, components.ShapeBox:
		rl.DrawCubeV(origin, size, c)
		rl.DrawCubeWiresV(origin, size, rl.Fade(rl.Black, 0.3))
	case components.ShapeSphere:
		rl.DrawSphere(origin, size.X, c)
	}
	rl.PopMatrix()
}

// DrawLights renders a marker for each point light and, for shadow casters,
// a drop line to the ground.
func (r *SceneRenderer) DrawLights() {
	query := r.lights.Query()
	for query.Next() {
		tr, light := query.Get()
		pos := vec3(tr.Translation)
		// Brighter marker for stronger lights
		alpha := light.Intensity / 2000
		if alpha > 1 {
			alpha = 1
		}
		rl.DrawSphere(pos, 0.2, rl.Fade(rl.Yellow, 0.4+0.6*alpha))
		if light.Shadows {
			rl.DrawLine3D(pos, rl.NewVector3(pos.X, 0, pos.Z), rl.Fade(rl.Yellow, 0.4))
		}
	}
}

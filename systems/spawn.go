package systems

import (
	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/octosurvivors/assets"
	"github.com/pthm-cable/octosurvivors/components"
	"github.com/pthm-cable/octosurvivors/config"
	"github.com/pthm-cable/octosurvivors/timer"
)

// Entity names shown in the inspector.
const (
	NameCamera = "Camera"
	NamePlane  = "Plane"
	NameCube   = "Cube"
	NameSun    = "Sun"
	NameTower  = "Tower"
	NamePlayer = "PlayerSprite"
	NameBullet = "Bullet"
)

// Up is the world up axis.
var Up = r3.Vec{Y: 1}

// Spawner creates the game's entities.
type Spawner struct {
	cfg   *config.Config
	hooks *Hooks

	cameraMap *ecs.Map4[components.Transform, components.Camera, components.PlayerCamera, components.Name]
	meshMap   *ecs.Map4[components.Transform, components.Mesh, components.Material, components.Name]
	lightMap  *ecs.Map3[components.Transform, components.PointLight, components.Name]
	towerMap  *ecs.Map5[components.Transform, components.Mesh, components.Material, components.Tower, components.Name]
	playerMap *ecs.Map6[components.Transform, components.AtlasSprite, components.AnimationTimer, components.FaceCamera, components.Player, components.Name]
	bulletMap *ecs.Map6[components.Transform, components.Mesh, components.Material, components.Bullet, components.Lifetime, components.Name]
}

// NewSpawner creates a spawner for the world.
func NewSpawner(w *ecs.World, cfg *config.Config, hooks *Hooks) *Spawner {
	return &Spawner{
		cfg:       cfg,
		hooks:     hooks,
		cameraMap: ecs.NewMap4[components.Transform, components.Camera, components.PlayerCamera, components.Name](w),
		meshMap:   ecs.NewMap4[components.Transform, components.Mesh, components.Material, components.Name](w),
		lightMap:  ecs.NewMap3[components.Transform, components.PointLight, components.Name](w),
		towerMap:  ecs.NewMap5[components.Transform, components.Mesh, components.Material, components.Tower, components.Name](w),
		playerMap: ecs.NewMap6[components.Transform, components.AtlasSprite, components.AnimationTimer, components.FaceCamera, components.Player, components.Name](w),
		bulletMap: ecs.NewMap6[components.Transform, components.Mesh, components.Material, components.Bullet, components.Lifetime, components.Name](w),
	}
}

// SpawnCamera creates the player camera looking at its target.
func (s *Spawner) SpawnCamera() ecs.Entity {
	c := s.cfg.Camera
	tr := components.At(c.Position.R3()).LookingAt(c.Target.R3(), Up)
	e := s.cameraMap.NewEntity(
		&tr,
		&components.Camera{Fovy: float32(c.Fovy)},
		&components.PlayerCamera{},
		&components.Name{Value: NameCamera},
	)
	s.hooks.spawned(e, NameCamera)
	return e
}

// SpawnScene creates the ground plane, the cube and the light.
func (s *Spawner) SpawnScene() []ecs.Entity {
	sc := s.cfg.Scene

	plane := components.NewTransform(0, 0, 0)
	cube := components.At(sc.CubeAt.R3())
	sun := components.At(sc.Light.Position.R3())

	entities := []ecs.Entity{
		s.meshMap.NewEntity(
			&plane,
			&components.Mesh{Shape: components.ShapePlane, Size: r3.Vec{X: sc.PlaneSize, Z: sc.PlaneSize}},
			&components.Material{Color: config.MustColor(sc.PlaneColor)},
			&components.Name{Value: NamePlane},
		),
		s.meshMap.NewEntity(
			&cube,
			&components.Mesh{Shape: components.ShapeCube, Size: r3.Vec{X: sc.CubeSize, Y: sc.CubeSize, Z: sc.CubeSize}},
			&components.Material{Color: config.MustColor(sc.CubeColor)},
			&components.Name{Value: NameCube},
		),
		s.lightMap.NewEntity(
			&sun,
			&components.PointLight{Intensity: float32(sc.Light.Intensity), Shadows: sc.Light.Shadows},
			&components.Name{Value: NameSun},
		),
	}
	for i, name := range []string{NamePlane, NameCube, NameSun} {
		s.hooks.spawned(entities[i], name)
	}
	return entities
}

// SpawnTower creates the tower with its repeating shooting timer.
func (s *Spawner) SpawnTower() ecs.Entity {
	tc := s.cfg.Tower
	tr := components.At(tc.Position.R3())
	e := s.towerMap.NewEntity(
		&tr,
		&components.Mesh{Shape: components.ShapeBox, Size: tc.Size.R3()},
		&components.Material{Color: config.MustColor(tc.Color)},
		&components.Tower{ShootingTimer: timer.FromSeconds(tc.ShootInterval, timer.Repeating)},
		&components.Name{Value: NameTower},
	)
	s.hooks.spawned(e, NameTower)
	return e
}

// SpawnPlayerSprite creates the animated player sprite from a loaded atlas.
func (s *Spawner) SpawnPlayerSprite(atlas *assets.Atlas) ecs.Entity {
	pc := s.cfg.Player
	tr := components.At(pc.Spawn.R3()).LookingAt(pc.LookAt.R3(), Up)
	player := components.DefaultPlayer()
	player.LookingAt = pc.LookAt.R3()

	e := s.playerMap.NewEntity(
		&tr,
		&components.AtlasSprite{
			Texture:        atlas.Texture,
			Index:          pc.StartIndex,
			Len:            atlas.Layout.Len(),
			Columns:        atlas.Layout.Columns,
			TileW:          atlas.Layout.TileW,
			TileH:          atlas.Layout.TileH,
			PixelsPerMetre: float32(pc.PixelsPerMetre),
			PartialAlpha:   true,
			Unlit:          true,
		},
		&components.AnimationTimer{Timer: timer.FromSeconds(pc.FramePeriod, timer.Repeating)},
		&components.FaceCamera{},
		&player,
		&components.Name{Value: NamePlayer},
	)
	s.hooks.spawned(e, NamePlayer)
	return e
}

// SpawnBullet creates a short-lived projectile.
func (s *Spawner) SpawnBullet() ecs.Entity {
	bc := s.cfg.Tower.Bullet
	tr := components.At(bc.Position.R3()).WithRotationY(bc.Yaw)
	e := s.bulletMap.NewEntity(
		&tr,
		&components.Mesh{Shape: components.ShapeCube, Size: r3.Vec{X: bc.Size, Y: bc.Size, Z: bc.Size}},
		&components.Material{Color: config.MustColor(bc.Color)},
		&components.Bullet{},
		&components.Lifetime{Timer: timer.FromSeconds(bc.Lifetime, timer.Once)},
		&components.Name{Value: NameBullet},
	)
	s.hooks.spawned(e, NameBullet)
	return e
}

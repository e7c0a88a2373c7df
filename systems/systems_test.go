package systems

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/octosurvivors/assets"
	"github.com/pthm-cable/octosurvivors/components"
	"github.com/pthm-cable/octosurvivors/config"
	"github.com/pthm-cable/octosurvivors/input"
	"github.com/pthm-cable/octosurvivors/state"
	"github.com/pthm-cable/octosurvivors/timer"
)

type fixture struct {
	world   *ecs.World
	cfg     *config.Config
	hooks   *Hooks
	spawner *Spawner

	spawned   []string
	despawned []string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("loading config: %v", err)
	}
	f := &fixture{world: ecs.NewWorld(), cfg: cfg}
	f.hooks = &Hooks{
		OnSpawn:   func(_ ecs.Entity, name string) { f.spawned = append(f.spawned, name) },
		OnDespawn: func(_ ecs.Entity, name string) { f.despawned = append(f.despawned, name) },
	}
	f.spawner = NewSpawner(f.world, cfg, f.hooks)
	return f
}

func (f *fixture) atlas() *assets.Atlas {
	a := assets.NewImageAssets(f.cfg.Assets).Run
	a.Texture = 7
	return &a
}

// count returns the number of live entities with component T.
func count[T any](w *ecs.World) int {
	n := 0
	query := ecs.NewFilter1[T](w).Query()
	for query.Next() {
		n++
	}
	return n
}

func near(a, b r3.Vec) bool {
	return r3.Norm(r3.Sub(a, b)) < 1e-6
}

func TestSpawnStartup(t *testing.T) {
	f := newFixture(t)
	f.spawner.SpawnCamera()
	f.spawner.SpawnScene()
	f.spawner.SpawnTower()

	if got := count[components.Name](f.world); got != 5 {
		t.Errorf("expected 5 startup entities, got %d", got)
	}
	if got := count[components.PlayerCamera](f.world); got != 1 {
		t.Errorf("expected 1 player camera, got %d", got)
	}
	if got := count[components.Tower](f.world); got != 1 {
		t.Errorf("expected 1 tower, got %d", got)
	}
	if got := count[components.AtlasSprite](f.world); got != 0 {
		t.Errorf("player sprite must not exist before assets load, got %d", got)
	}
	want := "Camera,Plane,Cube,Sun,Tower"
	if got := strings.Join(f.spawned, ","); got != want {
		t.Errorf("spawn order = %s, want %s", got, want)
	}
}

func TestSpawnCameraLooksAtOrigin(t *testing.T) {
	f := newFixture(t)
	e := f.spawner.SpawnCamera()
	tr := ecs.NewMap[components.Transform](f.world).Get(e)

	want := r3.Unit(r3.Vec{X: -1, Y: -1, Z: -1})
	if !near(tr.Forward(), want) {
		t.Errorf("camera forward = %+v, want %+v", tr.Forward(), want)
	}
}

func TestSpawnPlayerSprite(t *testing.T) {
	f := newFixture(t)
	e := f.spawner.SpawnPlayerSprite(f.atlas())

	sprite := ecs.NewMap[components.AtlasSprite](f.world).Get(e)
	if sprite.Index != 1 || sprite.Len != 3 {
		t.Errorf("expected index 1 of 3, got %d of %d", sprite.Index, sprite.Len)
	}
	if sprite.Texture != 7 {
		t.Errorf("sprite should reference the atlas texture, got %d", sprite.Texture)
	}
	if !sprite.PartialAlpha || !sprite.Unlit {
		t.Error("sprite should be unlit with partial alpha")
	}

	tr := ecs.NewMap[components.Transform](f.world).Get(e)
	if !near(tr.Translation, r3.Vec{X: -3, Y: 1, Z: 2}) {
		t.Errorf("unexpected spawn position %+v", tr.Translation)
	}
	want := r3.Unit(r3.Vec{X: 13, Y: 9, Z: 8})
	if !near(tr.Forward(), want) {
		t.Errorf("sprite should initially face (10,10,10), forward = %+v", tr.Forward())
	}
	if !ecs.NewMap[components.FaceCamera](f.world).Has(e) {
		t.Error("sprite should be tagged FaceCamera")
	}
}

func TestAnimateSpriteCycle(t *testing.T) {
	f := newFixture(t)
	e := f.spawner.SpawnPlayerSprite(f.atlas())
	anim := NewAnimationSystem(f.world)
	sprites := ecs.NewMap[components.AtlasSprite](f.world)

	anim.Update(timer.Seconds(0.39))
	if got := sprites.Get(e).Index; got != 1 {
		t.Fatalf("index should not change before 0.4s, got %d", got)
	}

	anim.Update(timer.Seconds(0.01))
	want := []int{2, 0, 1}
	if got := sprites.Get(e).Index; got != want[0] {
		t.Fatalf("after first completion expected %d, got %d", want[0], got)
	}
	for _, w := range want[1:] {
		anim.Update(400 * time.Millisecond)
		if got := sprites.Get(e).Index; got != w {
			t.Errorf("expected index %d, got %d", w, got)
		}
	}
}

func TestFaceCameraHorizontalOnly(t *testing.T) {
	f := newFixture(t)
	f.spawner.SpawnCamera()
	e := f.spawner.SpawnPlayerSprite(f.atlas())
	transforms := ecs.NewMap[components.Transform](f.world)

	NewFaceCameraSystem(f.world).Update()

	tr := transforms.Get(e)
	fwd := tr.Forward()
	if math.Abs(fwd.Y) > 1e-9 {
		t.Errorf("forward should be horizontal, got %+v", fwd)
	}
	want := r3.Unit(r3.Vec{X: 13, Z: 8})
	if !near(fwd, want) {
		t.Errorf("forward = %+v, want %+v", fwd, want)
	}
	if up := tr.Up(); !near(up, Up) {
		t.Errorf("up should stay +Y, got %+v", up)
	}
	if !near(tr.Translation, r3.Vec{X: -3, Y: 1, Z: 2}) {
		t.Errorf("facing must not move the sprite, got %+v", tr.Translation)
	}
}

func TestFaceCameraLeavesCameraAlone(t *testing.T) {
	f := newFixture(t)
	cam := f.spawner.SpawnCamera()
	ecs.NewMap[components.FaceCamera](f.world).Add(cam, &components.FaceCamera{})
	transforms := ecs.NewMap[components.Transform](f.world)
	before := transforms.Get(cam).Rotation

	NewFaceCameraSystem(f.world).Update()

	if transforms.Get(cam).Rotation != before {
		t.Error("camera entities are excluded from facing")
	}
}

func TestFaceCameraRequiresExactlyOneCamera(t *testing.T) {
	tests := []struct {
		name    string
		cameras int
	}{
		{"none", 0},
		{"two", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			for i := 0; i < tt.cameras; i++ {
				f.spawner.SpawnCamera()
			}
			f.spawner.SpawnPlayerSprite(f.atlas())
			sys := NewFaceCameraSystem(f.world)

			defer func() {
				r := recover()
				if r == nil {
					t.Fatal("expected panic")
				}
				if !strings.Contains(r.(string), "expected exactly one camera") {
					t.Errorf("unexpected panic message: %v", r)
				}
			}()
			sys.Update()
		})
	}
}

func TestTowerShootingDisabled(t *testing.T) {
	f := newFixture(t)
	f.spawner.SpawnTower()
	sys := NewTowerSystem(f.world, f.spawner, false)

	for i := 0; i < 600; i++ {
		sys.Update(timer.Seconds(1.0 / 60))
	}
	if got := count[components.Bullet](f.world); got != 0 {
		t.Errorf("disabled towers must not shoot, got %d bullets", got)
	}
}

func TestTowerShootingEnabled(t *testing.T) {
	f := newFixture(t)
	f.spawner.SpawnTower()
	sys := NewTowerSystem(f.world, f.spawner, true)

	if n := sys.Update(900 * time.Millisecond); n != 0 {
		t.Fatalf("no shot before 1s, got %d", n)
	}
	if n := sys.Update(100 * time.Millisecond); n != 1 {
		t.Fatalf("expected one shot at 1s, got %d", n)
	}

	filter := ecs.NewFilter2[components.Transform, components.Bullet](f.world)
	query := filter.Query()
	found := 0
	for query.Next() {
		tr, _ := query.Get()
		found++
		if !near(tr.Translation, r3.Vec{X: 2, Y: 2, Z: 2}) {
			t.Errorf("bullet should spawn at (2,2,2), got %+v", tr.Translation)
		}
		if !near(tr.Forward(), r3.Vec{X: 1}) {
			t.Errorf("bullet rotated -pi/2 about Y should face +X, got %+v", tr.Forward())
		}
	}
	if found != 1 {
		t.Errorf("expected 1 bullet, got %d", found)
	}
}

func TestLifetimeBoundary(t *testing.T) {
	f := newFixture(t)
	bullet := f.spawner.SpawnBullet()
	sys := NewLifetimeSystem(f.world, f.hooks)

	if n := sys.Update(timer.Seconds(0.39)); n != 0 {
		t.Fatalf("nothing should expire at 0.39s, removed %d", n)
	}
	if !f.world.Alive(bullet) {
		t.Fatal("bullet should be present at 0.39s")
	}
	if n := sys.Update(timer.Seconds(0.02)); n != 1 {
		t.Fatalf("expected bullet removed at 0.41s, removed %d", n)
	}
	if f.world.Alive(bullet) {
		t.Error("bullet should be gone at 0.41s")
	}
	if len(f.despawned) != 1 || f.despawned[0] != NameBullet {
		t.Errorf("expected despawn hook for Bullet, got %v", f.despawned)
	}
}

func TestDespawnRecursive(t *testing.T) {
	f := newFixture(t)
	sys := NewLifetimeSystem(f.world, f.hooks)
	names := ecs.NewMap1[components.Name](f.world)
	lifetimes := ecs.NewMap[components.Lifetime](f.world)

	root := names.NewEntity(&components.Name{Value: "root"})
	child := names.NewEntity(&components.Name{Value: "child"})
	grandchild := names.NewEntity(&components.Name{Value: "grandchild"})
	other := names.NewEntity(&components.Name{Value: "other"})
	sys.Attach(child, root)
	sys.Attach(grandchild, child)

	lifetimes.Add(root, &components.Lifetime{Timer: timer.FromSeconds(0.1, timer.Once)})

	if n := sys.Update(100 * time.Millisecond); n != 3 {
		t.Fatalf("expected 3 entities removed, got %d", n)
	}
	for _, e := range []ecs.Entity{root, child, grandchild} {
		if f.world.Alive(e) {
			t.Errorf("entity %v should be removed with its parent", e)
		}
	}
	if !f.world.Alive(other) {
		t.Error("unrelated entity should survive")
	}
	if got := strings.Join(f.despawned, ","); got != "grandchild,child,root" {
		t.Errorf("expected deepest-first removal, got %s", got)
	}

	// Already gone: no-op
	if n := sys.DespawnRecursive(root); n != 0 {
		t.Errorf("despawning a dead entity should remove nothing, got %d", n)
	}
}

func TestDespawnRecursiveParentCycle(t *testing.T) {
	f := newFixture(t)
	sys := NewLifetimeSystem(f.world, f.hooks)
	names := ecs.NewMap1[components.Name](f.world)

	a := names.NewEntity(&components.Name{Value: "a"})
	b := names.NewEntity(&components.Name{Value: "b"})
	sys.Attach(b, a)
	sys.Attach(a, b)

	if n := sys.DespawnRecursive(a); n != 2 {
		t.Fatalf("expected 2 entities removed, got %d", n)
	}
	if f.world.Alive(a) || f.world.Alive(b) {
		t.Error("both entities of the cycle should be removed")
	}
	if got := strings.Join(f.despawned, ","); got != "b,a" {
		t.Errorf("expected b,a, got %s", got)
	}
}

type recordCursor struct {
	applied []input.Cursor
}

func (r *recordCursor) ApplyCursor(c input.Cursor) {
	r.applied = append(r.applied, c)
}

func TestFreeCamToggleEdges(t *testing.T) {
	f := newFixture(t)
	cam := f.spawner.SpawnCamera()
	sys := NewFreeCamSystem(f.world, input.KeyEscape, FlySettings{Speed: 8, Sensitivity: 0.01, MaxPitch: 1.5})
	flyMap := ecs.NewMap[components.FlyCamera](f.world)

	script := input.NewScript()
	script.Append(input.Hold(3, input.KeyEscape)...)
	script.Append(input.Idle(2)...)
	script.Append(input.Hold(1, input.KeyEscape)...)

	var tracker input.Tracker
	fc := state.NewFreeCam()
	cursor := input.NewCursor()
	backend := &recordCursor{}

	var toggledAt []int
	var freeAt []bool
	for tick := 0; tick < 6; tick++ {
		script.Advance()
		tracker.Update(script)
		if sys.Toggle(&tracker, fc, &cursor, backend) {
			toggledAt = append(toggledAt, tick)
		}
		freeAt = append(freeAt, flyMap.Has(cam))
	}

	if len(toggledAt) != 2 || toggledAt[0] != 0 || toggledAt[1] != 5 {
		t.Fatalf("expected toggles on ticks 0 and 5, got %v", toggledAt)
	}
	for tick, has := range freeAt {
		want := tick < 5
		if has != want {
			t.Errorf("tick %d: FlyCamera present = %v, want %v", tick, has, want)
		}
	}
	if fc.Current() != state.Locked {
		t.Errorf("two toggles should return to Locked, got %s", fc.Current())
	}
	if cursor != input.NewCursor() {
		t.Errorf("two toggles should restore the cursor, got %+v", cursor)
	}
	if len(backend.applied) != 2 || backend.applied[0].Grab != input.GrabLocked || backend.applied[0].Visible {
		t.Errorf("first toggle should lock and hide the cursor, got %+v", backend.applied)
	}
}

func TestFreeCamToggleWithoutCamera(t *testing.T) {
	f := newFixture(t)
	sys := NewFreeCamSystem(f.world, input.KeyEscape, FlySettings{Speed: 1})

	script := input.NewScript(input.Frame{Down: []input.Key{input.KeyEscape}})
	script.Advance()
	var tracker input.Tracker
	tracker.Update(script)
	fc := state.NewFreeCam()
	cursor := input.NewCursor()

	if !sys.Toggle(&tracker, fc, &cursor, input.NopCursor{}) {
		t.Fatal("expected toggle")
	}
	if !fc.IsFree() || cursor.Grab != input.GrabLocked {
		t.Error("state and cursor flip even with no camera")
	}
}

func TestFlyCameraMoves(t *testing.T) {
	f := newFixture(t)
	cam := f.spawner.SpawnCamera()
	sys := NewFreeCamSystem(f.world, input.KeyEscape, FlySettings{Speed: 8, Sensitivity: 0.01, MaxPitch: 1.5})
	transforms := ecs.NewMap[components.Transform](f.world)

	script := input.NewScript(input.Frame{Down: []input.Key{input.KeyEscape}})
	script.Append(input.Hold(60, input.KeyW)...)

	var tracker input.Tracker
	fc := state.NewFreeCam()
	cursor := input.NewCursor()

	start := transforms.Get(cam).Translation
	fwd := transforms.Get(cam).Forward()
	for tick := 0; tick < 61; tick++ {
		script.Advance()
		tracker.Update(script)
		sys.Toggle(&tracker, fc, &cursor, input.NopCursor{})
		sys.Fly(&tracker, timer.Seconds(1.0/60))
	}

	got := transforms.Get(cam).Translation
	want := r3.Add(start, r3.Scale(8, fwd))
	if r3.Norm(r3.Sub(got, want)) > 1e-6 {
		t.Errorf("after 1s of W expected %+v, got %+v", want, got)
	}
	if !near(transforms.Get(cam).Forward(), fwd) {
		t.Errorf("flying without mouse motion should keep the view, got %+v", transforms.Get(cam).Forward())
	}
}

func TestRegistryOrder(t *testing.T) {
	reg := NewSystemRegistry()
	want := []string{
		IDAssets, IDSpawnPlayer, IDAnimateSprite, IDFaceCamera,
		IDToggleCursor, IDFlyCamera, IDLifetime, IDTowerShooting,
	}
	ids := reg.IDs()
	if len(ids) != len(want) {
		t.Fatalf("expected %d systems, got %d", len(want), len(ids))
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("system %d = %s, want %s", i, ids[i], want[i])
		}
	}
	if reg.GetName(IDFaceCamera) != "Face Camera" {
		t.Errorf("unexpected name %q", reg.GetName(IDFaceCamera))
	}
	if reg.GetName("missing") != "missing" {
		t.Error("unknown IDs fall back to the ID")
	}
}

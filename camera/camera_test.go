package camera

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

const maxPitch = 89 * math.Pi / 180

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func nearVec(a, b r3.Vec) bool {
	return near(a.X, b.X) && near(a.Y, b.Y) && near(a.Z, b.Z)
}

func TestNewLooksAtTarget(t *testing.T) {
	pos := r3.Vec{X: 10, Y: 10, Z: 10}
	cam := New(pos, r3.Vec{}, 8, 0.01, maxPitch)

	want := r3.Unit(r3.Sub(r3.Vec{}, pos))
	if got := cam.Direction(); !nearVec(got, want) {
		t.Errorf("expected direction %v, got %v", want, got)
	}
}

func TestDirectionAtZero(t *testing.T) {
	cam := &Controller{MaxPitch: maxPitch}
	if got := cam.Direction(); !nearVec(got, r3.Vec{Z: -1}) {
		t.Errorf("expected -Z forward, got %v", got)
	}
	if got := cam.Right(); !nearVec(got, r3.Vec{X: 1}) {
		t.Errorf("expected +X right, got %v", got)
	}
}

func TestRotationMatchesDirection(t *testing.T) {
	cam := New(r3.Vec{X: 3, Y: 2, Z: -1}, r3.Vec{X: -4, Y: 0.5, Z: 7}, 1, 0.01, maxPitch)

	// Rotate -Z by the quaternion: q * v * conj(q)
	q := cam.Rotation()
	v := quat.Number{Kmag: -1}
	r := quat.Mul(quat.Mul(q, v), quat.Conj(q))
	got := r3.Vec{X: r.Imag, Y: r.Jmag, Z: r.Kmag}

	if !nearVec(got, cam.Direction()) {
		t.Errorf("rotation forward %v != direction %v", got, cam.Direction())
	}
}

func TestPitchClamp(t *testing.T) {
	cam := &Controller{Sensitivity: 1, MaxPitch: maxPitch}
	cam.Look(0, -1000) // mouse up
	if !near(cam.Pitch, maxPitch) {
		t.Errorf("expected pitch clamped to %f, got %f", maxPitch, cam.Pitch)
	}
	cam.Look(0, 2000)
	if !near(cam.Pitch, -maxPitch) {
		t.Errorf("expected pitch clamped to %f, got %f", -maxPitch, cam.Pitch)
	}
}

func TestYawWraps(t *testing.T) {
	cam := &Controller{Sensitivity: 1, MaxPitch: maxPitch}
	cam.Look(-7, 0)
	if cam.Yaw > math.Pi || cam.Yaw < -math.Pi {
		t.Errorf("yaw %f not wrapped to [-pi, pi]", cam.Yaw)
	}
}

func TestMoveForward(t *testing.T) {
	cam := &Controller{Speed: 4, MaxPitch: maxPitch}
	got := cam.Move(r3.Vec{}, Axes{Forward: 1}, 0.5)
	if !nearVec(got, r3.Vec{Z: -2}) {
		t.Errorf("expected (0,0,-2), got %v", got)
	}
}

func TestMoveDiagonalNormalized(t *testing.T) {
	cam := &Controller{Speed: 1, MaxPitch: maxPitch}
	got := cam.Move(r3.Vec{}, Axes{Forward: 1, Right: 1}, 1)
	if !near(r3.Norm(got), 1) {
		t.Errorf("diagonal step should have unit length, got %f", r3.Norm(got))
	}
}

func TestMoveUpIgnoresPitch(t *testing.T) {
	cam := &Controller{Speed: 1, Pitch: 0.7, MaxPitch: maxPitch}
	got := cam.Move(r3.Vec{}, Axes{Up: 1}, 1)
	if !nearVec(got, r3.Vec{Y: 1}) {
		t.Errorf("expected straight up, got %v", got)
	}
}

func TestLookAtDegenerateKeepsOrientation(t *testing.T) {
	cam := New(r3.Vec{X: 1}, r3.Vec{}, 1, 1, maxPitch)
	yaw, pitch := cam.Yaw, cam.Pitch
	cam.LookAt(r3.Vec{X: 2}, r3.Vec{X: 2})
	if cam.Yaw != yaw || cam.Pitch != pitch {
		t.Error("zero-length direction should not change orientation")
	}
}

func TestReset(t *testing.T) {
	cam := New(r3.Vec{X: 10, Y: 10, Z: 10}, r3.Vec{}, 1, 0.01, maxPitch)
	yaw, pitch := cam.Yaw, cam.Pitch
	cam.Look(120, -40)
	cam.Reset()
	if !near(cam.Yaw, yaw) || !near(cam.Pitch, pitch) {
		t.Errorf("expected (%f, %f), got (%f, %f)", yaw, pitch, cam.Yaw, cam.Pitch)
	}
}

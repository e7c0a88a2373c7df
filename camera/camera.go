// Package camera provides a fly-camera controller for the 3D viewport.
package camera

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Controller steers a free-flying camera with yaw/pitch mouse look.
// Forward is -Z at zero yaw and pitch; +Y is up.
type Controller struct {
	// Orientation in radians
	Yaw, Pitch float64 `inspect:"angle"`

	// Units per second
	Speed float64

	// Radians of rotation per unit of mouse motion
	Sensitivity float64

	// Pitch is clamped to [-MaxPitch, MaxPitch]
	MaxPitch float64

	// Orientation restored by Reset
	homeYaw, homePitch float64
}

// Axes is a movement request in camera-local directions, each in [-1, 1].
type Axes struct {
	Forward, Right, Up float64
}

// New creates a controller at pos oriented toward target.
func New(pos, target r3.Vec, speed, sensitivity, maxPitch float64) *Controller {
	c := &Controller{
		Speed:       speed,
		Sensitivity: sensitivity,
		MaxPitch:    maxPitch,
	}
	c.LookAt(pos, target)
	c.homeYaw, c.homePitch = c.Yaw, c.Pitch
	return c
}

// LookAt orients the controller from pos toward target.
// A degenerate direction leaves the orientation unchanged.
func (c *Controller) LookAt(pos, target r3.Vec) {
	dir := r3.Sub(target, pos)
	if r3.Norm(dir) == 0 {
		return
	}
	dir = r3.Unit(dir)
	c.Pitch = clamp(math.Asin(clamp(dir.Y, -1, 1)), -c.MaxPitch, c.MaxPitch)
	c.Yaw = math.Atan2(-dir.X, -dir.Z)
}

// Look applies a mouse delta in pixels. Moving right turns right, moving
// down pitches down.
func (c *Controller) Look(dx, dy float64) {
	c.Yaw -= dx * c.Sensitivity
	c.Pitch = clamp(c.Pitch-dy*c.Sensitivity, -c.MaxPitch, c.MaxPitch)
	c.Yaw = wrapAngle(c.Yaw)
}

// Direction returns the unit forward vector.
func (c *Controller) Direction() r3.Vec {
	cp := math.Cos(c.Pitch)
	return r3.Vec{
		X: -math.Sin(c.Yaw) * cp,
		Y: math.Sin(c.Pitch),
		Z: -math.Cos(c.Yaw) * cp,
	}
}

// Right returns the unit right vector (always horizontal).
func (c *Controller) Right() r3.Vec {
	return r3.Vec{X: math.Cos(c.Yaw), Y: 0, Z: -math.Sin(c.Yaw)}
}

// Rotation returns the orientation as a unit quaternion (yaw about Y, then
// pitch about the local X axis).
func (c *Controller) Rotation() quat.Number {
	sy, cy := math.Sincos(c.Yaw / 2)
	sp, cp := math.Sincos(c.Pitch / 2)
	yaw := quat.Number{Real: cy, Jmag: sy}
	pitch := quat.Number{Real: cp, Imag: sp}
	return quat.Mul(yaw, pitch)
}

// Move returns pos displaced by the requested axes over dt seconds.
// Vertical movement is along world +Y regardless of pitch.
func (c *Controller) Move(pos r3.Vec, a Axes, dt float64) r3.Vec {
	step := r3.Vec{}
	step = r3.Add(step, r3.Scale(a.Forward, c.Direction()))
	step = r3.Add(step, r3.Scale(a.Right, c.Right()))
	step = r3.Add(step, r3.Vec{Y: a.Up})
	if n := r3.Norm(step); n > 1 {
		step = r3.Scale(1/n, step)
	}
	return r3.Add(pos, r3.Scale(c.Speed*dt, step))
}

// Reset returns the controller to its initial orientation.
func (c *Controller) Reset() {
	c.Yaw = c.homeYaw
	c.Pitch = c.homePitch
}

// wrapAngle wraps an angle to [-pi, pi].
func wrapAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a < -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// clamp restricts a value to a range.
func clamp(x, min, max float64) float64 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}

package components

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Identity is the zero rotation.
var Identity = quat.Number{Real: 1}

// Transform places an entity in the world. Local -Z is forward, +Y is up.
type Transform struct {
	Translation r3.Vec
	Rotation    quat.Number
	Scale       r3.Vec
}

// NewTransform returns a transform at (x, y, z) with no rotation and unit scale.
func NewTransform(x, y, z float64) Transform {
	return Transform{
		Translation: r3.Vec{X: x, Y: y, Z: z},
		Rotation:    Identity,
		Scale:       r3.Vec{X: 1, Y: 1, Z: 1},
	}
}

// At is NewTransform taking a vector.
func At(v r3.Vec) Transform {
	return NewTransform(v.X, v.Y, v.Z)
}

// Rotate applies the transform's rotation to v.
func (t *Transform) Rotate(v r3.Vec) r3.Vec {
	return r3.Rotation(t.Rotation).Rotate(v)
}

// Forward returns local -Z in world space.
func (t *Transform) Forward() r3.Vec {
	return t.Rotate(r3.Vec{Z: -1})
}

// Up returns local +Y in world space.
func (t *Transform) Up() r3.Vec {
	return t.Rotate(r3.Vec{Y: 1})
}

// Right returns local +X in world space.
func (t *Transform) Right() r3.Vec {
	return t.Rotate(r3.Vec{X: 1})
}

// LookAt rotates the transform so Forward points at target with the given up.
// Returns false and leaves the rotation unchanged if the direction is zero
// or parallel to up.
func (t *Transform) LookAt(target, up r3.Vec) bool {
	return t.LookTo(r3.Sub(target, t.Translation), up)
}

// LookTo rotates the transform so Forward points along dir.
func (t *Transform) LookTo(dir, up r3.Vec) bool {
	if r3.Norm(dir) == 0 || r3.Norm(up) == 0 {
		return false
	}
	back := r3.Scale(-1, r3.Unit(dir))
	right := r3.Cross(up, back)
	if r3.Norm(right) < 1e-12 {
		return false
	}
	right = r3.Unit(right)
	trueUp := r3.Cross(back, right)
	t.Rotation = fromBasis(right, trueUp, back)
	return true
}

// WithRotationY returns the transform rotated by angle radians about +Y.
func (t Transform) WithRotationY(angle float64) Transform {
	s, c := math.Sincos(angle / 2)
	t.Rotation = quat.Number{Real: c, Jmag: s}
	return t
}

// LookingAt returns a copy of the transform oriented toward target.
func (t Transform) LookingAt(target, up r3.Vec) Transform {
	t.LookAt(target, up)
	return t
}

// fromBasis converts an orthonormal basis (matrix columns) to a quaternion.
func fromBasis(x, y, z r3.Vec) quat.Number {
	m00, m10, m20 := x.X, x.Y, x.Z
	m01, m11, m21 := y.X, y.Y, y.Z
	m02, m12, m22 := z.X, z.Y, z.Z

	var q quat.Number
	trace := m00 + m11 + m22
	switch {
	case trace > 0:
		s := math.Sqrt(trace+1) * 2
		q = quat.Number{Real: 0.25 * s, Imag: (m21 - m12) / s, Jmag: (m02 - m20) / s, Kmag: (m10 - m01) / s}
	case m00 > m11 && m00 > m22:
		s := math.Sqrt(1+m00-m11-m22) * 2
		q = quat.Number{Real: (m21 - m12) / s, Imag: 0.25 * s, Jmag: (m01 + m10) / s, Kmag: (m02 + m20) / s}
	case m11 > m22:
		s := math.Sqrt(1+m11-m00-m22) * 2
		q = quat.Number{Real: (m02 - m20) / s, Imag: (m01 + m10) / s, Jmag: 0.25 * s, Kmag: (m12 + m21) / s}
	default:
		s := math.Sqrt(1+m22-m00-m11) * 2
		q = quat.Number{Real: (m10 - m01) / s, Imag: (m02 + m20) / s, Jmag: (m12 + m21) / s, Kmag: 0.25 * s}
	}
	return quat.Scale(1/quat.Abs(q), q)
}

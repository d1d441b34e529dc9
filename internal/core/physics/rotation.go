// Package physics holds the planar rigid-body primitives used by the motion models:
// SO(2) rotations and SE(2) poses. They are kept small on purpose; vectors come
// from github.com/golang/geo/r2.
package physics

import "math"

// Rotation is an element of SO(2) stored as a unit complex number.
// The zero value is not valid; use Identity or NewRotation.
type Rotation struct {
	cos, sin float64
}

// Identity returns the rotation by zero radians.
func Identity() Rotation { return Rotation{cos: 1} }

// NewRotation returns the rotation by angle radians. Any finite angle is accepted.
func NewRotation(angle float64) Rotation {
	s, c := math.Sincos(angle)
	return Rotation{cos: c, sin: s}
}

// HalfTurn returns the rotation by π.
func HalfTurn() Rotation { return Rotation{cos: -1} }

// Angle returns the rotation angle wrapped to [-π, π].
func (r Rotation) Angle() float64 { return math.Atan2(r.sin, r.cos) }

func (r Rotation) Cos() float64 { return r.cos }
func (r Rotation) Sin() float64 { return r.sin }

// Compose returns r ∘ o, i.e. o applied first.
func (r Rotation) Compose(o Rotation) Rotation {
	return normalized(
		r.cos*o.cos-r.sin*o.sin,
		r.sin*o.cos+r.cos*o.sin,
	)
}

// Inverse returns the opposite rotation.
func (r Rotation) Inverse() Rotation { return Rotation{cos: r.cos, sin: -r.sin} }

// Rotate applies the rotation to a 2D vector.
func (r Rotation) Rotate(x, y float64) (float64, float64) {
	return r.cos*x - r.sin*y, r.sin*x + r.cos*y
}

func normalized(c, s float64) Rotation {
	n := math.Hypot(c, s)
	if n == 0 {
		return Identity()
	}
	return Rotation{cos: c / n, sin: s / n}
}

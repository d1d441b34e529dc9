package physics

import (
	"fmt"
	"math"

	"github.com/golang/geo/r2"
)

// Pose is a rigid 2D transform (SE(2)): a rotation followed by a translation.
// Poses are immutable values.
type Pose struct {
	rotation    Rotation
	translation r2.Point
}

// IdentityPose returns the pose at the origin facing +X.
func IdentityPose() Pose { return Pose{rotation: Identity()} }

// NewPose builds a pose from a position and a heading in radians.
func NewPose(x, y, theta float64) Pose {
	return Pose{rotation: NewRotation(theta), translation: r2.Point{X: x, Y: y}}
}

// FromParts builds a pose from its rotation and translation.
func FromParts(rotation Rotation, translation r2.Point) Pose {
	return Pose{rotation: rotation, translation: translation}
}

// PureRotation returns a pose that only rotates.
func PureRotation(r Rotation) Pose { return Pose{rotation: r} }

// PureTranslation returns a pose that only translates, expressed in the local frame.
func PureTranslation(x, y float64) Pose {
	return Pose{rotation: Identity(), translation: r2.Point{X: x, Y: y}}
}

func (p Pose) Rotation() Rotation { return p.rotation }
func (p Pose) Translation() r2.Point { return p.translation }
func (p Pose) Heading() float64 { return p.rotation.Angle() }
func (p Pose) X() float64 { return p.translation.X }
func (p Pose) Y() float64 { return p.translation.Y }
func (p Pose) Position2() (x, y float64) { return p.translation.X, p.translation.Y }

// Compose returns p ∘ o, where o is expressed in the local frame of p.
func (p Pose) Compose(o Pose) Pose {
	x, y := p.rotation.Rotate(o.translation.X, o.translation.Y)
	return Pose{
		rotation:    p.rotation.Compose(o.rotation),
		translation: p.translation.Add(r2.Point{X: x, Y: y}),
	}
}

// Inverse returns the pose q such that p.Compose(q) is the identity.
func (p Pose) Inverse() Pose {
	inv := p.rotation.Inverse()
	x, y := inv.Rotate(p.translation.X, p.translation.Y)
	return Pose{rotation: inv, translation: r2.Point{X: -x, Y: -y}}
}

// Between returns the transform that takes p to o, expressed in p's frame.
func (p Pose) Between(o Pose) Pose { return p.Inverse().Compose(o) }

// IsFinite reports whether every component of the pose is a finite number.
func (p Pose) IsFinite() bool {
	for _, v := range [...]float64{p.rotation.cos, p.rotation.sin, p.translation.X, p.translation.Y} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (p Pose) String() string {
	return fmt.Sprintf("(%g, %g, %g)", p.translation.X, p.translation.Y, p.Heading())
}

// Distance computes the Euclidean distance between the positions of two poses.
func Distance(a, b Pose) float64 { return b.translation.Sub(a.translation).Norm() }

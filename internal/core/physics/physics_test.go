package physics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

func requirePoseNear(t *testing.T, want, got Pose) {
	t.Helper()
	require.InDelta(t, want.X(), got.X(), eps, "x: want %v got %v", want, got)
	require.InDelta(t, want.Y(), got.Y(), eps, "y: want %v got %v", want, got)
	require.InDelta(t, 0, NewRotation(want.Heading()).Inverse().Compose(got.Rotation()).Angle(), eps,
		"heading: want %v got %v", want, got)
}

func TestRotation(t *testing.T) {
	t.Run("Angle wraps", func(t *testing.T) {
		assert.InDelta(t, -math.Pi/2, NewRotation(3*math.Pi/2).Angle(), eps)
		assert.InDelta(t, math.Pi/4, NewRotation(math.Pi/4+4*math.Pi).Angle(), eps)
		assert.InDelta(t, math.Pi, math.Abs(HalfTurn().Angle()), eps)
	})

	t.Run("Compose adds angles", func(t *testing.T) {
		r := NewRotation(3 * math.Pi / 4).Compose(NewRotation(math.Pi / 2))
		assert.InDelta(t, -3*math.Pi/4, r.Angle(), eps)
	})

	t.Run("Inverse", func(t *testing.T) {
		r := NewRotation(1.234)
		assert.InDelta(t, 0, r.Compose(r.Inverse()).Angle(), eps)
		assert.InDelta(t, -1.234, r.Inverse().Angle(), eps)
	})

	t.Run("Rotate vector", func(t *testing.T) {
		x, y := NewRotation(math.Pi/2).Rotate(1, 0)
		assert.InDelta(t, 0, x, eps)
		assert.InDelta(t, 1, y, eps)
	})
}

func TestPoseCompose(t *testing.T) {
	tests := []struct {
		name string
		a, b Pose
		want Pose
	}{
		{
			name: "identity on the left",
			a:    IdentityPose(),
			b:    NewPose(1, 2, 0.5),
			want: NewPose(1, 2, 0.5),
		},
		{
			name: "translation in local frame",
			a:    NewPose(1, 1, math.Pi/2),
			b:    PureTranslation(2, 0),
			want: NewPose(1, 3, math.Pi/2),
		},
		{
			name: "rotation then translation",
			a:    PureRotation(NewRotation(math.Pi)),
			b:    NewPose(1, 0, math.Pi/2),
			want: NewPose(-1, 0, -math.Pi/2),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requirePoseNear(t, tt.want, tt.a.Compose(tt.b))
		})
	}
}

func TestPoseAlgebra(t *testing.T) {
	a := NewPose(1.5, -2, 0.3)
	b := NewPose(-0.5, 4, 2.9)
	c := NewPose(3, 3, -1.7)

	t.Run("Inverse", func(t *testing.T) {
		requirePoseNear(t, IdentityPose(), a.Compose(a.Inverse()))
		requirePoseNear(t, IdentityPose(), a.Inverse().Compose(a))
	})

	t.Run("Associative", func(t *testing.T) {
		requirePoseNear(t, a.Compose(b).Compose(c), a.Compose(b.Compose(c)))
	})

	t.Run("Not commutative", func(t *testing.T) {
		ab, ba := a.Compose(b), b.Compose(a)
		assert.False(t, math.Abs(ab.X()-ba.X()) < eps && math.Abs(ab.Y()-ba.Y()) < eps)
	})

	t.Run("Between", func(t *testing.T) {
		requirePoseNear(t, b, a.Compose(a.Between(b)))
	})

	t.Run("Distance", func(t *testing.T) {
		assert.InDelta(t, 5, Distance(NewPose(0, 0, 1), NewPose(3, 4, -1)), eps)
	})
}

func TestPoseIsFinite(t *testing.T) {
	assert.True(t, NewPose(1, 2, 3).IsFinite())
	assert.False(t, NewPose(math.NaN(), 0, 0).IsFinite())
	assert.False(t, NewPose(0, math.Inf(-1), 0).IsFinite())
	assert.False(t, NewPose(0, 0, math.Inf(1)).IsFinite())
}

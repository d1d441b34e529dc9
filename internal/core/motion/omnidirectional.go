package motion

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/zeusync/motion/internal/core/observability/log"
	"github.com/zeusync/motion/internal/core/physics"
)

var _ MotionModel = (*Omnidirectional)(nil)

// OmniNoiseSet is the noise model of an omnidirectional update.
type OmniNoiseSet struct {
	// Direction is the heading of travel relative to the previous heading.
	// It is applied without noise.
	Direction   float64 `json:"direction" yaml:"direction"`
	Translation Noise   `json:"translation" yaml:"translation"`
	Strafe      Noise   `json:"strafe" yaml:"strafe"`
	Rotation    Noise   `json:"rotation" yaml:"rotation"`
	Version     uint64  `json:"version" yaml:"version"`
}

// Omnidirectional is the sampled odometry motion model of a holonomic base,
// which can translate in any direction without turning first.
type Omnidirectional struct {
	params OmniParams
	logger log.Log

	last    physics.Pose
	hasLast bool

	noise guarded[OmniNoiseSet]
}

func NewOmnidirectional(params OmniParams, opts ...Option) (*Omnidirectional, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	o := applyOptions(opts)
	return &Omnidirectional{
		params: params,
		logger: o.logger.With(log.String("model", ModelOmnidirectional)),
	}, nil
}

func (m *Omnidirectional) Params() OmniParams { return m.params }

func (m *Omnidirectional) UpdateMotion(pose physics.Pose) error {
	if !pose.IsFinite() {
		return fmt.Errorf("%w: %v", ErrInvalidInput, pose)
	}

	if m.hasLast {
		noise := m.decompose(m.last, pose)
		version := m.noise.store(noise)
		if m.logger.Enabled(log.LevelDebug) {
			m.logger.Debug("motion updated",
				log.Uint64("version", version),
				log.Float64("direction", noise.Direction),
				log.Float64("translation", noise.Translation.Mean),
				log.Float64("rotation", noise.Rotation.Mean),
			)
		}
	}

	m.last = pose
	m.hasLast = true
	return nil
}

func (m *Omnidirectional) decompose(prev, next physics.Pose) OmniNoiseSet {
	translation := next.Translation().Sub(prev.Translation())
	distance := translation.Norm()
	distanceVariance := distance * distance

	previous := prev.Rotation()
	direction := physics.Identity()
	if distance > m.params.DistanceThreshold {
		direction = physics.NewRotation(math.Atan2(translation.Y, translation.X)).Compose(previous.Inverse())
	}
	rotation := next.Rotation().Compose(previous.Inverse())
	rotationVar := rotationVariance(rotation)

	p := m.params
	return OmniNoiseSet{
		Direction: direction.Angle(),
		Translation: newNoise(distance,
			p.TranslationFromTranslation*distanceVariance,
			p.TranslationFromRotation*rotationVar),
		Strafe: newNoise(0,
			p.StrafeFromTranslation*distanceVariance,
			p.TranslationFromRotation*rotationVar),
		Rotation: newNoise(rotation.Angle(),
			p.RotationFromRotation*rotationVar,
			p.RotationFromTranslation*distanceVariance),
	}
}

// ApplyMotion turns towards the direction of travel, translates with noise
// along and across it, then restores the heading and applies the noisy rotation.
func (m *Omnidirectional) ApplyMotion(pose physics.Pose, src rand.Source) physics.Pose {
	var direction, distance, strafe, rotation float64
	m.noise.view(func(n OmniNoiseSet, _ uint64) {
		direction = n.Direction
		distance = n.Translation.Sample(src)
		strafe = n.Strafe.Sample(src)
		rotation = n.Rotation.Sample(src)
	})

	heading := physics.NewRotation(direction)
	return pose.
		Compose(physics.PureRotation(heading)).
		Compose(physics.PureTranslation(distance, strafe)).
		Compose(physics.PureRotation(heading.Inverse().Compose(physics.NewRotation(rotation))))
}

func (m *Omnidirectional) LatestMotionUpdate() (physics.Pose, bool) {
	return m.last, m.hasLast
}

func (m *Omnidirectional) Noise() OmniNoiseSet {
	n, version := m.noise.load()
	n.Version = version
	return n
}

package motion

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/zeusync/motion/internal/core/observability/log"
	"github.com/zeusync/motion/internal/core/physics"
)

var _ MotionModel = (*DifferentialDrive)(nil)

// DifferentialDrive is the sampled odometry motion model of a differential
// drive base. Every odometry increment is decomposed into a rotation towards
// the direction of travel, a straight translation and a final rotation; each
// of the three gets its own normal distribution.
//
// See Probabilistic Robotics, chapter 5.4.2.
type DifferentialDrive struct {
	params Params
	logger log.Log

	// Owned by the producer calling UpdateMotion.
	last    physics.Pose
	hasLast bool

	noise guarded[NoiseSet]
}

// NewDifferentialDrive validates params and returns a model with a zero noise model.
func NewDifferentialDrive(params Params, opts ...Option) (*DifferentialDrive, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	o := applyOptions(opts)
	return &DifferentialDrive{
		params: params,
		logger: o.logger.With(log.String("model", ModelDifferential)),
	}, nil
}

func (d *DifferentialDrive) Params() Params { return d.params }

// UpdateMotion records a new odometry pose. The first pose only sets the
// reference; later poses replace the noise model with one derived from the
// motion since the previous pose.
func (d *DifferentialDrive) UpdateMotion(pose physics.Pose) error {
	if !pose.IsFinite() {
		return fmt.Errorf("%w: %v", ErrInvalidInput, pose)
	}

	if d.hasLast {
		noise := d.decompose(d.last, pose)
		version := d.noise.store(noise)
		if d.logger.Enabled(log.LevelDebug) {
			d.logger.Debug("motion updated",
				log.Uint64("version", version),
				log.Float64("first_rotation", noise.FirstRotation.Mean),
				log.Float64("translation", noise.Translation.Mean),
				log.Float64("second_rotation", noise.SecondRotation.Mean),
			)
		}
	} else {
		d.logger.Debug("motion reference set", log.Stringer("pose", pose))
	}

	d.last = pose
	d.hasLast = true
	return nil
}

func (d *DifferentialDrive) decompose(prev, next physics.Pose) NoiseSet {
	translation := next.Translation().Sub(prev.Translation())
	distance := translation.Norm()
	distanceVariance := distance * distance

	previous := prev.Rotation()
	first := physics.Identity()
	if distance > d.params.DistanceThreshold {
		first = physics.NewRotation(math.Atan2(translation.Y, translation.X)).Compose(previous.Inverse())
	}
	second := next.Rotation().Compose(previous.Inverse()).Compose(first.Inverse())
	combined := first.Compose(second)

	p := d.params
	return NoiseSet{
		FirstRotation: newNoise(first.Angle(),
			p.RotationFromRotation*rotationVariance(first),
			p.RotationFromTranslation*distanceVariance),
		Translation: newNoise(distance,
			p.TranslationFromTranslation*distanceVariance,
			p.TranslationFromRotation*rotationVariance(combined)),
		SecondRotation: newNoise(second.Angle(),
			p.RotationFromRotation*rotationVariance(second),
			p.RotationFromTranslation*distanceVariance),
	}
}

// ApplyMotion returns pose moved by one random draw of the latest motion,
// applied in the particle's local frame.
func (d *DifferentialDrive) ApplyMotion(pose physics.Pose, src rand.Source) physics.Pose {
	var first, distance, second float64
	d.noise.view(func(n NoiseSet, _ uint64) {
		first = n.FirstRotation.Sample(src)
		distance = n.Translation.Sample(src)
		second = n.SecondRotation.Sample(src)
	})

	return pose.
		Compose(physics.PureRotation(physics.NewRotation(first))).
		Compose(physics.PureTranslation(distance, 0)).
		Compose(physics.PureRotation(physics.NewRotation(second)))
}

func (d *DifferentialDrive) LatestMotionUpdate() (physics.Pose, bool) {
	return d.last, d.hasLast
}

// Noise returns a consistent snapshot of the current noise model.
func (d *DifferentialDrive) Noise() NoiseSet {
	n, version := d.noise.load()
	n.Version = version
	return n
}

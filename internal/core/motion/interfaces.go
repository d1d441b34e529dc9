// Package motion implements sampled odometry motion models for Monte Carlo
// localization.
//
// A model is fed absolute odometry poses by a single producer through
// UpdateMotion. Each update is turned into a small set of normal distributions
// describing the relative motion since the previous reading. Particle workers
// then call ApplyMotion concurrently, each with its own random source, to move
// a particle by one random realization of that motion.
package motion

import (
	"math/rand/v2"

	"github.com/zeusync/motion/internal/core/physics"
)

// MotionModel is the contract the particle filter depends on. Implementations
// are interchangeable: the filter only needs both the update and the particle
// state to be a physics.Pose.
type MotionModel interface {
	// UpdateMotion records a new odometry reading and recomputes the noise model.
	// It must be called from a single producer.
	UpdateMotion(pose physics.Pose) error

	// ApplyMotion moves a particle by one random draw of the latest motion.
	// Safe for concurrent use, including concurrently with UpdateMotion.
	ApplyMotion(pose physics.Pose, src rand.Source) physics.Pose

	// LatestMotionUpdate returns the last odometry reading, if any.
	// It belongs to the producer side and must not race with UpdateMotion.
	LatestMotionUpdate() (physics.Pose, bool)
}

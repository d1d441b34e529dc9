// Package replay feeds recorded odometry to a motion model and propagates a
// particle cloud with it, the way a particle filter prediction step does.
package replay

import (
	"context"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"runtime"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/zeusync/motion/internal/core/motion"
	"github.com/zeusync/motion/internal/core/observability/log"
	"github.com/zeusync/motion/internal/core/physics"
	"github.com/zeusync/motion/pkg/concurrent"
)

// minChunk is the smallest number of particles handed to one goroutine.
const minChunk = 64

type Replayer struct {
	model   motion.MotionModel
	logger  log.Log
	seed    uint64
	workers int
	runID   uuid.UUID
	steps   uint64
}

type Option func(*Replayer)

func WithLogger(logger log.Log) Option {
	return func(r *Replayer) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithSeed sets the seed every particle random source is derived from.
func WithSeed(seed uint64) Option {
	return func(r *Replayer) { r.seed = seed }
}

// WithWorkers bounds the goroutines used per step. Zero means GOMAXPROCS.
func WithWorkers(workers int) Option {
	return func(r *Replayer) {
		if workers > 0 {
			r.workers = workers
		}
	}
}

func New(model motion.MotionModel, opts ...Option) *Replayer {
	r := &Replayer{
		model:   model,
		logger:  log.Nop(),
		workers: runtime.GOMAXPROCS(0),
		runID:   uuid.New(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = r.logger.With(log.String("run_id", r.runID.String()))
	return r
}

func (r *Replayer) RunID() uuid.UUID { return r.runID }

// Steps returns the number of odometry readings consumed so far.
func (r *Replayer) Steps() uint64 { return r.steps }

// Step feeds one odometry reading to the model and moves every particle in
// place. The result only depends on the seed, the step number and the
// particle index, not on goroutine scheduling.
func (r *Replayer) Step(ctx context.Context, odometry physics.Pose, particles []physics.Pose) error {
	if err := r.model.UpdateMotion(odometry); err != nil {
		return fmt.Errorf("step %d: %w", r.steps, err)
	}
	step := r.steps
	r.steps++

	return concurrent.Chunks(ctx, len(particles), r.workers, minChunk, func(_ context.Context, lo, hi int) error {
		for i := lo; i < hi; i++ {
			particles[i] = r.model.ApplyMotion(particles[i], r.source(step, i))
		}
		return nil
	})
}

// Run replays a whole track.
func (r *Replayer) Run(ctx context.Context, track []physics.Pose, particles []physics.Pose) error {
	start := time.Now()
	r.logger.Info("replay started",
		log.Int("readings", len(track)),
		log.Int("particles", len(particles)),
		log.Int("workers", r.workers),
	)

	for _, odometry := range track {
		if err := r.Step(ctx, odometry, particles); err != nil {
			r.logger.Error("replay failed", log.Uint64("step", r.steps), log.Error(err))
			return err
		}
	}

	r.logger.Info("replay finished",
		log.Uint64("steps", r.steps),
		log.Duration("elapsed", time.Since(start)),
	)
	return nil
}

// source returns the random source of one particle at one step.
func (r *Replayer) source(step uint64, index int) rand.Source {
	var key [16]byte
	binary.LittleEndian.PutUint64(key[:8], step)
	binary.LittleEndian.PutUint64(key[8:], uint64(index))
	return rand.NewPCG(r.seed, xxhash.Sum64(key[:]))
}

package motion

import (
	"math"
	"math/rand/v2"
	"sync"

	"github.com/zeusync/motion/internal/core/physics"
	"gonum.org/v1/gonum/stat/distuv"
)

// Noise parameterizes a normal distribution.
type Noise struct {
	Mean   float64 `json:"mean" yaml:"mean"`
	StdDev float64 `json:"std_dev" yaml:"std_dev"`
}

// Sample draws one variate using src as the uniform source.
func (n Noise) Sample(src rand.Source) float64 {
	return distuv.Normal{Mu: n.Mean, Sigma: n.StdDev, Src: src}.Rand()
}

// newNoise builds a Noise whose variance is the sum of the given terms.
func newNoise(mean float64, variances ...float64) Noise {
	var sum float64
	for _, v := range variances {
		sum += v
	}
	return Noise{Mean: mean, StdDev: math.Sqrt(sum)}
}

// NoiseSet is the noise model of a differential drive update. All three
// members always come from the same decomposition.
type NoiseSet struct {
	FirstRotation  Noise  `json:"first_rotation" yaml:"first_rotation"`
	Translation    Noise  `json:"translation" yaml:"translation"`
	SecondRotation Noise  `json:"second_rotation" yaml:"second_rotation"`
	Version        uint64 `json:"version" yaml:"version"`
}

// rotationVariance treats forward and backward motion symmetrically, so turns
// close to a half turn do not produce large noise.
func rotationVariance(r physics.Rotation) float64 {
	flipped := r.Compose(physics.HalfTurn())
	delta := math.Min(math.Abs(r.Angle()), math.Abs(flipped.Angle()))
	return delta * delta
}

// guarded holds a value published by one writer and read by many.
// Readers hold the read lock for as long as they use the value.
type guarded[T any] struct {
	mu      sync.RWMutex
	value   T
	version uint64
}

// store replaces the value and returns the new version.
func (g *guarded[T]) store(value T) uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.version++
	g.value = value
	return g.version
}

func (g *guarded[T]) view(fn func(value T, version uint64)) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	fn(g.value, g.version)
}

func (g *guarded[T]) load() (T, uint64) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.value, g.version
}

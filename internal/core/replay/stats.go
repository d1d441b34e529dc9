package replay

import (
	"math"

	"github.com/zeusync/motion/internal/core/physics"
	"gonum.org/v1/gonum/stat"
)

// Summary describes a particle cloud.
type Summary struct {
	Count   int     `json:"count"`
	MeanX   float64 `json:"mean_x"`
	MeanY   float64 `json:"mean_y"`
	StdDevX float64 `json:"std_dev_x"`
	StdDevY float64 `json:"std_dev_y"`
	// MeanHeading is the circular mean of the particle headings.
	MeanHeading float64 `json:"mean_heading"`
	// HeadingSpread is the circular variance, from 0 (aligned) to 1 (uniform).
	HeadingSpread float64 `json:"heading_spread"`
}

func Summarize(particles []physics.Pose) Summary {
	n := len(particles)
	if n == 0 {
		return Summary{}
	}

	xs := make([]float64, n)
	ys := make([]float64, n)
	headings := make([]float64, n)
	var sumCos, sumSin float64
	for i, p := range particles {
		xs[i], ys[i] = p.Position2()
		headings[i] = p.Heading()
		sumCos += p.Rotation().Cos()
		sumSin += p.Rotation().Sin()
	}

	s := Summary{
		Count:         n,
		MeanHeading:   stat.CircularMean(headings, nil),
		HeadingSpread: 1 - math.Hypot(sumCos, sumSin)/float64(n),
	}
	if n < 2 {
		s.MeanX, s.MeanY = xs[0], ys[0]
		return s
	}
	s.MeanX, s.StdDevX = stat.MeanStdDev(xs, nil)
	s.MeanY, s.StdDevY = stat.MeanStdDev(ys, nil)
	return s
}

package compare

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/phil-mansfield/runge/math/interpolate"
)

// SplineFunc fits a spline through the samples (xs[i], ys[i]) and evaluates
// it at every point in grid. It is the comparison baseline for the Newton
// polynomial.
type SplineFunc func(xs, ys, grid []float64) ([]float64, error)

// NaturalSpline is a SplineFunc which uses a natural cubic spline. The
// samples need not be sorted, but every grid point must lie within their
// range.
func NaturalSpline(xs, ys, grid []float64) ([]float64, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf(
			"NaturalSpline given len(xs) = %d, but len(ys) = %d.",
			len(xs), len(ys),
		)
	}
	sxs, sys := sortedSamples(xs, ys)

	sp, err := interpolate.NewSpline(sxs, sys)
	if err != nil {
		return nil, err
	}
	lo, hi := sxs[0], sxs[len(sxs)-1]
	for _, x := range grid {
		if x < lo || x > hi {
			return nil, fmt.Errorf(
				"Grid point %g is outside the sample range [%g, %g].",
				x, lo, hi,
			)
		}
	}
	return sp.EvalAll(grid), nil
}

// samplePairs allows two arrays to be sorted simultaneously by x.
type samplePairs struct {
	xs, ys []float64
}

func (s *samplePairs) Len() int           { return len(s.xs) }
func (s *samplePairs) Less(i, j int) bool { return s.xs[i] < s.xs[j] }
func (s *samplePairs) Swap(i, j int) {
	s.xs[i], s.xs[j] = s.xs[j], s.xs[i]
	s.ys[i], s.ys[j] = s.ys[j], s.ys[i]
}

func sortedSamples(xs, ys []float64) (sxs, sys []float64) {
	sxs, sys = make([]float64, len(xs)), make([]float64, len(ys))
	copy(sxs, xs)
	copy(sys, ys)
	sort.Stable(&samplePairs{sxs, sys})
	return sxs, sys
}

// Params specifies a single comparison run.
type Params struct {
	// Function names the test function; see FunctionNames.
	Function string
	// The query grid contains GridPoints points spread evenly over
	// [Min, Max].
	Min, Max   float64
	GridPoints int
	// Samples is the number of evenly spaced sample points on [Min, Max].
	// It is ignored if Xs is set.
	Samples int
	// Threads is the number of goroutines used to evaluate the polynomial.
	Threads int

	// Optional explicit samples. If set, Ys must also be set.
	Xs, Ys []float64
}

// DefaultParams returns the parameters of the classic Runge demonstration:
// 15 samples on [-5, 5] and a 201 point grid.
func DefaultParams() Params {
	return Params{
		Function:   DefaultFunction,
		Min:        -5,
		Max:        5,
		Samples:    15,
		GridPoints: 201,
		Threads:    1,
	}
}

// Comparison holds the output of Run. All the grid arrays are aligned with
// Grid.
type Comparison struct {
	Function           string
	SampleXs, SampleYs []float64
	// Coeffs are the divided difference coefficients, aligned with SampleXs.
	Coeffs []float64

	Grid, True, Spline, Newton []float64
}

// Run generates the samples described by p, interpolates them with both a
// Newton polynomial and the given spline, and evaluates everything on the
// query grid.
func Run(ctx context.Context, p Params, spline SplineFunc) (*Comparison, error) {
	f, err := Function(p.Function)
	if err != nil {
		return nil, err
	}
	if p.GridPoints <= 0 {
		return nil, fmt.Errorf("GridPoints must be positive, but is %d.",
			p.GridPoints)
	} else if p.Min > p.Max {
		return nil, fmt.Errorf("Min = %g is larger than Max = %g.", p.Min, p.Max)
	}

	c := &Comparison{Function: p.Function}
	if p.Xs != nil {
		if len(p.Xs) != len(p.Ys) {
			return nil, fmt.Errorf(
				"Explicit samples have len(xs) = %d, but len(ys) = %d.",
				len(p.Xs), len(p.Ys),
			)
		}
		c.SampleXs, c.SampleYs = sortedSamples(p.Xs, p.Ys)
	} else {
		if p.Samples <= 0 {
			return nil, fmt.Errorf("Samples must be positive, but is %d.",
				p.Samples)
		}
		c.SampleXs, c.SampleYs = Samples(f, p.Min, p.Max, p.Samples)
	}

	nw, err := interpolate.NewNewton(c.SampleXs, c.SampleYs)
	if err != nil {
		return nil, err
	}
	c.Coeffs = nw.Coeffs()

	c.Grid = Linspace(p.Min, p.Max, p.GridPoints)
	c.True = make([]float64, len(c.Grid))
	for i, x := range c.Grid {
		c.True[i] = f(x)
	}

	c.Newton, err = interpolate.EvalGrid(ctx, nw, c.Grid, p.Threads)
	if err != nil {
		return nil, err
	}

	if spline != nil {
		c.Spline, err = spline(c.SampleXs, c.SampleYs, c.Grid)
		if err != nil {
			return nil, err
		}
		if len(c.Spline) != len(c.Grid) {
			return nil, fmt.Errorf(
				"Spline returned %d values for a grid of %d points.",
				len(c.Spline), len(c.Grid),
			)
		}
	}

	return c, nil
}

// Residuals returns the largest absolute deviation of the Newton polynomial
// and of the spline from the true function over the grid. The spline
// residual is NaN if no spline was run.
func (c *Comparison) Residuals() (newton, spline float64) {
	newton = maxAbsDiff(c.Newton, c.True)
	if c.Spline == nil {
		return newton, math.NaN()
	}
	return newton, maxAbsDiff(c.Spline, c.True)
}

func maxAbsDiff(xs, ys []float64) float64 {
	m := 0.0
	for i := range xs {
		d := math.Abs(xs[i] - ys[i])
		if math.IsNaN(d) {
			return d
		} else if d > m {
			m = d
		}
	}
	return m
}

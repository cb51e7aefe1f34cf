package compare

import (
	"context"
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phil-mansfield/runge/math/interpolate"
)

func TestLinspace(t *testing.T) {
	assert.Equal(t, []float64{-1, -0.5, 0, 0.5, 1}, Linspace(-1, 1, 5))
	assert.Equal(t, []float64{2}, Linspace(2, 3, 1))
	assert.Empty(t, Linspace(0, 1, 0))

	xs := Linspace(-5, 5, 201)
	assert.Len(t, xs, 201)
	assert.Equal(t, -5.0, xs[0])
	assert.Equal(t, 5.0, xs[200])
}

func TestFunction(t *testing.T) {
	f, err := Function("Runge")
	require.NoError(t, err)
	assert.Equal(t, 0.5, f(1))
	assert.Equal(t, 1.0, f(0))

	f, err = Function(" abs ")
	require.NoError(t, err)
	assert.Equal(t, 3.0, f(-3))

	_, err = Function("sinc")
	assert.Error(t, err)

	assert.Equal(t, []string{"abs", "gaussian", "runge"}, FunctionNames())
}

func TestNaturalSpline(t *testing.T) {
	xs := []float64{2, 0, 1, 3}
	ys := []float64{5, 1, 3, 7}
	grid := []float64{0, 0.5, 2.5, 3}

	got, err := NaturalSpline(xs, ys, grid)
	require.NoError(t, err)
	if diff := cmp.Diff([]float64{1, 2, 6, 7}, got,
		cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("NaturalSpline (-want +got):\n%s", diff)
	}
	// Samples are not reordered in place.
	assert.Equal(t, []float64{2, 0, 1, 3}, xs)

	_, err = NaturalSpline(xs, ys, []float64{3.5})
	assert.Error(t, err)
	_, err = NaturalSpline(xs, ys[:3], grid)
	assert.Error(t, err)
}

func TestRunDefault(t *testing.T) {
	p := DefaultParams()
	p.Threads = 4
	c, err := Run(context.Background(), p, NaturalSpline)
	require.NoError(t, err)

	assert.Len(t, c.SampleXs, 15)
	assert.Len(t, c.Coeffs, 15)
	assert.Len(t, c.Grid, 201)
	assert.Len(t, c.True, 201)
	assert.Len(t, c.Spline, 201)
	assert.Len(t, c.Newton, 201)

	ds, err := interpolate.DividedDifferences(c.SampleXs, c.SampleYs)
	require.NoError(t, err)
	assert.Equal(t, ds, c.Coeffs)

	// Grid point 100 is x = 0, which is also sample 7.
	assert.InDelta(t, 1, c.Newton[100], 1e-9)
	assert.InDelta(t, 1, c.Spline[100], 1e-12)

	// Runge's phenomenon: the polynomial is much worse than the spline.
	nwRes, spRes := c.Residuals()
	assert.Greater(t, nwRes, 1.0)
	assert.Less(t, spRes, nwRes/10)
}

func TestRunInjectedSpline(t *testing.T) {
	calls := 0
	fake := func(xs, ys, grid []float64) ([]float64, error) {
		calls++
		out := make([]float64, len(grid))
		for i := range out {
			out[i] = -1
		}
		return out, nil
	}

	p := Params{Function: "runge", Min: -1, Max: 1, Samples: 3, GridPoints: 5}
	c, err := Run(context.Background(), p, fake)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, []float64{-1, -1, -1, -1, -1}, c.Spline)

	_, spRes := c.Residuals()
	assert.InDelta(t, 2, spRes, 1e-12)
}

func TestRunExplicitSamples(t *testing.T) {
	// y = x^2 + 1 given out of order.
	p := Params{
		Function: "runge", Min: 0, Max: 3, GridPoints: 4, Threads: 2,
		Xs: []float64{2, 0, 1},
		Ys: []float64{5, 1, 2},
	}
	c, err := Run(context.Background(), p, nil)
	require.NoError(t, err)

	assert.Equal(t, []float64{0, 1, 2}, c.SampleXs)
	assert.Equal(t, []float64{1, 1, 1}, c.Coeffs)
	assert.Equal(t, []float64{1, 2, 5, 10}, c.Newton)
	assert.Nil(t, c.Spline)

	_, spRes := c.Residuals()
	assert.True(t, math.IsNaN(spRes))
}

func TestRunErrors(t *testing.T) {
	table := []struct {
		name   string
		p      Params
		spline SplineFunc
	}{
		{"function", Params{Function: "nope", Samples: 3, GridPoints: 3}, nil},
		{"grid", Params{Function: "runge", Samples: 3}, nil},
		{"samples", Params{Function: "runge", GridPoints: 3}, nil},
		{"range", Params{Function: "runge", Min: 1, Max: -1,
			Samples: 3, GridPoints: 3}, nil},
		{"shape", Params{Function: "runge", GridPoints: 3,
			Xs: []float64{0, 1}, Ys: []float64{0}}, nil},
		{"spline", Params{Function: "runge", Min: -1, Max: 1,
			Samples: 3, GridPoints: 3},
			func(xs, ys, grid []float64) ([]float64, error) {
				return nil, fmt.Errorf("no spline today")
			}},
		{"spline length", Params{Function: "runge", Min: -1, Max: 1,
			Samples: 3, GridPoints: 3},
			func(xs, ys, grid []float64) ([]float64, error) {
				return []float64{0}, nil
			}},
	}

	for _, test := range table {
		c, err := Run(context.Background(), test.p, test.spline)
		assert.Error(t, err, test.name)
		assert.Nil(t, c, test.name)
	}
}

func TestResidualsNaN(t *testing.T) {
	c := &Comparison{
		True:   []float64{1, 2, 3},
		Newton: []float64{1, math.NaN(), 4},
		Spline: []float64{1, 2, 2.5},
	}
	nwRes, spRes := c.Residuals()
	assert.True(t, math.IsNaN(nwRes))
	assert.Equal(t, 0.5, spRes)

	c.Newton = []float64{math.Inf(+1), 2, 3}
	nwRes, _ = c.Residuals()
	assert.True(t, math.IsInf(nwRes, +1))
}

func TestRunRepeatedAbscissa(t *testing.T) {
	p := Params{
		Function: "runge", Min: 0, Max: 1, GridPoints: 3,
		Xs: []float64{0, 1, 0},
		Ys: []float64{1, 2, 1},
	}
	_, err := Run(context.Background(), p, NaturalSpline)
	assert.IsType(t, &interpolate.DomainError{}, err)
}

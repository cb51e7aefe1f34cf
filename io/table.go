package io

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/phil-mansfield/table"

	"github.com/phil-mansfield/runge/compare"
)

// ReadSamples reads sample points from the given columns of a whitespace
// separated text table.
func ReadSamples(fname string, xCol, yCol int) (xs, ys []float64, err error) {
	cols, err := table.ReadTable(fname, []int{xCol, yCol}, nil)
	if err != nil {
		return nil, nil, err
	}
	xs, ys = cols[0], cols[1]
	if len(xs) == 0 {
		return nil, nil, fmt.Errorf("Sample file '%s' is empty.", fname)
	}
	return xs, ys, nil
}

// WriteComparison writes the coefficients as a comment block followed by
// the grid, true values, spline values and Newton values as columns of a
// text table.
func WriteComparison(w io.Writer, c *compare.Comparison) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "# Function: %s\n", c.Function)
	fmt.Fprintf(bw, "# Samples: %d\n", len(c.SampleXs))
	fmt.Fprintln(bw, "# Column 0 - x_i")
	fmt.Fprintln(bw, "# Column 1 - y_i")
	fmt.Fprintln(bw, "# Column 2 - d_i")
	for i := range c.SampleXs {
		fmt.Fprintf(bw, "# %14.8g %14.8g %14.8g\n",
			c.SampleXs[i], c.SampleYs[i], c.Coeffs[i])
	}

	nwRes, spRes := c.Residuals()
	fmt.Fprintf(bw, "# Max |Newton - f|: %.8g\n", nwRes)
	fmt.Fprintf(bw, "# Max |Spline - f|: %.8g\n", spRes)
	fmt.Fprintln(bw, "# Column 0 - x")
	fmt.Fprintln(bw, "# Column 1 - f(x)")
	fmt.Fprintln(bw, "# Column 2 - spline(x)")
	fmt.Fprintln(bw, "# Column 3 - newton(x)")

	for i, x := range c.Grid {
		sp := math.NaN()
		if c.Spline != nil {
			sp = c.Spline[i]
		}
		fmt.Fprintf(bw, "%14.8g %14.8g %14.8g %14.8g\n",
			x, c.True[i], sp, c.Newton[i])
	}

	return bw.Flush()
}

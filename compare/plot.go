package compare

import (
	"fmt"
	"math"

	plt "github.com/phil-mansfield/pyplot"
)

var (
	trueColor   = "DimGray"
	splineColor = "DarkSlateBlue"
	newtonColor = "DeepPink"
)

// Plot queues a figure comparing the true function, the spline and the Newton
// polynomial, along with the sample points, and saves it to fname. Nothing is
// rendered until plt.Execute() is called.
func Plot(c *Comparison, fname string) {
	plt.Figure(plt.FigSize(10, 6))

	plt.Plot(c.Grid, c.True, plt.LW(3), plt.C(trueColor))
	if c.Spline != nil {
		plt.Plot(c.Grid, c.Spline, "--", plt.LW(2), plt.C(splineColor))
	}
	plt.Plot(c.Grid, c.Newton, plt.LW(2), plt.C(newtonColor))
	plt.Plot(c.SampleXs, c.SampleYs, "ok")

	nwRes, spRes := c.Residuals()
	plt.Title(fmt.Sprintf(
		`%s, %d samples: Newton (pink) max err = %.3g, `+
			`spline (blue) max err = %.3g`,
		c.Function, len(c.SampleXs), nwRes, spRes,
	))
	plt.XLabel(`$x$`, plt.FontSize(16))
	plt.YLabel(`$f(x)$`, plt.FontSize(16))

	if len(c.Grid) > 1 {
		plt.XLim(c.Grid[0], c.Grid[len(c.Grid)-1])
	}
	lo, hi := yRange(c.True, c.SampleYs)
	pad := (hi - lo) / 2
	if pad == 0 {
		pad = 1
	}
	// The Newton polynomial can blow up by orders of magnitude near the ends
	// of the interval, so the y range follows the data instead.
	plt.YLim(lo-pad, hi+pad)

	plt.Grid(plt.Axis("y"))
	plt.Grid(plt.Axis("x"))
	plt.SaveFig(fname)
}

func yRange(sets ...[]float64) (lo, hi float64) {
	lo, hi = math.Inf(+1), math.Inf(-1)
	for _, ys := range sets {
		for _, y := range ys {
			lo, hi = math.Min(lo, y), math.Max(hi, y)
		}
	}
	if lo > hi {
		return 0, 0
	}
	return lo, hi
}

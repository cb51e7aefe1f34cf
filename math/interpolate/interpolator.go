/*package interpolate implements one dimensional interpolators: Newton-form
polynomials built from divided differences and natural cubic splines.
*/
package interpolate

// Interpolator is a 1D interpolator. Neither implementation caches anything
// between calls, so both are safe to share between goroutines.
type Interpolator interface {
	// Eval evaluates the interpolator at x.
	Eval(x float64) float64
	// EvalAll evaluates a sequence of values and returns the result. An
	// optional output array can be supplied to prevent unneeded heap
	// allocations.
	EvalAll(xs []float64, out ...[]float64) []float64
}

var (
	_ Interpolator = &Spline{}
	_ Interpolator = &Newton{}
)

// outBuffer returns the first element of out if one was given and a newly
// allocated array of length n otherwise.
func outBuffer(n int, out [][]float64) []float64 {
	if len(out) == 0 {
		return make([]float64, n)
	}
	if len(out[0]) < n {
		panic(&ShapeError{
			"EvalAll", "output array is shorter than the input array",
		})
	}
	return out[0][:n]
}

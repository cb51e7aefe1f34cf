package interpolate

import (
	"fmt"
)

type splineCoeff struct {
	a, b, c, d float64
}

// Spline represents a 1D natural cubic spline which can be used to
// interpolate between points. The second derivative vanishes at both ends of
// the table.
type Spline struct {
	xs, ys, y2s []float64
	coeffs      []splineCoeff

	incr bool

	// Usually the input data is uniform. This is our estimate of the point
	// spacing.
	dx float64
}

// NewSpline creates a spline based off a table of x and y values. The values
// must be sorted in strictly increasing or strictly decreasing order in x.
// xs and ys are copied.
func NewSpline(xs, ys []float64) (*Spline, error) {
	if len(xs) != len(ys) {
		return nil, lengthError("NewSpline", "xs", "ys", len(xs), len(ys))
	} else if len(xs) <= 1 {
		return nil, &ShapeError{"NewSpline", fmt.Sprintf(
			"table has length %d, but at least 2 points are needed", len(xs),
		)}
	}

	sp := new(Spline)
	n := len(xs)
	sp.xs = make([]float64, n)
	sp.ys = make([]float64, n)
	sp.y2s = make([]float64, n)
	sp.coeffs = make([]splineCoeff, n-1)

	if err := checkFinite(xs); err != nil {
		return nil, err
	}

	sp.incr = xs[0] < xs[1]
	for i := 0; i < n-1; i++ {
		if xs[i+1] == xs[i] {
			return nil, &DomainError{I: i, J: i + 1, X: xs[i]}
		} else if (xs[i+1] > xs[i]) != sp.incr {
			return nil, &ShapeError{"NewSpline", fmt.Sprintf(
				"table is not sorted at index %d", i+1,
			)}
		}
	}

	sp.dx = (xs[n-1] - xs[0]) / float64(n-1)

	copy(sp.xs, xs)
	copy(sp.ys, ys)
	if err := sp.calcY2s(); err != nil {
		return nil, err
	}
	sp.calcCoeffs()
	return sp, nil
}

// Eval computes the value of the spline at the given point.
//
// x must be within the range of x values given to NewSpline().
func (sp *Spline) Eval(x float64) float64 {
	return sp.Diff(x, 0)
}

// EvalAll evaluates the spline at all the given x values. If an output array
// is given, the output is written to that array (the array is still returned
// as a convenience).
//
// If more than one output array is provided, only the first is used.
func (sp *Spline) EvalAll(xs []float64, out ...[]float64) []float64 {
	res := outBuffer(len(xs), out)
	for i, x := range xs {
		res[i] = sp.Eval(x)
	}
	return res
}

// Diff computes the derivative of spline at the given point to the
// specified order.
//
// x must be within the range of x values given to NewSpline().
func (sp *Spline) Diff(x float64, order int) float64 {
	if !sp.inRange(x) {
		panic(fmt.Sprintf(
			"Point %g given to Spline out of bounds [%g, %g].",
			x, sp.xs[0], sp.xs[len(sp.xs)-1],
		))
	}

	i := sp.bsearch(x)
	dx := x - sp.xs[i]
	a, b, c, d := sp.coeffs[i].a, sp.coeffs[i].b, sp.coeffs[i].c, sp.coeffs[i].d
	switch order {
	case 0:
		return ((a*dx+b)*dx+c)*dx + d
	case 1:
		return (3*a*dx+2*b)*dx + c
	case 2:
		return 6*a*dx + 2*b
	case 3:
		return 6 * a
	default:
		return 0
	}
}

func (sp *Spline) inRange(x float64) bool {
	lo, hi := sp.xs[0], sp.xs[len(sp.xs)-1]
	if !sp.incr {
		lo, hi = hi, lo
	}
	return x >= lo && x <= hi
}

// bsearch returns the index of the segment of the table which contains x.
func (sp *Spline) bsearch(x float64) int {
	// Guess under the assumption of uniform spacing.
	guess := int((x - sp.xs[0]) / sp.dx)
	if guess >= 0 && guess < len(sp.xs)-1 &&
		(sp.xs[guess] <= x) == sp.incr &&
		(sp.xs[guess+1] >= x) == sp.incr {

		return guess
	}

	// Binary search.
	lo, hi := 0, len(sp.xs)-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if sp.incr == (x >= sp.xs[mid]) {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo
}

// calcY2s computes the second derivative at every point in the table given in
// NewSpline.
func (sp *Spline) calcY2s() error {
	n := len(sp.xs)
	// Natural boundary conditions.
	sp.y2s[0], sp.y2s[n-1] = 0, 0
	if n == 2 {
		return nil
	}

	as, bs := make([]float64, n-2), make([]float64, n-2)
	cs, rs := make([]float64, n-2), make([]float64, n-2)

	xs, ys := sp.xs, sp.ys
	for i := range rs {
		// j indexes into xs and ys.
		j := i + 1

		as[i] = (xs[j] - xs[j-1]) / 6
		bs[i] = (xs[j+1] - xs[j-1]) / 3
		cs[i] = (xs[j+1] - xs[j]) / 6
		rs[i] = ((ys[j+1] - ys[j]) / (xs[j+1] - xs[j])) -
			((ys[j] - ys[j-1]) / (xs[j] - xs[j-1]))
	}

	return TriDiagAt(as, bs, cs, rs, sp.y2s[1:n-1])
}

func (sp *Spline) calcCoeffs() {
	coeffs, xs, ys, y2s := sp.coeffs, sp.xs, sp.ys, sp.y2s
	for i := range coeffs {
		h := xs[i+1] - xs[i]
		coeffs[i].a = (y2s[i+1] - y2s[i]) / (6 * h)
		coeffs[i].b = y2s[i] / 2
		coeffs[i].c = (ys[i+1]-ys[i])/h - h*(2*y2s[i]+y2s[i+1])/6
		coeffs[i].d = ys[i]
	}
}

// TriDiagAt solves the system of equations
//
// | b0 c0 ..       |   | out0 |   | r0 |
// | a1 b1 c1 ..    |   | out1 |   | r1 |
// | ..             | * | ..   | = | .. |
// | ..       an bn |   | outn |   | rn |
//
// For out0 .. outn in place in the given slice. a0 and cn are ignored.
func TriDiagAt(as, bs, cs, rs, out []float64) error {
	if len(as) != len(bs) || len(as) != len(cs) ||
		len(as) != len(out) || len(as) != len(rs) {

		return &ShapeError{"TriDiagAt", "lengths of arguments are unequal"}
	} else if len(as) == 0 {
		return nil
	}

	tmp := make([]float64, len(as))

	beta := bs[0]
	if beta == 0 {
		return &ShapeError{"TriDiagAt", "system is singular"}
	}
	out[0] = rs[0] / beta

	for i := 1; i < len(out); i++ {
		tmp[i] = cs[i-1] / beta
		beta = bs[i] - as[i]*tmp[i]
		if beta == 0 {
			return &ShapeError{"TriDiagAt", "system is singular"}
		}
		out[i] = (rs[i] - as[i]*out[i-1]) / beta
	}

	for i := len(out) - 2; i >= 0; i-- {
		out[i] -= tmp[i+1] * out[i+1]
	}
	return nil
}

// TriDiag solves the same system as TriDiagAt and returns the solution in a
// newly allocated array.
func TriDiag(as, bs, cs, rs []float64) ([]float64, error) {
	us := make([]float64, len(as))
	if err := TriDiagAt(as, bs, cs, rs, us); err != nil {
		return nil, err
	}
	return us, nil
}

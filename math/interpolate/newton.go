package interpolate

import (
	"math"
	"sort"
)

// DividedDifferences computes the coefficients of the Newton-form polynomial
// which passes through the points (xs[i], ys[i]). The i-th coefficient is the
// divided difference f[x_0, ..., x_i].
//
// xs and ys are not modified. A *DomainError is returned if any two values
// in xs are equal.
func DividedDifferences(xs, ys []float64) ([]float64, error) {
	ds := make([]float64, len(xs))
	if err := DividedDifferencesAt(xs, ys, ds); err != nil {
		return nil, err
	}
	return ds, nil
}

// DividedDifferencesAt computes the same coefficients as DividedDifferences
// and writes them to out, which must have the same length as xs. out may
// alias ys. On error, out is left untouched.
func DividedDifferencesAt(xs, ys, out []float64) error {
	if len(xs) != len(ys) {
		return lengthError("DividedDifferences", "xs", "ys", len(xs), len(ys))
	} else if len(xs) != len(out) {
		return lengthError("DividedDifferences", "xs", "out", len(xs), len(out))
	} else if len(xs) == 0 {
		return &ShapeError{"DividedDifferences", "no samples given"}
	}

	if err := checkDistinct(xs); err != nil {
		return err
	}

	copy(out, ys)
	n := len(xs)
	for j := 1; j < n; j++ {
		// Descending, so out[i-1] still holds the order j-1 difference.
		for i := n - 1; i >= j; i-- {
			out[i] = (out[i] - out[i-1]) / (xs[i] - xs[i-j])
		}
	}
	return nil
}

// checkFinite returns a *DomainError for the first NaN or infinite value in
// xs.
func checkFinite(xs []float64) error {
	for i, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return &DomainError{I: i, J: i, X: x}
		}
	}
	return nil
}

// checkDistinct returns a *DomainError for the first non-finite or repeated
// value in xs.
func checkDistinct(xs []float64) error {
	// NaNs break the sort order below.
	if err := checkFinite(xs); err != nil {
		return err
	}

	idx := make([]int, len(xs))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return xs[idx[a]] < xs[idx[b]] })

	for k := 1; k < len(idx); k++ {
		i, j := idx[k-1], idx[k]
		if xs[i] == xs[j] {
			if i > j {
				i, j = j, i
			}
			return &DomainError{I: i, J: j, X: xs[i]}
		}
	}
	return nil
}

// NewtonEval evaluates the Newton-form polynomial with nodes xs and
// coefficients ds at x using nested multiplication:
//
// p(x) = d0 + (x - x0)*(d1 + (x - x1)*(d2 + ... (x - x_{n-2})*d_{n-1}))
//
// xs and ds must have the same, non-zero, length.
func NewtonEval(x float64, xs, ds []float64) float64 {
	if len(xs) != len(ds) || len(ds) == 0 {
		panic(lengthError("NewtonEval", "xs", "ds", len(xs), len(ds)))
	}
	return newtonEval(x, xs, ds)
}

func newtonEval(x float64, xs, ds []float64) float64 {
	acc := ds[len(ds)-1]
	for i := len(ds) - 2; i >= 0; i-- {
		acc = acc*(x-xs[i]) + ds[i]
	}
	return acc
}

// NewtonEvalAll evaluates the Newton-form polynomial with nodes xs and
// coefficients ds at every point in qs. If an output array is given, the
// output is written to that array (the array is still returned as a
// convenience).
func NewtonEvalAll(
	qs, xs, ds []float64, out ...[]float64,
) ([]float64, error) {
	if len(xs) != len(ds) {
		return nil, lengthError("NewtonEvalAll", "xs", "ds", len(xs), len(ds))
	} else if len(ds) == 0 {
		return nil, &ShapeError{"NewtonEvalAll", "no coefficients given"}
	} else if len(out) > 0 && len(out[0]) < len(qs) {
		return nil, lengthError(
			"NewtonEvalAll", "qs", "out", len(qs), len(out[0]),
		)
	}

	res := outBuffer(len(qs), out)
	for i, q := range qs {
		res[i] = newtonEval(q, xs, ds)
	}
	return res, nil
}

// Newton is the interpolating polynomial through a fixed set of samples,
// stored in Newton form.
type Newton struct {
	xs, ds []float64
}

// NewNewton creates the polynomial of degree at most len(xs) - 1 which passes
// through every point (xs[i], ys[i]). xs and ys are copied.
func NewNewton(xs, ys []float64) (*Newton, error) {
	ds, err := DividedDifferences(xs, ys)
	if err != nil {
		return nil, err
	}
	nw := &Newton{xs: make([]float64, len(xs)), ds: ds}
	copy(nw.xs, xs)
	return nw, nil
}

// Eval returns the value of the polynomial at x.
func (nw *Newton) Eval(x float64) float64 {
	return newtonEval(x, nw.xs, nw.ds)
}

// EvalAll evaluates the polynomial at all the given x values. If an output
// array is given, the output is written to that array (the array is still
// returned as a convenience).
//
// If more than one output array is provided, only the first is used.
func (nw *Newton) EvalAll(xs []float64, out ...[]float64) []float64 {
	res := outBuffer(len(xs), out)
	for i, x := range xs {
		res[i] = newtonEval(x, nw.xs, nw.ds)
	}
	return res
}

// Coeffs returns a copy of the divided difference coefficients.
func (nw *Newton) Coeffs() []float64 {
	ds := make([]float64, len(nw.ds))
	copy(ds, nw.ds)
	return ds
}

// Nodes returns a copy of the abscissas the polynomial was built from.
func (nw *Newton) Nodes() []float64 {
	xs := make([]float64, len(nw.xs))
	copy(xs, nw.xs)
	return xs
}

// Degree returns the maximum degree of the polynomial.
func (nw *Newton) Degree() int { return len(nw.ds) - 1 }

/*package compare runs the comparison between Newton-form polynomial
interpolation and natural cubic spline interpolation of a test function.
*/
package compare

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Func is a one dimensional test function.
type Func func(x float64) float64

// DefaultFunction is the name of the function used when none is specified.
const DefaultFunction = "runge"

var functions = map[string]Func{
	// Runge's function. Equidistant polynomial interpolation diverges near
	// the ends of [-5, 5] as the number of samples grows.
	"runge":    func(x float64) float64 { return 1 / (1 + x*x) },
	"gaussian": func(x float64) float64 { return math.Exp(-x * x) },
	"abs":      math.Abs,
}

// Function returns the test function with the given name. Names are not case
// sensitive.
func Function(name string) (Func, error) {
	f, ok := functions[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf(
			"Function '%s' not recognized. Must be one of [%s].",
			name, strings.Join(FunctionNames(), " | "),
		)
	}
	return f, nil
}

// FunctionNames returns the names of all test functions in sorted order.
func FunctionNames() []string {
	names := make([]string, 0, len(functions))
	for name := range functions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Linspace returns n evenly spaced points on [lo, hi], including both end
// points. If n is 1, the result is [lo].
func Linspace(lo, hi float64, n int) []float64 {
	if n <= 0 {
		return []float64{}
	} else if n == 1 {
		return []float64{lo}
	}

	xs := make([]float64, n)
	dx := (hi - lo) / float64(n-1)
	for i := range xs {
		xs[i] = lo + dx*float64(i)
	}
	// Avoid round-off pushing the last point past the table edge.
	xs[n-1] = hi
	return xs
}

// Samples evaluates f at n evenly spaced points on [lo, hi].
func Samples(f Func, lo, hi float64, n int) (xs, ys []float64) {
	xs = Linspace(lo, hi, n)
	ys = make([]float64, n)
	for i, x := range xs {
		ys[i] = f(x)
	}
	return xs, ys
}

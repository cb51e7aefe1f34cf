package interpolate

import (
	"fmt"
)

// DomainError is returned when two samples share an abscissa. The divided
// difference recurrence would divide by zero, so the interpolating
// polynomial is undefined. It is also returned for NaN or infinite
// abscissas, in which case I == J.
type DomainError struct {
	I, J int
	X    float64
}

func (e *DomainError) Error() string {
	if e.I == e.J {
		return fmt.Sprintf(
			"interpolate: sample %d has the non-finite abscissa x = %g",
			e.I, e.X,
		)
	}
	return fmt.Sprintf(
		"interpolate: samples %d and %d share the abscissa x = %g",
		e.I, e.J, e.X,
	)
}

// ShapeError is returned when the arrays given to a function have lengths
// which are unequal or empty.
type ShapeError struct {
	Op, Msg string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("interpolate: %s: %s", e.Op, e.Msg)
}

func lengthError(op, xName, yName string, nx, ny int) *ShapeError {
	return &ShapeError{op, fmt.Sprintf(
		"len(%s) = %d, but len(%s) = %d", xName, nx, yName, ny,
	)}
}

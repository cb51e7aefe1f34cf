package io

import (
	"fmt"
	"runtime"

	"gopkg.in/gcfg.v1"

	"github.com/phil-mansfield/runge/compare"
)

const ExampleInterpolateFile = `[Interpolate]

#######################
# Required Parameters #
#######################

# The function which is sampled and interpolated. Must be one of
# [ Runge | Gaussian | Abs ]. Runge is 1/(1 + x^2).
Function = Runge

# Range of the query grid. Unless SampleFile is set, samples are also spread
# evenly over this range.
Min = -5
Max = 5

# Number of evenly spaced samples the polynomial and spline pass through.
# Must be at least 2.
Samples = 15

# Number of evenly spaced points the interpolants are evaluated at.
GridPoints = 201

# Image file comparing the true function, the spline, and the Newton
# polynomial.
PlotFile = runge.png

#######################
# Optional Parameters #
#######################

# Reads samples from a whitespace separated text table instead of generating
# them. Samples must not share x values, and for the spline to be evaluated
# the grid range must lie within the sample range. XColumn and YColumn are
# zero indexed and default to 0 and 1.
# SampleFile = path/to/samples.txt
# XColumn = 0
# YColumn = 1

# Writes the grid, true values, spline values and Newton values as a text
# table.
# TableFile = runge.txt

# Output file which is useful for debugging.
# LogFile = log.out

# Number of goroutines used to evaluate the polynomial. Defaults to the number
# of logical cores.
# Threads = 4`

type InterpolateConfig struct {
	// Required
	Function   string
	Min, Max   float64
	Samples    int
	GridPoints int
	PlotFile   string

	// Optional
	SampleFile       string
	XColumn, YColumn int
	TableFile        string
	LogFile          string
	Threads          int
}

type InterpolateWrapper struct {
	Interpolate InterpolateConfig
}

// DefaultInterpolateWrapper returns a wrapper whose values are those of the
// classic Runge demonstration.
func DefaultInterpolateWrapper() *InterpolateWrapper {
	p := compare.DefaultParams()
	con := InterpolateConfig{
		Function:   p.Function,
		Min:        p.Min,
		Max:        p.Max,
		Samples:    p.Samples,
		GridPoints: p.GridPoints,
		XColumn:    0,
		YColumn:    1,
		Threads:    runtime.NumCPU(),
	}
	return &InterpolateWrapper{con}
}

// ReadInterpolateConfig reads the [Interpolate] section of the given file on
// top of the default values and checks that the result is valid.
func ReadInterpolateConfig(fname string) (*InterpolateConfig, error) {
	wrap := DefaultInterpolateWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil {
		return nil, err
	}
	con := &wrap.Interpolate
	if err := con.CheckInit(); err != nil {
		return nil, err
	}
	return con, nil
}

// ParseInterpolateConfig is identical to ReadInterpolateConfig, but reads
// from a string.
func ParseInterpolateConfig(text string) (*InterpolateConfig, error) {
	wrap := DefaultInterpolateWrapper()
	if err := gcfg.ReadStringInto(wrap, text); err != nil {
		return nil, err
	}
	con := &wrap.Interpolate
	if err := con.CheckInit(); err != nil {
		return nil, err
	}
	return con, nil
}

func (con *InterpolateConfig) ValidFunction() bool {
	_, err := compare.Function(con.Function)
	return err == nil
}
func (con *InterpolateConfig) ValidRange() bool {
	return con.Min < con.Max
}
func (con *InterpolateConfig) ValidSamples() bool {
	// The spline needs at least two points.
	return con.Samples > 1
}
func (con *InterpolateConfig) ValidGridPoints() bool {
	return con.GridPoints > 0
}
func (con *InterpolateConfig) ValidPlotFile() bool {
	return con.PlotFile != ""
}
func (con *InterpolateConfig) ValidSampleFile() bool {
	return con.SampleFile != ""
}
func (con *InterpolateConfig) ValidColumns() bool {
	return con.XColumn >= 0 && con.YColumn >= 0 && con.XColumn != con.YColumn
}
func (con *InterpolateConfig) ValidTableFile() bool {
	return con.TableFile != ""
}
func (con *InterpolateConfig) ValidLogFile() bool {
	return con.LogFile != ""
}
func (con *InterpolateConfig) ValidThreads() bool {
	return con.Threads > 0
}

// CheckInit returns an error describing the first invalid required value.
func (con *InterpolateConfig) CheckInit() error {
	switch {
	case !con.ValidFunction():
		return fmt.Errorf("Invalid 'Function' value, '%s'. Must be one of "+
			"%v.", con.Function, compare.FunctionNames())
	case !con.ValidRange():
		return fmt.Errorf(
			"'Min' must be smaller than 'Max', but Min = %g and Max = %g.",
			con.Min, con.Max,
		)
	case !con.ValidSampleFile() && !con.ValidSamples():
		return fmt.Errorf("Invalid 'Samples' value, %d.", con.Samples)
	case con.ValidSampleFile() && !con.ValidColumns():
		return fmt.Errorf(
			"Invalid 'XColumn' and 'YColumn' values, %d and %d.",
			con.XColumn, con.YColumn,
		)
	case !con.ValidGridPoints():
		return fmt.Errorf("Invalid 'GridPoints' value, %d.", con.GridPoints)
	case !con.ValidPlotFile():
		return fmt.Errorf("Invalid/non-existent 'PlotFile' value.")
	case !con.ValidThreads():
		return fmt.Errorf("Invalid 'Threads' value, %d.", con.Threads)
	}
	return nil
}

// Params converts the configuration into comparison parameters. Explicit
// samples are left unset.
func (con *InterpolateConfig) Params() compare.Params {
	return compare.Params{
		Function:   con.Function,
		Min:        con.Min,
		Max:        con.Max,
		Samples:    con.Samples,
		GridPoints: con.GridPoints,
		Threads:    con.Threads,
	}
}

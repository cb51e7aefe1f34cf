package io

import (
	"bytes"
	"context"
	"io/ioutil"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phil-mansfield/runge/compare"
)

func TestExampleInterpolateFile(t *testing.T) {
	con, err := ParseInterpolateConfig(ExampleInterpolateFile)
	require.NoError(t, err)

	assert.Equal(t, "Runge", con.Function)
	assert.Equal(t, -5.0, con.Min)
	assert.Equal(t, 5.0, con.Max)
	assert.Equal(t, 15, con.Samples)
	assert.Equal(t, 201, con.GridPoints)
	assert.Equal(t, "runge.png", con.PlotFile)

	// Commented out values keep their defaults.
	assert.False(t, con.ValidSampleFile())
	assert.False(t, con.ValidTableFile())
	assert.False(t, con.ValidLogFile())
	assert.Equal(t, 0, con.XColumn)
	assert.Equal(t, 1, con.YColumn)
	assert.Equal(t, runtime.NumCPU(), con.Threads)

	p := con.Params()
	def := compare.DefaultParams()
	assert.Equal(t, def.Min, p.Min)
	assert.Equal(t, def.Max, p.Max)
	assert.Equal(t, def.Samples, p.Samples)
	assert.Equal(t, def.GridPoints, p.GridPoints)
	assert.Nil(t, p.Xs)
}

func TestInterpolateConfigValidation(t *testing.T) {
	table := []struct {
		name, body, errField string
	}{
		{"function", "Function = Sinc\nPlotFile = a.png", "Function"},
		{"range", "Min = 3\nMax = 1\nPlotFile = a.png", "Min"},
		{"samples", "Samples = 0\nPlotFile = a.png", "Samples"},
		{"one sample", "Samples = 1\nPlotFile = a.png", "Samples"},
		{"columns", "SampleFile = s.txt\nXColumn = 2\nYColumn = 2\n" +
			"PlotFile = a.png", "XColumn"},
		{"grid", "GridPoints = -1\nPlotFile = a.png", "GridPoints"},
		{"plot", "Samples = 4", "PlotFile"},
		{"threads", "Threads = 0\nPlotFile = a.png", "Threads"},
	}

	for _, test := range table {
		_, err := ParseInterpolateConfig("[Interpolate]\n" + test.body)
		if assert.Error(t, err, test.name) {
			assert.Contains(t, err.Error(), test.errField, test.name)
		}
	}

	// A sample file makes Samples irrelevant.
	con, err := ParseInterpolateConfig("[Interpolate]\nSamples = 0\n" +
		"SampleFile = s.txt\nPlotFile = a.png")
	require.NoError(t, err)
	assert.Equal(t, "s.txt", con.SampleFile)

	_, err = ParseInterpolateConfig("[Interpolate]\nNotAField = 3\n")
	assert.Error(t, err)
}

func TestReadInterpolateConfig(t *testing.T) {
	dir, err := ioutil.TempDir("", "runge_config")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	fname := filepath.Join(dir, "runge.config")
	body := "[Interpolate]\nFunction = gaussian\nSamples = 9\n" +
		"PlotFile = g.png\nThreads = 2\n"
	require.NoError(t, ioutil.WriteFile(fname, []byte(body), 0644))

	con, err := ReadInterpolateConfig(fname)
	require.NoError(t, err)
	assert.Equal(t, "gaussian", con.Function)
	assert.Equal(t, 9, con.Samples)
	assert.Equal(t, 2, con.Threads)
	assert.Equal(t, 201, con.GridPoints)

	_, err = ReadInterpolateConfig(filepath.Join(dir, "missing.config"))
	assert.Error(t, err)
}

func TestReadSamples(t *testing.T) {
	dir, err := ioutil.TempDir("", "runge_samples")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	fname := filepath.Join(dir, "samples.txt")
	body := "7 0 1\n8 1 2\n9 2 5\n"
	require.NoError(t, ioutil.WriteFile(fname, []byte(body), 0644))

	xs, ys, err := ReadSamples(fname, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 2}, xs)
	assert.Equal(t, []float64{1, 2, 5}, ys)

	_, _, err = ReadSamples(filepath.Join(dir, "missing.txt"), 0, 1)
	assert.Error(t, err)
}

func TestWriteComparison(t *testing.T) {
	p := compare.Params{
		Function: "runge", Min: 0, Max: 2, GridPoints: 3,
		Xs: []float64{0, 1, 2},
		Ys: []float64{1, 2, 5},
	}
	c, err := compare.Run(context.Background(), p, compare.NaturalSpline)
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	require.NoError(t, WriteComparison(buf, c))

	var header, rows []string
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if strings.HasPrefix(line, "#") {
			header = append(header, line)
		} else {
			rows = append(rows, line)
		}
	}

	assert.Contains(t, header, "# Function: runge")
	assert.Contains(t, header, "# Samples: 3")
	require.Len(t, rows, 3)
	for i, row := range rows {
		assert.Len(t, strings.Fields(row), 4, "row %d", i)
	}
	assert.Equal(t, []string{"0", "1", "1", "1"}, strings.Fields(rows[0]))
	assert.Equal(t, []string{"1", "0.5", "2", "2"}, strings.Fields(rows[1]))
}

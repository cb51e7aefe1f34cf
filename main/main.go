package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/phil-mansfield/runge/compare"
	"github.com/phil-mansfield/runge/io"

	plt "github.com/phil-mansfield/pyplot"
)

// FileGroup contains utility files for logging and writing tables to.
type FileGroup struct {
	log, table *os.File
}

// Close closes the files inside FileGroup.
func (fg *FileGroup) Close() {
	if fg.log != nil {
		err := fg.log.Close()
		if err != nil {
			log.Fatal(err.Error())
		}
	}

	if fg.table != nil {
		err := fg.table.Close()
		if err != nil {
			log.Fatal(err.Error())
		}
	}
}

func main() {
	var (
		interpolate, defaultPlot string
		exampleConfig            string
		threads                  int
	)
	vars := map[string]*string{
		"Interpolate":   &interpolate,
		"Default":       &defaultPlot,
		"ExampleConfig": &exampleConfig,
	}

	flag.StringVar(
		&interpolate, "Interpolate", "",
		"Configuration file for [Interpolate] mode.",
	)
	flag.StringVar(
		&defaultPlot, "Default", "",
		"Runs the 15 point Runge comparison on [-5, 5] with default "+
			"parameters and writes the plot to the given image file.",
	)
	flag.StringVar(
		&exampleConfig, "ExampleConfig", "",
		"Prints an example configuration file of the specified type to "+
			"stdout. The only accepted argument is 'Interpolate'.",
	)
	flag.IntVar(
		&threads, "Threads", 0,
		"Number of threads used. Overrides the configuration file.",
	)

	flag.Parse()

	modeName, err := getModeName(vars)
	if err != nil {
		log.Fatal(err.Error())
	}

	switch modeName {
	case "Interpolate":
		con, err := io.ReadInterpolateConfig(interpolate)
		if err != nil {
			log.Fatal(err.Error())
		}
		if threads > 0 {
			con.Threads = threads
		}
		interpolateMain(con)

	case "Default":
		wrap := io.DefaultInterpolateWrapper()
		con := &wrap.Interpolate
		con.PlotFile = defaultPlot
		if threads > 0 {
			con.Threads = threads
		}
		if err := con.CheckInit(); err != nil {
			log.Fatal(err.Error())
		}
		interpolateMain(con)

	case "ExampleConfig":
		switch strings.ToLower(exampleConfig) {
		case "interpolate":
			fmt.Println(io.ExampleInterpolateFile)
		default:
			log.Fatal(
				"Unrecognized 'ExampleConfig' argument. The only " +
					"recognized argument is 'Interpolate'.",
			)
		}

	default:
		panic("Impossible")
	}
}

// getModeName returns the name of the mode and fails with a descriptive error
// if the user provided less or more than one mode flag.
func getModeName(vars map[string]*string) (string, error) {
	setNames := []string{}

	for name, varPtr := range vars {
		if *varPtr != "" {
			setNames = append(setNames, name)
		}
	}
	sort.Strings(setNames)

	if len(setNames) == 0 {
		return "", fmt.Errorf("No flags have been set.")
	}

	if len(setNames) > 1 {
		return "", fmt.Errorf(
			"The following flags were set: %s, but runge only accepts "+
				"one flag at a time.",
			strings.Join(setNames, ", "),
		)
	}

	return setNames[0], nil
}

func interpolateMain(con *io.InterpolateConfig) {
	fg := setupIO(con)
	defer fg.Close()

	p := con.Params()
	if con.ValidSampleFile() {
		xs, ys, err := io.ReadSamples(con.SampleFile, con.XColumn, con.YColumn)
		if err != nil {
			log.Fatal(err.Error())
		}
		p.Xs, p.Ys = xs, ys
		log.Printf("Read %d samples from %s.", len(xs), con.SampleFile)
	}

	c, err := compare.Run(context.Background(), p, compare.NaturalSpline)
	if err != nil {
		log.Fatal(err.Error())
	}

	log.Printf("Divided differences: %.6g", c.Coeffs)
	nwRes, spRes := c.Residuals()
	log.Printf("Max |Newton - f| = %.6g, max |Spline - f| = %.6g over %d "+
		"grid points.", nwRes, spRes, len(c.Grid))

	if fg.table != nil {
		if err := io.WriteComparison(fg.table, c); err != nil {
			log.Fatal(err.Error())
		}
	}

	compare.Plot(c, con.PlotFile)
	plt.Execute()
	log.Printf("Wrote plot to %s.", con.PlotFile)
}

// setupIO opens the log and table files requested by the configuration.
func setupIO(con *io.InterpolateConfig) *FileGroup {
	var err error
	fg := new(FileGroup)

	if con.ValidLogFile() {
		fg.log, err = os.Create(con.LogFile)
		if err != nil {
			log.Fatal(err.Error())
		}
		log.SetOutput(fg.log)
	}

	if con.ValidTableFile() {
		fg.table, err = os.Create(con.TableFile)
		if err != nil {
			log.Fatal(err.Error())
		}
	}

	return fg
}

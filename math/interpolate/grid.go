package interpolate

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// minChunk is the smallest number of grid points handed to a single
// goroutine by EvalGrid.
const minChunk = 64

// EvalGrid evaluates intr at every point in grid, splitting the work between
// at most threads goroutines. The result is identical to intr.EvalAll(grid).
//
// intr must be safe for concurrent use, which is true of every Interpolator
// in this package.
func EvalGrid(
	ctx context.Context, intr Interpolator, grid []float64, threads int,
) ([]float64, error) {
	out := make([]float64, len(grid))
	if threads <= 1 || len(grid) <= minChunk {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		intr.EvalAll(grid, out)
		return out, nil
	}

	chunk := (len(grid) + threads - 1) / threads
	if chunk < minChunk {
		chunk = minChunk
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(threads)
	for start := 0; start < len(grid); start += chunk {
		end := start + chunk
		if end > len(grid) {
			end = len(grid)
		}
		xs, ys := grid[start:end], out[start:end]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			intr.EvalAll(xs, ys)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// SPDX-License-Identifier: MIT

package marching

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/isoline/geom"
	"github.com/katalvlaran/isoline/grid"
)

// March extracts the contour of values at threshold. values[y][x] must be
// rectangular and finite; it is copied and never modified.
//
// Grids with fewer than two rows or two columns have no cells and yield an
// empty, non-nil contour.
//
// Errors: grid.ErrNonRectangular, grid.ErrNonFinite (wrapped, use errors.Is).
// Complexity: O(W×H).
func March(values [][]float64, threshold float64, opts ...Option) (geom.Contour, error) {
	g, err := grid.New(values)
	if err != nil {
		return nil, err
	}
	return MarchGrid(g, threshold, opts...), nil
}

// MarchGrid extracts the contour of g at threshold.
//
// Cells are visited row by row (y = 0..Rows-2), left to right
// (x = 0..Cols-2). Cells classified None are skipped; for the others the
// local segments from GenerateLines are translated by (x, y) and appended.
// Segments are not merged, closed or deduplicated.
//
// The result depends only on g, threshold and WithInterpolation; repeated
// calls return identical contours regardless of WithWorkers.
func MarchGrid(g *grid.Grid, threshold float64, opts ...Option) geom.Contour {
	o := gatherOptions(opts...)
	log := o.Logger()

	if g == nil || g.CellCount() == 0 {
		return geom.Contour{}
	}

	log.Debug("marching: start",
		slog.Int("rows", g.Rows()),
		slog.Int("cols", g.Cols()),
		slog.Float64("threshold", threshold),
		slog.Bool("interpolation", o.interpolation),
		slog.Int("workers", o.workers),
	)

	var out geom.Contour
	if o.workers > 1 && g.Rows() > 2 {
		out = marchParallel(g, threshold, o, log)
	} else {
		out = make(geom.Contour, 0, g.Cols())
		for y := 0; y < g.Rows()-1; y++ {
			out = marchRow(out, g, y, threshold, o.interpolation, log)
		}
	}

	log.Debug("marching: done", slog.Int("segments", len(out)))
	return out
}

// marchParallel runs one task per row under a concurrency limit and joins
// the row results in row order.
func marchParallel(g *grid.Grid, threshold float64, o Options, log *slog.Logger) geom.Contour {
	rows := make([]geom.Contour, g.Rows()-1)

	var eg errgroup.Group
	eg.SetLimit(o.workers)
	for y := range rows {
		eg.Go(func() error {
			rows[y] = marchRow(nil, g, y, threshold, o.interpolation, log)
			return nil
		})
	}
	_ = eg.Wait() // row tasks never fail

	n := 0
	for _, r := range rows {
		n += len(r)
	}
	out := make(geom.Contour, 0, n)
	for _, r := range rows {
		out = append(out, r...)
	}
	return out
}

// marchRow appends the segments of every cell in row y to dst.
func marchRow(dst geom.Contour, g *grid.Grid, y int, threshold float64, interpolate bool, log *slog.Logger) geom.Contour {
	debug := log.Enabled(context.Background(), slog.LevelDebug)
	for x := 0; x < g.Cols()-1; x++ {
		cell, _ := g.Cell(x, y)
		c := ClassifyCell(cell, threshold)
		if c == None {
			continue
		}
		origin := geom.Point{X: float64(x), Y: float64(y)}
		for _, s := range GenerateLines(c, cell.UpperLeft, cell.UpperRight, cell.LowerLeft, cell.LowerRight, threshold, interpolate) {
			s = s.Translated(origin)
			if debug && !s.IsFinite() {
				log.Debug("marching: degenerate interpolation",
					slog.Int("x", x), slog.Int("y", y), slog.String("case", c.String()))
			}
			dst = append(dst, s)
		}
	}
	return dst
}

package marching_test

import (
	"bytes"
	"log/slog"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/isoline/geom"
	"github.com/katalvlaran/isoline/grid"
	"github.com/katalvlaran/isoline/marching"
)

// TestMarch_SingleCornerLookup covers the single-cell grids with one
// corner on its own side.
func TestMarch_SingleCornerLookup(t *testing.T) {
	cases := []struct {
		name   string
		values [][]float64
		want   geom.Contour
	}{
		{"UpperLeftHigh", [][]float64{{1, 0}, {0, 0}}, geom.Contour{seg(pt(0, 0.5), pt(0.5, 0))}},
		{"UpperLeftLow", [][]float64{{0, 1}, {1, 1}}, geom.Contour{seg(pt(0, 0.5), pt(0.5, 0))}},
		{"LowerRightHigh", [][]float64{{0, 0}, {0, 1}}, geom.Contour{seg(pt(1, 0.5), pt(0.5, 1))}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := marching.March(tc.values, 0.5, marching.WithInterpolation(false))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestMarch_InterpolatedSingleCell checks the interpolated crossing on a
// 2×2 grid at two thresholds.
func TestMarch_InterpolatedSingleCell(t *testing.T) {
	values := [][]float64{{0, 0}, {0, 1}}

	got, err := marching.March(values, 0.5)
	require.NoError(t, err)
	assert.Equal(t, geom.Contour{seg(pt(1, 0.5), pt(0.5, 1))}, got)

	got, err = marching.March(values, 0.25)
	require.NoError(t, err)
	assert.Equal(t, geom.Contour{seg(pt(1, 0.25), pt(0.25, 1))}, got)
}

// TestMarch_Translation verifies every cell's segments are offset by its
// (x,y) origin and that cells are visited row-major.
func TestMarch_Translation(t *testing.T) {
	values := [][]float64{
		{0, 0, 0},
		{0, 1, 0},
		{0, 0, 0},
	}
	got, err := marching.March(values, 0.5, marching.WithInterpolation(false))
	require.NoError(t, err)

	want := geom.Contour{
		seg(pt(1, 0.5), pt(0.5, 1)), // cell (0,0) LowerRight
		seg(pt(1, 0.5), pt(1.5, 1)), // cell (1,0) LowerLeft
		seg(pt(1, 1.5), pt(0.5, 1)), // cell (0,1) UpperRight
		seg(pt(1, 1.5), pt(1.5, 1)), // cell (1,1) UpperLeft
	}
	assert.Equal(t, want, got)
}

// TestMarch_Saddle checks the ambiguous cell emits both diagonals.
func TestMarch_Saddle(t *testing.T) {
	got, err := marching.March([][]float64{{1, 0}, {0, 1}}, 0.5)
	require.NoError(t, err)
	assert.Equal(t, geom.Contour{
		seg(pt(0, 0.5), pt(0.5, 0)),
		seg(pt(0.5, 1), pt(1, 0.5)),
	}, got)

	got, err = marching.March([][]float64{{1, 0}, {0, 1}}, 0.5, marching.WithInterpolation(false))
	require.NoError(t, err)
	assert.Equal(t, geom.Contour{
		seg(pt(0, 0.5), pt(0.5, 0)),
		seg(pt(1, 0.5), pt(0.5, 1)),
	}, got)
}

// TestMarch_TooSmall returns an empty, non-nil contour for grids without
// a full 2×2 cell, at any threshold.
func TestMarch_TooSmall(t *testing.T) {
	grids := map[string][][]float64{
		"Nil":       nil,
		"NoRows":    {},
		"EmptyRow":  {{}},
		"Single":    {{1}},
		"OneRow":    {{0, 1, 0, 1}},
		"OneColumn": {{0}, {1}, {0}},
	}
	for name, values := range grids {
		t.Run(name, func(t *testing.T) {
			for _, th := range []float64{-1, 0, 0.5, 1, 2} {
				got, err := marching.March(values, th)
				require.NoError(t, err)
				assert.NotNil(t, got)
				assert.Empty(t, got)
			}
		})
	}
}

// TestMarch_UniformCells yields nothing when every corner sits on the same side.
func TestMarch_UniformCells(t *testing.T) {
	values := [][]float64{
		{5, 6, 7},
		{8, 9, 10},
	}
	for _, th := range []float64{-100, 0, 5, 4.999} {
		got, err := marching.March(values, th)
		require.NoError(t, err)
		assert.Empty(t, got, "threshold %v", th)
	}
	got, err := marching.March(values, 11)
	require.NoError(t, err)
	assert.Empty(t, got)
}

// TestMarch_InclusiveBoundary preserves the >= asymmetry end to end.
func TestMarch_InclusiveBoundary(t *testing.T) {
	got, err := marching.March([][]float64{{0.5, 0}, {0, 0}}, 0.5, marching.WithInterpolation(false))
	require.NoError(t, err)
	assert.Len(t, got, 1)

	got, err = marching.March([][]float64{{-0.5, 0}, {0, 0}}, -0.5, marching.WithInterpolation(false))
	require.NoError(t, err)
	assert.Empty(t, got, "negated field is not mirrored at exact equality")
}

// TestMarch_ShapeErrors rejects jagged and non-finite grids.
func TestMarch_ShapeErrors(t *testing.T) {
	_, err := marching.March([][]float64{{1, 2}, {3}}, 0.5)
	assert.ErrorIs(t, err, grid.ErrNonRectangular)

	_, err = marching.March([][]float64{{1, math.NaN()}, {3, 4}}, 0.5)
	assert.ErrorIs(t, err, grid.ErrNonFinite)

	_, err = marching.March([][]float64{{1, 2}, {math.Inf(-1), 4}}, 0.5)
	assert.ErrorIs(t, err, grid.ErrNonFinite)
}

// TestMarch_DoesNotMutateInput compares the input before and after.
func TestMarch_DoesNotMutateInput(t *testing.T) {
	values := [][]float64{{1, 0, 2}, {0, 3, 0}, {4, 0, 5}}
	before := grid.MustNew(values).Values()

	_, err := marching.March(values, 1.5, marching.WithWorkers(3))
	require.NoError(t, err)
	assert.Equal(t, before, values)
}

// TestMarchGrid_NilGrid is treated like an empty grid.
func TestMarchGrid_NilGrid(t *testing.T) {
	got := marching.MarchGrid(nil, 0.5)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

// TestMarch_Deterministic runs the same input twice and expects identical
// output, in both modes.
func TestMarch_Deterministic(t *testing.T) {
	g, err := grid.Gaussian(25, 20)
	require.NoError(t, err)

	for _, interp := range []bool{true, false} {
		a := marching.MarchGrid(g, 2, marching.WithInterpolation(interp))
		b := marching.MarchGrid(g, 2, marching.WithInterpolation(interp))
		require.NotEmpty(t, a)
		if diff := cmp.Diff(a, b); diff != "" {
			t.Errorf("interpolation=%v: contours differ (-first +second):\n%s", interp, diff)
		}
	}
}

// TestMarch_ParallelMatchesSequential checks row partitioning keeps the
// exact output and order.
func TestMarch_ParallelMatchesSequential(t *testing.T) {
	g, err := grid.Random(40, 33, rand.NewPCG(7, 11))
	require.NoError(t, err)

	seq := marching.MarchGrid(g, 5)
	for _, workers := range []int{2, 3, 8, 64} {
		par := marching.MarchGrid(g, 5, marching.WithWorkers(workers))
		if diff := cmp.Diff(seq, par); diff != "" {
			t.Errorf("workers=%d: parallel contour differs (-seq +par):\n%s", workers, diff)
		}
	}
}

// TestMarch_SegmentsPerCell checks the total segment count equals the sum
// of per-cell counts, each of which is at most 2.
func TestMarch_SegmentsPerCell(t *testing.T) {
	g, err := grid.Random(30, 30, rand.NewPCG(1, 2))
	require.NoError(t, err)

	want := 0
	for y := 0; y < g.Rows()-1; y++ {
		for x := 0; x < g.Cols()-1; x++ {
			cell, ok := g.Cell(x, y)
			require.True(t, ok)
			n := marching.ClassifyCell(cell, 5).SegmentCount()
			assert.LessOrEqual(t, n, 2)
			want += n
		}
	}
	assert.Len(t, marching.MarchGrid(g, 5), want)
	assert.Len(t, marching.MarchGrid(g, 5, marching.WithInterpolation(false)), want)
}

// TestMarch_LookupUsesMidpoints checks that without interpolation every
// coordinate is a multiple of 0.5, and that two grids with the same
// classification give the same contour.
func TestMarch_LookupUsesMidpoints(t *testing.T) {
	g, err := grid.Random(12, 9, rand.NewPCG(3, 4))
	require.NoError(t, err)

	for _, s := range marching.MarchGrid(g, 5, marching.WithInterpolation(false)) {
		for _, v := range []float64{s.A.X, s.A.Y, s.B.X, s.B.Y} {
			assert.Equal(t, 0.0, math.Mod(v, 0.5), "coordinate %v is not on a midpoint", v)
		}
	}

	a, err := marching.March([][]float64{{1, 0, 1}, {0, 0, 1}}, 0.5, marching.WithInterpolation(false))
	require.NoError(t, err)
	b, err := marching.March([][]float64{{9, -3, 0.6}, {0.2, -7, 100}}, 0.5, marching.WithInterpolation(false))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// TestMarch_ThresholdMonotonicity moves the threshold from just above 0 to
// just below the single high corner; the crossing slides toward that corner.
func TestMarch_ThresholdMonotonicity(t *testing.T) {
	values := [][]float64{{10, 0}, {0, 0}}
	prev := math.Inf(1)
	for th := 0.01; th < 10; th += 0.5 {
		got, err := marching.March(values, th)
		require.NoError(t, err)
		require.Len(t, got, 1)

		s := got[0]
		assert.Equal(t, 0.0, s.A.X, "first endpoint stays on the left edge")
		assert.Equal(t, 0.0, s.B.Y, "second endpoint stays on the top edge")
		dist := math.Hypot(s.A.X, s.A.Y) + math.Hypot(s.B.X, s.B.Y)
		assert.Less(t, dist, prev, "threshold %v", th)
		prev = dist
	}
}

// TestMarch_Logging routes debug records to a per-call logger.
func TestMarch_Logging(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := marching.March([][]float64{{1, 0}, {0, 1}}, 0.5, marching.WithLogger(log))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "marching: start")
	assert.Contains(t, out, "rows=2")
	assert.Contains(t, out, "segments=2")
}

// TestSetLogger swaps the package logger and restores the silent default.
func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	marching.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { marching.SetLogger(nil) })

	marching.MarchGrid(grid.MustNew([][]float64{{1, 0}, {0, 0}}), 0.5)
	assert.Contains(t, buf.String(), "segments=1")

	marching.SetLogger(nil)
	buf.Reset()
	marching.MarchGrid(grid.MustNew([][]float64{{1, 0}, {0, 0}}), 0.5)
	assert.Empty(t, buf.String())
}

package grid

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// New constructs a Grid from a rectangular 2D slice, values[y][x].
// It deep-copies the input, so later changes to values are not observed.
// Returns ErrNonRectangular if any row length differs from the first row,
// ErrNonFinite if any sample is NaN or ±Inf.
// Complexity: O(W×H) time and memory.
func New(values [][]float64) (*Grid, error) {
	h := len(values)
	if h == 0 {
		return &Grid{}, nil
	}
	w := len(values[0])
	for y, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("row %d has length %d, want %d: %w", y, len(row), w, ErrNonRectangular)
		}
	}
	data := make([]float64, 0, w*h)
	for y, row := range values {
		for x, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("sample (%d,%d) = %v: %w", x, y, v, ErrNonFinite)
			}
		}
		data = append(data, row...)
	}
	if w == 0 {
		// Rows without columns carry no cells; keep the height for reporting.
		return &Grid{rows: h}, nil
	}

	return &Grid{rows: h, cols: w, data: data}, nil
}

// MustNew is like New but panics on error. Intended for literals in tests
// and examples.
func MustNew(values [][]float64) *Grid {
	g, err := New(values)
	if err != nil {
		panic(err)
	}
	return g
}

// FromMatrix copies a gonum matrix into a Grid; m.At(i, j) becomes
// the sample at row i, column j.
// Returns ErrNonFinite if any element is NaN or ±Inf.
// Complexity: O(W×H).
func FromMatrix(m mat.Matrix) (*Grid, error) {
	r, c := m.Dims()
	data := make([]float64, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := m.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("sample (%d,%d) = %v: %w", j, i, v, ErrNonFinite)
			}
			data[i*c+j] = v
		}
	}

	return &Grid{rows: r, cols: c, data: data}, nil
}

// Dense returns a copy of g as a *mat.Dense, or nil when g has no samples
// (gonum does not allow zero-sized dense matrices).
func (g *Grid) Dense() *mat.Dense {
	if g.rows == 0 || g.cols == 0 {
		return nil
	}
	data := make([]float64, len(g.data))
	copy(data, g.data)
	return mat.NewDense(g.rows, g.cols, data)
}

// Rows returns the number of rows (height).
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns (width).
func (g *Grid) Cols() int { return g.cols }

// Empty reports whether g has no samples.
func (g *Grid) Empty() bool { return len(g.data) == 0 }

// CellCount returns the number of 2×2 cells, (W-1)×(H-1), or 0 when either
// dimension is below 2.
func (g *Grid) CellCount() int {
	if g.rows < 2 || g.cols < 2 {
		return 0
	}
	return (g.rows - 1) * (g.cols - 1)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.cols && y >= 0 && y < g.rows
}

// At returns the sample at column x, row y. It panics if (x,y) is out of
// bounds, like a slice index.
func (g *Grid) At(x, y int) float64 {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("grid: At(%d,%d) out of range %dx%d", x, y, g.cols, g.rows))
	}
	return g.data[g.index(x, y)]
}

// Row returns a copy of row y.
func (g *Grid) Row(y int) []float64 {
	if y < 0 || y >= g.rows {
		panic(fmt.Sprintf("grid: Row(%d) out of range %d", y, g.rows))
	}
	out := make([]float64, g.cols)
	copy(out, g.data[y*g.cols:(y+1)*g.cols])
	return out
}

// Values returns a deep copy of the samples as values[y][x].
func (g *Grid) Values() [][]float64 {
	out := make([][]float64, g.rows)
	for y := range out {
		out[y] = make([]float64, g.cols)
		copy(out[y], g.data[y*g.cols:(y+1)*g.cols])
	}
	return out
}

// Range returns the minimum and maximum sample. Both are 0 for an empty grid.
func (g *Grid) Range() (lo, hi float64) {
	if len(g.data) == 0 {
		return 0, 0
	}
	lo, hi = g.data[0], g.data[0]
	for _, v := range g.data[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}

// Cell returns the 2×2 neighbourhood whose upper-left corner is (x,y).
// ok is false when (x+1, y+1) falls outside the grid.
// Complexity: O(1).
func (g *Grid) Cell(x, y int) (c Cell, ok bool) {
	if x < 0 || y < 0 || x+1 >= g.cols || y+1 >= g.rows {
		return Cell{}, false
	}
	i := g.index(x, y)
	return Cell{
		X:          x,
		Y:          y,
		UpperLeft:  g.data[i],
		UpperRight: g.data[i+1],
		LowerLeft:  g.data[i+g.cols],
		LowerRight: g.data[i+g.cols+1],
	}, true
}

// index maps (x,y) to a row-major index: y*cols + x.
func (g *Grid) index(x, y int) int {
	return y*g.cols + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.cols, idx / g.cols
}

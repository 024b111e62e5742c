package grid

// Cell is the 2×2 neighbourhood of a Grid identified by its upper-left
// index (X, Y). It is a transient view; it does not alias the Grid.
type Cell struct {
	X, Y int // upper-left grid index

	UpperLeft  float64 // g[Y][X]
	UpperRight float64 // g[Y][X+1]
	LowerLeft  float64 // g[Y+1][X]
	LowerRight float64 // g[Y+1][X+1]
}

// Grid is an immutable rectangular array of float64 samples stored in
// row-major order. The zero value is an empty grid.
type Grid struct {
	rows, cols int
	data       []float64 // len == rows*cols
}

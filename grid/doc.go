// Package grid provides the immutable scalar grid consumed by contour
// extraction, plus the synthetic grid sources used to feed it.
//
// What:
//
//   - Grid wraps a rectangular [][]float64 of samples (Rows × Cols).
//   - Values are deep-copied on construction; a Grid never changes afterwards.
//   - Cell(x, y) exposes the 2×2 neighbourhood whose upper-left corner is (x, y).
//   - FromMatrix adapts any gonum mat.Matrix; Dense exports one.
//   - Random and Gaussian generate demo grids.
//
// Shape rules:
//
//   - Zero rows, or rows of length zero, form a valid empty grid.
//   - Jagged rows are rejected with ErrNonRectangular; rows are never
//     truncated or padded.
//   - NaN and ±Inf samples are rejected with ErrNonFinite.
//
// Complexity:
//
//   - New, FromMatrix, Values: O(W×H) time and memory.
//   - At, Cell, InBounds:      O(1).
//
// Errors:
//
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrNonFinite:      a sample is NaN or ±Inf.
//   - ErrBadDimensions:  a generator was asked for a negative size.
package grid

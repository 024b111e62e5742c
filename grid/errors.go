package grid

import "errors"

var (
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrNonFinite indicates a NaN or ±Inf sample.
	ErrNonFinite = errors.New("grid: samples must be finite")
	// ErrBadDimensions indicates a negative width or height.
	ErrBadDimensions = errors.New("grid: dimensions must be >= 0")
)

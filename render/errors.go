package render

import "errors"

var (
	// ErrEmptyGrid indicates a nil grid or one without samples.
	ErrEmptyGrid = errors.New("render: grid has no samples")
	// ErrUnknownFormat indicates an unsupported image format.
	ErrUnknownFormat = errors.New("render: unknown image format")
)

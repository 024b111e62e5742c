// Package geom holds the value types produced by contour extraction:
// Point, Segment and Contour.
//
// What:
//
//   - Point is an (X, Y) pair in grid index space (X = column, Y = row).
//   - Segment is exactly two Points; equality is structural (==).
//   - Contour is a flat, ordered list of independent Segments.
//
// All types are immutable values. Translation never mutates the receiver;
// it returns a new value, so Points and Segments can be shared freely
// between goroutines.
//
// Non-finite coordinates (NaN, ±Inf) are representable on purpose: a
// degenerate interpolation upstream propagates them, and consumers such as
// renderers decide what to do with them (see Contour.Finite).
package geom

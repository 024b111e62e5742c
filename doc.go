// Package isoline extracts iso-value contour lines from rectangular scalar
// grids with the marching-squares algorithm.
//
// What is marching squares?
//
//	Every 2×2 cell of the grid is compared against a threshold. The pattern
//	of corners at or above the threshold selects one of eight cases, and
//	each case maps to zero, one or two line segments across the cell.
//	Concatenating the segments of all cells traces the contour.
//
// Under the hood, everything is organized under subpackages:
//
//	geom/     — Point, Segment and Contour value types
//	grid/     — immutable scalar Grid, gonum interop, random/Gaussian sources
//	marching/ — classifier, edge interpolator, line generator, March
//	render/   — draw a grid and its contour to PNG/SVG with gonum/plot
//	cmd/isoline — command-line front end
//
// Quick example:
//
//	contour, err := marching.March([][]float64{
//		{0, 0, 0},
//		{0, 1, 0},
//		{0, 0, 0},
//	}, 0.5)
//
// yields four independent segments forming a diamond around (1,1).
//
// The core is a pure function: identical inputs give identical contours,
// the input grid is never modified, and segments are neither joined into
// polylines nor deduplicated.
//
//	go get github.com/katalvlaran/isoline
package isoline

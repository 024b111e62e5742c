// Package render draws a scalar grid and its contour with gonum/plot.
//
// Samples are drawn as dots, filled when value >= threshold (the same
// convention the classifier uses) and hollow otherwise; contour segments
// are stroked on top. Rows grow downward, matching grid index space, so
// the picture reads like the printed grid.
//
// Non-finite segments (from degenerate interpolation) are discarded here;
// the contour engine itself never drops them.
//
// Supported output formats are those of gonum/plot: png, svg, pdf, eps,
// jpg/jpeg and tif/tiff.
package render

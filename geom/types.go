package geom

import (
	"fmt"
	"math"
)

// Point is an immutable (X, Y) coordinate pair.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Translated returns p shifted by the vector d. p itself is unchanged.
func (p Point) Translated(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// IsFinite reports whether both coordinates are neither NaN nor ±Inf.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// String formats p as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

// Segment is an ordered pair of Points. It is called a polyline in some
// contouring literature but always carries exactly two endpoints.
type Segment struct {
	A Point `json:"a"`
	B Point `json:"b"`
}

// Seg is shorthand for Segment{A: a, B: b}.
func Seg(a, b Point) Segment {
	return Segment{A: a, B: b}
}

// Translated returns s with both endpoints shifted by d.
func (s Segment) Translated(d Point) Segment {
	return Segment{A: s.A.Translated(d), B: s.B.Translated(d)}
}

// IsFinite reports whether both endpoints are finite.
func (s Segment) IsFinite() bool {
	return s.A.IsFinite() && s.B.IsFinite()
}

// String formats s as "{(ax,ay),(bx,by)}".
func (s Segment) String() string {
	return "{" + s.A.String() + "," + s.B.String() + "}"
}

// Contour is the ordered output of a march: segments appear in the order
// their cells were visited (row-major). Segments are not linked.
type Contour []Segment

// Len returns the number of segments.
func (c Contour) Len() int { return len(c) }

// Translated returns a new Contour with every segment shifted by d.
// Complexity: O(n).
func (c Contour) Translated(d Point) Contour {
	out := make(Contour, len(c))
	for i, s := range c {
		out[i] = s.Translated(d)
	}
	return out
}

// Finite returns a copy of c without segments that have a non-finite
// endpoint. Order of the remaining segments is preserved.
// Complexity: O(n).
func (c Contour) Finite() Contour {
	out := make(Contour, 0, len(c))
	for _, s := range c {
		if s.IsFinite() {
			out = append(out, s)
		}
	}
	return out
}

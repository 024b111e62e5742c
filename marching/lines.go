// SPDX-License-Identifier: MIT

package marching

import (
	"slices"

	"github.com/katalvlaran/isoline/geom"
)

// Edge crossings in cell-local coordinates, t ∈ [0,1] along the edge.
func top(t float64) geom.Point    { return geom.Point{X: t, Y: 0} }
func left(t float64) geom.Point   { return geom.Point{X: 0, Y: t} }
func right(t float64) geom.Point  { return geom.Point{X: 1, Y: t} }
func bottom(t float64) geom.Point { return geom.Point{X: t, Y: 1} }

// midpoint is the fixed crossing used when interpolation is disabled.
const midpoint = 0.5

// caseLines maps every Case to its midpoint segments. Read-only; Lookup
// hands out copies.
var caseLines = [NumCases][]geom.Segment{
	None:       nil,
	UpperLeft:  {{A: left(midpoint), B: top(midpoint)}},
	UpperRight: {{A: right(midpoint), B: top(midpoint)}},
	LowerLeft:  {{A: left(midpoint), B: bottom(midpoint)}},
	LowerRight: {{A: right(midpoint), B: bottom(midpoint)}},
	Horizontal: {{A: left(midpoint), B: right(midpoint)}},
	Vertical:   {{A: top(midpoint), B: bottom(midpoint)}},
	Ambiguous: {
		{A: left(midpoint), B: top(midpoint)},
		{A: right(midpoint), B: bottom(midpoint)},
	},
}

// Lookup returns the midpoint segments for c in cell-local coordinates.
// The returned slice is a fresh copy; an invalid Case yields nil.
// Complexity: O(1).
func Lookup(c Case) []geom.Segment {
	if !c.Valid() {
		return nil
	}
	return slices.Clone(caseLines[c])
}

// GenerateLines produces the cell-local segments for case c.
//
// With interpolate == false the corner values are ignored and Lookup(c) is
// returned. Otherwise every participating edge crossing is placed with
// Interpolate, using the edge directions top UL→UR, left UL→LL,
// right UR→LR and bottom LL→LR:
//
//	UpperLeft   left–top
//	UpperRight  right–top
//	LowerLeft   left–bottom
//	LowerRight  right–bottom
//	Horizontal  left–right
//	Vertical    top–bottom
//	Ambiguous   left–top, bottom–right
//
// Returns 0, 1 or 2 segments. Complexity: O(1).
func GenerateLines(c Case, ul, ur, ll, lr, threshold float64, interpolate bool) []geom.Segment {
	if !interpolate {
		return Lookup(c)
	}

	switch c {
	case UpperLeft:
		t := Interpolate(ul, ur, threshold)
		l := Interpolate(ul, ll, threshold)
		return []geom.Segment{{A: left(l), B: top(t)}}
	case UpperRight:
		t := Interpolate(ul, ur, threshold)
		r := Interpolate(ur, lr, threshold)
		return []geom.Segment{{A: right(r), B: top(t)}}
	case LowerLeft:
		l := Interpolate(ul, ll, threshold)
		b := Interpolate(ll, lr, threshold)
		return []geom.Segment{{A: left(l), B: bottom(b)}}
	case LowerRight:
		r := Interpolate(ur, lr, threshold)
		b := Interpolate(ll, lr, threshold)
		return []geom.Segment{{A: right(r), B: bottom(b)}}
	case Horizontal:
		l := Interpolate(ul, ll, threshold)
		r := Interpolate(ur, lr, threshold)
		return []geom.Segment{{A: left(l), B: right(r)}}
	case Vertical:
		t := Interpolate(ul, ur, threshold)
		b := Interpolate(ll, lr, threshold)
		return []geom.Segment{{A: top(t), B: bottom(b)}}
	case Ambiguous:
		// Fixed pairing; the saddle value is not consulted.
		t := Interpolate(ul, ur, threshold)
		l := Interpolate(ul, ll, threshold)
		r := Interpolate(ur, lr, threshold)
		b := Interpolate(ll, lr, threshold)
		return []geom.Segment{
			{A: left(l), B: top(t)},
			{A: bottom(b), B: right(r)},
		}
	}
	return nil
}

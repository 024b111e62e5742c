// SPDX-License-Identifier: MIT

package marching

import "fmt"

// Case is the topological classification of a single cell.
type Case uint8

const (
	// None: all four corners lie on the same side; no segment.
	None Case = iota
	// UpperLeft: only the upper-left corner differs from the rest.
	UpperLeft
	// UpperRight: only the upper-right corner differs.
	UpperRight
	// LowerLeft: only the lower-left corner differs.
	LowerLeft
	// LowerRight: only the lower-right corner differs.
	LowerRight
	// Horizontal: the top pair differs from the bottom pair.
	Horizontal
	// Vertical: the left pair differs from the right pair.
	Vertical
	// Ambiguous: diagonal corners agree, adjacent corners disagree (saddle).
	Ambiguous
)

// NumCases is the number of distinct Case values.
const NumCases = int(Ambiguous) + 1

var caseNames = [NumCases]string{
	None:       "NONE",
	UpperLeft:  "UPPER_LEFT",
	UpperRight: "UPPER_RIGHT",
	LowerLeft:  "LOWER_LEFT",
	LowerRight: "LOWER_RIGHT",
	Horizontal: "HORIZONTAL",
	Vertical:   "VERTICAL",
	Ambiguous:  "AMBIGUOUS",
}

// String returns the upper-snake name of c, e.g. "UPPER_LEFT".
func (c Case) String() string {
	if int(c) < NumCases {
		return caseNames[c]
	}
	return fmt.Sprintf("Case(%d)", uint8(c))
}

// Valid reports whether c is one of the eight defined cases.
func (c Case) Valid() bool { return int(c) < NumCases }

// SegmentCount returns how many segments the case produces: 0, 1 or 2.
func (c Case) SegmentCount() int {
	switch c {
	case None:
		return 0
	case Ambiguous:
		return 2
	default:
		if c.Valid() {
			return 1
		}
		return 0
	}
}

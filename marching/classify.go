// SPDX-License-Identifier: MIT

package marching

import "github.com/katalvlaran/isoline/grid"

// Classify determines which Case applies to a cell with the given corner
// values. A corner is inside when value >= threshold; NaN is never inside.
//
// Rules, first match wins:
//  1. all four corners agree             → None
//  2. only upper-left differs            → UpperLeft
//  3. only upper-right differs           → UpperRight
//  4. only lower-left differs            → LowerLeft
//  5. only lower-right differs           → LowerRight
//  6. top pair vs bottom pair            → Horizontal
//  7. left pair vs right pair            → Vertical
//  8. otherwise (saddle)                 → Ambiguous
//
// Total over all inputs. Complexity: O(1).
func Classify(ul, ur, ll, lr, threshold float64) Case {
	a := ul >= threshold
	b := ur >= threshold
	c := ll >= threshold
	d := lr >= threshold

	switch {
	case a == b && b == c && c == d:
		return None
	case b == d && d == c:
		return UpperLeft
	case a == d && d == c:
		return UpperRight
	case a == b && b == d:
		return LowerLeft
	case a == b && b == c:
		return LowerRight
	case a == b && c == d:
		return Horizontal
	case a == c && b == d:
		return Vertical
	}
	return Ambiguous
}

// ClassifyCell is Classify applied to a grid.Cell.
func ClassifyCell(cell grid.Cell, threshold float64) Case {
	return Classify(cell.UpperLeft, cell.UpperRight, cell.LowerLeft, cell.LowerRight, threshold)
}

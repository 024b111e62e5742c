// SPDX-License-Identifier: MIT

package marching

// Interpolate returns the fraction t along an edge from a corner holding
// from to a corner holding to at which the linear ramp reaches threshold:
//
//	t = (threshold - from) / (to - from)
//
// The result is not clamped. When from == to the division is degenerate and
// the result is NaN (threshold == from) or ±Inf; callers propagate it.
// Complexity: O(1).
func Interpolate(from, to, threshold float64) float64 {
	return (threshold - from) / (to - from)
}

// SPDX-License-Identifier: MIT

// Package marching extracts iso-value contour lines from a scalar grid with
// the marching-squares algorithm.
//
// What:
//
//	Every 2×2 cell of the grid is classified against a threshold into one of
//	eight Cases. Each Case maps to zero, one or two line segments in
//	cell-local coordinates ([0,1]×[0,1]); the segments are translated by the
//	cell origin and concatenated into a geom.Contour.
//
// Pipeline (strictly one-directional, no state between calls):
//
//	grid + threshold + options
//	  → Classify      (corner booleans, value >= threshold)
//	  → Interpolate   (optional, per crossed edge)
//	  → GenerateLines (lookup table or interpolated variant)
//	  → March         (row-major iteration, translation, concatenation)
//
// Cell layout and edge directions:
//
//	UL ──top──▶ UR        top(t)    = (t, 0)
//	 │            │        left(t)   = (0, t)
//	left        right      right(t)  = (1, t)
//	 ▼            ▼        bottom(t) = (t, 1)
//	LL ─bottom─▶ LR
//
// Conventions:
//
//   - A corner equal to the threshold counts as inside (>=). The contour is
//     therefore not mirror-symmetric under negation at exact-equality samples.
//   - The Ambiguous (saddle) case always yields the pairs left–top and
//     bottom–right, whatever the saddle value.
//   - Segments are never merged, closed or deduplicated.
//   - Degenerate interpolation (equal endpoint values) yields NaN/±Inf
//     coordinates; they are propagated, not repaired.
//
// Options:
//
//   - WithInterpolation(bool): linear crossing positions (default true).
//   - WithWorkers(n): split rows across n goroutines; output is identical.
//   - WithLogger(l): per-call slog logger (default: package logger).
//
// Complexity: O(W×H) time, O(S) memory for S emitted segments.
package marching

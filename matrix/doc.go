// SPDX-License-Identifier: MIT

// Package matrix provides the dense integer matrices consumed and produced by
// the all-pairs shortest-path routines of this module.
//
// The package provides:
//
//   - Distance: a signed 64-bit path weight with a reserved Inf value meaning
//     "no edge" / "no path", plus infinity-aware arithmetic (Add, Min).
//   - Dense: a square, row-major n×n table used both as the input weight
//     matrix (row = source, col = destination) and as the computed distance matrix.
//   - Builders: FromRows (caller rows with a custom sentinel), FromEdges
//     (edge list), NewGraph (no edges yet) and Random (deterministic fixtures).
//
// Sentinel policy:
//
//	Inf is math.MaxInt64 and is never the result of a summation: Add returns
//	Inf if either operand is Inf and ErrOverflow if a finite sum would reach
//	Inf or wrap below math.MinInt64. Callers that represent "no edge" with a
//	different number (INT_MAX, 10^18, -1 ...) pass it via WithSentinel when
//	ingesting, and ToRows maps Inf back to it on export.
//
// Complexity quicksheet:
//
//	NewDense/NewGraph/Clone/Equal: O(n²); At/Set/Add/Min: O(1);
//	FromRows: O(n²); FromEdges: O(n² + E).
//
// Matrices are best for dense or small graphs where O(n²) memory is acceptable.
package matrix

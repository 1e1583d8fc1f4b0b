// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Infinity-aware arithmetic on Distance, shared by every recursive branch
//     of the shortest-path evaluator.
//
// Contract:
//   - Inf + x = Inf and x + Inf = Inf for any x, including Inf.
//   - Finite + finite either yields a finite Distance or ErrOverflow; the raw
//     int64 addition is never allowed to wrap or to land on Inf.

package matrix

import "math"

const opAdd = "Add"

// Add returns a + b under the sentinel policy.
//
// Behavior:
//   - If either operand is Inf the result is Inf (no error).
//   - If the finite sum is > MaxFinite or < math.MinInt64 it returns ErrOverflow.
//
// Complexity: O(1).
func Add(a, b Distance) (Distance, error) {
	// Unreachable on either side keeps the whole route unreachable.
	if a == Inf || b == Inf {
		return Inf, nil
	}

	// Positive overflow: the sum would reach the reserved Inf or wrap.
	if b > 0 && a > MaxFinite-b {
		return 0, matrixErrorf(opAdd, ErrOverflow)
	}
	// Negative overflow: the sum would wrap below MinInt64.
	if b < 0 && a < math.MinInt64-b {
		return 0, matrixErrorf(opAdd, ErrOverflow)
	}

	return a + b, nil
}

// Min returns the smaller of a and b. Inf compares greater than every finite value.
func Min(a, b Distance) Distance {
	if a < b {
		return a
	}

	return b
}

// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Functions return these sentinels (optionally wrapped with an
// operation tag) and tests check them via errors.Is. No function panics on
// user-triggered error conditions; option constructors panic on nonsensical
// arguments (programmer error).

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a requested order is negative.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrNonSquare signals that ingested rows do not form an n×n table.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrOutOfRange indicates that a row, column or edge endpoint is outside [0, n).
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrOverflow signals that a finite sum of distances does not fit into a
	// finite Distance. It is never converted into Inf: an overflowing sum is
	// a reachable path with an unrepresentable weight, not an unreachable one.
	ErrOverflow = errors.New("matrix: distance overflow")

	// ErrInvalidWeight rejects Inf as an explicit edge weight in FromEdges.
	// Absent edges are expressed by omission, not by Inf.
	ErrInvalidWeight = errors.New("matrix: invalid edge weight")

	// ErrNilMatrix indicates that a nil *Dense was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)

// matrixErrorf wraps err with an operation tag so call sites stay uniform:
// "<op>: <sentinel text>".
func matrixErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

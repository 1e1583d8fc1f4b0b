// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Return sentinel errors wrapped with the validator tag so call sites can
//    add their own context and still match with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.

package matrix

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return matrixErrorf(tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateVertex ensures v is a vertex index of m, i.e. 0 ≤ v < m.Order().
// Assumes m is non-nil (call ValidateNotNil first).
// Returns ErrOutOfRange otherwise.
// Complexity: O(1).
func ValidateVertex(m *Dense, v int) error {
	if v < 0 || v >= m.n {
		return validatorErrorf("ValidateVertex", ErrOutOfRange)
	}

	return nil
}

// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*n + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep determinism (fixed loop orders, no map iteration).
//
// Complexity quicksheet:
//   - NewDense/NewGraph: O(n²); At/Set: O(1); Clone/Equal: O(n²).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a square row-major matrix of distances.
//   - n is the order (rows == cols == n, n ≥ 0).
//   - data is a flat buffer of length n*n (offset = i*n + j).
type Dense struct {
	n    int        // order of the square matrix
	data []Distance // contiguous row-major storage (len == n*n)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an n×n zero matrix.
//
// Behavior highlights:
//   - n == 0 is legal and yields an empty matrix (degenerate graphs are valid input).
//   - n < 0 returns ErrBadShape.
//
// Complexity: Time O(n²), Space O(n²).
func NewDense(n int) (*Dense, error) {
	if n < 0 {
		return nil, ErrBadShape
	}

	return &Dense{n: n, data: make([]Distance, n*n)}, nil
}

// NewGraph creates an n×n graph without edges: diagonal 0, off-diagonal Inf.
// Complexity: Time O(n²), Space O(n²).
func NewGraph(n int) (*Dense, error) {
	d, err := NewDense(n)
	if err != nil {
		return nil, err
	}

	var i, j int
	for i = 0; i < n; i++ {
		base := i * n
		for j = 0; j < n; j++ {
			if i != j {
				d.data[base+j] = Inf
			}
		}
	}

	return d, nil
}

// Order returns n, the number of vertices.
func (m *Dense) Order() int { return m.n }

// Rows returns the number of rows (== Order()).
func (m *Dense) Rows() int { return m.n }

// Cols returns the number of columns (== Order()).
func (m *Dense) Cols() int { return m.n }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.n + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (Distance, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns d at (row, col).
// Complexity: O(1).
func (m *Dense) Set(row, col int, d Distance) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	m.data[idx] = d

	return nil
}

// at is the unchecked accessor for hot loops whose indices were validated upstream.
func (m *Dense) at(row, col int) Distance { return m.data[row*m.n+col] }

// Clone returns a deep copy with an independent backing buffer.
// Complexity: O(n²).
func (m *Dense) Clone() *Dense {
	cp := make([]Distance, len(m.data))
	copy(cp, m.data)

	return &Dense{n: m.n, data: cp}
}

// Equal reports whether m and o have the same order and identical cells.
// Two nil matrices are equal; nil and non-nil are not.
func (m *Dense) Equal(o *Dense) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.n != o.n {
		return false
	}
	for idx, v := range m.data {
		if o.data[idx] != v {
			return false
		}
	}

	return true
}

// ToRows exports the matrix as [][]int64, writing sentinel in place of Inf.
// The result shares no memory with m.
func (m *Dense) ToRows(sentinel int64) [][]int64 {
	out := make([][]int64, m.n)
	var i, j int
	for i = 0; i < m.n; i++ {
		row := make([]int64, m.n)
		for j = 0; j < m.n; j++ {
			v := m.at(i, j)
			if v == Inf {
				row[j] = sentinel
				continue
			}
			row[j] = int64(v)
		}
		out[i] = row
	}

	return out
}

// String implements fmt.Stringer for debugging ("[0, 2, Inf]\n" per row).
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.n; i++ {
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < m.n; j++ {
			sb.WriteString(m.at(i, j).String())
			if j < m.n-1 {
				sb.WriteString(_fmtSep)
			}
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}

// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Build weight matrices from caller data: raw rows with a sentinel, or an edge list.
//   - Never alias caller memory: every builder copies into a fresh buffer.

package matrix

const (
	opFromRows  = "FromRows"
	opFromEdges = "FromEdges"
)

// FromRows copies a square table of raw weights into a new Dense.
//
// Behavior:
//   - Every cell equal to the sentinel (WithSentinel, default math.MaxInt64) becomes Inf.
//   - nil or empty rows produce a 0×0 matrix.
//   - The diagonal is copied as given (0 by convention; negative self-loops are preserved).
//
// Errors:
//   - ErrNonSquare if any row length differs from len(rows).
//
// Complexity: O(n²).
func FromRows(rows [][]int64, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	n := len(rows)

	// Validate shape before allocating.
	for i, row := range rows {
		if len(row) != n {
			return nil, matrixErrorf(opFromRows, denseErrorf("row", i, len(row), ErrNonSquare))
		}
	}

	d, err := NewDense(n)
	if err != nil {
		return nil, matrixErrorf(opFromRows, err)
	}

	var i, j int
	for i = 0; i < n; i++ {
		base := i * n
		for j = 0; j < n; j++ {
			v := rows[i][j]
			if v == o.sentinel {
				d.data[base+j] = Inf
				continue
			}
			d.data[base+j] = Distance(v)
		}
	}

	return d, nil
}

// FromEdges builds an n-vertex graph from a directed edge list.
//
// Behavior:
//   - Starts from NewGraph(n): diagonal 0, no edges.
//   - Edges are applied in slice order. For parallel edges the minimum weight
//     wins unless WithKeepLast() is given.
//   - A self-loop edge (From == To) overwrites the diagonal under the same policy.
//
// Errors:
//   - ErrBadShape for n < 0.
//   - ErrOutOfRange for an endpoint outside [0, n).
//   - ErrInvalidWeight for an Inf weight.
//
// Complexity: O(n² + E).
func FromEdges(n int, edges []Edge, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)

	d, err := NewGraph(n)
	if err != nil {
		return nil, matrixErrorf(opFromEdges, err)
	}

	for _, e := range edges {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			return nil, matrixErrorf(opFromEdges, denseErrorf("edge", e.From, e.To, ErrOutOfRange))
		}
		if e.Weight == Inf {
			return nil, matrixErrorf(opFromEdges, denseErrorf("edge", e.From, e.To, ErrInvalidWeight))
		}

		idx := e.From*n + e.To
		if o.keepLast || e.Weight < d.data[idx] {
			d.data[idx] = e.Weight
		}
	}

	return d, nil
}

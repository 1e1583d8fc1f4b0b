// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities shared by the matrix tests.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/apsp/matrix"
	"github.com/stretchr/testify/require"
)

// inf is a short alias used by table fixtures.
const inf = matrix.Inf

// MustGraph ALLOCATES an n-vertex edgeless graph or fails the test.
func MustGraph(t testing.TB, n int) *matrix.Dense {
	t.Helper()
	g, err := matrix.NewGraph(n)
	require.NoError(t, err, "NewGraph(%d)", n)

	return g
}

// MustSet WRITES d at (i,j) or fails the test.
func MustSet(t testing.TB, m *matrix.Dense, i, j int, d matrix.Distance) {
	t.Helper()
	require.NoError(t, m.Set(i, j, d), "Set(%d,%d,%v)", i, j, d)
}

// cells READS the full matrix into [][]Distance for cmp.Diff comparisons.
func cells(t testing.TB, m *matrix.Dense) [][]matrix.Distance {
	t.Helper()
	n := m.Order()
	out := make([][]matrix.Distance, n)
	for i := 0; i < n; i++ {
		out[i] = make([]matrix.Distance, n)
		for j := 0; j < n; j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			out[i][j] = v
		}
	}

	return out
}

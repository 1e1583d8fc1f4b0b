package floyd_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/apsp/floyd"
	"github.com/katalvlaran/apsp/matrix"
)

const inf = matrix.Inf

// allModes lists every memo strategy; property tests run under each one.
var allModes = []struct {
	name string
	opts []floyd.Option
}{
	{"dense", nil},
	{"bounded", []floyd.Option{floyd.WithMemoMode(floyd.MemoBounded), floyd.WithMemoCapacity(64)}},
	{"bounded-tiny", []floyd.Option{floyd.WithMemoMode(floyd.MemoBounded), floyd.WithMemoCapacity(2)}},
	{"none", []floyd.Option{floyd.WithMemoMode(floyd.MemoNone)}},
}

// scenarioA is the three-vertex graph with edges 0→1:2, 1→0:3, 2→0:4, 2→1:2.
func scenarioA(t testing.TB) *matrix.Dense {
	t.Helper()
	g, err := matrix.FromEdges(3, []matrix.Edge{
		{From: 0, To: 1, Weight: 2},
		{From: 1, To: 0, Weight: 3},
		{From: 2, To: 0, Weight: 4},
		{From: 2, To: 1, Weight: 2},
	})
	require.NoError(t, err)

	return g
}

// fromRows ingests rows using the 10^18 "no edge" marker of the reference data.
func fromRows(t testing.TB, rows [][]int64) *matrix.Dense {
	t.Helper()
	g, err := matrix.FromRows(rows, matrix.WithSentinel(refInf))
	require.NoError(t, err)

	return g
}

// refInf is the "no edge" marker used by the reference test graphs.
const refInf int64 = 1_000_000_000_000_000_000

// cells reads the full matrix into [][]Distance for cmp.Diff comparisons.
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

// referenceClosure is an independent iterative k→i→j relaxation used only as
// a test oracle for the recursive evaluator.
func referenceClosure(t testing.TB, g *matrix.Dense) [][]matrix.Distance {
	t.Helper()
	d := cells(t, g)
	n := len(d)

	var k, i, j int
	for k = 0; k < n; k++ {
		for i = 0; i < n; i++ {
			ik := d[i][k]
			if ik == inf {
				continue // no path via k can improve i→j
			}
			for j = 0; j < n; j++ {
				kj := d[k][j]
				if kj == inf {
					continue
				}
				cand, err := matrix.Add(ik, kj)
				require.NoError(t, err)
				if cand < d[i][j] {
					d[i][j] = cand
				}
			}
		}
	}

	return d
}

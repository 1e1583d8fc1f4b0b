// Package floyd computes all-pairs shortest-path distances on a dense weighted
// directed graph with the recursive formulation of the Floyd–Warshall algorithm.
//
// Overview:
//
//   - shortest(i, j, k) is the minimum weight of a path from i to j whose
//     intermediate vertices all have index ≤ k. With k = −1 no intermediates are
//     allowed and the answer is the direct edge weight g[i][j] (matrix.Inf if absent).
//   - For k ≥ 0 the path either avoids vertex k or routes through it exactly once:
//
//     shortest(i, j, k) = min( shortest(i, j, k−1),
//     shortest(i, k, k−1) + shortest(k, j, k−1) )
//
//   - Solve evaluates shortest(i, j, n−1) for every ordered pair and returns a
//     freshly allocated n×n distance matrix owned by the caller.
//
// Arithmetic:
//
//   - Every sum goes through matrix.Add: Inf absorbs any addend, and a finite
//     sum that does not fit is reported as matrix.ErrOverflow instead of
//     wrapping or turning into a bogus "unreachable".
//
// Memoization (MemoMode):
//
//   - MemoDense (default): a lazily filled n·n·n table keyed by (i, j, k ≥ 0).
//     Every subproblem is computed once: O(n³) time, 9·n³ bytes of memory.
//     Graphs above DefaultMaxOrderDense vertices are refused unless
//     WithMaxOrder raises the limit; MemoBounded solves them in fixed memory.
//   - MemoBounded: an LRU table of WithMemoCapacity entries. Evicted subproblems
//     are recomputed on demand, trading time for a fixed memory ceiling.
//   - MemoNone: the plain recursion. Up to three recursive calls per level give
//     O(3ⁿ) calls per cell, so graphs larger than DefaultMaxOrderUnmemoized
//     vertices are refused unless WithMaxOrder raises the limit.
//
// Recursion depth is k+2 frames for shortest(·,·,k) in every mode.
//
// Error handling (sentinel errors, match with errors.Is):
//
//   - ErrNilGraph:          nil *matrix.Dense.
//   - ErrVertexOutOfRange:  i or j outside [0, n).
//   - ErrCeilingOutOfRange: k outside [−1, n−1].
//   - ErrGraphTooLarge:     order above the configured or mode-implied limit.
//   - matrix.ErrOverflow:   the answer of a subproblem does not fit into int64.
//     An upward overflow on the "route through k" side is not an error when
//     the "skip k" side is finite: that route can never be the minimum.
//
// Negative edges are accepted. Negative cycles are not detected; distances
// along them are whatever the recurrence yields (or ErrOverflow).
//
// Thread safety:
//
//   - An Evaluator mutates its memo and counters and is not safe for concurrent
//     use. The input graph is only read; independent evaluators may share it
//     provided nobody writes to it while they run.
//
// Example:
//
//	g, _ := matrix.FromEdges(3, []matrix.Edge{{From: 0, To: 1, Weight: 2}, {From: 1, To: 2, Weight: 3}})
//	dist, err := floyd.Solve(g)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	d, _ := dist.At(0, 2) // 5
package floyd

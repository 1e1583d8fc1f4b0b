package floyd

import (
	"fmt"
	"time"

	"github.com/katalvlaran/apsp/matrix"
)

const opSolve = "Solve"

// Solve computes the full all-pairs distance matrix of g.
//
// Each cell (i, j) is shortest(i, j, n−1). The result is a newly allocated
// matrix owned by the caller; g is only read. For n == 0 the result is an
// empty matrix and no evaluation takes place.
//
// Errors:
//   - ErrNilGraph, ErrGraphTooLarge (see NewEvaluator).
//   - matrix.ErrOverflow wrapped with the failing cell. No partial result is returned.
//
// Complexity: O(n³) time with the default MemoDense, whose table takes
// 9·n³ bytes (about 9 GB at n = 1000). Use MemoBounded with WithMemoCapacity
// to solve larger graphs in fixed memory.
func Solve(g *matrix.Dense, opts ...Option) (*matrix.Dense, error) {
	dist, _, err := SolveStats(g, opts...)

	return dist, err
}

// SolveStats is Solve that also reports the evaluator counters of the run.
func SolveStats(g *matrix.Dense, opts ...Option) (*matrix.Dense, Stats, error) {
	e, err := NewEvaluator(g, opts...)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("%s: %w", opSolve, err)
	}

	dist, err := e.Solve()

	return dist, e.Stats(), err
}

// Solve fills a fresh distance matrix from the bound graph, reusing (and
// extending) this evaluator's memo.
func (e *Evaluator) Solve() (*matrix.Dense, error) {
	n := e.n
	log := e.opts.Logger.With("op", opSolve, "n", n, "memo", e.opts.Memo.String())

	// 1) Allocate the result on the heap; the caller owns it.
	out, err := matrix.NewDense(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSolve, err)
	}
	if n == 0 {
		log.Debug("empty graph, nothing to evaluate")
		return out, nil
	}

	// 2) Evaluate every ordered pair in row-major order with all vertices allowed.
	start := time.Now()
	log.Debug("solve started")
	var (
		i, j int
		d    matrix.Distance
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if d, err = e.shortest(i, j, n-1); err != nil {
				log.Debug("solve failed", "i", i, "j", j, "err", err)
				return nil, fmt.Errorf("%s: cell (%d,%d): %w", opSolve, i, j, err)
			}
			if err = out.Set(i, j, d); err != nil {
				return nil, fmt.Errorf("%s: %w", opSolve, err)
			}
		}
	}

	// 3) Report.
	s := e.stats
	log.Debug("solve finished",
		"elapsed", time.Since(start),
		"calls", s.Calls,
		"memo_hits", s.MemoHits,
		"memo_misses", s.MemoMisses,
		"max_depth", s.MaxDepth,
		"memo_size", e.memo.size(),
	)

	return out, nil
}

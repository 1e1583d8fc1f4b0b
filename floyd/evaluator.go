// Package floyd implements the recursive Floyd–Warshall evaluator.
//
// Complexity (n = number of vertices):
//
//   - MemoDense:   Time O(n³) for a full solve, Space O(n³) for the table.
//   - MemoBounded: Time between O(n³) and O(3ⁿ·n²) depending on capacity, Space O(capacity).
//   - MemoNone:    Time O(3ⁿ) per cell, Space O(n) stack.
//
// Notes on implementation choices:
//
//   - The "route through k" branch stops early when i cannot reach k: the sum
//     is Inf regardless of the second leg, so it is not evaluated.
//   - A "route through k" sum that overflows upward is larger than any finite
//     "skip k" value, so it simply loses the min. It is an error only when
//     skip is Inf, or when the sum overflows downward.
//   - Overflow errors are wrapped once, at the frame where the sum fails, and
//     propagated unchanged so the message names the failing subproblem.
package floyd

import (
	"fmt"

	"github.com/katalvlaran/apsp/matrix"
)

const (
	opNewEvaluator = "NewEvaluator"
	opShortest     = "Shortest"
)

// Evaluator answers shortest(i, j, k) queries on one graph.
// It borrows the graph read-only for its whole lifetime.
type Evaluator struct {
	g     *matrix.Dense // input weights; never written
	n     int           // cached order of g
	opts  Options       // resolved configuration
	memo  memoTable     // subproblem cache (may be a no-op)
	stats Stats         // work counters
	depth int           // current recursion depth in frames
}

// NewEvaluator validates g and the options and prepares the memo table.
//
// Errors:
//   - ErrNilGraph if g is nil.
//   - ErrGraphTooLarge if g.Order() exceeds the effective MaxOrder or the
//     dense memo cannot be addressed.
func NewEvaluator(g *matrix.Dense, opts ...Option) (*Evaluator, error) {
	// 1) Build options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate graph.
	if err := matrix.ValidateNotNil(g); err != nil {
		return nil, fmt.Errorf("%s: %w", opNewEvaluator, ErrNilGraph)
	}
	n := g.Order()

	// 3) Enforce the size limit before allocating anything cubic.
	if limit := cfg.effectiveMaxOrder(); limit > 0 && n > limit {
		return nil, fmt.Errorf("%s: %w: %d vertices, limit %d (memo=%s)",
			opNewEvaluator, ErrGraphTooLarge, n, limit, cfg.Memo)
	}

	// 4) Prepare the memo.
	memo, err := newMemo(cfg, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opNewEvaluator, err)
	}

	return &Evaluator{g: g, n: n, opts: cfg, memo: memo}, nil
}

// Order returns the number of vertices of the bound graph.
func (e *Evaluator) Order() int { return e.n }

// Stats returns the counters accumulated so far.
func (e *Evaluator) Stats() Stats { return e.stats }

// ResetStats zeroes the counters; the memo is kept.
func (e *Evaluator) ResetStats() { e.stats = Stats{} }

// MemoSize returns the number of cached subproblems.
func (e *Evaluator) MemoSize() int { return e.memo.size() }

// Shortest returns the weight of the shortest path from i to j that uses only
// intermediate vertices with index ≤ k. k = −1 yields the direct edge
// (matrix.Inf if there is none).
//
// Errors:
//   - ErrVertexOutOfRange for i or j outside [0, n).
//   - ErrCeilingOutOfRange for k outside [−1, n−1].
//   - matrix.ErrOverflow if the answer, or a sum that could be the answer, does not fit.
func (e *Evaluator) Shortest(i, j, k int) (matrix.Distance, error) {
	if err := matrix.ValidateVertex(e.g, i); err != nil {
		return 0, fmt.Errorf("%s: source %d: %w (%w)", opShortest, i, ErrVertexOutOfRange, err)
	}
	if err := matrix.ValidateVertex(e.g, j); err != nil {
		return 0, fmt.Errorf("%s: destination %d: %w (%w)", opShortest, j, ErrVertexOutOfRange, err)
	}
	if k < -1 || k > e.n-1 {
		return 0, fmt.Errorf("%s: k=%d with n=%d: %w", opShortest, k, e.n, ErrCeilingOutOfRange)
	}

	return e.shortest(i, j, k)
}

// shortest is the unchecked recurrence. Indices are valid by construction.
func (e *Evaluator) shortest(i, j, k int) (matrix.Distance, error) {
	e.stats.Calls++
	e.depth++
	if e.depth > e.stats.MaxDepth {
		e.stats.MaxDepth = e.depth
	}
	defer func() { e.depth-- }()

	// Base case: no intermediates allowed, only the direct edge.
	if k < 0 {
		w, _ := e.g.At(i, j) // safe after validation
		return w, nil
	}

	if d, ok := e.memo.get(i, j, k); ok {
		e.stats.MemoHits++
		return d, nil
	}

	// Skip k: best path that never visits k.
	skip, err := e.shortest(i, j, k-1)
	if err != nil {
		return 0, err
	}

	// Route through k: i ⇝ k and k ⇝ j, neither leg using k internally.
	through := matrix.Inf
	toK, err := e.shortest(i, k, k-1)
	if err != nil {
		return 0, err
	}
	if !toK.IsInf() {
		fromK, err := e.shortest(k, j, k-1)
		if err != nil {
			return 0, err
		}
		if through, err = matrix.Add(toK, fromK); err != nil {
			// An upward overflow exceeds every finite skip, so min is skip.
			if fromK <= 0 || skip.IsInf() {
				return 0, fmt.Errorf("shortest(%d,%d,%d): %v + %v: %w", i, j, k, toK, fromK, err)
			}
			through = matrix.Inf
		}
	}

	d := matrix.Min(through, skip)
	if e.opts.Memo != MemoNone {
		e.stats.MemoMisses++
		e.memo.put(i, j, k, d)
	}

	return d, nil
}

// Shortest is a one-shot convenience: it builds an Evaluator for g and answers
// a single query. Reuse an Evaluator for repeated queries on the same graph.
func Shortest(g *matrix.Dense, i, j, k int, opts ...Option) (matrix.Distance, error) {
	e, err := NewEvaluator(g, opts...)
	if err != nil {
		return 0, err
	}

	return e.Shortest(i, j, k)
}

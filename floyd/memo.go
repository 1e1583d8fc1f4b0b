package floyd

import (
	"fmt"
	"math"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/katalvlaran/apsp/matrix"
)

// memoTable caches shortest(i, j, k) for k ≥ 0. Base cases (k = −1) are plain
// matrix reads and never stored.
type memoTable interface {
	get(i, j, k int) (matrix.Distance, bool)
	put(i, j, k int, d matrix.Distance)
	size() int // number of cached subproblems
}

// newMemo builds the table selected by o for an n-vertex graph.
func newMemo(o Options, n int) (memoTable, error) {
	switch o.Memo {
	case MemoNone:
		return noMemo{}, nil
	case MemoBounded:
		return newBoundedMemo(o.MemoCapacity)
	case MemoDense:
		return newDenseMemo(n)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownMemoMode, o.Memo)
	}
}

// ---------- MemoNone ----------

type noMemo struct{}

func (noMemo) get(int, int, int) (matrix.Distance, bool) { return 0, false }
func (noMemo) put(int, int, int, matrix.Distance)        {}
func (noMemo) size() int                                 { return 0 }

// ---------- MemoDense ----------

// denseMemo stores planes k = 0..n−1 of n×n cells in one flat buffer:
// offset = (k*n + i)*n + j. filled marks which cells hold a value.
type denseMemo struct {
	n      int
	vals   []matrix.Distance
	filled []bool
	count  int
}

func newDenseMemo(n int) (*denseMemo, error) {
	// n*n already fits (the graph exists); guard the extra factor.
	if n > 0 && n > math.MaxInt/(n*n) {
		return nil, fmt.Errorf("%w: memo for %d vertices", ErrGraphTooLarge, n)
	}
	cells := n * n * n

	return &denseMemo{
		n:      n,
		vals:   make([]matrix.Distance, cells),
		filled: make([]bool, cells),
	}, nil
}

func (m *denseMemo) offset(i, j, k int) int { return (k*m.n+i)*m.n + j }

func (m *denseMemo) get(i, j, k int) (matrix.Distance, bool) {
	off := m.offset(i, j, k)
	if !m.filled[off] {
		return 0, false
	}

	return m.vals[off], true
}

func (m *denseMemo) put(i, j, k int, d matrix.Distance) {
	off := m.offset(i, j, k)
	if !m.filled[off] {
		m.filled[off] = true
		m.count++
	}
	m.vals[off] = d
}

func (m *denseMemo) size() int { return m.count }

// ---------- MemoBounded ----------

// memoKey identifies one subproblem.
type memoKey struct {
	i, j, k int
}

// boundedMemo keeps the most recently used subproblems in an LRU cache.
type boundedMemo struct {
	cache *lru.Cache[memoKey, matrix.Distance]
}

func newBoundedMemo(capacity int) (*boundedMemo, error) {
	c, err := lru.New[memoKey, matrix.Distance](capacity)
	if err != nil {
		return nil, fmt.Errorf("floyd: bounded memo: %w", err)
	}

	return &boundedMemo{cache: c}, nil
}

func (m *boundedMemo) get(i, j, k int) (matrix.Distance, bool) {
	return m.cache.Get(memoKey{i, j, k})
}

func (m *boundedMemo) put(i, j, k int, d matrix.Distance) {
	m.cache.Add(memoKey{i, j, k}, d)
}

func (m *boundedMemo) size() int { return m.cache.Len() }

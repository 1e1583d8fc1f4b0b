// Package floyd defines sentinel errors, configuration options and counters
// for the recursive all-pairs shortest-path evaluator.
//
// Options:
//
//	– Memo:        memoization strategy (MemoDense, MemoBounded, MemoNone).
//	– MemoCapacity: entry limit for MemoBounded (must be > 0).
//	– MaxOrder:    refuse graphs with more vertices (0 = mode default).
//	– Logger:      *slog.Logger for debug lines; discarded by default.
//
// Example usage:
//
//	dist, err := floyd.Solve(g,
//	    floyd.WithMemoMode(floyd.MemoBounded),
//	    floyd.WithMemoCapacity(1<<16),
//	)
package floyd

import (
	"errors"
	"fmt"
	"log/slog"
)

// Sentinel errors returned by the floyd package.
var (
	// ErrNilGraph indicates that a nil *matrix.Dense was passed in.
	ErrNilGraph = errors.New("floyd: graph is nil")

	// ErrVertexOutOfRange indicates a source or destination outside [0, n).
	ErrVertexOutOfRange = errors.New("floyd: vertex index out of range")

	// ErrCeilingOutOfRange indicates an intermediate ceiling k outside [-1, n-1].
	ErrCeilingOutOfRange = errors.New("floyd: intermediate ceiling out of range")

	// ErrGraphTooLarge indicates that the graph order exceeds the configured limit
	// (or the memo table for it cannot be addressed).
	ErrGraphTooLarge = errors.New("floyd: graph too large for evaluator")

	// ErrBadMemoCapacity indicates that WithMemoCapacity got a value ≤ 0.
	ErrBadMemoCapacity = errors.New("floyd: memo capacity must be positive")

	// ErrBadMaxOrder indicates that WithMaxOrder got a negative value.
	ErrBadMaxOrder = errors.New("floyd: MaxOrder must be non-negative")

	// ErrUnknownMemoMode indicates an unrecognized MemoMode value or name.
	ErrUnknownMemoMode = errors.New("floyd: unknown memo mode")
)

// MemoMode selects how evaluated subproblems (i, j, k) are cached.
type MemoMode int

const (
	// MemoDense caches every subproblem in a flat n·n·n table.
	MemoDense MemoMode = iota

	// MemoBounded caches at most MemoCapacity subproblems with LRU eviction.
	MemoBounded

	// MemoNone disables caching; call count grows exponentially in n.
	MemoNone
)

// String returns the configuration name of the mode ("dense", "bounded", "none").
func (m MemoMode) String() string {
	switch m {
	case MemoDense:
		return "dense"
	case MemoBounded:
		return "bounded"
	case MemoNone:
		return "none"
	default:
		return fmt.Sprintf("MemoMode(%d)", int(m))
	}
}

// ParseMemoMode maps a configuration name back to a MemoMode.
func ParseMemoMode(s string) (MemoMode, error) {
	switch s {
	case "dense", "":
		return MemoDense, nil
	case "bounded":
		return MemoBounded, nil
	case "none":
		return MemoNone, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMemoMode, s)
	}
}

// Defaults.
const (
	// DefaultMemoCapacity is the MemoBounded entry limit when none is given.
	DefaultMemoCapacity = 1 << 20

	// DefaultMaxOrderUnmemoized caps MemoNone graphs: 3^24 calls per cell is
	// already far beyond interactive use.
	DefaultMaxOrderUnmemoized = 24

	// DefaultMaxOrderDense caps MemoDense graphs. The table costs 9·n³ bytes
	// (value plus filled flag per cell), about 151 MB at this order.
	DefaultMaxOrderDense = 256
)

// Options configures an Evaluator.
type Options struct {
	Memo         MemoMode     // caching strategy
	MemoCapacity int          // entry limit for MemoBounded
	MaxOrder     int          // 0 ⇒ mode default (dense 256, bounded unlimited, none 24)
	Logger       *slog.Logger // debug sink; never nil after DefaultOptions
}

// Option represents a functional option for configuring the evaluator.
type Option func(*Options)

// WithMemoMode sets the memoization strategy.
func WithMemoMode(mode MemoMode) Option {
	return func(o *Options) {
		o.Memo = mode
	}
}

// WithMemoCapacity sets the MemoBounded entry limit.
// Must be positive; otherwise it panics with ErrBadMemoCapacity.
func WithMemoCapacity(capacity int) Option {
	return func(o *Options) {
		if capacity <= 0 {
			panic(ErrBadMemoCapacity.Error())
		}
		o.MemoCapacity = capacity
	}
}

// WithMaxOrder refuses graphs with more than n vertices (ErrGraphTooLarge).
// n == 0 restores the mode default; negative n panics with ErrBadMaxOrder.
func WithMaxOrder(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadMaxOrder.Error())
		}
		o.MaxOrder = n
	}
}

// WithLogger routes debug output to l. A nil logger keeps the current one.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns the documented defaults:
//   - Memo:         MemoDense.
//   - MemoCapacity: DefaultMemoCapacity.
//   - MaxOrder:     0 (mode default).
//   - Logger:       discards everything.
func DefaultOptions() Options {
	return Options{
		Memo:         MemoDense,
		MemoCapacity: DefaultMemoCapacity,
		MaxOrder:     0,
		Logger:       slog.New(slog.DiscardHandler),
	}
}

// effectiveMaxOrder resolves the 0 ⇒ mode-default rule.
func (o Options) effectiveMaxOrder() int {
	if o.MaxOrder > 0 {
		return o.MaxOrder
	}
	switch o.Memo {
	case MemoNone:
		return DefaultMaxOrderUnmemoized
	case MemoDense:
		return DefaultMaxOrderDense
	default:
		return 0 // MemoBounded memory is capped by MemoCapacity
	}
}

// Stats counts evaluator work since construction or the last ResetStats.
type Stats struct {
	Calls      int64 // recursive invocations, base cases included
	MemoHits   int64 // subproblems answered from the memo
	MemoMisses int64 // subproblems computed and stored (0 under MemoNone)
	MaxDepth   int   // deepest recursion reached, in frames
}

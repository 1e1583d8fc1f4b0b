// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the builders (FromRows, FromEdges).
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultSentinel is the ingestion value that means "no direct edge".
	// It equals Inf, so rows produced by ToRows(DefaultSentinel) round-trip.
	DefaultSentinel int64 = math.MaxInt64

	// DefaultKeepLast selects the duplicate-edge policy of FromEdges.
	// false ⇒ the minimum weight among parallel (From,To) edges wins.
	DefaultKeepLast = false
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options holds builder configuration. Fields are unexported; use WithX.
type Options struct {
	sentinel int64 // raw value mapped to Inf on ingestion
	keepLast bool  // FromEdges: last write wins instead of minimum
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		sentinel: DefaultSentinel,
		keepLast: DefaultKeepLast,
	}
}

// gatherOptions applies opts over the defaults in order.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithSentinel sets the raw value that FromRows treats as "no direct edge".
// Typical values: math.MaxInt32 (C INT_MAX), 1e18, or a negative marker such as -1
// for graphs that carry no negative weights.
func WithSentinel(s int64) Option {
	return func(o *Options) {
		o.sentinel = s
	}
}

// WithKeepLast makes FromEdges keep the last of several parallel edges instead
// of the cheapest one.
func WithKeepLast() Option {
	return func(o *Options) {
		o.keepLast = true
	}
}

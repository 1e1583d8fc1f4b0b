// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by builders, arithmetic and the dense store.
// This file intentionally contains ONLY domain-facing types; errors and options
// live in dedicated files (errors.go, options.go).
package matrix

import (
	"math"
	"strconv"
)

// Distance is a path or edge weight. Negative values are legal (negative edges);
// Inf is reserved for "no edge" / "no path".
type Distance int64

// Inf represents +infinity. It is the only value of Distance with that meaning;
// see Add for the arithmetic that keeps it from leaking into finite sums.
const Inf Distance = math.MaxInt64

// MaxFinite is the largest Distance that still denotes a reachable path.
const MaxFinite Distance = Inf - 1

// infString is the textual form of Inf used by String and error messages.
const infString = "Inf"

// IsInf reports whether d is the "no path" value.
func (d Distance) IsInf() bool { return d == Inf }

// String implements fmt.Stringer: "Inf" for Inf, decimal otherwise.
func (d Distance) String() string {
	if d == Inf {
		return infString
	}

	return strconv.FormatInt(int64(d), 10)
}

// Edge is a directed weighted edge between two vertex indices.
// From and To must lie in [0, n) for the graph they are added to.
type Edge struct {
	From   int      // source vertex index
	To     int      // destination vertex index
	Weight Distance // finite weight; Inf is rejected by FromEdges
}

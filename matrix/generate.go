// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Deterministic random weight matrices for property tests and benchmarks.

package matrix

import (
	"errors"
	"math/rand"
)

const opRandom = "Random"

// ErrBadDensity is returned by Random when density is outside [0, 1].
var ErrBadDensity = errors.New("matrix: density must be in [0,1]")

// Random builds an n-vertex directed graph where each ordered pair u≠v carries
// an edge with probability density. Weights are uniform in [1, maxWeight].
// The same (n, density, maxWeight, seed) always yields the same matrix.
//
// Errors:
//   - ErrBadShape for n < 0.
//   - ErrBadDensity for density outside [0, 1].
//   - ErrInvalidWeight for maxWeight < 1 or maxWeight == Inf.
//
// Complexity: O(n²).
func Random(n int, density float64, maxWeight Distance, seed int64) (*Dense, error) {
	if density < 0 || density > 1 {
		return nil, matrixErrorf(opRandom, ErrBadDensity)
	}
	if maxWeight < 1 || maxWeight == Inf {
		return nil, matrixErrorf(opRandom, ErrInvalidWeight)
	}

	d, err := NewGraph(n)
	if err != nil {
		return nil, matrixErrorf(opRandom, err)
	}

	r := rand.New(rand.NewSource(seed)) // deterministic seed for reproducibility
	var u, v int
	for u = 0; u < n; u++ {
		for v = 0; v < n; v++ {
			if u == v {
				continue // skip self-loops
			}
			if r.Float64() < density {
				d.data[u*n+v] = Distance(r.Int63n(int64(maxWeight))) + 1
			}
		}
	}

	return d, nil
}

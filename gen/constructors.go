// SPDX-License-Identifier: MIT
// Package: pprank/gen
//
// constructors.go - deterministic topologies as ppr edge lists.
//
// Contract (all constructors):
//   - Node ids are 0..n-1; the caller uses n as numNodes.
//   - Edges are emitted in a stable order (source asc, then destination asc
//     unless stated otherwise), so output is reproducible for a fixed seed.
//   - Weights come from the configured WeightFn (constant 1 by default).
//   - Errors are sentinels wrapped with the method name; no runtime panics.

package gen

import (
	"fmt"

	"github.com/katalvlaran/pprank/ppr"
)

const (
	methodCycle        = "Cycle"
	methodStar         = "Star"
	methodComplete     = "Complete"
	methodRandomSparse = "RandomSparse"

	minCycleNodes        = 2
	minStarNodes         = 2
	minCompleteNodes     = 2
	minRandomSparseNodes = 1
)

// Cycle returns the directed ring 0→1→…→n-1→0.
//
// Complexity: O(n).
func Cycle(n int, opts ...Option) ([]ppr.Edge, error) {
	if n < minCycleNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
	}
	cfg := newConfig(opts...)

	edges := make([]ppr.Edge, 0, n)
	for i := 0; i < n; i++ {
		edges = append(edges, ppr.Edge{Src: i, Dst: (i + 1) % n, Weight: cfg.weight()})
	}
	return edges, nil
}

// Star returns hub 0 linked both ways with leaves 1..n-1. Spokes are emitted
// as 0→i followed by i→0 for each leaf in ascending order.
//
// Complexity: O(n).
func Star(n int, opts ...Option) ([]ppr.Edge, error) {
	if n < minStarNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
	}
	cfg := newConfig(opts...)

	edges := make([]ppr.Edge, 0, 2*(n-1))
	for i := 1; i < n; i++ {
		edges = append(edges,
			ppr.Edge{Src: 0, Dst: i, Weight: cfg.weight()},
			ppr.Edge{Src: i, Dst: 0, Weight: cfg.weight()},
		)
	}
	return edges, nil
}

// Complete returns every ordered pair (i, j) with i ≠ j.
//
// Complexity: O(n²).
func Complete(n int, opts ...Option) ([]ppr.Edge, error) {
	if n < minCompleteNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
	}
	cfg := newConfig(opts...)

	edges := make([]ppr.Edge, 0, n*(n-1))
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			edges = append(edges, ppr.Edge{Src: i, Dst: j, Weight: cfg.weight()})
		}
	}
	return edges, nil
}

// RandomSparse samples a directed Erdős–Rényi-like graph: every ordered pair
// (i, j), i ≠ j, is included independently with probability p. Nodes may end
// up without outgoing edges (dangling).
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability; NaN included).
//   - 0 < p < 1 needs an RNG via WithSeed/WithRand (else ErrNeedRandSource);
//     p ∈ {0, 1} is deterministic and needs none.
//
// Complexity: O(n²) Bernoulli trials.
func RandomSparse(n int, p float64, opts ...Option) ([]ppr.Edge, error) {
	if n < minRandomSparseNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w",
			methodRandomSparse, n, minRandomSparseNodes, ErrTooFewVertices)
	}
	if !(p >= 0 && p <= 1) {
		return nil, fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodRandomSparse, p, ErrInvalidProbability)
	}
	cfg := newConfig(opts...)
	if cfg.rng == nil && p > 0 && p < 1 {
		return nil, fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
	}

	var edges []ppr.Edge
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			switch {
			case p == 0:
				continue
			case p == 1:
			case cfg.rng.Float64() >= p:
				continue
			}
			edges = append(edges, ppr.Edge{Src: i, Dst: j, Weight: cfg.weight()})
		}
	}
	return edges, nil
}

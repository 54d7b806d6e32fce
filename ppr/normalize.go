// SPDX-License-Identifier: MIT
// Package: pprank/ppr
//
// normalize.go - Edge Normalizer and Personalization Normalizer.
//
// Both transforms are destructive and one-shot: they rewrite the slice they
// are given. Rank copies its inputs first unless WithInPlace is used.

package ppr

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
)

const (
	opNormalizeEdges           = "NormalizeEdges"
	opNormalizePersonalization = "NormalizePersonalization"
)

// NormalizeEdges sorts edges by ascending (Src, Dst) and rescales every weight
// to weight / Σ(weights leaving the same Src), so each source's outgoing
// weights form a transition distribution summing to 1.
//
// Steps:
//  1. Reject negative, NaN and ±Inf weights (slice untouched).
//  2. Sort in place. Ties on (Src, Dst) keep no particular order.
//  3. Scan runs of equal Src and reject any run whose sum is zero or not finite.
//  4. Scan the runs again and divide.
//
// Because validation of sums happens before any division, an
// ErrInvalidEdgeWeights failure leaves weights unchanged (order may differ).
//
// Complexity: O(E log E) time, O(1) extra space beyond the sort.
func NormalizeEdges(edges []Edge) error {
	for i, e := range edges {
		if e.Weight < 0 || math.IsNaN(e.Weight) || math.IsInf(e.Weight, 0) {
			return fmt.Errorf("%s: edge %d (%d→%d) weight %g: %w",
				opNormalizeEdges, i, e.Src, e.Dst, e.Weight, ErrInvalidEdgeWeights)
		}
	}

	slices.SortFunc(edges, compareEdges)

	for lo := 0; lo < len(edges); {
		hi, sum := sourceRun(edges, lo)
		if !(sum > 0) || math.IsInf(sum, 0) {
			return fmt.Errorf("%s: source %d outgoing weight sum %g: %w",
				opNormalizeEdges, edges[lo].Src, sum, ErrInvalidEdgeWeights)
		}
		lo = hi
	}

	for lo := 0; lo < len(edges); {
		hi, sum := sourceRun(edges, lo)
		for i := lo; i < hi; i++ {
			edges[i].Weight /= sum
		}
		lo = hi
	}

	return nil
}

// compareEdges orders edges by Src, then Dst.
func compareEdges(a, b Edge) int {
	if c := cmp.Compare(a.Src, b.Src); c != 0 {
		return c
	}
	return cmp.Compare(a.Dst, b.Dst)
}

// sourceRun returns the end (exclusive) of the run of edges sharing
// edges[lo].Src and the sum of their weights. edges must be sorted by Src.
func sourceRun(edges []Edge, lo int) (hi int, sum float64) {
	src := edges[lo].Src
	for hi = lo; hi < len(edges) && edges[hi].Src == src; hi++ {
		sum += edges[hi].Weight
	}
	return hi, sum
}

// NormalizePersonalization min–max scales p into [0, 1] in place:
//
//	v ← (v − min) / (max − min)
//
// When every entry is equal (including all zeros) the vector becomes the
// uniform distribution 1/len(p) instead. The result is bounded but does not
// necessarily sum to 1. Extremes whose difference overflows float64 are
// still scaled into [0, 1].
//
// Errors:
//   - ErrEmptyGraph             if len(p) == 0.
//   - ErrInvalidPersonalization if any entry is NaN or ±Inf (p untouched).
func NormalizePersonalization(p []float64) error {
	if len(p) == 0 {
		return fmt.Errorf("%s: %w", opNormalizePersonalization, ErrEmptyGraph)
	}
	for i, v := range p {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s: entry %d is %g: %w",
				opNormalizePersonalization, i, v, ErrInvalidPersonalization)
		}
	}

	lo, hi := floats.Min(p), floats.Max(p)
	if hi == lo {
		uniform := 1 / float64(len(p))
		for i := range p {
			p[i] = uniform
		}
		return nil
	}

	span := hi - lo
	if math.IsInf(span, 0) {
		// Finite extremes more than MaxFloat64 apart: scale with halved
		// operands, which cannot overflow.
		half := hi/2 - lo/2
		for i, v := range p {
			p[i] = (v/2 - lo/2) / half
		}
		return nil
	}
	for i, v := range p {
		p[i] = (v - lo) / span
	}
	return nil
}

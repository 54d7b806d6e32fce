// SPDX-License-Identifier: MIT
// Package: pprank/ppr
//
// solver.go - damped power iteration and the one-shot Rank pipeline.

package ppr

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
)

const (
	opRank  = "Rank"
	opSolve = "Solve"
)

// Rank runs the full pipeline NormalizeEdges → NormalizePersonalization → Solve.
//
// Ownership:
//   - default: edges and personalization are copied; the caller's slices are
//     left exactly as given and may be reused for another run.
//   - WithInPlace(): both slices are normalized destructively and must be
//     treated as consumed by the caller.
//
// Errors: every sentinel of Solve, NormalizeEdges and NormalizePersonalization,
// wrapped with the operation name.
func Rank(edges []Edge, numNodes int, personalization []float64, opts ...Option) (*Result, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opRank, err)
	}
	if err = validateInput(edges, numNodes, personalization); err != nil {
		return nil, fmt.Errorf("%s: %w", opRank, err)
	}

	if !o.InPlace {
		edges = slices.Clone(edges)
		personalization = slices.Clone(personalization)
	}
	if err = NormalizeEdges(edges); err != nil {
		return nil, fmt.Errorf("%s: %w", opRank, err)
	}
	if err = NormalizePersonalization(personalization); err != nil {
		return nil, fmt.Errorf("%s: %w", opRank, err)
	}

	return solve(edges, numNodes, personalization, o), nil
}

// Solve runs the damped power iteration over already normalized inputs
// (see NormalizeEdges and NormalizePersonalization). Neither slice is modified.
//
// Per iteration, at most MaxIter times:
//  1. next[i] = (1−α)·personalization[i]               (parallel over nodes)
//  2. next[d] += α·score[s]·w for every edge (s, d, w)   (per Strategy)
//  3. diff = Σ|next[i] − score[i]|
//  4. score = next
//  5. OnIteration(iter, diff); stop when diff < Tol
//
// With DanglingUniform, step 1 also adds α·Σscore[dangling]/numNodes to
// every entry; with DanglingPersonalized it adds α·Σscore[dangling]·p[i]/Σp.
//
// Complexity: O(MaxIter·(V+E)) time, O(V) per iteration plus O(Workers·V)
// scratch for StrategyPartition.
//
// Errors:
//   - ErrEmptyGraph, ErrDimensionMismatch, ErrNodeOutOfRange for bad input.
//   - ErrOptionViolation (wrapping ErrBadAlpha / ErrBadMaxIter / ErrBadTolerance)
//     for bad options.
func Solve(edges []Edge, numNodes int, personalization []float64, opts ...Option) (*Result, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSolve, err)
	}
	if err = validateInput(edges, numNodes, personalization); err != nil {
		return nil, fmt.Errorf("%s: %w", opSolve, err)
	}
	return solve(edges, numNodes, personalization, o), nil
}

// validateInput checks the caller preconditions that would otherwise turn into
// out-of-bounds accesses.
func validateInput(edges []Edge, numNodes int, personalization []float64) error {
	if numNodes <= 0 {
		return fmt.Errorf("numNodes=%d: %w", numNodes, ErrEmptyGraph)
	}
	if len(personalization) != numNodes {
		return fmt.Errorf("len(personalization)=%d, numNodes=%d: %w",
			len(personalization), numNodes, ErrDimensionMismatch)
	}
	for i, e := range edges {
		if e.Src < 0 || e.Src >= numNodes || e.Dst < 0 || e.Dst >= numNodes {
			return fmt.Errorf("edge %d (%d→%d) with numNodes=%d: %w",
				i, e.Src, e.Dst, numNodes, ErrNodeOutOfRange)
		}
	}
	return nil
}

// solve is the iteration loop; inputs are already validated.
func solve(edges []Edge, numNodes int, personalization []float64, o Options) *Result {
	workers := resolveWorkers(o.Workers)
	prop := newPropagator(o.Strategy, edges, numNodes, workers)
	restart := 1 - o.Alpha

	var (
		dangling []int
		share    []float64 // per-node fraction of dangling mass; nil spreads evenly
	)
	if o.Dangling != DanglingIgnore {
		dangling = danglingNodes(edges, numNodes)
		if o.Dangling == DanglingPersonalized {
			share = restartShare(personalization)
		}
	}

	score := slices.Clone(personalization)
	res := &Result{}
	for iter := 1; iter <= o.MaxIter; iter++ {
		leak := 0.0
		for _, v := range dangling {
			leak += score[v]
		}
		leak *= o.Alpha
		even := leak / float64(numNodes)

		next := make([]float64, numNodes)
		parallelFor(workers, numNodes, func(lo, hi int) {
			if share != nil {
				for i := lo; i < hi; i++ {
					next[i] = restart*personalization[i] + leak*share[i]
				}
				return
			}
			for i := lo; i < hi; i++ {
				next[i] = restart*personalization[i] + even
			}
		})

		prop.propagate(next, score, o.Alpha)

		diff := floats.Distance(next, score, 1)
		score = next

		res.Iterations = iter
		res.Diff = diff
		o.OnIteration(iter, diff)
		if diff < o.Tol {
			res.Converged = true
			break
		}
	}

	res.Scores = score
	return res
}

// danglingNodes lists nodes that never appear as an edge source.
func danglingNodes(edges []Edge, numNodes int) []int {
	hasOut := make([]bool, numNodes)
	for _, e := range edges {
		hasOut[e.Src] = true
	}
	var out []int
	for v, ok := range hasOut {
		if !ok {
			out = append(out, v)
		}
	}
	return out
}

// restartShare turns the personalization vector into a distribution summing
// to 1. A vector without positive mass yields the uniform distribution.
//
// Complexity: O(V).
func restartShare(personalization []float64) []float64 {
	out := slices.Clone(personalization)
	total := floats.Sum(out)
	if !(total > 0) || math.IsInf(total, 0) {
		for i := range out {
			out[i] = 1 / float64(len(out))
		}
		return out
	}
	floats.Scale(1/total, out)
	return out
}

// Normalized returns a copy of Scores rescaled to sum to 1.
// A zero total yields an unscaled copy.
func (r *Result) Normalized() []float64 {
	out := slices.Clone(r.Scores)
	if total := floats.Sum(out); total != 0 {
		floats.Scale(1/total, out)
	}
	return out
}

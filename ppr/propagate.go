// SPDX-License-Identifier: MIT
// Package: pprank/ppr
//
// propagate.go - the transition-propagation step next[d] += α·score[s]·w.
//
// Every strategy sums exactly the same contributions into the same
// destinations; they differ only in grouping and order of the additions:
//   - partition:  private partial vector per edge chunk, merged in worker order.
//   - sequential: one pass on the calling goroutine.
//   - atomic:     shared vector, per-destination CAS add.
//
// The inner kernel batches edges in groups of lanes: contributions of a group
// are computed first (independent multiplies the compiler may vectorize), then
// scattered one by one, so edges sharing a destination inside a group are
// still added individually.

package ppr

import (
	"math"
	"sync/atomic"

	"gonum.org/v1/gonum/floats"
)

// lanes is the batch width of the propagation kernel.
const lanes = 4

// propagator adds the edge-weighted contributions of score into next.
// next already holds the restart term; score is read-only.
type propagator interface {
	propagate(next, score []float64, alpha float64)
}

// newPropagator builds the scratch state of the requested strategy once per run.
func newPropagator(s Strategy, edges []Edge, numNodes, workers int) propagator {
	switch s {
	case StrategySequential:
		return sequentialPropagator{edges: edges}
	case StrategyAtomic:
		return &atomicPropagator{
			edges:   edges,
			chunks:  split(len(edges), workers),
			shared:  make([]atomic.Uint64, numNodes),
			workers: workers,
		}
	default:
		chunks := split(len(edges), workers)
		p := &partitionPropagator{edges: edges, chunks: chunks, workers: workers}
		if len(chunks) > 1 {
			p.partials = make([][]float64, len(chunks))
			for i := range p.partials {
				p.partials[i] = make([]float64, numNodes)
			}
		}
		return p
	}
}

// accumulate is the batched scatter kernel shared by the strategies: it adds
// alpha·score[e.Src]·e.Weight into dst[e.Dst] for every edge, lanes at a time.
//
// Complexity: O(len(edges)).
func accumulate(dst []float64, edges []Edge, score []float64, alpha float64) {
	i := 0
	for n := len(edges) - len(edges)%lanes; i < n; i += lanes {
		b := edges[i : i+lanes : i+lanes]
		c0 := alpha * score[b[0].Src] * b[0].Weight
		c1 := alpha * score[b[1].Src] * b[1].Weight
		c2 := alpha * score[b[2].Src] * b[2].Weight
		c3 := alpha * score[b[3].Src] * b[3].Weight
		dst[b[0].Dst] += c0
		dst[b[1].Dst] += c1
		dst[b[2].Dst] += c2
		dst[b[3].Dst] += c3
	}
	for ; i < len(edges); i++ {
		e := edges[i]
		dst[e.Dst] += alpha * score[e.Src] * e.Weight
	}
}

// sequentialPropagator runs the kernel over all edges on the calling
// goroutine. It is the reference order the other strategies are checked against.
type sequentialPropagator struct {
	edges []Edge
}

// propagate adds every contribution straight into next.
//
// Complexity: O(E).
func (p sequentialPropagator) propagate(next, score []float64, alpha float64) {
	accumulate(next, p.edges, score, alpha)
}

// partitionPropagator gives every edge chunk its own partial vector, so the
// accumulation phase needs no synchronization. The merge walks node ranges in
// parallel and adds partials in chunk order.
type partitionPropagator struct {
	edges    []Edge
	chunks   []span
	partials [][]float64
	workers  int
}

// propagate fills one partial per edge chunk in parallel, then merges the
// partials into next over disjoint node ranges, always in chunk order. With a
// single chunk it degenerates to the sequential kernel.
//
// Complexity: O(E + chunks·V) work, O(chunks·V) preallocated scratch.
func (p *partitionPropagator) propagate(next, score []float64, alpha float64) {
	if len(p.chunks) <= 1 {
		accumulate(next, p.edges, score, alpha)
		return
	}

	forEachSpan(p.workers, p.chunks, func(idx int, s span) {
		acc := p.partials[idx]
		clear(acc)
		accumulate(acc, p.edges[s.lo:s.hi], score, alpha)
	})

	parallelFor(p.workers, len(next), func(lo, hi int) {
		for _, acc := range p.partials {
			floats.Add(next[lo:hi], acc[lo:hi])
		}
	})
}

// atomicPropagator accumulates into one shared vector of float64 bit patterns.
type atomicPropagator struct {
	edges   []Edge
	chunks  []span
	shared  []atomic.Uint64
	workers int
}

// propagate loads next into the shared cells, lets every edge chunk CAS-add
// its contributions, then copies the cells back. Addition order varies with
// scheduling, so results may differ in the last bits between runs.
//
// Complexity: O(E + V) work, plus retries under contention.
func (p *atomicPropagator) propagate(next, score []float64, alpha float64) {
	parallelFor(p.workers, len(next), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			p.shared[i].Store(math.Float64bits(next[i]))
		}
	})

	forEachSpan(p.workers, p.chunks, func(_ int, s span) {
		for _, e := range p.edges[s.lo:s.hi] {
			addFloat(&p.shared[e.Dst], alpha*score[e.Src]*e.Weight)
		}
	})

	parallelFor(p.workers, len(next), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			next[i] = math.Float64frombits(p.shared[i].Load())
		}
	})
}

// addFloat atomically adds delta to the float64 stored as bits in a,
// retrying the compare-and-swap until no other writer intervened.
func addFloat(a *atomic.Uint64, delta float64) {
	for {
		old := a.Load()
		if a.CompareAndSwap(old, math.Float64bits(math.Float64frombits(old)+delta)) {
			return
		}
	}
}

// SPDX-License-Identifier: MIT
// Package: pprank/ppr
//
// parallel.go - bounded worker pool over contiguous index ranges.

package ppr

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// span is a half-open index range [lo, hi).
type span struct {
	lo, hi int
}

// resolveWorkers maps the Workers option to an effective goroutine count.
func resolveWorkers(n int) int {
	if n <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return n
}

// split divides [0, n) into at most parts contiguous, non-empty spans whose
// sizes differ by at most one. The layout depends only on (n, parts).
func split(n, parts int) []span {
	if n <= 0 {
		return nil
	}
	parts = max(1, min(parts, n))
	out := make([]span, parts)
	size, rem := n/parts, n%parts
	lo := 0
	for i := range out {
		hi := lo + size
		if i < rem {
			hi++
		}
		out[i] = span{lo: lo, hi: hi}
		lo = hi
	}
	return out
}

// forEachSpan runs fn once per span with at most workers goroutines in flight.
// fn must only write to indices owned by its span. A single span (or a single
// worker) runs on the calling goroutine.
func forEachSpan(workers int, spans []span, fn func(idx int, s span)) {
	if workers <= 1 || len(spans) <= 1 {
		for i, s := range spans {
			fn(i, s)
		}
		return
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for i, s := range spans {
		i, s := i, s
		g.Go(func() error {
			fn(i, s)
			return nil
		})
	}
	_ = g.Wait() // fn never fails
}

// parallelFor splits [0, n) across workers and runs fn on each range.
func parallelFor(workers, n int, fn func(lo, hi int)) {
	forEachSpan(workers, split(n, workers), func(_ int, s span) {
		fn(s.lo, s.hi)
	})
}

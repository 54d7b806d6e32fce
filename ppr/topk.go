// SPDX-License-Identifier: MIT
// Package: pprank/ppr
//
// topk.go - highest-scoring nodes via a bounded min-heap.

package ppr

import (
	"slices"

	"github.com/emirpasic/gods/queues/priorityqueue"
	"github.com/emirpasic/gods/utils"
)

// TopK returns the k highest scores in descending order, ties broken by the
// lower node id. k is clamped to len(scores); k <= 0 yields nil.
//
// Complexity: O(V log k) time, O(k) space.
func TopK(scores []float64, k int) []Ranked {
	k = min(k, len(scores))
	if k <= 0 {
		return nil
	}

	// Head of the queue is the weakest entry kept so far.
	heap := priorityqueue.NewWith(func(a, b interface{}) int {
		ra, rb := a.(Ranked), b.(Ranked)
		if c := utils.Float64Comparator(ra.Score, rb.Score); c != 0 {
			return c
		}
		return utils.IntComparator(rb.Node, ra.Node)
	})

	for node, s := range scores {
		heap.Enqueue(Ranked{Node: node, Score: s})
		if heap.Size() > k {
			heap.Dequeue()
		}
	}

	out := make([]Ranked, 0, k)
	for !heap.Empty() {
		v, _ := heap.Dequeue()
		out = append(out, v.(Ranked))
	}
	slices.Reverse(out)
	return out
}

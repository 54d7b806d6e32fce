// SPDX-License-Identifier: MIT
// Package: pprank/gen
//
// demo.go - the fixed five-node reference scenario.

package gen

import "github.com/katalvlaran/pprank/ppr"

// DemoNodes is the node count of the Demo graph.
const DemoNodes = 5

// Demo returns fresh copies of the reference scenario:
//
//	0→1 (0.5)  1→2 (0.3)  2→0 (0.2)  1→3 (0.4)  3→4 (0.6)  4→1 (0.7)
//
// with personalization [1, 2, 3, 4, 5]. Every node has an outgoing edge and
// node 1 splits its mass 3/7 : 4/7 between nodes 2 and 3 after normalization.
func Demo() ([]ppr.Edge, []float64) {
	edges := []ppr.Edge{
		{Src: 0, Dst: 1, Weight: 0.5},
		{Src: 1, Dst: 2, Weight: 0.3},
		{Src: 2, Dst: 0, Weight: 0.2},
		{Src: 1, Dst: 3, Weight: 0.4},
		{Src: 3, Dst: 4, Weight: 0.6},
		{Src: 4, Dst: 1, Weight: 0.7},
	}
	personalization := []float64{1, 2, 3, 4, 5}
	return edges, personalization
}

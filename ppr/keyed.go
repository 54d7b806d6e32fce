// SPDX-License-Identifier: MIT
// Package: pprank/ppr
//
// keyed.go - name-keyed entry point over the dense-id pipeline.

package ppr

import "fmt"

const opRankKeyed = "RankKeyed"

// KeyedEdge is a weighted directed edge between named nodes.
type KeyedEdge struct {
	Src, Dst string
	Weight   float64
}

// RankKeyed runs Rank over a graph whose nodes are identified by name.
//
// Node i of nodes becomes dense id i. personalization maps names to raw
// restart values; a node absent from the map contributes 0, and a nil or
// empty map gives every node the same restart mass. The returned map holds
// one score per node name.
//
// Errors:
//   - ErrEmptyGraph    if nodes is empty.
//   - ErrDuplicateNode if a name appears twice in nodes.
//   - ErrUnknownNode   if an edge endpoint or personalization key is not in nodes.
//   - every error of Rank.
//
// Complexity: O(V + E) for the mapping, plus the cost of Rank.
func RankKeyed(nodes []string, edges []KeyedEdge, personalization map[string]float64, opts ...Option) (map[string]float64, error) {
	if len(nodes) == 0 {
		return nil, fmt.Errorf("%s: %w", opRankKeyed, ErrEmptyGraph)
	}

	index := make(map[string]int, len(nodes))
	for i, name := range nodes {
		if _, dup := index[name]; dup {
			return nil, fmt.Errorf("%s: node %q: %w", opRankKeyed, name, ErrDuplicateNode)
		}
		index[name] = i
	}

	dense := make([]Edge, len(edges))
	for i, e := range edges {
		src, ok := index[e.Src]
		if !ok {
			return nil, fmt.Errorf("%s: edge %d source %q: %w", opRankKeyed, i, e.Src, ErrUnknownNode)
		}
		dst, ok := index[e.Dst]
		if !ok {
			return nil, fmt.Errorf("%s: edge %d destination %q: %w", opRankKeyed, i, e.Dst, ErrUnknownNode)
		}
		dense[i] = Edge{Src: src, Dst: dst, Weight: e.Weight}
	}

	p := make([]float64, len(nodes))
	for name, v := range personalization {
		i, ok := index[name]
		if !ok {
			return nil, fmt.Errorf("%s: personalization key %q: %w", opRankKeyed, name, ErrUnknownNode)
		}
		p[i] = v
	}

	// dense and p are private buffers, so Rank may consume them.
	res, err := Rank(dense, len(nodes), p, append(opts[:len(opts):len(opts)], WithInPlace())...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opRankKeyed, err)
	}

	out := make(map[string]float64, len(nodes))
	for i, name := range nodes {
		out[name] = res.Scores[i]
	}
	return out, nil
}

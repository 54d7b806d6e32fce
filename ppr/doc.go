// Package ppr computes Personalized PageRank (PPR) over a weighted directed
// graph held in memory as an edge list.
//
// 🚀 What is PPR?
//
//	PageRank with a biased restart: each step a random walker follows an
//	outgoing edge with probability α, or teleports with probability 1−α to
//	a node drawn from the personalization (restart) vector.  Used for:
//	  • "related items" and recommendation seeds
//	  • local community detection around a node set
//	  • trust / reputation propagation
//
// ✨ Pipeline:
//
//	NormalizeEdges(edges)          sort by (Src, Dst), rescale each source's weights to sum to 1
//	NormalizePersonalization(p)    min–max scale into [0,1]; constant input → uniform 1/V
//	Solve(edges, V, p, opts...)    power iteration until L1 diff < Tol or MaxIter steps
//
// Rank chains the three steps. By default it works on copies; WithInPlace()
// hands the caller's slices over and rewrites them. RankKeyed accepts string
// node names and a sparse personalization map and returns scores by name.
//
// ⚙️ Usage:
//
//	edges := []ppr.Edge{{Src: 0, Dst: 1, Weight: 0.5}, {Src: 1, Dst: 0, Weight: 1}}
//	res, err := ppr.Rank(edges, 2, []float64{1, 0},
//	    ppr.WithAlpha(0.85),
//	    ppr.WithMaxIter(100),
//	    ppr.WithTolerance(1e-6),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Scores, res.Iterations, res.Converged)
//
// Concurrency:
//
//	The restart term is a map over disjoint node ranges. The propagation step
//	writes by destination, so it is parallelized with one of three Strategy
//	values (partition + merge, sequential, per-node atomic add). Results are
//	reproducible for a fixed Strategy and worker count; across worker counts
//	they agree up to floating-point reassociation. StrategyAtomic is not
//	reproducible run to run.
//
// Semantics worth knowing:
//   - Scores are unnormalized; Result.Normalized() rescales a copy to sum 1.
//   - Nodes without outgoing edges leak their mass (DanglingIgnore). Use
//     WithDangling(DanglingUniform) to spread it evenly, or
//     DanglingPersonalized to send it back along the restart distribution.
//   - A source whose outgoing weights sum to zero is rejected with
//     ErrInvalidEdgeWeights instead of producing NaN.
//   - Out-of-range node ids are rejected with ErrNodeOutOfRange.
//
// Performance:
//
//	Time:   O(MaxIter·(V+E))
//	Memory: O(V+E), plus O(Workers·V) for StrategyPartition partials.
package ppr

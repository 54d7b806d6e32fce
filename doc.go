// Package pprank is an in-memory Personalized PageRank toolkit.
//
// 🚀 What is inside?
//
//	ppr/     — the scoring kernel: edge normalization, restart-vector
//	           normalization and a parallel damped power iteration
//	gen/     — deterministic synthetic graphs (demo, cycle, star, complete,
//	           random sparse) as ppr edge lists
//	cmd/     — the pprank CLI driver (cobra + viper)
//
// ✨ Why pprank?
//
//   - Plain slices in, plain slices out: no graph object to build first
//   - Explicit ownership: inputs are copied unless WithInPlace() is given
//   - Three accumulation strategies with documented determinism guarantees
//   - Sentinel errors for every rejected input instead of silent NaN
//
// Quick example (restart on node 0 of a two-node cycle):
//
//	res, _ := ppr.Rank([]ppr.Edge{{0, 1, 1}, {1, 0, 1}}, 2, []float64{1, 0}, ppr.WithAlpha(0.5))
//	// res.Scores ≈ [2/3, 1/3]
//
//	go get github.com/katalvlaran/pprank/ppr
package pprank

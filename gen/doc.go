// Package gen builds deterministic synthetic graphs as ppr edge lists for
// tests, benchmarks and the pprank CLI.
//
// It is not a loader: nothing here parses files. Each constructor returns a
// fresh []ppr.Edge over node ids 0..n-1 that the caller may hand to ppr.Rank.
//
//	edges, err := gen.RandomSparse(1000, 0.01, gen.WithSeed(42), gen.WithUniformWeight(0.1, 1))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res, err := ppr.Rank(edges, 1000, personalization)
//
// Topologies: Demo (fixed 5-node scenario), Cycle, Star, Complete, RandomSparse.
package gen

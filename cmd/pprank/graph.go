package main

import (
	"fmt"

	"github.com/katalvlaran/pprank/gen"
	"github.com/katalvlaran/pprank/internal/config"
	"github.com/katalvlaran/pprank/ppr"
)

// buildGraph materializes the configured synthetic graph and its restart
// vector. Returns edges, node count and personalization.
func buildGraph(g config.GraphConfig) ([]ppr.Edge, int, []float64, error) {
	if g.Kind == config.KindDemo {
		edges, pers := gen.Demo()
		if len(g.Restart) > 0 {
			var err error
			if pers, err = restartVector(gen.DemoNodes, g.Restart); err != nil {
				return nil, 0, nil, err
			}
		}
		return edges, gen.DemoNodes, pers, nil
	}

	opts := []gen.Option{
		gen.WithSeed(g.Seed),
		gen.WithUniformWeight(g.MinWeight, g.MaxWeight),
	}

	var (
		edges []ppr.Edge
		err   error
	)
	switch g.Kind {
	case config.KindCycle:
		edges, err = gen.Cycle(g.Nodes, opts...)
	case config.KindStar:
		edges, err = gen.Star(g.Nodes, opts...)
	case config.KindComplete:
		edges, err = gen.Complete(g.Nodes, opts...)
	case config.KindRandom:
		edges, err = gen.RandomSparse(g.Nodes, g.P, opts...)
	default:
		err = fmt.Errorf("unknown graph kind %q", g.Kind)
	}
	if err != nil {
		return nil, 0, nil, err
	}

	pers, err := restartVector(g.Nodes, g.Restart)
	if err != nil {
		return nil, 0, nil, err
	}
	return edges, g.Nodes, pers, nil
}

// restartVector puts weight 1 on the listed nodes and 0 elsewhere. An empty
// list yields a constant vector, which ppr turns into the uniform restart.
func restartVector(n int, nodes []int) ([]float64, error) {
	pers := make([]float64, n)
	if len(nodes) == 0 {
		for i := range pers {
			pers[i] = 1
		}
		return pers, nil
	}
	for _, v := range nodes {
		if v < 0 || v >= n {
			return nil, fmt.Errorf("restart node %d: %w", v, ppr.ErrNodeOutOfRange)
		}
		pers[v] = 1
	}
	return pers, nil
}

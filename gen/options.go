// SPDX-License-Identifier: MIT
// Package: pprank/gen
//
// options.go - functional options and the resolved generator config.
//
// Contract:
//   - Options are applied in order; later ones override earlier ones.
//   - Option constructors panic on meaningless input (nil RNG, bad range).
//   - Defaults are deterministic: no RNG, constant weight 1.

package gen

import (
	"fmt"
	"math/rand"
)

// DefaultEdgeWeight is used when no weight option is given.
const DefaultEdgeWeight = 1.0

// WeightFn produces an edge weight from an optional RNG.
type WeightFn func(rng *rand.Rand) float64

// Option customizes a constructor.
type Option func(*config)

// config is the resolved set of knobs, passed by value.
type config struct {
	rng      *rand.Rand
	weightFn WeightFn
}

func newConfig(opts ...Option) config {
	cfg := config{
		rng:      nil,
		weightFn: func(*rand.Rand) float64 { return DefaultEdgeWeight },
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// weight draws the next edge weight.
func (c config) weight() float64 {
	return c.weightFn(c.rng)
}

// WithSeed attaches a deterministic RNG seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand attaches an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("gen: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithWeightFn overrides the weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) Option {
	if fn == nil {
		panic("gen: WithWeightFn(nil)")
	}
	return func(c *config) {
		c.weightFn = fn
	}
}

// WithConstantWeight gives every edge weight w. Panics if w < 0.
func WithConstantWeight(w float64) Option {
	if w < 0 {
		panic(fmt.Sprintf("gen: WithConstantWeight(%g): weight must be ≥ 0", w))
	}
	return WithWeightFn(func(*rand.Rand) float64 { return w })
}

// WithUniformWeight draws weights from U[lo, hi). Without an RNG it falls
// back to DefaultEdgeWeight. Panics unless 0 ≤ lo ≤ hi.
func WithUniformWeight(lo, hi float64) Option {
	if lo < 0 || hi < lo {
		panic(fmt.Sprintf("gen: WithUniformWeight: require 0 ≤ lo ≤ hi, got lo=%g, hi=%g", lo, hi))
	}
	return WithWeightFn(func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}
		if hi == lo {
			return lo
		}
		return lo + rng.Float64()*(hi-lo)
	})
}

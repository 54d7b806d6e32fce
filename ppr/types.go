// SPDX-License-Identifier: MIT
// Package: pprank/ppr
//
// types.go - edge/result types, functional options and sentinel errors.
//
// Error policy:
//   - Only package-level sentinels are exposed; callers branch with errors.Is.
//   - Context is attached at the call site with fmt.Errorf("...: %w", ErrX).
//   - Option constructors never panic: invalid values are recorded and surfaced
//     as ErrOptionViolation when Rank/Solve is invoked.

package ppr

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Sentinel errors returned by the ppr package.
var (
	// ErrEmptyGraph is returned when numNodes <= 0 or the personalization vector is empty.
	ErrEmptyGraph = errors.New("ppr: graph has no nodes")

	// ErrDimensionMismatch is returned when len(personalization) != numNodes.
	ErrDimensionMismatch = errors.New("ppr: personalization length does not match node count")

	// ErrNodeOutOfRange is returned when an edge endpoint lies outside [0, numNodes).
	ErrNodeOutOfRange = errors.New("ppr: node index out of range")

	// ErrUnknownNode is returned by RankKeyed when an edge or personalization
	// key names a node missing from the node list.
	ErrUnknownNode = errors.New("ppr: unknown node name")

	// ErrDuplicateNode is returned by RankKeyed when a node name is listed twice.
	ErrDuplicateNode = errors.New("ppr: duplicate node name")

	// ErrInvalidEdgeWeights is returned for negative or non-finite weights and for
	// sources whose outgoing weights sum to zero (no valid transition distribution).
	ErrInvalidEdgeWeights = errors.New("ppr: invalid edge weights")

	// ErrInvalidPersonalization is returned when the restart vector holds NaN or ±Inf.
	ErrInvalidPersonalization = errors.New("ppr: invalid personalization vector")

	// ErrBadAlpha is returned when the damping factor lies outside [0, 1).
	ErrBadAlpha = errors.New("ppr: alpha must be in [0, 1)")

	// ErrBadMaxIter is returned when the iteration ceiling is not positive.
	ErrBadMaxIter = errors.New("ppr: max iterations must be positive")

	// ErrBadTolerance is returned when the convergence tolerance is negative or NaN.
	ErrBadTolerance = errors.New("ppr: tolerance must be non-negative")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("ppr: invalid option supplied")
)

// Defaults used by DefaultOptions.
const (
	DefaultAlpha     = 0.85
	DefaultMaxIter   = 100
	DefaultTolerance = 1e-6
)

// Edge is a weighted directed edge Src→Dst between dense node ids.
type Edge struct {
	Src    int
	Dst    int
	Weight float64
}

// Strategy selects how the propagation step accumulates edge contributions
// into destination scores.
type Strategy int

const (
	// StrategyPartition splits the edge list into one contiguous chunk per worker.
	// Every worker owns a private partial vector; partials are merged in fixed
	// worker order, so results are reproducible for a given worker count.
	StrategyPartition Strategy = iota

	// StrategySequential runs the batched kernel on a single goroutine.
	StrategySequential

	// StrategyAtomic adds contributions straight into a shared vector with a
	// per-destination compare-and-swap. Summation order varies between runs.
	StrategyAtomic
)

var strategyNames = map[Strategy]string{
	StrategyPartition:  "partition",
	StrategySequential: "sequential",
	StrategyAtomic:     "atomic",
}

// String returns the lower-case strategy name.
func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy maps a name produced by Strategy.String back to its value.
func ParseStrategy(name string) (Strategy, error) {
	for s, n := range strategyNames {
		if strings.EqualFold(n, name) {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown strategy %q", ErrOptionViolation, name)
}

// DanglingPolicy decides what happens to the score held by nodes that have no
// outgoing edges.
type DanglingPolicy int

const (
	// DanglingIgnore lets dangling mass leave the system each iteration.
	DanglingIgnore DanglingPolicy = iota

	// DanglingUniform spreads alpha·Σscore[dangling] evenly over all nodes.
	DanglingUniform

	// DanglingPersonalized spreads alpha·Σscore[dangling] in proportion to the
	// personalization vector, so leaked mass restarts where the walk does.
	DanglingPersonalized
)

var danglingNames = map[DanglingPolicy]string{
	DanglingIgnore:       "ignore",
	DanglingUniform:      "uniform",
	DanglingPersonalized: "personalized",
}

// String returns the lower-case policy name.
func (d DanglingPolicy) String() string {
	if name, ok := danglingNames[d]; ok {
		return name
	}
	return fmt.Sprintf("DanglingPolicy(%d)", int(d))
}

// ParseDanglingPolicy maps a name produced by DanglingPolicy.String back to its value.
func ParseDanglingPolicy(name string) (DanglingPolicy, error) {
	for d, n := range danglingNames {
		if strings.EqualFold(n, name) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown dangling policy %q", ErrOptionViolation, name)
}

// Options holds the solver parameters. Build it through DefaultOptions and
// Option values rather than by hand.
type Options struct {
	// Alpha is the damping factor: the share of mass that follows edges.
	Alpha float64

	// MaxIter is a hard ceiling on update steps.
	MaxIter int

	// Tol is the L1 threshold between successive iterates for early stop.
	Tol float64

	// Workers bounds the goroutines used by parallel regions.
	// 0 means runtime.GOMAXPROCS(0).
	Workers int

	Strategy Strategy
	Dangling DanglingPolicy

	// OnIteration is called after every update step with the 1-based
	// iteration number and the L1 diff of that step.
	OnIteration func(iter int, diff float64)

	// InPlace makes Rank normalize the caller's slices directly instead of
	// working on copies. The caller gives up both slices.
	InPlace bool

	// internal error recorded during option parsing
	err error
}

// Option configures Rank and Solve.
type Option func(*Options)

// DefaultOptions returns Options with:
//   - Alpha 0.85, MaxIter 100, Tol 1e-6
//   - Workers 0 (GOMAXPROCS)
//   - StrategyPartition, DanglingIgnore
//   - no-op OnIteration, InPlace false
func DefaultOptions() Options {
	return Options{
		Alpha:       DefaultAlpha,
		MaxIter:     DefaultMaxIter,
		Tol:         DefaultTolerance,
		Workers:     0,
		Strategy:    StrategyPartition,
		Dangling:    DanglingIgnore,
		OnIteration: func(int, float64) {},
	}
}

// WithAlpha sets the damping factor; a must lie in [0, 1).
func WithAlpha(a float64) Option {
	return func(o *Options) {
		if math.IsNaN(a) || a < 0 || a >= 1 {
			o.fail(fmt.Errorf("%w: %w (got %g)", ErrOptionViolation, ErrBadAlpha, a))
			return
		}
		o.Alpha = a
	}
}

// WithMaxIter sets the iteration ceiling; n must be positive.
func WithMaxIter(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.fail(fmt.Errorf("%w: %w (got %d)", ErrOptionViolation, ErrBadMaxIter, n))
			return
		}
		o.MaxIter = n
	}
}

// WithTolerance sets the L1 convergence threshold; tol must be >= 0.
// With tol == 0 the stop test diff < tol never holds, so the solver always
// spends the full MaxIter budget.
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if math.IsNaN(tol) || tol < 0 {
			o.fail(fmt.Errorf("%w: %w (got %g)", ErrOptionViolation, ErrBadTolerance, tol))
			return
		}
		o.Tol = tol
	}
}

// WithWorkers bounds parallelism. 0 selects GOMAXPROCS, 1 disables goroutines.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.fail(fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, n))
			return
		}
		o.Workers = n
	}
}

// WithStrategy selects the propagation accumulation scheme.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		if _, ok := strategyNames[s]; !ok {
			o.fail(fmt.Errorf("%w: unknown strategy %d", ErrOptionViolation, int(s)))
			return
		}
		o.Strategy = s
	}
}

// WithDangling selects the dangling-node policy.
func WithDangling(d DanglingPolicy) Option {
	return func(o *Options) {
		if _, ok := danglingNames[d]; !ok {
			o.fail(fmt.Errorf("%w: unknown dangling policy %d", ErrOptionViolation, int(d)))
			return
		}
		o.Dangling = d
	}
}

// WithOnIteration registers a per-iteration callback. nil is ignored.
func WithOnIteration(fn func(iter int, diff float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnIteration = fn
		}
	}
}

// WithInPlace hands the caller's edge and personalization slices to Rank,
// which sorts and rescales them destructively instead of copying.
func WithInPlace() Option {
	return func(o *Options) {
		o.InPlace = true
	}
}

// fail keeps the first recorded option error.
func (o *Options) fail(err error) {
	if o.err == nil {
		o.err = err
	}
}

// gatherOptions applies opts over DefaultOptions and returns the first violation.
func gatherOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.err != nil {
		return o, o.err
	}
	return o, nil
}

// Result is the outcome of a solver run.
type Result struct {
	// Scores holds one unnormalized PPR value per node. Owned by the caller.
	Scores []float64

	// Iterations is the number of update steps performed (<= MaxIter).
	Iterations int

	// Diff is the L1 distance between the last two iterates.
	Diff float64

	// Converged reports whether Diff < Tol was reached before the ceiling.
	Converged bool
}

// Ranked pairs a node id with its score.
type Ranked struct {
	Node  int
	Score float64
}

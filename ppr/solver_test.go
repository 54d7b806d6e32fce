package ppr_test

import (
	"math"
	"slices"
	"testing"

	"github.com/katalvlaran/pprank/gen"
	"github.com/katalvlaran/pprank/ppr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// referenceStep applies one dense PPR update (1-α)p + α·Pᵀ·score.
func referenceStep(edges []ppr.Edge, p, score []float64, alpha float64) []float64 {
	next := make([]float64, len(p))
	for i := range p {
		next[i] = (1 - alpha) * p[i]
	}
	for _, e := range edges {
		next[e.Dst] += alpha * score[e.Src] * e.Weight
	}
	return next
}

// TestRank_DemoScenario runs the five-node reference scenario twice on fresh
// inputs and expects finite, non-negative, identical scores.
func TestRank_DemoScenario(t *testing.T) {
	run := func() *ppr.Result {
		edges, p := gen.Demo()
		res, err := ppr.Rank(edges, gen.DemoNodes, p,
			ppr.WithAlpha(0.85), ppr.WithMaxIter(100), ppr.WithTolerance(1e-6))
		require.NoError(t, err)
		return res
	}

	first, second := run(), run()
	require.Len(t, first.Scores, gen.DemoNodes)
	for i, s := range first.Scores {
		assert.False(t, math.IsNaN(s) || math.IsInf(s, 0), "score %d must be finite", i)
		assert.GreaterOrEqual(t, s, 0.0, "score %d must be non-negative", i)
	}
	assert.Equal(t, first.Scores, second.Scores, "repeated runs must be bit-identical")
	assert.Equal(t, first.Iterations, second.Iterations)
	assert.LessOrEqual(t, first.Iterations, 100)
}

// TestRank_FixedPoint checks that a converged result satisfies the update equation.
func TestRank_FixedPoint(t *testing.T) {
	edges, p := gen.Demo()
	res, err := ppr.Rank(edges, gen.DemoNodes, p, ppr.WithMaxIter(500), ppr.WithTolerance(1e-12))
	require.NoError(t, err)
	require.True(t, res.Converged)
	assert.Less(t, res.Diff, 1e-12)
	assert.Less(t, res.Iterations, 500)

	normEdges, normP := gen.Demo()
	require.NoError(t, ppr.NormalizeEdges(normEdges))
	require.NoError(t, ppr.NormalizePersonalization(normP))
	want := referenceStep(normEdges, normP, res.Scores, ppr.DefaultAlpha)
	assert.InDeltaSlice(t, want, res.Scores, 1e-10)
}

// TestRank_TwoCycleClosedForm compares against the analytic solution
// s0 = 2/3, s1 = 1/3 for 0⇄1 with α = 0.5 and restart on node 0.
func TestRank_TwoCycleClosedForm(t *testing.T) {
	edges := []ppr.Edge{{Src: 0, Dst: 1, Weight: 1}, {Src: 1, Dst: 0, Weight: 1}}
	res, err := ppr.Rank(edges, 2, []float64{1, 0},
		ppr.WithAlpha(0.5), ppr.WithMaxIter(1000), ppr.WithTolerance(1e-13))
	require.NoError(t, err)
	assert.True(t, res.Converged)
	assert.InDeltaSlice(t, []float64{2.0 / 3.0, 1.0 / 3.0}, res.Scores, eps)
}

// TestRank_IterationCeiling counts hook invocations with a tolerance that can
// never be met.
func TestRank_IterationCeiling(t *testing.T) {
	for _, k := range []int{1, 3, 17} {
		edges, p := gen.Demo()
		calls := 0
		res, err := ppr.Rank(edges, gen.DemoNodes, p,
			ppr.WithMaxIter(k),
			ppr.WithTolerance(0),
			ppr.WithOnIteration(func(iter int, _ float64) {
				calls++
				assert.Equal(t, calls, iter, "iterations are reported 1-based and in order")
			}),
		)
		require.NoError(t, err)
		assert.Equal(t, k, calls, "hook must fire exactly MaxIter times")
		assert.Equal(t, k, res.Iterations)
		assert.False(t, res.Converged)
	}
}

// TestRank_MonotoneConvergence verifies the L1 diff contracts by at least α per step.
func TestRank_MonotoneConvergence(t *testing.T) {
	const alpha = 0.85
	edges, err := gen.RandomSparse(80, 0.06, gen.WithSeed(11), gen.WithUniformWeight(0.2, 3))
	require.NoError(t, err)
	p := make([]float64, 80)
	for i := range p {
		p[i] = float64(i % 7)
	}

	var diffs []float64
	_, err = ppr.Rank(edges, 80, p,
		ppr.WithAlpha(alpha),
		ppr.WithMaxIter(60),
		ppr.WithTolerance(0),
		ppr.WithOnIteration(func(_ int, d float64) { diffs = append(diffs, d) }),
	)
	require.NoError(t, err)
	require.Len(t, diffs, 60)
	for i := 1; i < len(diffs); i++ {
		assert.LessOrEqual(t, diffs[i], alpha*diffs[i-1]+1e-12, "step %d", i)
	}
	assert.Less(t, diffs[len(diffs)-1], diffs[0])
}

// TestRank_AlphaZero returns the normalized personalization after one step.
func TestRank_AlphaZero(t *testing.T) {
	edges, p := gen.Demo()
	res, err := ppr.Rank(edges, gen.DemoNodes, p, ppr.WithAlpha(0))
	require.NoError(t, err)
	assert.Equal(t, 1, res.Iterations)
	assert.True(t, res.Converged)
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1}, res.Scores)
}

// TestRank_Dangling compares both dangling policies on 0→1 with α = 0.5.
func TestRank_Dangling(t *testing.T) {
	edges := []ppr.Edge{{Src: 0, Dst: 1, Weight: 1}}

	ignore, err := ppr.Rank(edges, 2, []float64{1, 0},
		ppr.WithAlpha(0.5), ppr.WithMaxIter(100), ppr.WithTolerance(1e-13))
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.5, 0.25}, ignore.Scores, eps)

	uniform, err := ppr.Rank(edges, 2, []float64{1, 0},
		ppr.WithAlpha(0.5), ppr.WithMaxIter(1000), ppr.WithTolerance(1e-13),
		ppr.WithDangling(ppr.DanglingUniform))
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.6, 0.4}, uniform.Scores, eps)
	assert.InDelta(t, 1.0, uniform.Scores[0]+uniform.Scores[1], eps, "uniform policy conserves mass")

	// Restart is all on node 0, so node 1's leaked mass returns to node 0:
	// s0 = 0.5 + 0.5·s1, s1 = 0.5·s0.
	personalized, err := ppr.Rank(edges, 2, []float64{1, 0},
		ppr.WithAlpha(0.5), ppr.WithMaxIter(1000), ppr.WithTolerance(1e-13),
		ppr.WithDangling(ppr.DanglingPersonalized))
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{2.0 / 3.0, 1.0 / 3.0}, personalized.Scores, eps)
	assert.InDelta(t, 1.0, personalized.Scores[0]+personalized.Scores[1], eps, "personalized policy conserves mass")
}

// TestRank_DanglingPersonalizedUniformRestart matches the uniform policy when
// the restart vector is constant.
func TestRank_DanglingPersonalizedUniformRestart(t *testing.T) {
	edges := []ppr.Edge{{Src: 0, Dst: 1, Weight: 1}, {Src: 1, Dst: 2, Weight: 1}}
	run := func(d ppr.DanglingPolicy) []float64 {
		res, err := ppr.Rank(edges, 3, []float64{4, 4, 4},
			ppr.WithMaxIter(1000), ppr.WithTolerance(1e-13), ppr.WithDangling(d))
		require.NoError(t, err)
		return res.Scores
	}
	assert.InDeltaSlice(t, run(ppr.DanglingUniform), run(ppr.DanglingPersonalized), eps)
}

// TestRank_CopiesByDefault verifies caller slices survive a default run.
func TestRank_CopiesByDefault(t *testing.T) {
	edges, p := gen.Demo()
	wantEdges, wantP := slices.Clone(edges), slices.Clone(p)

	_, err := ppr.Rank(edges, gen.DemoNodes, p)
	require.NoError(t, err)
	assert.Equal(t, wantEdges, edges)
	assert.Equal(t, wantP, p)
}

// TestRank_InPlace verifies WithInPlace normalizes the caller's buffers.
func TestRank_InPlace(t *testing.T) {
	edges, p := gen.Demo()
	_, err := ppr.Rank(edges, gen.DemoNodes, p, ppr.WithInPlace())
	require.NoError(t, err)

	assert.Equal(t, 0, edges[0].Src)
	assert.InDelta(t, 3.0/7.0, edges[1].Weight, eps)
	assert.InDeltaSlice(t, []float64{0, 0.25, 0.5, 0.75, 1}, p, eps)
}

// TestSolve_LeavesInputs verifies Solve treats both slices as read-only.
func TestSolve_LeavesInputs(t *testing.T) {
	edges, p := gen.Demo()
	require.NoError(t, ppr.NormalizeEdges(edges))
	require.NoError(t, ppr.NormalizePersonalization(p))
	wantEdges, wantP := slices.Clone(edges), slices.Clone(p)

	res, err := ppr.Solve(edges, gen.DemoNodes, p)
	require.NoError(t, err)
	assert.Equal(t, wantEdges, edges)
	assert.Equal(t, wantP, p)

	rawEdges, rawP := gen.Demo()
	viaRank, err := ppr.Rank(rawEdges, gen.DemoNodes, rawP)
	require.NoError(t, err)
	assert.Equal(t, viaRank.Scores, res.Scores, "Rank must equal Normalize + Solve")
}

// TestRank_Errors covers input validation and option violations.
func TestRank_Errors(t *testing.T) {
	edges, p := gen.Demo()

	_, err := ppr.Rank(edges, 0, nil)
	assert.ErrorIs(t, err, ppr.ErrEmptyGraph)

	_, err = ppr.Rank(edges, gen.DemoNodes, p[:4])
	assert.ErrorIs(t, err, ppr.ErrDimensionMismatch)

	_, err = ppr.Rank([]ppr.Edge{{Src: 0, Dst: 5, Weight: 1}}, gen.DemoNodes, p)
	assert.ErrorIs(t, err, ppr.ErrNodeOutOfRange)

	_, err = ppr.Solve([]ppr.Edge{{Src: -1, Dst: 0, Weight: 1}}, gen.DemoNodes, p)
	assert.ErrorIs(t, err, ppr.ErrNodeOutOfRange)

	_, err = ppr.Rank([]ppr.Edge{{Src: 0, Dst: 1, Weight: 0}}, gen.DemoNodes, p)
	assert.ErrorIs(t, err, ppr.ErrInvalidEdgeWeights)

	options := map[string]struct {
		opt  ppr.Option
		want error
	}{
		"alpha one":      {ppr.WithAlpha(1), ppr.ErrBadAlpha},
		"alpha negative": {ppr.WithAlpha(-0.1), ppr.ErrBadAlpha},
		"max iter zero":  {ppr.WithMaxIter(0), ppr.ErrBadMaxIter},
		"tol negative":   {ppr.WithTolerance(-1), ppr.ErrBadTolerance},
		"tol nan":        {ppr.WithTolerance(math.NaN()), ppr.ErrBadTolerance},
		"workers":        {ppr.WithWorkers(-2), ppr.ErrOptionViolation},
		"strategy":       {ppr.WithStrategy(ppr.Strategy(42)), ppr.ErrOptionViolation},
		"dangling":       {ppr.WithDangling(ppr.DanglingPolicy(42)), ppr.ErrOptionViolation},
	}
	for name, tc := range options {
		t.Run(name, func(t *testing.T) {
			e, q := gen.Demo()
			_, err := ppr.Rank(e, gen.DemoNodes, q, tc.opt)
			assert.ErrorIs(t, err, ppr.ErrOptionViolation)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestResult_Normalized rescales a copy to sum 1.
func TestResult_Normalized(t *testing.T) {
	res := &ppr.Result{Scores: []float64{1, 3}}
	assert.InDeltaSlice(t, []float64{0.25, 0.75}, res.Normalized(), eps)
	assert.Equal(t, []float64{1, 3}, res.Scores, "Normalized must not touch Scores")

	zero := &ppr.Result{Scores: []float64{0, 0}}
	assert.Equal(t, []float64{0, 0}, zero.Normalized())
}

// TestParseNames round-trips strategy and dangling policy names.
func TestParseNames(t *testing.T) {
	for _, s := range []ppr.Strategy{ppr.StrategyPartition, ppr.StrategySequential, ppr.StrategyAtomic} {
		got, err := ppr.ParseStrategy(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
	_, err := ppr.ParseStrategy("gpu")
	assert.ErrorIs(t, err, ppr.ErrOptionViolation)

	for _, d := range []ppr.DanglingPolicy{ppr.DanglingIgnore, ppr.DanglingUniform, ppr.DanglingPersonalized} {
		got, err := ppr.ParseDanglingPolicy(d.String())
		require.NoError(t, err)
		assert.Equal(t, d, got)
	}
	_, err = ppr.ParseDanglingPolicy("teleport")
	assert.ErrorIs(t, err, ppr.ErrOptionViolation)
}

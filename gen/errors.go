// SPDX-License-Identifier: MIT
// Package: pprank/gen
//
// errors.go - sentinel errors for the gen package.
//
// Error policy:
//   - Constructors return only these sentinels, wrapped with the method name.
//   - Callers match with errors.Is.
//   - Option constructors panic on meaningless input; constructors never panic.

package gen

import "errors"

// ErrTooFewVertices indicates that n is below the constructor's minimum.
var ErrTooFewVertices = errors.New("gen: parameter too small")

// ErrInvalidProbability indicates a probability outside [0, 1].
var ErrInvalidProbability = errors.New("gen: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("gen: rng is required")

// SPDX-License-Identifier: MIT
//
// errors.go - sentinel errors for the builder package.
//
// Callers branch with errors.Is; constructors wrap these with
// "<Constructor>: <detail>: %w".

package builder

import "errors"

// ErrTooFewWorlds indicates a size parameter below the constructor minimum.
var ErrTooFewWorlds = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates a stochastic constructor ran without an RNG
// (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or an assembly failure.
var ErrConstructFailed = errors.New("builder: construction failed")

// SPDX-License-Identifier: MIT

// Package builder assembles finite frames for tests, examples and timing runs.
//
// BuildFrame resolves the functional options into an immutable config and
// applies Constructors in order to a Draft. Every constructor appends a fresh
// block of worlds, so composing several constructors yields their disjoint
// union, numbered in call order:
//
//	f, err := builder.BuildFrame(
//	    []builder.Option{builder.WithLetterLabels()},
//	    builder.Chain(3), // worlds a, b, c
//	    builder.Cycle(2), // worlds d, e
//	)
//
// Loops is the one constructor that adds no worlds: it makes every world
// present so far reflexive.
//
// Stochastic constructors (RandomFrame) need an RNG from WithSeed or
// WithRand and are deterministic for a fixed seed and call order.
//
// Error policy: constructors return sentinel errors wrapped with the
// constructor name (errors.Is works); option constructors panic on
// meaningless values.
package builder

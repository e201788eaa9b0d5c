// SPDX-License-Identifier: MIT
//
// options.go - functional options for BuildFrame.
//
// Option constructors validate and panic on meaningless inputs;
// constructors themselves never panic.

package builder

import "math/rand"

// Option customizes BuildFrame.
type Option func(*builderConfig)

// WithSeed attaches a fresh RNG seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand attaches an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithLabels labels world i of the finished frame with fn(i). Panics on nil.
func WithLabels(fn IDFn) Option {
	if fn == nil {
		panic("builder: WithLabels(nil)")
	}

	return func(c *builderConfig) { c.labels = fn }
}

// WithLetterLabels labels worlds a, b, …, z, aa, ab, ….
func WithLetterLabels() Option {
	return WithLabels(LetterID)
}

// WithPrefixLabels labels worlds prefix+"0", prefix+"1", ….
func WithPrefixLabels(prefix string) Option {
	return WithLabels(PrefixID(prefix))
}

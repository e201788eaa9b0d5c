// SPDX-License-Identifier: MIT

package setfamily

import "fmt"

// Defaults for the enumeration guards.
const (
	DefaultMaxWorlds     = 16
	DefaultMaxFamilySize = 1 << 16
)

// Option configures the closure operations.
type Option func(*config)

type config struct {
	maxWorlds     int
	maxFamilySize int
}

func newConfig(opts []Option) config {
	cfg := config{maxWorlds: DefaultMaxWorlds, maxFamilySize: DefaultMaxFamilySize}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithMaxWorlds bounds the universe: worlds must lie in [0,n).
// Panics if n is outside [1,64].
func WithMaxWorlds(n int) Option {
	if n < 1 || n > 64 {
		panic(fmt.Sprintf("setfamily: WithMaxWorlds(%d): want 1..64", n))
	}

	return func(c *config) { c.maxWorlds = n }
}

// WithMaxFamilySize bounds the number of sets a closure may produce.
// Panics if k < 1.
func WithMaxFamilySize(k int) Option {
	if k < 1 {
		panic(fmt.Sprintf("setfamily: WithMaxFamilySize(%d): want ≥ 1", k))
	}

	return func(c *config) { c.maxFamilySize = k }
}

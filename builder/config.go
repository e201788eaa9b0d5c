// SPDX-License-Identifier: MIT
//
// config.go - internal configuration and deterministic defaults.
//
// Defaults:
//   - rng    = nil  (constructors are pure unless seeded)
//   - labels = nil  (worlds stay unlabeled, printed as integers)

package builder

import "math/rand"

// builderConfig is passed by value to constructors.
type builderConfig struct {
	rng    *rand.Rand
	labels IDFn
}

// newBuilderConfig applies opts in order; later options win.
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

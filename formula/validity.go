// SPDX-License-Identifier: MIT
//
// File: validity.go
// Role: Frame validity by exhaustive valuation enumeration.
// Policy:
//   - Valuation i·n+j of the counter bit says whether proposition i holds
//     at world j; counters run upward from the all-false valuation.
//   - The first falsifying (valuation, world) pair ends the search.

package formula

import (
	"fmt"

	"github.com/katalvlaran/framelogic/core"
)

// DefaultMaxValuationBits bounds n·m for IsValid: 2^24 valuations.
const DefaultMaxValuationBits = 24

// Option configures validity checking.
type Option func(*config)

type config struct {
	maxBits int
}

func defaultConfig() config {
	return config{maxBits: DefaultMaxValuationBits}
}

// WithMaxValuationBits sets the largest n·m accepted by IsValid.
// Panics if bits is outside [0,62].
func WithMaxValuationBits(bits int) Option {
	if bits < 0 || bits > 62 {
		panic(fmt.Sprintf("formula: WithMaxValuationBits(%d): want 0..62", bits))
	}

	return func(c *config) { c.maxBits = bits }
}

// Countermodel is a valuation and a world at which a formula fails.
type Countermodel struct {
	Valuation core.Valuation
	World     int
}

// Counterexample returns the first countermodel of the formula on fr, or
// nil when the formula is valid on fr.
func (f *Formula) Counterexample(fr *core.Frame, opts ...Option) (*Countermodel, error) {
	if f == nil || fr == nil {
		return nil, ErrNilFormula
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	n, m := fr.Size(), len(f.Propositions)
	bits := n * m
	if bits > cfg.maxBits {
		return nil, fmt.Errorf("formula: %d worlds × %d propositions = 2^%d valuations, limit 2^%d: %w",
			n, m, bits, cfg.maxBits, core.ErrResourceLimit)
	}

	index := make(map[string]int, m)
	for i, name := range f.Propositions {
		index[name] = i
	}
	e := newExtender(fr)
	total := uint64(1) << uint(bits)
	for c := uint64(0); c < total; c++ {
		ext, err := e.extend(f.Root, func(name string) ([]bool, error) {
			i := index[name]
			out := make([]bool, n)
			for w := range out {
				out[w] = c>>uint(i*n+w)&1 == 1
			}
			return out, nil
		})
		if err != nil {
			return nil, err
		}
		for w, ok := range ext {
			if !ok {
				return &Countermodel{Valuation: decodeValuation(f.Propositions, n, c), World: w}, nil
			}
		}
	}

	return nil, nil
}

// ValidIn reports whether the formula holds at every world of fr under
// every valuation.
func (f *Formula) ValidIn(fr *core.Frame, opts ...Option) (bool, error) {
	cm, err := f.Counterexample(fr, opts...)
	if err != nil {
		return false, err
	}

	return cm == nil, nil
}

// IsValid parses phi and decides whether it is valid in (X_n, R).
func IsValid(phi string, n int, r core.Relation, opts ...Option) (bool, error) {
	f, err := Parse(phi)
	if err != nil {
		return false, err
	}
	fr, err := core.NewFrame(n, r)
	if err != nil {
		return false, err
	}

	return f.ValidIn(fr, opts...)
}

func decodeValuation(props []string, n int, c uint64) core.Valuation {
	v := make(core.Valuation, len(props))
	for i, name := range props {
		set := core.NewWorldSet()
		for w := 0; w < n; w++ {
			if c>>uint(i*n+w)&1 == 1 {
				set.Add(w)
			}
		}
		v[name] = set
	}

	return v
}

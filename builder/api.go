// SPDX-License-Identifier: MIT
//
// api.go - BuildFrame orchestrator and the Draft accumulator.
//
// Contract:
//   - One orchestrator: BuildFrame(opts, cons...). Resolves cfg once, runs
//     cons in order, then freezes the Draft into a *core.Frame.
//   - Determinism: same options, seed and constructor order ⇒ identical frames.

package builder

import (
	"fmt"

	"github.com/katalvlaran/framelogic/core"
)

// Constructor appends worlds and pairs to a Draft using the resolved config.
// Constructors validate early, return wrapped sentinels and never panic.
type Constructor func(d *Draft, cfg builderConfig) error

// Draft is a frame under construction.
type Draft struct {
	n   int
	rel core.Relation
}

// Size returns the number of worlds added so far.
func (d *Draft) Size() int { return d.n }

// AddWorlds appends k worlds and returns the index of the first one.
func (d *Draft) AddWorlds(k int) int {
	first := d.n
	d.n += k

	return first
}

// Add inserts the pair (a, b). Both worlds must already exist.
func (d *Draft) Add(a, b int) error {
	if a < 0 || a >= d.n || b < 0 || b >= d.n {
		return fmt.Errorf("builder: pair (%d, %d) outside [0,%d): %w", a, b, d.n, core.ErrInvalidRelation)
	}
	d.rel.Add(a, b)

	return nil
}

// BuildFrame resolves opts and applies cons in order. The first constructor
// error is wrapped with "BuildFrame: %w" and returned.
func BuildFrame(opts []Option, cons ...Constructor) (*core.Frame, error) {
	cfg := newBuilderConfig(opts...)
	d := &Draft{rel: core.NewRelation()}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildFrame: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(d, cfg); err != nil {
			return nil, fmt.Errorf("BuildFrame: %w", err)
		}
	}

	var fopts []core.FrameOption
	if cfg.labels != nil && d.n > 0 {
		labels := make([]string, d.n)
		for i := range labels {
			labels[i] = cfg.labels(i)
		}
		fopts = append(fopts, core.WithLabels(labels...))
	}
	f, err := core.NewFrame(d.n, d.rel, fopts...)
	if err != nil {
		return nil, fmt.Errorf("BuildFrame: %w: %w", ErrConstructFailed, err)
	}

	return f, nil
}

// Build is BuildFrame for a single constructor.
func Build(con Constructor, opts ...Option) (*core.Frame, error) {
	return BuildFrame(opts, con)
}

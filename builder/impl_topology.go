// SPDX-License-Identifier: MIT
//
// impl_topology.go - deterministic frame shapes.
//
// Contract:
//   - Each constructor appends its own block of worlds; indices below are
//     relative to the block start.
//   - Pairs are emitted in ascending (from, to) order.
//
// Complexity: O(n) worlds plus the pairs listed per constructor.

package builder

import "fmt"

const (
	methodChain    = "Chain"
	methodCycle    = "Cycle"
	methodComplete = "Complete"
	methodDiscrete = "Discrete"
	methodStar     = "Star"

	minWorlds     = 1
	minStarWorlds = 2
)

func checkMin(method string, n, least int) error {
	if n < least {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, least, ErrTooFewWorlds)
	}

	return nil
}

// Chain builds the strict chain 0 → 1 → … → n-1 (n ≥ 1).
func Chain(n int) Constructor {
	return func(d *Draft, _ builderConfig) error {
		if err := checkMin(methodChain, n, minWorlds); err != nil {
			return err
		}
		base := d.AddWorlds(n)
		for i := 0; i+1 < n; i++ {
			if err := d.Add(base+i, base+i+1); err != nil {
				return fmt.Errorf("%s: %w", methodChain, err)
			}
		}
		return nil
	}
}

// Cycle builds i → (i+1) mod n (n ≥ 1; Cycle(1) is a single reflexive world).
func Cycle(n int) Constructor {
	return func(d *Draft, _ builderConfig) error {
		if err := checkMin(methodCycle, n, minWorlds); err != nil {
			return err
		}
		base := d.AddWorlds(n)
		for i := 0; i < n; i++ {
			if err := d.Add(base+i, base+(i+1)%n); err != nil {
				return fmt.Errorf("%s: %w", methodCycle, err)
			}
		}
		return nil
	}
}

// Complete builds the universal relation on n worlds, loops included (n ≥ 1).
func Complete(n int) Constructor {
	return func(d *Draft, _ builderConfig) error {
		if err := checkMin(methodComplete, n, minWorlds); err != nil {
			return err
		}
		base := d.AddWorlds(n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if err := d.Add(base+i, base+j); err != nil {
					return fmt.Errorf("%s: %w", methodComplete, err)
				}
			}
		}
		return nil
	}
}

// Discrete adds n worlds and no pairs (n ≥ 1).
func Discrete(n int) Constructor {
	return func(d *Draft, _ builderConfig) error {
		if err := checkMin(methodDiscrete, n, minWorlds); err != nil {
			return err
		}
		d.AddWorlds(n)
		return nil
	}
}

// Star builds a root 0 with arrows to the leaves 1..n-1 (n ≥ 2).
func Star(n int) Constructor {
	return func(d *Draft, _ builderConfig) error {
		if err := checkMin(methodStar, n, minStarWorlds); err != nil {
			return err
		}
		base := d.AddWorlds(n)
		for i := 1; i < n; i++ {
			if err := d.Add(base, base+i); err != nil {
				return fmt.Errorf("%s: %w", methodStar, err)
			}
		}
		return nil
	}
}

// Loops adds (w, w) for every world added so far.
func Loops() Constructor {
	return func(d *Draft, _ builderConfig) error {
		for w := 0; w < d.Size(); w++ {
			if err := d.Add(w, w); err != nil {
				return fmt.Errorf("Loops: %w", err)
			}
		}
		return nil
	}
}

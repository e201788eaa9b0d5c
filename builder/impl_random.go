// SPDX-License-Identifier: MIT
//
// impl_random.go - RandomFrame(n).
//
// Model: draw k uniformly from [1, max(1, n(n-1)/2)], then draw k ordered
// pairs (x, y) uniformly with replacement; loops are allowed and repeated
// draws collapse, so the frame holds at most k pairs.
//
// Determinism: draws happen in a fixed order (k, then x, y per pair), so a
// fixed seed yields a fixed frame.

package builder

import "fmt"

const methodRandomFrame = "RandomFrame"

// RandomFrame appends n worlds with a random relation (n ≥ 1).
// Requires an RNG (WithSeed or WithRand).
func RandomFrame(n int) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		if err := checkMin(methodRandomFrame, n, minWorlds); err != nil {
			return err
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomFrame, ErrNeedRandSource)
		}
		maxPairs := n * (n - 1) / 2
		if maxPairs < 1 {
			maxPairs = 1
		}
		k := 1 + cfg.rng.Intn(maxPairs)

		base := d.AddWorlds(n)
		for i := 0; i < k; i++ {
			x := cfg.rng.Intn(n)
			y := cfg.rng.Intn(n)
			if err := d.Add(base+x, base+y); err != nil {
				return fmt.Errorf("%s: %w", methodRandomFrame, err)
			}
		}
		return nil
	}
}

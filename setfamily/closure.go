// SPDX-License-Identifier: MIT
//
// File: closure.go
// Role: Diamond pre-image and the Boolean / modal fixpoint closures.
// Policy:
//   - Inputs are validated against the universe before any work.
//   - The fixpoint fails with core.ErrResourceLimit once the family grows
//     past the configured size; no partial result is returned.

package setfamily

import (
	"fmt"
	"math/bits"

	"github.com/katalvlaran/framelogic/core"
)

// DiamondInverse returns R⁻¹[Y] = {x : ∃y∈Y, (x,y) ∈ R}. Pairs with an
// endpoint outside [0,64) are ignored; Close validates R beforehand.
func DiamondInverse(y Subset, r core.Relation) Subset {
	var out Subset
	for p := range r {
		if y.Has(p.To) && p.From >= 0 && p.From < 64 {
			out |= 1 << uint(p.From)
		}
	}

	return out
}

// CloseBoolean returns the least family containing v that is closed under
// union, intersection and complement in x.
func CloseBoolean(v *Family, x Subset, opts ...Option) (*Family, error) {
	cfg := newConfig(opts)
	if v == nil {
		v = NewFamily()
	}
	if err := validate(cfg, v, x, nil); err != nil {
		return nil, fmt.Errorf("setfamily: CloseBoolean: %w", err)
	}

	return closeFamily(cfg, v, x, nil)
}

// Close returns the least family containing v that is closed under union,
// intersection, complement in x and DiamondInverse along r.
func Close(v *Family, r core.Relation, x Subset, opts ...Option) (*Family, error) {
	cfg := newConfig(opts)
	if v == nil {
		v = NewFamily()
	}
	if err := validate(cfg, v, x, r); err != nil {
		return nil, fmt.Errorf("setfamily: Close: %w", err)
	}
	pre := predecessors(r)

	return closeFamily(cfg, v, x, func(y Subset) Subset {
		var out Subset
		for rest := uint64(y); rest != 0; rest &= rest - 1 {
			out |= pre[bits.TrailingZeros64(rest)]
		}
		return out
	})
}

// closeFamily runs the worklist: the set at position i is combined with
// every set at positions ≤ i, so every pair is visited exactly once.
func closeFamily(cfg config, v *Family, x Subset, diamond func(Subset) Subset) (*Family, error) {
	fam := v.Clone()
	add := func(s Subset) error {
		if fam.Add(s) && fam.Len() > cfg.maxFamilySize {
			return fmt.Errorf("setfamily: family exceeds %d sets: %w", cfg.maxFamilySize, core.ErrResourceLimit)
		}
		return nil
	}
	for i := 0; i < fam.Len(); i++ {
		s := fam.sets[i]
		if err := add(x &^ s); err != nil {
			return nil, err
		}
		if diamond != nil {
			if err := add(diamond(s)); err != nil {
				return nil, err
			}
		}
		for j := 0; j <= i; j++ {
			t := fam.sets[j]
			if err := add(s | t); err != nil {
				return nil, err
			}
			if err := add(s & t); err != nil {
				return nil, err
			}
		}
	}

	return fam, nil
}

func validate(cfg config, v *Family, x Subset, r core.Relation) error {
	if b := x.Bound(); b > cfg.maxWorlds {
		return fmt.Errorf("universe reaches world %d, limit %d worlds: %w", b-1, cfg.maxWorlds, core.ErrResourceLimit)
	}
	for _, s := range v.sets {
		if !s.SubsetOf(x) {
			return fmt.Errorf("set %v not within %v: %w", s, x, ErrOutsideUniverse)
		}
	}
	for _, p := range r.Pairs() {
		if !x.Has(p.From) || !x.Has(p.To) {
			return fmt.Errorf("pair %v not within %v: %w", p, x, core.ErrInvalidRelation)
		}
	}

	return nil
}

// predecessors maps each world y to the bitset R⁻¹[{y}].
func predecessors(r core.Relation) [64]Subset {
	var pre [64]Subset
	for p := range r {
		pre[p.To] |= 1 << uint(p.From)
	}

	return pre
}

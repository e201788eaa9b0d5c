// SPDX-License-Identifier: MIT
//
// File: subset.go
// Role: Subset bitset and the insertion-ordered Family container.

package setfamily

import (
	"errors"
	"fmt"
	"math/bits"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/framelogic/core"
)

// ErrOutsideUniverse indicates a world or subset that is not contained in the universe.
var ErrOutsideUniverse = errors.New("setfamily: outside universe")

// Subset is a set of worlds in [0,64), one bit per world.
type Subset uint64

// FromWorlds builds a Subset. Worlds ≥ 64 fail with core.ErrResourceLimit,
// negative worlds with ErrOutsideUniverse.
func FromWorlds(ws []int) (Subset, error) {
	var s Subset
	for _, w := range ws {
		switch {
		case w < 0:
			return 0, fmt.Errorf("setfamily: world %d: %w", w, ErrOutsideUniverse)
		case w >= 64:
			return 0, fmt.Errorf("setfamily: world %d exceeds the 64-world bitset: %w", w, core.ErrResourceLimit)
		}
		s |= 1 << uint(w)
	}

	return s, nil
}

// Full returns {0,…,n-1}; n must lie in [0,64].
func Full(n int) Subset {
	if n >= 64 {
		return ^Subset(0)
	}

	return Subset(1)<<uint(n) - 1
}

// Has reports whether w ∈ s.
func (s Subset) Has(w int) bool {
	return w >= 0 && w < 64 && s&(1<<uint(w)) != 0
}

// Len returns |s|.
func (s Subset) Len() int { return bits.OnesCount64(uint64(s)) }

// SubsetOf reports whether s ⊆ t.
func (s Subset) SubsetOf(t Subset) bool { return s&^t == 0 }

// Worlds returns the members in ascending order.
func (s Subset) Worlds() []int {
	out := make([]int, 0, s.Len())
	for rest := uint64(s); rest != 0; rest &= rest - 1 {
		out = append(out, bits.TrailingZeros64(rest))
	}

	return out
}

// Bound returns one more than the largest member, or 0 for the empty set.
func (s Subset) Bound() int { return 64 - bits.LeadingZeros64(uint64(s)) }

// String renders s as "{0, 2}".
func (s Subset) String() string {
	ws := s.Worlds()
	parts := make([]string, len(ws))
	for i, w := range ws {
		parts[i] = strconv.Itoa(w)
	}

	return "{" + strings.Join(parts, ", ") + "}"
}

// Family is a duplicate-free collection of subsets that remembers the order
// in which sets were first added.
type Family struct {
	sets  []Subset
	index map[Subset]struct{}
}

// NewFamily returns a family holding the given sets, first occurrence kept.
func NewFamily(sets ...Subset) *Family {
	f := &Family{index: make(map[Subset]struct{}, len(sets))}
	for _, s := range sets {
		f.Add(s)
	}

	return f
}

// FamilyFromLists converts world lists into a family.
func FamilyFromLists(lists [][]int) (*Family, error) {
	f := NewFamily()
	for _, l := range lists {
		s, err := FromWorlds(l)
		if err != nil {
			return nil, err
		}
		f.Add(s)
	}

	return f, nil
}

// Add inserts s and reports whether it was new.
func (f *Family) Add(s Subset) bool {
	if _, ok := f.index[s]; ok {
		return false
	}
	f.index[s] = struct{}{}
	f.sets = append(f.sets, s)

	return true
}

// Has reports whether s is a member.
func (f *Family) Has(s Subset) bool {
	_, ok := f.index[s]
	return ok
}

// Len returns the number of distinct sets.
func (f *Family) Len() int { return len(f.sets) }

// Sets returns the members in insertion order.
func (f *Family) Sets() []Subset { return append([]Subset(nil), f.sets...) }

// Clone returns an independent copy.
func (f *Family) Clone() *Family { return NewFamily(f.sets...) }

// Equal reports whether both families hold the same sets, in any order.
func (f *Family) Equal(o *Family) bool {
	if f.Len() != o.Len() {
		return false
	}
	for _, s := range f.sets {
		if !o.Has(s) {
			return false
		}
	}

	return true
}

// Sorted returns the members ordered by size, then by bit pattern.
func (f *Family) Sorted() []Subset {
	out := f.Sets()
	sort.Slice(out, func(i, j int) bool {
		if li, lj := out[i].Len(), out[j].Len(); li != lj {
			return li < lj
		}
		return out[i] < out[j]
	})

	return out
}

// Lists returns Sorted as world lists.
func (f *Family) Lists() [][]int {
	sorted := f.Sorted()
	out := make([][]int, len(sorted))
	for i, s := range sorted {
		out[i] = s.Worlds()
	}

	return out
}

// String renders the sorted family as "[{}, {0}, {0, 1}]".
func (f *Family) String() string {
	sorted := f.Sorted()
	parts := make([]string, len(sorted))
	for i, s := range sorted {
		parts[i] = s.String()
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

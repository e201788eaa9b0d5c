// SPDX-License-Identifier: MIT
// Package core defines the central Pair, Relation, WorldSet, Valuation and
// Frame types together with the sentinel errors every framelogic package
// wraps.

package core

import (
	"errors"
	"fmt"
	"sort"
)

// Sentinel errors for frame construction and the error taxonomy shared by
// the algorithm packages.
var (
	// ErrInvalidRelation indicates a pair endpoint outside [0,n) or a negative n.
	ErrInvalidRelation = errors.New("core: invalid relation")

	// ErrUnknownLabel indicates a label that is not a world of the frame.
	ErrUnknownLabel = errors.New("core: unknown world label")

	// ErrDuplicateLabel indicates the same label given to two worlds.
	ErrDuplicateLabel = errors.New("core: duplicate world label")

	// ErrMissingValuation indicates a proposition with no entry in the valuation.
	ErrMissingValuation = errors.New("core: missing valuation")

	// ErrResourceLimit indicates an enumeration that would exceed a configured bound.
	ErrResourceLimit = errors.New("core: resource limit exceeded")
)

// Pair is one ordered pair (From, To) of an accessibility relation.
type Pair struct {
	From int
	To   int
}

// String renders the pair as "(from, to)".
func (p Pair) String() string {
	return fmt.Sprintf("(%d, %d)", p.From, p.To)
}

// Relation is a set of ordered pairs. The zero value is not usable; build one
// with NewRelation or RelationFromLists.
type Relation map[Pair]struct{}

// NewRelation returns a relation containing the given pairs.
// Complexity: O(len(pairs)).
func NewRelation(pairs ...Pair) Relation {
	r := make(Relation, len(pairs))
	for _, p := range pairs {
		r[p] = struct{}{}
	}

	return r
}

// RelationFromLists builds a relation from [from, to] integer pairs, the
// serialized form used by job files.
func RelationFromLists(pairs [][2]int) Relation {
	r := make(Relation, len(pairs))
	for _, p := range pairs {
		r[Pair{From: p[0], To: p[1]}] = struct{}{}
	}

	return r
}

// Add inserts (from, to); adding an existing pair is a no-op.
func (r Relation) Add(from, to int) {
	r[Pair{From: from, To: to}] = struct{}{}
}

// Has reports whether (from, to) is in r.
func (r Relation) Has(from, to int) bool {
	_, ok := r[Pair{From: from, To: to}]
	return ok
}

// Len returns |r|.
func (r Relation) Len() int { return len(r) }

// Clone returns an independent copy of r.
func (r Relation) Clone() Relation {
	out := make(Relation, len(r))
	for p := range r {
		out[p] = struct{}{}
	}

	return out
}

// Inverse returns R⁻¹ = {(b,a) : (a,b) ∈ R}.
func (r Relation) Inverse() Relation {
	out := make(Relation, len(r))
	for p := range r {
		out[Pair{From: p.To, To: p.From}] = struct{}{}
	}

	return out
}

// Union returns r ∪ other as a new relation.
func (r Relation) Union(other Relation) Relation {
	out := r.Clone()
	for p := range other {
		out[p] = struct{}{}
	}

	return out
}

// Equal reports whether r and other contain exactly the same pairs.
func (r Relation) Equal(other Relation) bool {
	if len(r) != len(other) {
		return false
	}
	for p := range r {
		if _, ok := other[p]; !ok {
			return false
		}
	}

	return true
}

// Pairs returns the pairs of r sorted by (From, To).
// Complexity: O(|r| log |r|).
func (r Relation) Pairs() []Pair {
	out := make([]Pair, 0, len(r))
	for p := range r {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}

// Lists returns the sorted pairs in their serialized [from, to] form.
func (r Relation) Lists() [][2]int {
	pairs := r.Pairs()
	out := make([][2]int, len(pairs))
	for i, p := range pairs {
		out[i] = [2]int{p.From, p.To}
	}

	return out
}

// Validate checks that every endpoint lies in [0,n). The first offending
// pair in sorted order is reported so the error is deterministic.
func (r Relation) Validate(n int) error {
	if n < 0 {
		return fmt.Errorf("core: n=%d is negative: %w", n, ErrInvalidRelation)
	}
	for _, p := range r.Pairs() {
		if p.From < 0 || p.From >= n || p.To < 0 || p.To >= n {
			return fmt.Errorf("core: pair %v outside [0,%d): %w", p, n, ErrInvalidRelation)
		}
	}

	return nil
}

// String renders r as "{(a, b), (c, d)}" in sorted order.
func (r Relation) String() string {
	pairs := r.Pairs()
	buf := make([]byte, 0, 8*len(pairs)+2)
	buf = append(buf, '{')
	for i, p := range pairs {
		if i > 0 {
			buf = append(buf, ", "...)
		}
		buf = append(buf, p.String()...)
	}
	buf = append(buf, '}')

	return string(buf)
}

// WorldSet is a set of worlds.
type WorldSet map[int]struct{}

// NewWorldSet returns a set containing the given worlds.
func NewWorldSet(worlds ...int) WorldSet {
	s := make(WorldSet, len(worlds))
	for _, w := range worlds {
		s[w] = struct{}{}
	}

	return s
}

// Has reports whether w is in s.
func (s WorldSet) Has(w int) bool {
	_, ok := s[w]
	return ok
}

// Add inserts w.
func (s WorldSet) Add(w int) { s[w] = struct{}{} }

// Sorted returns the members in ascending order.
func (s WorldSet) Sorted() []int {
	out := make([]int, 0, len(s))
	for w := range s {
		out = append(out, w)
	}
	sort.Ints(out)

	return out
}

// Equal reports whether both sets hold the same worlds.
func (s WorldSet) Equal(other WorldSet) bool {
	if len(s) != len(other) {
		return false
	}
	for w := range s {
		if !other.Has(w) {
			return false
		}
	}

	return true
}

// Valuation maps a proposition name ("p0", "p1", …) to the worlds where it holds.
type Valuation map[string]WorldSet

// ValuationFromLists builds a valuation from name → world list, the
// serialized form used by job files.
func ValuationFromLists(lists map[string][]int) Valuation {
	v := make(Valuation, len(lists))
	for name, worlds := range lists {
		v[name] = NewWorldSet(worlds...)
	}

	return v
}

// Validate checks that every world of v lies in [0,n); otherwise it fails
// with ErrInvalidRelation.
func (v Valuation) Validate(n int) error {
	for name, set := range v {
		for w := range set {
			if w < 0 || w >= n {
				return fmt.Errorf("core: proposition %q world %d outside [0,%d): %w", name, w, n, ErrInvalidRelation)
			}
		}
	}

	return nil
}

// Holds reports whether proposition name is true at world w. A name with no
// entry yields ErrMissingValuation.
func (v Valuation) Holds(name string, w int) (bool, error) {
	set, ok := v[name]
	if !ok {
		return false, fmt.Errorf("core: proposition %q: %w", name, ErrMissingValuation)
	}

	return set.Has(w), nil
}

// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Derived frames and structural property checks.
// Determinism:
//   - Restrict renumbers kept worlds in ascending original order.
// Concurrency:
//   - Read-only on the receiver; results are fresh values.

package core

import (
	"fmt"
	"sort"
)

// Restrict returns the subframe induced on keep: the kept worlds renumbered
// 0..k-1 in ascending original order, with R restricted to kept endpoints.
// The second result maps new index → original world. Labels are carried over.
//
// Errors:
//   - ErrInvalidRelation if a kept world is outside [0,n).
//
// Complexity: O(k log k + |R|).
func (f *Frame) Restrict(keep []int) (*Frame, []int, error) {
	// Deduplicate and sort so the renumbering is canonical.
	sorted := append([]int(nil), keep...)
	sort.Ints(sorted)
	origin := make([]int, 0, len(sorted))
	for _, w := range sorted {
		if w < 0 || w >= f.n {
			return nil, nil, fmt.Errorf("core: Restrict: world %d outside [0,%d): %w", w, f.n, ErrInvalidRelation)
		}
		if len(origin) > 0 && origin[len(origin)-1] == w {
			continue
		}
		origin = append(origin, w)
	}

	renum := make(map[int]int, len(origin))
	for i, w := range origin {
		renum[w] = i
	}
	r := make(Relation)
	for p := range f.rel {
		a, okA := renum[p.From]
		b, okB := renum[p.To]
		if okA && okB {
			r.Add(a, b)
		}
	}

	var opts []FrameOption
	if f.labels != nil {
		labels := make([]string, len(origin))
		for i, w := range origin {
			labels[i] = f.labels[w]
		}
		opts = append(opts, WithLabels(labels...))
	}
	sub, err := NewFrame(len(origin), r, opts...)
	if err != nil {
		return nil, nil, err
	}

	return sub, origin, nil
}

// IsReflexive reports whether (w,w) ∈ R for every world.
func (f *Frame) IsReflexive() bool {
	for w := 0; w < f.n; w++ {
		if !f.rel.Has(w, w) {
			return false
		}
	}

	return true
}

// IsSymmetric reports whether (a,b) ∈ R implies (b,a) ∈ R.
func (f *Frame) IsSymmetric() bool {
	for p := range f.rel {
		if !f.rel.Has(p.To, p.From) {
			return false
		}
	}

	return true
}

// IsTransitive reports whether (a,b),(b,c) ∈ R implies (a,c) ∈ R.
// Complexity: O(Σ_w |R[w]|·outdeg), bounded by O(n³).
func (f *Frame) IsTransitive() bool {
	for a := 0; a < f.n; a++ {
		for _, b := range f.succ[a] {
			for _, c := range f.succ[b] {
				if !f.rel.Has(a, c) {
					return false
				}
			}
		}
	}

	return true
}

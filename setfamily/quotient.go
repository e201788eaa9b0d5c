// SPDX-License-Identifier: MIT
//
// File: quotient.go
// Role: Equivalence classes of a closed family and the quotient frame.
// Determinism:
//   - Classes are discovered from the smallest unassigned world upward and
//     labeled V0, V1, … in that order.

package setfamily

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/framelogic/core"
)

// Class is one block of the partition induced by a family.
type Class struct {
	Label   string
	Members Subset
}

// EquivalenceClasses partitions x: two worlds share a class iff every set
// of the family contains both or neither of them.
//
// Complexity: O(|x|² · |family|).
func EquivalenceClasses(x Subset, family *Family) []Class {
	var sets []Subset
	if family != nil {
		sets = family.sets
	}
	agree := func(a, b int) bool {
		for _, s := range sets {
			if s.Has(a) != s.Has(b) {
				return false
			}
		}
		return true
	}

	var classes []Class
	rest := x
	for rest != 0 {
		ws := rest.Worlds()
		rep := ws[0]
		block := Subset(1) << uint(rep)
		for _, w := range ws[1:] {
			if agree(rep, w) {
				block |= 1 << uint(w)
			}
		}
		classes = append(classes, Class{Label: "V" + strconv.Itoa(len(classes)), Members: block})
		rest &^= block
	}

	return classes
}

// InducedRelation lifts r to class indices: (i, j) is present iff some
// a ∈ classes[i] and b ∈ classes[j] have (a, b) ∈ r. A pair touching a world
// outside every class fails with core.ErrInvalidRelation.
func InducedRelation(classes []Class, r core.Relation) (core.Relation, error) {
	classOf := make(map[int]int)
	for i, c := range classes {
		for _, w := range c.Members.Worlds() {
			classOf[w] = i
		}
	}
	out := core.NewRelation()
	for _, p := range r.Pairs() {
		a, okA := classOf[p.From]
		b, okB := classOf[p.To]
		if !okA || !okB {
			return nil, fmt.Errorf("setfamily: pair %v outside the partition: %w", p, core.ErrInvalidRelation)
		}
		out.Add(a, b)
	}

	return out, nil
}

// QuotientFrame is a frame whose worlds are the classes of a partition.
// World i of Frame is Classes[i] and carries its label.
type QuotientFrame struct {
	Classes []Class
	Frame   *core.Frame
}

// Quotient builds the classes of x under the closed family and the frame
// they induce along r. Every set of closed must lie within x; otherwise
// Quotient fails with ErrOutsideUniverse.
func Quotient(x Subset, r core.Relation, closed *Family) (*QuotientFrame, error) {
	if closed != nil {
		for _, s := range closed.sets {
			if !s.SubsetOf(x) {
				return nil, fmt.Errorf("setfamily: Quotient: set %v not within %v: %w", s, x, ErrOutsideUniverse)
			}
		}
	}
	classes := EquivalenceClasses(x, closed)
	rel, err := InducedRelation(classes, r)
	if err != nil {
		return nil, fmt.Errorf("setfamily: Quotient: %w", err)
	}
	labels := make([]string, len(classes))
	for i, c := range classes {
		labels[i] = c.Label
	}
	f, err := core.NewFrame(len(classes), rel, core.WithLabels(labels...))
	if err != nil {
		return nil, fmt.Errorf("setfamily: Quotient: %w", err)
	}

	return &QuotientFrame{Classes: classes, Frame: f}, nil
}

// ClosedQuotient closes v under the Boolean operations and the diamond
// along r, then returns the quotient of x by the closure.
func ClosedQuotient(v *Family, r core.Relation, x Subset, opts ...Option) (*QuotientFrame, error) {
	closed, err := Close(v, r, x, opts...)
	if err != nil {
		return nil, err
	}

	return Quotient(x, r, closed)
}

// String renders the classes as "V0={0, 1}; V1={2}".
func (q *QuotientFrame) String() string {
	s := ""
	for i, c := range q.Classes {
		if i > 0 {
			s += "; "
		}
		s += c.Label + "=" + c.Members.String()
	}

	return s
}

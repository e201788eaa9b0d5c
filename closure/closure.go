// SPDX-License-Identifier: MIT
//
// File: closure.go
// Role: Reflexive, symmetric and transitive closures of a pair set.
// Policy:
//   - Input is validated against n before any work.
//   - Transitive closure is computed on a matrix.BoolDense; both kernels
//     are exposed so callers can cross-check them.

package closure

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/framelogic/core"
	"github.com/katalvlaran/framelogic/matrix"
)

// ErrClosureMismatch reports that Floyd–Warshall and repeated squaring
// produced different transitive closures for the same input.
var ErrClosureMismatch = errors.New("closure: transitive kernels disagree")

// Reflexive returns R ∪ {(i,i) : 0 ≤ i < n}.
func Reflexive(n int, r core.Relation) (core.Relation, error) {
	if err := r.Validate(n); err != nil {
		return nil, fmt.Errorf("closure: Reflexive: %w", err)
	}
	out := r.Clone()
	for i := 0; i < n; i++ {
		out.Add(i, i)
	}

	return out, nil
}

// Symmetric returns R ∪ R⁻¹.
func Symmetric(n int, r core.Relation) (core.Relation, error) {
	if err := r.Validate(n); err != nil {
		return nil, fmt.Errorf("closure: Symmetric: %w", err)
	}

	return r.Union(r.Inverse()), nil
}

// Transitive returns the smallest transitive superset of R, computed with
// the in-place Floyd–Warshall kernel.
func Transitive(n int, r core.Relation) (core.Relation, error) {
	m, err := matrix.FromRelation(n, r)
	if err != nil {
		return nil, fmt.Errorf("closure: Transitive: %w", err)
	}
	if err = matrix.FloydWarshall(m); err != nil {
		return nil, fmt.Errorf("closure: Transitive: %w", err)
	}

	return m.Relation(), nil
}

// TransitiveSquaring returns the same closure as Transitive via repeated
// boolean squaring.
func TransitiveSquaring(n int, r core.Relation) (core.Relation, error) {
	m, err := matrix.FromRelation(n, r)
	if err != nil {
		return nil, fmt.Errorf("closure: TransitiveSquaring: %w", err)
	}
	sq, err := matrix.TransitiveBySquaring(m)
	if err != nil {
		return nil, fmt.Errorf("closure: TransitiveSquaring: %w", err)
	}

	return sq.Relation(), nil
}

// VerifyTransitive runs both kernels and returns the closure when they
// agree. A disagreement is a kernel bug; it is reported with the first
// differing pair wrapped in ErrClosureMismatch.
func VerifyTransitive(n int, r core.Relation) (core.Relation, error) {
	fw, err := Transitive(n, r)
	if err != nil {
		return nil, err
	}
	sq, err := TransitiveSquaring(n, r)
	if err != nil {
		return nil, err
	}
	if fw.Equal(sq) {
		return fw, nil
	}
	for _, p := range fw.Union(sq).Pairs() {
		if fw.Has(p.From, p.To) != sq.Has(p.From, p.To) {
			return nil, fmt.Errorf("closure: pair %v (floyd=%t, squaring=%t): %w",
				p, fw.Has(p.From, p.To), sq.Has(p.From, p.To), ErrClosureMismatch)
		}
	}

	return nil, ErrClosureMismatch
}

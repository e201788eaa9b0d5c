// SPDX-License-Identifier: MIT
// Package matrix: BoolDense, a row-major 0/1 matrix.
// BoolDense stores n*n flags in a flat slice for cache friendliness; the
// element (i,j) lives at data[i*n+j].

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/framelogic/core"
)

// Operation name constants for unified error wrapping.
const (
	opNew  = "NewBoolDense"
	opAt   = "BoolDense.At"
	opSet  = "BoolDense.Set"
	opOr   = "BoolDense.Or"
	opMul  = "BoolDense.Mul"
	opFrom = "FromRelation"
)

// BoolDense is a square boolean matrix of order n.
type BoolDense struct {
	n    int    // order
	data []bool // flat backing storage, length == n*n
}

// NewBoolDense creates an n×n all-false matrix. n == 0 is allowed and
// represents the empty relation on the empty world set.
// Complexity: O(n²) time and memory.
func NewBoolDense(n int) (*BoolDense, error) {
	if n < 0 {
		return nil, matrixErrorf(opNew, fmt.Errorf("n=%d: %w", n, ErrBadShape))
	}

	return &BoolDense{n: n, data: make([]bool, n*n)}, nil
}

// FromRelation builds the adjacency matrix of r over {0,…,n-1}.
// A pair outside [0,n) fails with core.ErrInvalidRelation.
// Complexity: O(n² + |r|).
func FromRelation(n int, r core.Relation) (*BoolDense, error) {
	if err := r.Validate(n); err != nil {
		return nil, matrixErrorf(opFrom, err)
	}
	m, err := NewBoolDense(n)
	if err != nil {
		return nil, err
	}
	for p := range r {
		m.data[p.From*n+p.To] = true
	}

	return m, nil
}

// Size returns the order n.
func (m *BoolDense) Size() int { return m.n }

// indexOf computes the flat index for (i, j) or returns ErrOutOfRange.
func (m *BoolDense) indexOf(op string, i, j int) (int, error) {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return 0, fmt.Errorf("%s(%d,%d): %w", op, i, j, ErrOutOfRange)
	}

	return i*m.n + j, nil
}

// At reports M[i][j].
func (m *BoolDense) At(i, j int) (bool, error) {
	idx, err := m.indexOf(opAt, i, j)
	if err != nil {
		return false, err
	}

	return m.data[idx], nil
}

// Set assigns M[i][j] = v.
func (m *BoolDense) Set(i, j int, v bool) error {
	idx, err := m.indexOf(opSet, i, j)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy.
func (m *BoolDense) Clone() *BoolDense {
	data := make([]bool, len(m.data))
	copy(data, m.data)

	return &BoolDense{n: m.n, data: data}
}

// Equal reports whether both matrices have the same order and entries.
func (m *BoolDense) Equal(o *BoolDense) bool {
	if m == nil || o == nil || m.n != o.n {
		return false
	}
	for i := range m.data {
		if m.data[i] != o.data[i] {
			return false
		}
	}

	return true
}

// Or returns the element-wise disjunction m ∨ o as a new matrix.
// Complexity: O(n²).
func (m *BoolDense) Or(o *BoolDense) (*BoolDense, error) {
	if o == nil {
		return nil, matrixErrorf(opOr, ErrNilMatrix)
	}
	if m.n != o.n {
		return nil, matrixErrorf(opOr, fmt.Errorf("%d vs %d: %w", m.n, o.n, ErrDimensionMismatch))
	}
	out := m.Clone()
	for i, v := range o.data {
		if v {
			out.data[i] = true
		}
	}

	return out, nil
}

// Mul returns the boolean product m·o: (m·o)[i][j] = ∃k. m[i][k] ∧ o[k][j].
// Complexity: O(n³) worst case; rows with no true entry are skipped.
func (m *BoolDense) Mul(o *BoolDense) (*BoolDense, error) {
	if o == nil {
		return nil, matrixErrorf(opMul, ErrNilMatrix)
	}
	if m.n != o.n {
		return nil, matrixErrorf(opMul, fmt.Errorf("%d vs %d: %w", m.n, o.n, ErrDimensionMismatch))
	}
	n := m.n
	out := &BoolDense{n: n, data: make([]bool, n*n)}

	var i, k, j, baseI, baseK int
	for i = 0; i < n; i++ {
		baseI = i * n
		for k = 0; k < n; k++ {
			if !m.data[baseI+k] {
				continue
			}
			baseK = k * n
			for j = 0; j < n; j++ {
				if o.data[baseK+j] {
					out.data[baseI+j] = true
				}
			}
		}
	}

	return out, nil
}

// Relation converts the matrix back into a pair set.
// Complexity: O(n²).
func (m *BoolDense) Relation() core.Relation {
	r := make(core.Relation)
	for i := 0; i < m.n; i++ {
		for j := 0; j < m.n; j++ {
			if m.data[i*m.n+j] {
				r.Add(i, j)
			}
		}
	}

	return r
}

// String renders one row per line as 0/1 digits.
func (m *BoolDense) String() string {
	var sb strings.Builder
	for i := 0; i < m.n; i++ {
		for j := 0; j < m.n; j++ {
			if m.data[i*m.n+j] {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		if i < m.n-1 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}

// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Dense transitive-closure kernels over BoolDense.
//   - FloydWarshall: canonical in-place kernel with fixed loop order (k → i → j).
//   - TransitiveBySquaring: closed form M ∪ M² ∪ M⁴ ∪ … used as an independent check.
//
// Contract:
//   - Both kernels return exactly R⁺ (no reflexive pairs are added).

package matrix

// Operation name constants for unified error wrapping.
const (
	opFloydWarshall = "FloydWarshall"
	opSquaring      = "TransitiveBySquaring"
)

// FloydWarshall replaces m with its transitive closure, in place.
//
// Loop order is fixed with the intermediate world k outermost; moving k
// inside the i/j loops would miss paths whose intermediate worlds appear
// in a different order.
//
// Complexity: Time O(n³), extra space O(1).
func FloydWarshall(m *BoolDense) error {
	if m == nil {
		return matrixErrorf(opFloydWarshall, ErrNilMatrix)
	}
	n := m.n
	data := m.data

	var k, i, j, baseK, baseI int
	for k = 0; k < n; k++ { // outer: intermediate world k
		baseK = k * n
		for i = 0; i < n; i++ { // middle: source world i
			if !data[i*n+k] { // i cannot reach k, nothing to relax via k
				continue
			}
			baseI = i * n
			for j = 0; j < n; j++ { // inner: destination world j
				if data[baseK+j] {
					data[baseI+j] = true
				}
			}
		}
	}

	return nil
}

// TransitiveBySquaring returns M ∪ M² ∪ M⁴ ∪ … as a new matrix, leaving m
// untouched. After round r every path of length ≤ 2^r is covered, so
// ⌈log₂ n⌉ rounds reach every simple path.
//
// Complexity: Time O(n³ log n), space O(n²).
func TransitiveBySquaring(m *BoolDense) (*BoolDense, error) {
	if m == nil {
		return nil, matrixErrorf(opSquaring, ErrNilMatrix)
	}
	cur := m.Clone()
	for covered := 1; covered < m.n; covered *= 2 {
		sq, err := cur.Mul(cur)
		if err != nil {
			return nil, matrixErrorf(opSquaring, err)
		}
		if cur, err = cur.Or(sq); err != nil {
			return nil, matrixErrorf(opSquaring, err)
		}
	}

	return cur, nil
}

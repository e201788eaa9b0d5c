// Package matrix provides the 0/1 adjacency representation of a relation over
// {0,…,n-1} and the dense transitive-closure kernels built on it.
//
// BoolDense is a square, row-major boolean matrix stored in one flat slice:
// M[i][j] == true ⇔ (i,j) ∈ R. It converts losslessly to and from a
// core.Relation.
//
// Kernels:
//
//	FloydWarshall(m)          – in place, loop order k → i → j with k outermost:
//	                            M[i][j] ← M[i][j] ∨ (M[i][k] ∧ M[k][j]). O(n³).
//	TransitiveBySquaring(m)   – M ∪ M² ∪ M⁴ ∪ …, doubling the covered path length
//	                            each round, ⌈log₂ n⌉ rounds. O(n³ log n).
//
// Both kernels compute the same relation, the transitive closure R⁺. Any input
// on which they disagree is a bug, and closure.VerifyTransitive reports it.
//
// Errors:
//
//	ErrBadShape          – negative order
//	ErrOutOfRange        – index outside [0,n)
//	ErrDimensionMismatch – operands of different order
//	ErrNilMatrix         – nil *BoolDense argument
package matrix

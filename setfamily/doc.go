// SPDX-License-Identifier: MIT

// Package setfamily closes families of subsets of a finite world set under
// the Boolean operations and the modal diamond, and builds the quotient frame
// induced by a closed family.
//
// A Subset is a uint64 bitset, so subsets compare and hash by value and a
// Family can deduplicate them structurally. Universes are therefore limited
// to at most 64 worlds, and further by WithMaxWorlds (default 16) because the
// closed family may hold up to 2^|X| subsets.
//
// Operations (X the universe, R ⊆ X×X):
//
//	DiamondInverse(Y, R)       ♢_R(Y) = R⁻¹[Y] = {x : ∃y∈Y, (x,y) ∈ R}
//	CloseBoolean(V, X)         least family ⊇ V closed under ∪, ∩, X∖·
//	Close(V, R, X)             least family ⊇ V closed under ∪, ∩, X∖· and ♢_R
//	EquivalenceClasses(X, C)   blocks of worlds agreeing on membership in every set of C
//	InducedRelation(cls, R)    (A,B) iff some a∈A, b∈B has (a,b) ∈ R
//	Quotient(X, R, C)          classes plus the induced frame on them
//
// Both closures run a single worklist fixpoint: every set entering the
// family is combined with itself, with every set admitted before it, and
// with the unary operations, so the result does not depend on how V is
// ordered. The closure of an empty family is empty.
//
// Complexity: O(k² + k·|R|) set operations for a result of k sets, with
// k ≤ 2^|X|; WithMaxFamilySize bounds k and fails with core.ErrResourceLimit.
package setfamily

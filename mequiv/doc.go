// SPDX-License-Identifier: MIT

// Package mequiv decides m-equivalence of finite frames.
//
// For a point-generated subframe F' = (X', R') and a family U of m distinct
// subsets of X', the m-quotient of F' by U is the quotient frame of X' by the
// closure of U under the Boolean operations and ♢_{R'} (see setfamily).
//
//	IsMSubset(F, G, m)   every m-quotient of every point-generated subframe of F
//	                     is a p-morphic image of some m-quotient of some
//	                     point-generated subframe of G
//	Equivalent(F, G, m)  IsMSubset(F, G, m) ∧ IsMSubset(G, F, m)
//
// Families are enumerated as m-combinations of the 2^|X'| subsets of X'.
// Combinations steps through them with Gosper's hack on a uint64 mask when
// the universe has at most 64 elements and with an index array otherwise,
// so combinations are never materialized all at once.
//
// Cost is doubly exponential: for a subframe of k worlds there are
// C(2^k, m) families, each needing a closure and p-morphism searches.
// Use it on small frames only (k ≤ 6, m ≤ 3 is comfortable). The number of
// families per subframe is bounded by WithMaxFamilies; exceeding it fails
// with core.ErrResourceLimit before any enumeration starts.
//
// Quotients are deduplicated by shape (size and relation), so repeated
// quotients cost one search each.
package mequiv

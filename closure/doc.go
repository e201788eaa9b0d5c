// SPDX-License-Identifier: MIT

// Package closure computes relation closures, connected components and
// point-generated subframes of a finite frame.
//
// Every operation takes (n, R) and returns a new value; R is never mutated.
// Pairs outside [0,n) fail with core.ErrInvalidRelation instead of being
// dropped.
//
// Operations:
//
//	Reflexive(n, R)                 R ∪ {(i,i) : i < n}                  O(n + |R|)
//	Symmetric(n, R)                 R ∪ R⁻¹                              O(|R|)
//	Transitive(n, R)                R⁺ by Floyd–Warshall (k outermost)   O(n³)
//	TransitiveSquaring(n, R)        R⁺ as M ∪ M² ∪ M⁴ ∪ …                 O(n³ log n)
//	VerifyTransitive(n, R)          both kernels; ErrClosureMismatch if they disagree
//	ConnectedComponents(ctx, n, R)  components of R ∪ R⁻¹, BFS from ascending roots
//	PointGenerated(ctx, l, n, R)    worlds reachable from l along R, with R restricted
//
// The walks stop with ctx.Err() once ctx is cancelled.
//
// Frame-level helpers Subframe and Subframes return the point-generated
// subframes of a core.Frame renumbered to 0..k-1, with the origin map back
// to the parent's worlds.
package closure

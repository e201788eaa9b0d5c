// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over a core.Frame, returning
// the visit order from one start world.
//
// What
//
//   - Explore worlds in non-decreasing distance (edge count) from a start world.
//   - By default only R is followed (x → y for (x,y) ∈ R), which yields the
//     point-generated part of a frame. WithUndirected walks R ∪ R⁻¹, which
//     yields the connected component of the start world.
//   - Returns a BFSResult with Order.
//   - OnVisit hook, called with each world and its depth; an error aborts the walk.
//   - WithContext for cancellation, checked once per dequeued world.
//
// Determinism
//
//	core.Frame keeps successor and predecessor lists sorted ascending, and the
//	undirected walk merges them in ascending order, so the visit sequence is
//	fully reproducible.
//
// Complexity (n = |worlds|, m = |R|)
//
//   - Time:   O(n + m)
//   - Memory: O(n)
//
// Usage
//
//	res, err := bfs.BFS(f, 0)
//	res, err := bfs.BFS(f, 0, bfs.WithUndirected(), bfs.WithContext(ctx))
//
// Errors
//
//   - ErrFrameNil             if the frame pointer is nil.
//   - ErrStartNotFound        if the start world is outside [0,n).
//   - ctx.Err() on cancellation, and wrapped OnVisit errors.
package bfs

// SPDX-License-Identifier: MIT

// Package framelogic is a toolkit for finite relational frames: the Kripke
// structures of modal logic.
//
// It covers four kinds of question about a frame F = (X, R):
//
//   - Relations: reflexive, symmetric and transitive closures, connected
//     components and point-generated subframes.
//   - Formulas: parsing modal formulas over p0, p1, …, ⊥, ♢ and -->, listing
//     their subformulas, evaluating them under a valuation and deciding
//     validity on a frame.
//   - Quotients: closing a family of world sets under the Boolean operations
//     and ♢_R, and collapsing the frame by the resulting equivalence.
//   - Comparisons: p-morphisms between frames, equality of the logics of two
//     frames and m-equivalence.
//
// Packages:
//
//	core/       Frame, Relation, Valuation and the shared sentinel errors
//	matrix/     Boolean adjacency matrices, Floyd–Warshall and squaring kernels
//	bfs/        breadth-first traversal over frames
//	closure/    relation closures, components, point-generated subframes
//	formula/    tokenizer, parser, evaluator, validity search
//	setfamily/  world-set families, their closure, quotient frames
//	morphism/   p-morphism search, logic inclusion and equality
//	mequiv/     m-equivalence
//	builder/    frame constructors for tests and timing runs
//	job/        JSON job files, dispatch, reports, metrics
//	cmd/framectl  command-line front end
//
// Quick example:
//
//	a ──▶ b          d ──▶ e
//	└───▶ c
//
// The fork on the left maps onto the arrow on the right by a ↦ d, b ↦ e,
// c ↦ e, so every formula valid on the fork is valid on the arrow.
package framelogic

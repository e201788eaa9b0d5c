// SPDX-License-Identifier: MIT

// Package morphism searches for p-morphisms between finite frames and decides
// inclusion and equality of frame logics built on them.
//
// A p-morphism from F = (X₁, R₁) onto G = (X₂, R₂) is a surjective map
// f: X₁ → X₂ with
//
//	forth: x R₁ y        ⇒ f(x) R₂ f(y)
//	back:  f(x) R₂ u     ⇒ ∃x'. x R₁ x' ∧ f(x') = u
//
// Find assigns worlds of F in index order using an explicit stack. After each
// tentative assignment it checks, against the worlds assigned so far:
//
//   - forth for every pair between assigned worlds (self-loops included);
//   - back for the new world and its assigned R₁-predecessors, where an
//     unassigned R₁-successor still counts as a possible witness;
//   - surjectivity: the worlds of G not yet hit must not outnumber the
//     worlds of F still unassigned.
//
// A complete assignment is re-validated with IsPMorphism before it is
// accepted. When |X₁| < |X₂| no surjection exists and Find reports
// Inapplicable without searching. A missing mapping is a normal result,
// never an error; only context cancellation is reported as one.
//
// Worst-case time is O(|X₂|^|X₁|). Find honors ctx between assignments and
// records a trace span through the global OpenTelemetry tracer provider.
//
// LogIncluded(F, G) decides Log(F) ⊆ Log(G) for finite frames: every
// point-generated subframe of G must be a p-morphic image of some
// point-generated subframe of F. LogEqual checks both directions.
package morphism

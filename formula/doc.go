// SPDX-License-Identifier: MIT

// Package formula parses and evaluates basic modal formulas over finite frames.
//
// Grammar (whitespace is insignificant and stripped before tokenizing):
//
//	expr := term ("-->" expr)?
//	term := "(" expr ")" | "♢" "(" expr ")" | var
//	var  := "⊥" | "p" digit+
//
// Implication chains associate to the right: "p0 --> p1 --> p2" is
// "p0 --> (p1 --> p2)".
//
// Parse returns a Formula holding the AST, the ordered subformula list and
// the sorted proposition names. The subformula list is duplicate-free and
// every entry precedes any entry that contains it. Entries are the token
// spans of the productions, rendered with "-->" as " --> " and with a pair
// of parentheses that encloses the whole span removed:
//
//	"p0 --> p2 --> ♢(p3)" → [p0 p2 p3 ♢(p3) p2 --> ♢(p3) p0 --> p2 --> ♢(p3)]
//	"(p1 --> p2)"         → [p1 p2 p1 --> p2]
//
// Semantics at a world w of a frame (X, R) under valuation V:
//
//	pᵢ       w ∈ V(pᵢ); a missing entry fails with core.ErrMissingValuation
//	⊥        false
//	φ --> ψ  ¬φ ∨ ψ
//	♢(φ)     ∃v. (w,v) ∈ R ∧ φ holds at v
//
// IsValid enumerates all 2^(n·m) valuations of the m propositions over the
// n worlds and stops at the first counterexample. The exponent n·m is bounded
// by WithMaxValuationBits; larger instances fail with core.ErrResourceLimit.
//
// Errors:
//
//	*SyntaxError (errors.Is(err, ErrSyntax)) – malformed input, with a rune offset
//	core.ErrMissingValuation                 – proposition absent from V
//	core.ErrResourceLimit                    – valuation space too large
//	ErrWorldOutOfRange                       – evaluation at a world outside [0,n)
package formula

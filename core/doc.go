// Package core provides the finite relational frame data model shared by every
// other framelogic package.
//
// A frame F = (X, R) has worlds X = {0,…,n-1} and an accessibility relation
// R ⊆ X×X. Worlds are plain ints; a frame may carry optional display labels
// ("a", "b", …) that never take part in any computation.
//
// Types:
//
//	Pair        – one ordered pair (From, To) of a relation
//	Relation    – a pair set (map[Pair]struct{}); duplicates impossible, order irrelevant
//	WorldSet    – a set of worlds (map[int]struct{})
//	Valuation   – proposition name → WorldSet
//	Frame       – immutable (n, labels, R) with successor/predecessor indexes
//
// Invariants:
//
//   - Every endpoint of every pair lies in [0,n). Constructors fail with
//     ErrInvalidRelation instead of dropping offending pairs.
//   - A Frame is never mutated after NewFrame returns. Derived frames
//     (Restrict, quotients in setfamily) are new values.
//   - All slice-returning getters are sorted ascending, so results are
//     deterministic across runs.
//
// Errors:
//
//	ErrInvalidRelation  – pair endpoint outside [0,n), or n < 0
//	ErrUnknownLabel     – label not present in a labeled frame
//	ErrDuplicateLabel   – the same label used twice
//	ErrMissingValuation – a formula references a proposition absent from V
//	ErrResourceLimit    – a combinatorial enumeration exceeds its configured bound
//
// Concurrency:
//
//	Frames are read-only after construction and safe for concurrent use.
//	Relation, WorldSet and Valuation are plain maps; callers own them.
package core

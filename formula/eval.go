// SPDX-License-Identifier: MIT
//
// File: eval.go
// Role: Pointwise satisfaction and whole-frame extensions of a formula.
// Complexity:
//   - Evaluate: O(|AST| · d) per world for d = max out-degree, with
//     nested diamonds multiplying the fan-out.
//   - Extension: O(|AST| · (n + |R|)), each node computed once for all worlds.

package formula

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/framelogic/core"
)

var (
	// ErrWorldOutOfRange indicates evaluation at a world outside [0,n).
	ErrWorldOutOfRange = errors.New("formula: world out of range")

	// ErrNilFormula indicates a nil formula, node or frame argument.
	ErrNilFormula = errors.New("formula: nil argument")
)

// Evaluate reports whether node holds at world w of f under v.
func Evaluate(node *Node, f *core.Frame, v core.Valuation, w int) (bool, error) {
	if node == nil || f == nil {
		return false, ErrNilFormula
	}
	if w < 0 || w >= f.Size() {
		return false, fmt.Errorf("formula: world %d, n=%d: %w", w, f.Size(), ErrWorldOutOfRange)
	}

	return evalAt(node, f, v, w)
}

func evalAt(node *Node, f *core.Frame, v core.Valuation, w int) (bool, error) {
	switch node.Kind {
	case NodeProposition:
		return v.Holds(node.Name, w)
	case NodeFalsity:
		return false, nil
	case NodeImplication:
		a, err := evalAt(node.Left, f, v, w)
		if err != nil {
			return false, err
		}
		b, err := evalAt(node.Right, f, v, w)
		if err != nil {
			return false, err
		}
		return !a || b, nil
	case NodeDiamond:
		for _, u := range f.Successors(w) {
			ok, err := evalAt(node.Left, f, v, u)
			if err != nil {
				return false, err
			}
			if ok {
				return true, nil
			}
		}
		return false, nil
	default:
		return false, fmt.Errorf("formula: unknown node kind %d", node.Kind)
	}
}

// Extension returns, for every world of f, whether node holds there.
func Extension(node *Node, f *core.Frame, v core.Valuation) ([]bool, error) {
	if node == nil || f == nil {
		return nil, ErrNilFormula
	}
	e := newExtender(f)

	return e.extend(node, func(name string) ([]bool, error) {
		set, ok := v[name]
		if !ok {
			return nil, fmt.Errorf("core: proposition %q: %w", name, core.ErrMissingValuation)
		}
		out := make([]bool, e.n)
		for w := range out {
			out[w] = set.Has(w)
		}
		return out, nil
	})
}

// Satisfying returns the worlds of fr where the formula holds under v, ascending.
// A valuation naming a world outside fr fails with core.ErrInvalidRelation.
func (f *Formula) Satisfying(fr *core.Frame, v core.Valuation) ([]int, error) {
	if f == nil {
		return nil, ErrNilFormula
	}
	if err := v.Validate(fr.Size()); err != nil {
		return nil, fmt.Errorf("formula: Satisfying: %w", err)
	}
	ext, err := Extension(f.Root, fr, v)
	if err != nil {
		return nil, err
	}
	out := make([]int, 0, len(ext))
	for w, ok := range ext {
		if ok {
			out = append(out, w)
		}
	}

	return out, nil
}

// SatisfyingPoints parses phi and returns {x < n : (X,R),V,x ⊨ phi}.
func SatisfyingPoints(phi string, n int, r core.Relation, v core.Valuation) ([]int, error) {
	f, err := Parse(phi)
	if err != nil {
		return nil, err
	}
	fr, err := core.NewFrame(n, r)
	if err != nil {
		return nil, err
	}

	return f.Satisfying(fr, v)
}

// extender computes extensions bottom-up over a fixed frame.
type extender struct {
	n    int
	succ [][]int
}

func newExtender(f *core.Frame) *extender {
	e := &extender{n: f.Size(), succ: make([][]int, f.Size())}
	for w := range e.succ {
		e.succ[w] = f.Successors(w)
	}

	return e
}

func (e *extender) extend(node *Node, atom func(string) ([]bool, error)) ([]bool, error) {
	switch node.Kind {
	case NodeProposition:
		return atom(node.Name)
	case NodeFalsity:
		return make([]bool, e.n), nil
	case NodeImplication:
		a, err := e.extend(node.Left, atom)
		if err != nil {
			return nil, err
		}
		b, err := e.extend(node.Right, atom)
		if err != nil {
			return nil, err
		}
		for w := range a {
			a[w] = !a[w] || b[w]
		}
		return a, nil
	case NodeDiamond:
		inner, err := e.extend(node.Left, atom)
		if err != nil {
			return nil, err
		}
		out := make([]bool, e.n)
		for w, succ := range e.succ {
			for _, u := range succ {
				if inner[u] {
					out[w] = true
					break
				}
			}
		}
		return out, nil
	default:
		return nil, fmt.Errorf("formula: unknown node kind %d", node.Kind)
	}
}

// SPDX-License-Identifier: MIT
//
// File: frame.go
// Role: Immutable Frame value: construction, validation, read-only getters.
// Policy:
//   - Construction validates every pair; nothing is silently dropped.
//   - Getters return copies; a Frame never changes after NewFrame.
//   - Labels are cosmetic and never consulted by algorithms.

package core

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Frame is a finite relational frame (X, R) with X = {0,…,n-1}.
type Frame struct {
	n      int
	labels []string       // nil means decimal labels "0","1",…
	index  map[string]int // label → world, only for labeled frames
	rel    Relation
	succ   [][]int // sorted successors per world
	pred   [][]int // sorted predecessors per world
}

// FrameOption configures a Frame at construction time.
type FrameOption func(*frameConfig)

type frameConfig struct {
	labels []string
}

// WithLabels attaches display labels, one per world in index order.
// NewFrame rejects a label count different from n and duplicate labels.
func WithLabels(labels ...string) FrameOption {
	return func(c *frameConfig) {
		c.labels = append([]string(nil), labels...)
	}
}

// NewFrame validates r against n and builds an immutable Frame.
//
// Errors:
//   - ErrInvalidRelation if n < 0 or a pair leaves [0,n).
//   - ErrDuplicateLabel / ErrUnknownLabel on a malformed WithLabels.
//
// Complexity: O(n + |R| log |R|).
func NewFrame(n int, r Relation, opts ...FrameOption) (*Frame, error) {
	if err := r.Validate(n); err != nil {
		return nil, err
	}
	cfg := frameConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	f := &Frame{
		n:    n,
		rel:  r.Clone(),
		succ: make([][]int, n),
		pred: make([][]int, n),
	}
	if cfg.labels != nil {
		if len(cfg.labels) != n {
			return nil, fmt.Errorf("core: %d labels for %d worlds: %w", len(cfg.labels), n, ErrUnknownLabel)
		}
		f.labels = cfg.labels
		f.index = make(map[string]int, n)
		for i, l := range cfg.labels {
			if _, dup := f.index[l]; dup {
				return nil, fmt.Errorf("core: label %q: %w", l, ErrDuplicateLabel)
			}
			f.index[l] = i
		}
	}

	// Pairs() is sorted, so successor and predecessor lists come out sorted.
	for _, p := range r.Pairs() {
		f.succ[p.From] = append(f.succ[p.From], p.To)
		f.pred[p.To] = append(f.pred[p.To], p.From)
	}
	for i := range f.pred {
		sort.Ints(f.pred[i])
	}

	return f, nil
}

// NewLabeledFrame builds a frame whose worlds are named by labels and whose
// pairs are given by label. Worlds are numbered in the order of labels.
func NewLabeledFrame(labels []string, pairs [][2]string) (*Frame, error) {
	index := make(map[string]int, len(labels))
	for i, l := range labels {
		if _, dup := index[l]; dup {
			return nil, fmt.Errorf("core: label %q: %w", l, ErrDuplicateLabel)
		}
		index[l] = i
	}
	r := make(Relation, len(pairs))
	for _, p := range pairs {
		from, ok := index[p[0]]
		if !ok {
			return nil, fmt.Errorf("core: pair (%s, %s): %q: %w", p[0], p[1], p[0], ErrInvalidRelation)
		}
		to, ok := index[p[1]]
		if !ok {
			return nil, fmt.Errorf("core: pair (%s, %s): %q: %w", p[0], p[1], p[1], ErrInvalidRelation)
		}
		r.Add(from, to)
	}

	return NewFrame(len(labels), r, WithLabels(labels...))
}

// Size returns the number of worlds n.
func (f *Frame) Size() int { return f.n }

// Worlds returns 0,…,n-1.
func (f *Frame) Worlds() []int {
	out := make([]int, f.n)
	for i := range out {
		out[i] = i
	}

	return out
}

// Relation returns a copy of R.
func (f *Frame) Relation() Relation { return f.rel.Clone() }

// PairCount returns |R|.
func (f *Frame) PairCount() int { return len(f.rel) }

// Has reports whether (a, b) ∈ R.
func (f *Frame) Has(a, b int) bool { return f.rel.Has(a, b) }

// Successors returns R[w] in ascending order, or nil when w is out of range.
func (f *Frame) Successors(w int) []int {
	if w < 0 || w >= f.n {
		return nil
	}

	return append([]int(nil), f.succ[w]...)
}

// Predecessors returns R⁻¹[w] in ascending order, or nil when w is out of range.
func (f *Frame) Predecessors(w int) []int {
	if w < 0 || w >= f.n {
		return nil
	}

	return append([]int(nil), f.pred[w]...)
}

// OutDegree returns |R[w]|, or 0 when w is out of range.
func (f *Frame) OutDegree(w int) int {
	if w < 0 || w >= f.n {
		return 0
	}

	return len(f.succ[w])
}

// Labeled reports whether the frame carries explicit labels.
func (f *Frame) Labeled() bool { return f.labels != nil }

// Label returns the display label of world w.
func (f *Frame) Label(w int) string {
	if f.labels != nil && w >= 0 && w < f.n {
		return f.labels[w]
	}

	return strconv.Itoa(w)
}

// Labels returns the display label of every world in index order.
func (f *Frame) Labels() []string {
	out := make([]string, f.n)
	for i := range out {
		out[i] = f.Label(i)
	}

	return out
}

// Index resolves a label to its world. Unlabeled frames accept decimal labels.
func (f *Frame) Index(label string) (int, error) {
	if f.labels != nil {
		if w, ok := f.index[label]; ok {
			return w, nil
		}
		return 0, fmt.Errorf("core: label %q: %w", label, ErrUnknownLabel)
	}
	w, err := strconv.Atoi(label)
	if err != nil || w < 0 || w >= f.n {
		return 0, fmt.Errorf("core: label %q: %w", label, ErrUnknownLabel)
	}

	return w, nil
}

// String renders the frame as "Frame(points=[…], relation={…})" using labels.
func (f *Frame) String() string {
	var sb strings.Builder
	sb.WriteString("Frame(points=[")
	sb.WriteString(strings.Join(f.Labels(), ", "))
	sb.WriteString("], relation={")
	for i, p := range f.rel.Pairs() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "(%s, %s)", f.Label(p.From), f.Label(p.To))
	}
	sb.WriteString("})")

	return sb.String()
}

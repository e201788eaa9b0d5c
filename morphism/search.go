// SPDX-License-Identifier: MIT
//
// File: search.go
// Role: Backtracking p-morphism search over an explicit stack.
// Policy:
//   - Each Find call owns its search state; concurrent calls share nothing.
//   - Candidates are tried in ascending target order, so the first mapping
//     found is the lexicographically smallest one.

package morphism

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/framelogic/core"
)

var tracer = otel.Tracer("github.com/katalvlaran/framelogic/morphism")

// ErrNilFrame indicates a nil source or target frame.
var ErrNilFrame = errors.New("morphism: nil frame")

// DefaultCheckInterval is how many assignments Find makes between context checks.
const DefaultCheckInterval = 1024

// Option configures Find.
type Option func(*config)

type config struct {
	checkInterval int64
}

// WithContextCheckInterval sets how many assignments pass between context
// checks. Panics if k < 1.
func WithContextCheckInterval(k int) Option {
	if k < 1 {
		panic(fmt.Sprintf("morphism: WithContextCheckInterval(%d): want ≥ 1", k))
	}

	return func(c *config) { c.checkInterval = int64(k) }
}

// Result is the outcome of Find.
type Result struct {
	Mapping      Mapping // nil unless Found
	Found        bool
	Inapplicable bool  // |X₁| < |X₂|: no surjection can exist
	Explored     int64 // tentative assignments made
}

// Find searches for a p-morphism from onto.
func Find(ctx context.Context, from, onto *core.Frame, opts ...Option) (Result, error) {
	if from == nil || onto == nil {
		return Result{}, ErrNilFrame
	}
	if ctx == nil {
		ctx = context.Background()
	}
	cfg := config{checkInterval: DefaultCheckInterval}
	for _, opt := range opts {
		opt(&cfg)
	}

	ctx, span := tracer.Start(ctx, "morphism.Find", trace.WithAttributes(
		attribute.Int("from_size", from.Size()),
		attribute.Int("onto_size", onto.Size()),
		attribute.Int("from_pairs", from.PairCount()),
		attribute.Int("onto_pairs", onto.PairCount()),
	))
	defer span.End()

	if from.Size() < onto.Size() {
		span.AddEvent("inapplicable")
		return Result{Inapplicable: true}, nil
	}

	s := newSearch(from, onto, cfg)
	res, err := s.run(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return res, err
	}
	span.AddEvent("search_complete", trace.WithAttributes(
		attribute.Bool("found", res.Found),
		attribute.Int64("explored", res.Explored),
	))

	return res, nil
}

// search holds the per-call state of one Find.
type search struct {
	from, onto *core.Frame
	cfg        config
	n1, n2     int
	r1, r2     []bool  // row-major adjacency
	succ1      [][]int // R₁[x]
	pred1      [][]int // R₁⁻¹[x]
	succ2      [][]int // R₂[y]

	f       []int // f[x], -1 while unassigned
	next    []int // next candidate per level
	counts  []int // preimage sizes in the target
	covered int   // targets with a non-empty preimage
}

func newSearch(from, onto *core.Frame, cfg config) *search {
	n1, n2 := from.Size(), onto.Size()
	s := &search{
		from: from, onto: onto, cfg: cfg,
		n1: n1, n2: n2,
		r1:     make([]bool, n1*n1),
		r2:     make([]bool, n2*n2),
		succ1:  make([][]int, n1),
		pred1:  make([][]int, n1),
		succ2:  make([][]int, n2),
		f:      make([]int, n1),
		next:   make([]int, n1+1),
		counts: make([]int, n2),
	}
	for x := 0; x < n1; x++ {
		s.succ1[x] = from.Successors(x)
		s.pred1[x] = from.Predecessors(x)
		for _, y := range s.succ1[x] {
			s.r1[x*n1+y] = true
		}
		s.f[x] = -1
	}
	for y := 0; y < n2; y++ {
		s.succ2[y] = onto.Successors(y)
		for _, u := range s.succ2[y] {
			s.r2[y*n2+u] = true
		}
	}

	return s
}

func (s *search) run(ctx context.Context) (Result, error) {
	var explored int64
	k := 0
	for k >= 0 {
		if k == s.n1 {
			if IsPMorphism(Mapping(s.f), s.from, s.onto) {
				m := make(Mapping, s.n1)
				copy(m, s.f)
				return Result{Mapping: m, Found: true, Explored: explored}, nil
			}
			k--
			continue
		}
		if s.f[k] >= 0 {
			s.unassign(k)
		}

		advanced := false
		for y := s.next[k]; y < s.n2; y++ {
			explored++
			if explored%s.cfg.checkInterval == 0 {
				if err := ctx.Err(); err != nil {
					return Result{Explored: explored}, err
				}
			}
			s.assign(k, y)
			if s.consistent(k) {
				s.next[k] = y + 1
				s.next[k+1] = 0
				advanced = true
				break
			}
			s.unassign(k)
		}
		if advanced {
			k++
			continue
		}
		s.next[k] = 0
		k--
	}

	return Result{Explored: explored}, nil
}

func (s *search) assign(x, y int) {
	s.f[x] = y
	if s.counts[y] == 0 {
		s.covered++
	}
	s.counts[y]++
}

func (s *search) unassign(x int) {
	y := s.f[x]
	s.counts[y]--
	if s.counts[y] == 0 {
		s.covered--
	}
	s.f[x] = -1
}

// consistent checks the partial assignment f[0..k] after f[k] was set.
func (s *search) consistent(k int) bool {
	// Every target not yet hit needs its own unassigned source world.
	if s.n2-s.covered > s.n1-k-1 {
		return false
	}

	y := s.f[k]
	for i := 0; i <= k; i++ {
		if s.r1[i*s.n1+k] && !s.r2[s.f[i]*s.n2+y] {
			return false
		}
		if s.r1[k*s.n1+i] && !s.r2[y*s.n2+s.f[i]] {
			return false
		}
	}

	// Assigning k can only remove a witness for k itself or for worlds
	// that have k as an R₁-successor.
	if !s.backHolds(k, k) {
		return false
	}
	for _, x := range s.pred1[k] {
		if x < k && !s.backHolds(x, k) {
			return false
		}
	}

	return true
}

// backHolds checks the back condition at assigned world x when worlds
// 0..k are assigned: each R₂-successor u of f(x) needs an R₁-successor x'
// of x that is unassigned or mapped to u.
func (s *search) backHolds(x, k int) bool {
	for _, u := range s.succ2[s.f[x]] {
		ok := false
		for _, xp := range s.succ1[x] {
			if xp > k || s.f[xp] == u {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}

	return true
}

// SPDX-License-Identifier: MIT
//
// File: dispatch.go
// Role: Operation → direct call table.
// Policy:
//   - Every handler decodes its own positional args and returns an Output
//     whose Value is JSON-encodable, so later methods can bind it.

package job

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/katalvlaran/framelogic/closure"
	"github.com/katalvlaran/framelogic/core"
	"github.com/katalvlaran/framelogic/formula"
	"github.com/katalvlaran/framelogic/mequiv"
	"github.com/katalvlaran/framelogic/morphism"
	"github.com/katalvlaran/framelogic/setfamily"
)

// Output is what a method produced: a JSON-encodable value and its log text.
type Output struct {
	Value any
	Text  string
}

type handler func(ctx context.Context, r *Runner, a args) (Output, error)

type entry struct {
	params []string
	run    handler
}

var dispatch = [...]entry{
	OpReflexiveClosure:       {params: []string{"n", "R"}, run: relationOp(closure.Reflexive)},
	OpSymmetricClosure:       {params: []string{"n", "R"}, run: relationOp(closure.Symmetric)},
	OpFloydTransitiveClosure: {params: []string{"n", "R"}, run: relationOp(closure.Transitive)},
	OpTransitiveClosure:      {params: []string{"n", "R"}, run: relationOp(closure.TransitiveSquaring)},
	OpConnectedComponents:    {params: []string{"n", "R"}, run: runComponents},
	OpSubframe:               {params: []string{"n", "l", "R"}, run: runSubframe},
	OpSubformulas:            {params: []string{"phi"}, run: runSubformulas},
	OpValidity:               {params: []string{"phi", "n", "R"}, run: runValidity},
	OpSatisfyingPoints:       {params: []string{"phi", "n", "R", "V"}, run: runSatisfying},
	OpComputeClosure:         {params: []string{"V", "R", "X"}, run: runComputeClosure},
	OpQuotientFrame:          {params: []string{"X", "R", "closure_V"}, run: runQuotient},
	OpPMorphism:              {params: []string{"F", "G"}, run: runPMorphism},
	OpLogEqual:               {params: []string{"F", "G"}, run: runLogEqual},
	OpMEquivalent:            {params: []string{"F", "G", "m"}, run: runMEquivalent},
}

func relationOp(fn func(int, core.Relation) (core.Relation, error)) handler {
	return func(_ context.Context, _ *Runner, a args) (Output, error) {
		n, err := a.integer(0)
		if err != nil {
			return Output{}, err
		}
		r, err := a.relation(1)
		if err != nil {
			return Output{}, err
		}
		out, err := fn(n, r)
		if err != nil {
			return Output{}, err
		}
		return Output{Value: out.Lists(), Text: out.String()}, nil
	}
}

func runComponents(ctx context.Context, _ *Runner, a args) (Output, error) {
	n, err := a.integer(0)
	if err != nil {
		return Output{}, err
	}
	r, err := a.relation(1)
	if err != nil {
		return Output{}, err
	}
	comps, err := closure.ConnectedComponents(ctx, n, r)
	if err != nil {
		return Output{}, err
	}

	return Output{Value: comps, Text: fmt.Sprint(comps)}, nil
}

func runSubframe(ctx context.Context, _ *Runner, a args) (Output, error) {
	n, err := a.integer(0)
	if err != nil {
		return Output{}, err
	}
	l, err := a.integer(1)
	if err != nil {
		return Output{}, err
	}
	r, err := a.relation(2)
	if err != nil {
		return Output{}, err
	}
	points, rel, err := closure.PointGenerated(ctx, l, n, r)
	if err != nil {
		return Output{}, err
	}

	return Output{
		Value: map[string]any{"points": points, "R": rel.Lists()},
		Text:  fmt.Sprintf("points=%v relation=%s", points, rel),
	}, nil
}

func runSubformulas(_ context.Context, _ *Runner, a args) (Output, error) {
	phi, err := a.text(0)
	if err != nil {
		return Output{}, err
	}
	subs, err := formula.Subformulas(phi)
	if err != nil {
		return Output{}, err
	}

	return Output{Value: subs, Text: fmt.Sprintf("%q", subs)}, nil
}

func runValidity(_ context.Context, r *Runner, a args) (Output, error) {
	phi, err := a.text(0)
	if err != nil {
		return Output{}, err
	}
	fr, err := modelFrame(a, 1)
	if err != nil {
		return Output{}, err
	}
	f, err := formula.Parse(phi)
	if err != nil {
		return Output{}, err
	}
	cm, err := f.Counterexample(fr, r.formulaOpts...)
	if err != nil {
		return Output{}, err
	}
	if cm == nil {
		return Output{Value: true, Text: "true"}, nil
	}

	return Output{
		Value: false,
		Text:  fmt.Sprintf("false (fails at world %d under %s)", cm.World, formatValuation(cm.Valuation)),
	}, nil
}

func runSatisfying(_ context.Context, _ *Runner, a args) (Output, error) {
	phi, err := a.text(0)
	if err != nil {
		return Output{}, err
	}
	n, err := a.integer(1)
	if err != nil {
		return Output{}, err
	}
	rel, err := a.relation(2)
	if err != nil {
		return Output{}, err
	}
	v, err := a.valuation(3)
	if err != nil {
		return Output{}, err
	}
	worlds, err := formula.SatisfyingPoints(phi, n, rel, v)
	if err != nil {
		return Output{}, err
	}
	if worlds == nil {
		worlds = []int{}
	}

	return Output{Value: worlds, Text: fmt.Sprint(worlds)}, nil
}

func runComputeClosure(_ context.Context, r *Runner, a args) (Output, error) {
	v, err := a.family(0)
	if err != nil {
		return Output{}, err
	}
	rel, err := a.relation(1)
	if err != nil {
		return Output{}, err
	}
	x, err := a.worlds(2)
	if err != nil {
		return Output{}, err
	}
	closed, err := setfamily.Close(v, rel, x, r.setOpts...)
	if err != nil {
		return Output{}, err
	}

	return Output{Value: closed.Lists(), Text: closed.String()}, nil
}

func runQuotient(_ context.Context, _ *Runner, a args) (Output, error) {
	x, err := a.worlds(0)
	if err != nil {
		return Output{}, err
	}
	rel, err := a.relation(1)
	if err != nil {
		return Output{}, err
	}
	closed, err := a.family(2)
	if err != nil {
		return Output{}, err
	}
	q, err := setfamily.Quotient(x, rel, closed)
	if err != nil {
		return Output{}, err
	}
	classes := make([][]int, len(q.Classes))
	for i, c := range q.Classes {
		classes[i] = c.Members.Worlds()
	}

	return Output{
		Value: map[string]any{"classes": classes, "R": q.Frame.Relation().Lists()},
		Text:  fmt.Sprintf("%s; %s", q, q.Frame),
	}, nil
}

func runPMorphism(ctx context.Context, r *Runner, a args) (Output, error) {
	from, onto, err := framePair(a)
	if err != nil {
		return Output{}, err
	}
	res, err := morphism.Find(ctx, from, onto, r.searchOpts...)
	if err != nil {
		return Output{}, err
	}
	switch {
	case res.Inapplicable:
		return Output{Value: nil, Text: "inapplicable (|F| < |G|)"}, nil
	case !res.Found:
		return Output{Value: nil, Text: "none"}, nil
	}

	return Output{Value: res.Mapping.Labeled(from, onto), Text: res.Mapping.Format(from, onto)}, nil
}

func runLogEqual(ctx context.Context, r *Runner, a args) (Output, error) {
	f, g, err := framePair(a)
	if err != nil {
		return Output{}, err
	}
	ok, err := morphism.LogEqual(ctx, f, g, r.searchOpts...)
	if err != nil {
		return Output{}, err
	}

	return Output{Value: ok, Text: fmt.Sprint(ok)}, nil
}

func runMEquivalent(ctx context.Context, r *Runner, a args) (Output, error) {
	f, g, err := framePair(a)
	if err != nil {
		return Output{}, err
	}
	m, err := a.integer(2)
	if err != nil {
		return Output{}, err
	}
	opts := append([]mequiv.Option{mequiv.WithLogger(r.logger)}, r.mequivOpts...)
	ok, err := mequiv.Equivalent(ctx, f, g, m, opts...)
	if err != nil {
		return Output{}, err
	}

	return Output{Value: ok, Text: fmt.Sprint(ok)}, nil
}

// modelFrame reads (n, R) starting at position i.
func modelFrame(a args, i int) (*core.Frame, error) {
	n, err := a.integer(i)
	if err != nil {
		return nil, err
	}
	rel, err := a.relation(i + 1)
	if err != nil {
		return nil, err
	}

	return core.NewFrame(n, rel)
}

func framePair(a args) (*core.Frame, *core.Frame, error) {
	f, err := a.frame(0)
	if err != nil {
		return nil, nil, err
	}
	g, err := a.frame(1)
	if err != nil {
		return nil, nil, err
	}

	return f, g, nil
}

// formatValuation renders "{p0=[0 2], p1=[]}" in proposition-name order.
func formatValuation(v core.Valuation) string {
	names := maps.Keys(v)
	slices.Sort(names)
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s=%v", name, v[name].Sorted())
	}

	return "{" + strings.Join(parts, ", ") + "}"
}

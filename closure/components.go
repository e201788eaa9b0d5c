// SPDX-License-Identifier: MIT
//
// File: components.go
// Role: Reachability-based decompositions built on bfs.
// Determinism:
//   - Components are discovered from ascending roots; each is sorted.
//   - Subframes are listed by root world.

package closure

import (
	"context"
	"fmt"
	"sort"

	"github.com/katalvlaran/framelogic/bfs"
	"github.com/katalvlaran/framelogic/core"
)

// ConnectedComponents partitions {0,…,n-1} into the connected components
// of the undirected relation R ∪ R⁻¹. An isolated world is its own
// singleton component.
//
// Complexity: O(n + |R| log |R|).
func ConnectedComponents(ctx context.Context, n int, r core.Relation) ([][]int, error) {
	f, err := core.NewFrame(n, r)
	if err != nil {
		return nil, fmt.Errorf("closure: ConnectedComponents: %w", err)
	}
	seen := make([]bool, n)
	markSeen := bfs.WithOnVisit(func(w, _ int) error {
		seen[w] = true
		return nil
	})
	var comps [][]int
	for root := 0; root < n; root++ {
		if seen[root] {
			continue
		}
		res, err := bfs.BFS(f, root, bfs.WithUndirected(), bfs.WithContext(ctx), markSeen)
		if err != nil {
			return nil, fmt.Errorf("closure: ConnectedComponents: %w", err)
		}
		comp := append([]int(nil), res.Order...)
		sort.Ints(comp)
		comps = append(comps, comp)
	}

	return comps, nil
}

// PointGenerated returns the worlds reachable from l along R (l included),
// sorted, together with R restricted to them. World ids are not renumbered.
//
// Errors: core.ErrInvalidRelation for a bad R or an l outside [0,n).
func PointGenerated(ctx context.Context, l, n int, r core.Relation) ([]int, core.Relation, error) {
	f, err := core.NewFrame(n, r)
	if err != nil {
		return nil, nil, fmt.Errorf("closure: PointGenerated: %w", err)
	}
	if l < 0 || l >= n {
		return nil, nil, fmt.Errorf("closure: PointGenerated: world %d outside [0,%d): %w", l, n, core.ErrInvalidRelation)
	}
	points, err := reachable(ctx, f, l)
	if err != nil {
		return nil, nil, fmt.Errorf("closure: PointGenerated: %w", err)
	}
	// The reachable set is closed under successors, so every pair leaving
	// it already lands inside it.
	sub := core.NewRelation()
	for _, w := range points {
		for _, v := range f.Successors(w) {
			sub.Add(w, v)
		}
	}

	return points, sub, nil
}

// Generated is the subframe generated by one world of a parent frame.
type Generated struct {
	Root   int         // generating world in the parent
	Frame  *core.Frame // renumbered subframe; labels carried over
	Origin []int       // subframe index → parent world
}

// Subframe returns the point-generated subframe of f rooted at l.
func Subframe(ctx context.Context, f *core.Frame, l int) (Generated, error) {
	if f == nil {
		return Generated{}, fmt.Errorf("closure: Subframe: %w", bfs.ErrFrameNil)
	}
	points, err := reachable(ctx, f, l)
	if err != nil {
		return Generated{}, fmt.Errorf("closure: Subframe: %w", err)
	}
	sub, origin, err := f.Restrict(points)
	if err != nil {
		return Generated{}, fmt.Errorf("closure: Subframe: %w", err)
	}

	return Generated{Root: l, Frame: sub, Origin: origin}, nil
}

// Subframes returns one point-generated subframe per world of f, in world
// order. Identical subframes generated by different roots are all kept.
func Subframes(ctx context.Context, f *core.Frame) ([]Generated, error) {
	if f == nil {
		return nil, fmt.Errorf("closure: Subframes: %w", bfs.ErrFrameNil)
	}
	out := make([]Generated, 0, f.Size())
	for w := 0; w < f.Size(); w++ {
		g, err := Subframe(ctx, f, w)
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}

	return out, nil
}

// reachable lists the worlds reachable from l along R, sorted.
func reachable(ctx context.Context, f *core.Frame, l int) ([]int, error) {
	res, err := bfs.BFS(f, l, bfs.WithContext(ctx))
	if err != nil {
		return nil, err
	}
	points := append([]int(nil), res.Order...)
	sort.Ints(points)

	return points, nil
}

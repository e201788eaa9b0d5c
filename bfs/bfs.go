// SPDX-License-Identifier: MIT

package bfs

import (
	"fmt"

	"github.com/katalvlaran/framelogic/core"
)

// queueItem pairs a world with its BFS depth.
type queueItem struct {
	w     int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	frame   *core.Frame
	opts    BFSOptions
	queue   []queueItem
	visited []bool
	res     *BFSResult
}

// BFS runs breadth-first search on f starting from world start.
// Returns ErrFrameNil or ErrStartNotFound for invalid input,
// ctx.Err() on cancellation, or a wrapped OnVisit error.
func BFS(f *core.Frame, start int, opts ...Option) (*BFSResult, error) {
	if f == nil {
		return nil, ErrFrameNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	n := f.Size()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrStartNotFound, start, n)
	}

	w := &walker{
		frame:   f,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, n),
		res:     &BFSResult{Order: make([]int, 0, n)},
	}
	w.enqueue(start, 0)

	return w.res, w.loop()
}

// enqueue marks x visited and queues it at depth d.
func (w *walker) enqueue(x, d int) {
	w.visited[x] = true
	w.queue = append(w.queue, queueItem{w: x, depth: d})
}

// loop processes the queue until empty, error or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.w)
		if err := w.opts.OnVisit(item.w, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.w, err)
		}

		for _, nbr := range w.neighbors(item.w) {
			if !w.visited[nbr] {
				w.enqueue(nbr, item.depth+1)
			}
		}
	}

	return nil
}

// neighbors returns R[x], or the ascending merge of R[x] and R⁻¹[x] when
// the walk is undirected.
func (w *walker) neighbors(x int) []int {
	succ := w.frame.Successors(x)
	if !w.opts.Undirected {
		return succ
	}
	pred := w.frame.Predecessors(x)
	out := make([]int, 0, len(succ)+len(pred))
	i, j := 0, 0
	for i < len(succ) || j < len(pred) {
		switch {
		case j == len(pred) || (i < len(succ) && succ[i] < pred[j]):
			out = append(out, succ[i])
			i++
		case i == len(succ) || pred[j] < succ[i]:
			out = append(out, pred[j])
			j++
		default: // equal
			out = append(out, succ[i])
			i++
			j++
		}
	}

	return out
}

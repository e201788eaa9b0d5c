package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/framelogic/bfs"
	"github.com/katalvlaran/framelogic/core"
)

func mustFrame(t *testing.T, n int, pairs [][2]int) *core.Frame {
	t.Helper()
	f, err := core.NewFrame(n, core.RelationFromLists(pairs))
	require.NoError(t, err)

	return f
}

// TestBFS_Errors verifies that invalid inputs are rejected.
func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, 0)
	assert.ErrorIs(t, err, bfs.ErrFrameNil)

	f := mustFrame(t, 2, nil)
	_, err = bfs.BFS(f, 2)
	assert.ErrorIs(t, err, bfs.ErrStartNotFound)
	_, err = bfs.BFS(f, -1)
	assert.ErrorIs(t, err, bfs.ErrStartNotFound)
}

// TestBFS_Directed follows R only.
func TestBFS_Directed(t *testing.T) {
	// 0→1→2, 3→1: world 3 is not reachable from 0.
	f := mustFrame(t, 4, [][2]int{{0, 1}, {1, 2}, {3, 1}})
	res, err := bfs.BFS(f, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, res.Order)

	res, err = bfs.BFS(f, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1, 2}, res.Order)
}

// TestBFS_Undirected follows R ∪ R⁻¹ in ascending neighbor order.
func TestBFS_Undirected(t *testing.T) {
	f := mustFrame(t, 5, [][2]int{{0, 3}, {2, 0}, {3, 1}, {1, 3}})
	res, err := bfs.BFS(f, 0, bfs.WithUndirected())
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 3, 1}, res.Order)
}

// TestBFS_SelfLoop: a loop does not re-enqueue the start.
func TestBFS_SelfLoop(t *testing.T) {
	f := mustFrame(t, 1, [][2]int{{0, 0}})
	res, err := bfs.BFS(f, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, res.Order)
}

// TestBFS_OnVisit reports depths in visit order and propagates an abort.
func TestBFS_OnVisit(t *testing.T) {
	f := mustFrame(t, 4, [][2]int{{0, 1}, {0, 2}, {2, 3}})
	depth := map[int]int{}
	_, err := bfs.BFS(f, 0, bfs.WithOnVisit(func(w, d int) error {
		depth[w] = d
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, map[int]int{0: 0, 1: 1, 2: 1, 3: 2}, depth)

	stop := errors.New("stop")
	var visited []int
	_, err = bfs.BFS(f, 0, bfs.WithOnVisit(func(w, _ int) error {
		visited = append(visited, w)
		if w == 1 {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, []int{0, 1}, visited)
}

// TestBFS_Cancelled returns ctx.Err().
func TestBFS_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	f := mustFrame(t, 2, [][2]int{{0, 1}})
	_, err := bfs.BFS(f, 0, bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

package morphism_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/framelogic/core"
	"github.com/katalvlaran/framelogic/morphism"
)

func labeled(t *testing.T, labels []string, pairs [][2]string) *core.Frame {
	t.Helper()
	f, err := core.NewLabeledFrame(labels, pairs)
	require.NoError(t, err)

	return f
}

func frame(t *testing.T, n int, pairs [][2]int) *core.Frame {
	t.Helper()
	f, err := core.NewFrame(n, core.RelationFromLists(pairs))
	require.NoError(t, err)

	return f
}

func TestFind_ForkOntoArrow(t *testing.T) {
	F := labeled(t, []string{"a", "b", "c"}, [][2]string{{"a", "b"}, {"a", "c"}})
	G := labeled(t, []string{"d", "e"}, [][2]string{{"d", "e"}})

	res, err := morphism.Find(context.Background(), F, G)
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, map[string]string{"a": "d", "b": "e", "c": "e"}, res.Mapping.Labeled(F, G))
	assert.Equal(t, "{a --> d, b --> e, c --> e}", res.Mapping.Format(F, G))
	assert.True(t, morphism.IsPMorphism(res.Mapping, F, G))
}

func TestFind_ChainOntoReflexivePoint(t *testing.T) {
	F := frame(t, 3, [][2]int{{0, 1}, {1, 2}})
	G := labeled(t, []string{"a"}, [][2]string{{"a", "a"}})

	res, err := morphism.Find(context.Background(), F, G)
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.False(t, res.Inapplicable)
	assert.Nil(t, res.Mapping)
}

func TestFind_EmptyRelations(t *testing.T) {
	F := labeled(t, []string{"a", "b", "c"}, nil)
	G := labeled(t, []string{"e", "d"}, nil)

	res, err := morphism.Find(context.Background(), F, G)
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, morphism.Mapping{0, 0, 1}, res.Mapping)
}

func TestFind_Inapplicable(t *testing.T) {
	res, err := morphism.Find(context.Background(), frame(t, 1, nil), frame(t, 2, nil))
	require.NoError(t, err)
	assert.True(t, res.Inapplicable)
	assert.False(t, res.Found)
	assert.Zero(t, res.Explored)

	_, err = morphism.Find(context.Background(), nil, frame(t, 1, nil))
	assert.ErrorIs(t, err, morphism.ErrNilFrame)
}

func TestFind_EmptyFrames(t *testing.T) {
	res, err := morphism.Find(context.Background(), frame(t, 0, nil), frame(t, 0, nil))
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Empty(t, res.Mapping)

	res, err = morphism.Find(context.Background(), frame(t, 2, nil), frame(t, 0, nil))
	require.NoError(t, err)
	assert.False(t, res.Found)
}

func TestFind_CycleOntoCycle(t *testing.T) {
	// A 6-cycle maps onto a 3-cycle by x ↦ x mod 3, but not onto a 4-cycle.
	c6 := frame(t, 6, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 0}})
	c3 := frame(t, 3, [][2]int{{0, 1}, {1, 2}, {2, 0}})
	c4 := frame(t, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}})

	res, err := morphism.Find(context.Background(), c6, c3)
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, morphism.Mapping{0, 1, 2, 0, 1, 2}, res.Mapping)

	res, err = morphism.Find(context.Background(), c6, c4)
	require.NoError(t, err)
	assert.False(t, res.Found)
}

func TestFind_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	// Twelve isolated worlds onto a 2-cycle: no mapping, lots of branches.
	F := frame(t, 12, nil)
	G := frame(t, 2, [][2]int{{0, 1}, {1, 0}})
	_, err := morphism.Find(ctx, F, G, morphism.WithContextCheckInterval(1))
	assert.ErrorIs(t, err, context.Canceled)

	assert.Panics(t, func() { morphism.WithContextCheckInterval(0) })
}

func TestIsPMorphism(t *testing.T) {
	F := frame(t, 3, [][2]int{{0, 1}, {0, 2}})
	G := frame(t, 2, [][2]int{{0, 1}})

	assert.True(t, morphism.IsPMorphism(morphism.Mapping{0, 1, 1}, F, G))
	assert.False(t, morphism.IsPMorphism(morphism.Mapping{0, 0, 0}, F, G), "not surjective")
	assert.False(t, morphism.IsPMorphism(morphism.Mapping{1, 0, 0}, F, G), "forth fails")
	assert.False(t, morphism.IsPMorphism(morphism.Mapping{0, 1}, F, G), "wrong length")
	assert.False(t, morphism.IsPMorphism(morphism.Mapping{0, 1, 2}, F, G), "out of range")

	// Back fails: 0 ↦ 0 has successor 1 in G, but 0 has no successor in H.
	H := frame(t, 2, nil)
	assert.False(t, morphism.IsPMorphism(morphism.Mapping{0, 1}, H, G))
}

// TestFind_AgreesWithBruteForce compares Find with exhaustive enumeration.
func TestFind_AgreesWithBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	for trial := 0; trial < 120; trial++ {
		n1 := 1 + rng.Intn(5)
		n2 := 1 + rng.Intn(3)
		F := randomFrame(t, rng, n1)
		G := randomFrame(t, rng, n2)

		res, err := morphism.Find(context.Background(), F, G)
		require.NoError(t, err)
		want := bruteForce(F, G)
		require.Equalf(t, want, res.Found, "F=%v G=%v", F, G)
		if res.Found {
			require.True(t, morphism.IsPMorphism(res.Mapping, F, G))
		}
	}
}

func randomFrame(t *testing.T, rng *rand.Rand, n int) *core.Frame {
	t.Helper()
	r := core.NewRelation()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if rng.Intn(3) == 0 {
				r.Add(i, j)
			}
		}
	}
	f, err := core.NewFrame(n, r)
	require.NoError(t, err)

	return f
}

func bruteForce(F, G *core.Frame) bool {
	n1, n2 := F.Size(), G.Size()
	if n1 < n2 {
		return false
	}
	m := make(morphism.Mapping, n1)
	var rec func(i int) bool
	rec = func(i int) bool {
		if i == n1 {
			return morphism.IsPMorphism(m, F, G)
		}
		for y := 0; y < n2; y++ {
			m[i] = y
			if rec(i + 1) {
				return true
			}
		}
		return false
	}

	return rec(0)
}

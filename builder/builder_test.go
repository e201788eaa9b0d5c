package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/framelogic/builder"
	"github.com/katalvlaran/framelogic/core"
)

func TestConstructors_Shapes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		ctor  builder.Constructor
		size  int
		pairs [][2]int
	}{
		{"Chain(1)", builder.Chain(1), 1, [][2]int{}},
		{"Chain(4)", builder.Chain(4), 4, [][2]int{{0, 1}, {1, 2}, {2, 3}}},
		{"Cycle(1)", builder.Cycle(1), 1, [][2]int{{0, 0}}},
		{"Cycle(3)", builder.Cycle(3), 3, [][2]int{{0, 1}, {1, 2}, {2, 0}}},
		{"Complete(2)", builder.Complete(2), 2, [][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}}},
		{"Discrete(3)", builder.Discrete(3), 3, [][2]int{}},
		{"Star(4)", builder.Star(4), 4, [][2]int{{0, 1}, {0, 2}, {0, 3}}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			f, err := builder.Build(tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.size, f.Size())
			assert.Equal(t, tc.pairs, f.Relation().Lists())
		})
	}
}

func TestBuildFrame_DisjointUnion(t *testing.T) {
	f, err := builder.BuildFrame(
		[]builder.Option{builder.WithLetterLabels()},
		builder.Chain(3),
		builder.Cycle(2),
	)
	require.NoError(t, err)
	assert.Equal(t, 5, f.Size())
	assert.Equal(t, "Frame(points=[a, b, c, d, e], relation={(a, b), (b, c), (d, e), (e, d)})", f.String())

	f, err = builder.BuildFrame(nil, builder.Chain(2), builder.Loops(), builder.Discrete(1))
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{0, 0}, {0, 1}, {1, 1}}, f.Relation().Lists())
	assert.Equal(t, 3, f.Size())
	assert.False(t, f.Labeled())
}

func TestBuildFrame_Errors(t *testing.T) {
	_, err := builder.Build(builder.Chain(0))
	assert.ErrorIs(t, err, builder.ErrTooFewWorlds)

	_, err = builder.Build(builder.Star(1))
	assert.ErrorIs(t, err, builder.ErrTooFewWorlds)

	_, err = builder.BuildFrame(nil, builder.Chain(2), nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)

	_, err = builder.Build(builder.RandomFrame(3))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)

	// Two worlds labeled the same.
	_, err = builder.Build(builder.Discrete(2), builder.WithLabels(func(int) string { return "x" }))
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
	assert.ErrorIs(t, err, core.ErrDuplicateLabel)

	assert.Panics(t, func() { builder.WithLabels(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
}

func TestRandomFrame_Deterministic(t *testing.T) {
	for n := 1; n <= 8; n++ {
		a, err := builder.Build(builder.RandomFrame(n), builder.WithSeed(42))
		require.NoError(t, err)
		b, err := builder.Build(builder.RandomFrame(n), builder.WithRand(rand.New(rand.NewSource(42))))
		require.NoError(t, err)

		assert.Equal(t, n, a.Size())
		assert.True(t, a.Relation().Equal(b.Relation()))
		assert.GreaterOrEqual(t, a.PairCount(), 1)
		maxPairs := n * (n - 1) / 2
		if maxPairs < 1 {
			maxPairs = 1
		}
		assert.LessOrEqual(t, a.PairCount(), maxPairs)
	}
}

func TestIDFns(t *testing.T) {
	assert.Equal(t, "0", builder.DecimalID(0))
	assert.Equal(t, "42", builder.DecimalID(42))
	assert.Equal(t, "a", builder.LetterID(0))
	assert.Equal(t, "z", builder.LetterID(25))
	assert.Equal(t, "aa", builder.LetterID(26))
	assert.Equal(t, "ba", builder.LetterID(52))
	assert.Equal(t, "w7", builder.PrefixID("w")(7))
	assert.Panics(t, func() { builder.LetterID(-1) })
	assert.Panics(t, func() { builder.PrefixID("w")(-1) })

	f, err := builder.Build(builder.Chain(2), builder.WithPrefixLabels("x"))
	require.NoError(t, err)
	assert.Equal(t, []string{"x0", "x1"}, f.Labels())
}

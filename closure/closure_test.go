package closure_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/framelogic/closure"
	"github.com/katalvlaran/framelogic/core"
)

func randomRelation(rng *rand.Rand, n int, p float64) core.Relation {
	r := core.NewRelation()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if rng.Float64() < p {
				r.Add(i, j)
			}
		}
	}

	return r
}

func TestClosures_InvalidRelation(t *testing.T) {
	bad := core.RelationFromLists([][2]int{{0, 3}})
	_, err := closure.Reflexive(3, bad)
	assert.ErrorIs(t, err, core.ErrInvalidRelation)
	_, err = closure.Symmetric(3, bad)
	assert.ErrorIs(t, err, core.ErrInvalidRelation)
	_, err = closure.Transitive(3, bad)
	assert.ErrorIs(t, err, core.ErrInvalidRelation)
	_, err = closure.TransitiveSquaring(3, bad)
	assert.ErrorIs(t, err, core.ErrInvalidRelation)
	_, err = closure.VerifyTransitive(3, bad)
	assert.ErrorIs(t, err, core.ErrInvalidRelation)
}

func TestReflexive(t *testing.T) {
	r := core.RelationFromLists([][2]int{{0, 1}, {2, 2}})
	got, err := closure.Reflexive(3, r)
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{0, 0}, {0, 1}, {1, 1}, {2, 2}}, got.Lists())
	assert.Equal(t, 2, r.Len(), "input must not change")
}

func TestSymmetric(t *testing.T) {
	r := core.RelationFromLists([][2]int{{0, 1}, {1, 0}, {1, 2}})
	got, err := closure.Symmetric(3, r)
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{0, 1}, {1, 0}, {1, 2}, {2, 1}}, got.Lists())
}

func TestTransitive_Example(t *testing.T) {
	r := core.RelationFromLists([][2]int{{0, 1}, {1, 2}, {2, 3}})
	got, err := closure.VerifyTransitive(4, r)
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}, got.Lists())
}

// TestClosureProperties checks reflexive ⊇ R with idempotence, symmetric
// self-inverse, and agreement of the two transitive kernels.
func TestClosureProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 150; trial++ {
		n := rng.Intn(9)
		r := randomRelation(rng, n, 0.25)

		refl, err := closure.Reflexive(n, r)
		require.NoError(t, err)
		for p := range r {
			require.True(t, refl.Has(p.From, p.To))
		}
		for i := 0; i < n; i++ {
			require.True(t, refl.Has(i, i))
		}
		again, err := closure.Reflexive(n, refl)
		require.NoError(t, err)
		require.True(t, refl.Equal(again))

		sym, err := closure.Symmetric(n, r)
		require.NoError(t, err)
		require.True(t, sym.Equal(sym.Inverse()))

		fw, err := closure.Transitive(n, r)
		require.NoError(t, err)
		sq, err := closure.TransitiveSquaring(n, r)
		require.NoError(t, err)
		require.Truef(t, fw.Equal(sq), "n=%d R=%v", n, r)

		f, err := core.NewFrame(n, fw)
		require.NoError(t, err)
		require.True(t, f.IsTransitive())
	}
}

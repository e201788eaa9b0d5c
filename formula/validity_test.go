package formula_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/framelogic/core"
	"github.com/katalvlaran/framelogic/formula"
)

var validityRel = core.RelationFromLists([][2]int{{0, 0}, {0, 1}, {1, 2}, {2, 0}, {0, 2}})

func TestIsValid_Tautology(t *testing.T) {
	ok, err := formula.IsValid("((p1 --> ⊥) --> p1) --> p1", 3, validityRel)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = formula.IsValid("⊥ --> p0", 0, core.NewRelation())
	require.NoError(t, err)
	assert.True(t, ok, "everything is valid on the empty frame")
}

func TestIsValid_FrameDependent(t *testing.T) {
	// p --> ♢p is valid exactly on reflexive frames.
	refl := core.RelationFromLists([][2]int{{0, 0}, {1, 1}})
	ok, err := formula.IsValid("p0 --> ♢(p0)", 2, refl)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = formula.IsValid("p0 --> ♢(p0)", 2, core.RelationFromLists([][2]int{{0, 1}, {1, 1}}))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCounterexample(t *testing.T) {
	f, err := formula.Parse("♢(p1) --> p1")
	require.NoError(t, err)
	fr, err := core.NewFrame(3, validityRel)
	require.NoError(t, err)

	cm, err := f.Counterexample(fr)
	require.NoError(t, err)
	require.NotNil(t, cm)
	assert.Equal(t, 2, cm.World)
	assert.Equal(t, []int{0}, cm.Valuation["p1"].Sorted())

	ok, err := formula.Evaluate(f.Root, fr, cm.Valuation, cm.World)
	require.NoError(t, err)
	assert.False(t, ok, "the countermodel must falsify the formula")

	peirce, err := formula.Parse("((p1 --> ⊥) --> p1) --> p1")
	require.NoError(t, err)
	cm, err = peirce.Counterexample(fr)
	require.NoError(t, err)
	assert.Nil(t, cm)
}

func TestIsValid_ResourceLimit(t *testing.T) {
	_, err := formula.IsValid("p1 --> p2 --> p3 --> p4 --> p5", 5, core.NewRelation())
	assert.ErrorIs(t, err, core.ErrResourceLimit)

	_, err = formula.IsValid("p1 --> p2", 3, core.NewRelation(), formula.WithMaxValuationBits(5))
	assert.ErrorIs(t, err, core.ErrResourceLimit)

	ok, err := formula.IsValid("p1 --> p2", 3, core.NewRelation(), formula.WithMaxValuationBits(6))
	require.NoError(t, err)
	assert.False(t, ok)

	assert.Panics(t, func() { formula.WithMaxValuationBits(63) })
}

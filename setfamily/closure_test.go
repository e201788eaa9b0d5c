package setfamily_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/framelogic/core"
	"github.com/katalvlaran/framelogic/setfamily"
)

func mustFamily(t *testing.T, lists ...[]int) *setfamily.Family {
	t.Helper()
	f, err := setfamily.FamilyFromLists(lists)
	require.NoError(t, err)

	return f
}

func TestDiamondInverse(t *testing.T) {
	r := core.RelationFromLists([][2]int{{0, 1}, {1, 3}, {3, 0}, {2, 3}})
	y, _ := setfamily.FromWorlds([]int{3})
	assert.Equal(t, []int{1, 2}, setfamily.DiamondInverse(y, r).Worlds())
	assert.Equal(t, setfamily.Subset(0), setfamily.DiamondInverse(0, r))
}

func TestCloseBoolean(t *testing.T) {
	x := setfamily.Full(4)
	got, err := setfamily.CloseBoolean(mustFamily(t, []int{0, 1}, []int{1, 2}), x)
	require.NoError(t, err)
	// Atoms {0}, {1}, {2}, {3} are all generated, so the result is the powerset.
	assert.Equal(t, 16, got.Len())

	empty, err := setfamily.CloseBoolean(setfamily.NewFamily(), x)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Len())

	two, err := setfamily.CloseBoolean(mustFamily(t, []int{0, 1}), x)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{}, {0, 1}, {2, 3}, {0, 1, 2, 3}}, two.Lists())
}

func TestClose_Example(t *testing.T) {
	x := setfamily.Full(4)
	r := core.RelationFromLists([][2]int{{0, 1}, {1, 3}, {3, 0}})
	got, err := setfamily.Close(mustFamily(t, []int{0, 1, 2}, []int{3}), r, x)
	require.NoError(t, err)
	assert.Equal(t, 16, got.Len())

	q, err := setfamily.Quotient(x, r, got)
	require.NoError(t, err)
	require.Len(t, q.Classes, 4)
	assert.Equal(t, r.Lists(), q.Frame.Relation().Lists())
}

func TestClose_DiamondSplitsClass(t *testing.T) {
	x := setfamily.Full(4)
	v := mustFamily(t, []int{0, 1})

	plain, err := setfamily.Close(v, core.NewRelation(), x)
	require.NoError(t, err)
	assert.Equal(t, 4, plain.Len())

	r := core.RelationFromLists([][2]int{{0, 2}})
	split, err := setfamily.Close(v, r, x)
	require.NoError(t, err)
	assert.Equal(t, 8, split.Len())

	q, err := setfamily.Quotient(x, r, split)
	require.NoError(t, err)
	assert.Equal(t, "V0={0}; V1={1}; V2={2, 3}", q.String())
	assert.Equal(t, [][2]int{{0, 2}}, q.Frame.Relation().Lists())
	assert.Equal(t, []string{"V0", "V1", "V2"}, q.Frame.Labels())
}

func TestClose_Idempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for trial := 0; trial < 50; trial++ {
		n := 1 + rng.Intn(6)
		x := setfamily.Full(n)
		r := core.NewRelation()
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if rng.Intn(4) == 0 {
					r.Add(i, j)
				}
			}
		}
		v := setfamily.NewFamily()
		for k := rng.Intn(3); k >= 0; k-- {
			v.Add(setfamily.Subset(rng.Uint64()) & x)
		}

		once, err := setfamily.Close(v, r, x)
		require.NoError(t, err)
		twice, err := setfamily.Close(once, r, x)
		require.NoError(t, err)
		require.True(t, once.Equal(twice))

		for _, s := range v.Sets() {
			require.True(t, once.Has(s))
		}
		for _, s := range once.Sets() {
			require.True(t, once.Has(x&^s))
			require.True(t, once.Has(setfamily.DiamondInverse(s, r)))
		}
	}
}

func TestClose_Errors(t *testing.T) {
	x := setfamily.Full(3)
	_, err := setfamily.Close(mustFamily(t, []int{3}), core.NewRelation(), x)
	assert.ErrorIs(t, err, setfamily.ErrOutsideUniverse)

	_, err = setfamily.Close(mustFamily(t, []int{0}), core.RelationFromLists([][2]int{{0, 3}}), x)
	assert.ErrorIs(t, err, core.ErrInvalidRelation)

	_, err = setfamily.CloseBoolean(mustFamily(t, []int{0}), setfamily.Full(17))
	assert.ErrorIs(t, err, core.ErrResourceLimit)

	_, err = setfamily.CloseBoolean(mustFamily(t, []int{0}, []int{1}), setfamily.Full(3), setfamily.WithMaxFamilySize(4))
	assert.ErrorIs(t, err, core.ErrResourceLimit)

	got, err := setfamily.CloseBoolean(mustFamily(t, []int{0}), setfamily.Full(20), setfamily.WithMaxWorlds(20))
	require.NoError(t, err)
	assert.Equal(t, 4, got.Len())

	assert.Panics(t, func() { setfamily.WithMaxWorlds(65) })
	assert.Panics(t, func() { setfamily.WithMaxFamilySize(0) })
}

func TestInducedRelation_Errors(t *testing.T) {
	classes := setfamily.EquivalenceClasses(setfamily.Full(2), setfamily.NewFamily())
	require.Len(t, classes, 1)
	assert.Equal(t, "V0", classes[0].Label)

	_, err := setfamily.InducedRelation(classes, core.RelationFromLists([][2]int{{0, 2}}))
	assert.ErrorIs(t, err, core.ErrInvalidRelation)
}

func TestQuotient_FamilyOutsideUniverse(t *testing.T) {
	x := setfamily.Full(2)
	_, err := setfamily.Quotient(x, core.NewRelation(), mustFamily(t, []int{0, 5}))
	assert.ErrorIs(t, err, setfamily.ErrOutsideUniverse)

	q, err := setfamily.Quotient(x, core.NewRelation(), mustFamily(t, []int{0}, []int{1}))
	require.NoError(t, err)
	assert.Equal(t, "V0={0}; V1={1}", q.String())
}

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/framelogic/core"
	"github.com/katalvlaran/framelogic/matrix"
)

func TestNewBoolDense_Shape(t *testing.T) {
	_, err := matrix.NewBoolDense(-1)
	assert.ErrorIs(t, err, matrix.ErrBadShape)

	m, err := matrix.NewBoolDense(0)
	require.NoError(t, err)
	assert.Equal(t, 0, m.Size())
	assert.Equal(t, 0, m.Relation().Len())
}

func TestBoolDense_AtSetBounds(t *testing.T) {
	m, err := matrix.NewBoolDense(2)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 0, true))
	v, err := m.At(1, 0)
	require.NoError(t, err)
	assert.True(t, v)

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, -1, true), matrix.ErrOutOfRange)
}

func TestFromRelation_RoundTrip(t *testing.T) {
	r := core.RelationFromLists([][2]int{{0, 1}, {2, 2}, {3, 0}})
	m, err := matrix.FromRelation(4, r)
	require.NoError(t, err)

	assert.True(t, r.Equal(m.Relation()))
	assert.Equal(t, "0100\n0000\n0010\n1000", m.String())

	_, err = matrix.FromRelation(3, r)
	assert.ErrorIs(t, err, core.ErrInvalidRelation)
}

func TestBoolDense_OrMul(t *testing.T) {
	a, _ := matrix.FromRelation(3, core.RelationFromLists([][2]int{{0, 1}, {1, 2}}))
	b, _ := matrix.FromRelation(3, core.RelationFromLists([][2]int{{2, 0}}))

	or, err := a.Or(b)
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{0, 1}, {1, 2}, {2, 0}}, or.Relation().Lists())

	sq, err := a.Mul(a)
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{0, 2}}, sq.Relation().Lists())

	c, _ := matrix.NewBoolDense(2)
	_, err = a.Mul(c)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = a.Or(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestBoolDense_CloneEqual(t *testing.T) {
	a, _ := matrix.FromRelation(2, core.RelationFromLists([][2]int{{0, 1}}))
	b := a.Clone()
	assert.True(t, a.Equal(b))

	require.NoError(t, b.Set(1, 1, true))
	assert.False(t, a.Equal(b), "clone must not alias")
	assert.False(t, a.Equal(nil))
}

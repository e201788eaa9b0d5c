package formula_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/framelogic/formula"
)

func TestTokenize(t *testing.T) {
	toks, err := formula.Tokenize(" ♢(p12) -->⊥")
	require.NoError(t, err)

	kinds := make([]formula.Kind, len(toks))
	for i, tok := range toks {
		kinds[i] = tok.Kind
	}
	assert.Equal(t, []formula.Kind{
		formula.KindDiamond, formula.KindLParen, formula.KindProposition, formula.KindRParen,
		formula.KindImplication, formula.KindFalsity, formula.KindEOF,
	}, kinds)
	assert.Equal(t, "p12", toks[2].Lit)
	assert.Equal(t, 3, toks[2].Pos, "positions are rune offsets in the input")
	assert.Equal(t, 8, toks[4].Pos)
	assert.Equal(t, 12, toks[6].Pos)
}

func TestTokenize_Errors(t *testing.T) {
	cases := map[string]int{
		"p":        0,
		"p1 -> p2": 3,
		"q1":       0,
		"p1 & p2":  3,
	}
	for text, pos := range cases {
		_, err := formula.Tokenize(text)
		require.Error(t, err, text)
		assert.ErrorIs(t, err, formula.ErrSyntax, text)
		var se *formula.SyntaxError
		require.True(t, errors.As(err, &se), text)
		assert.Equal(t, pos, se.Pos, text)
	}
}

func TestSubformulas(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"p0 --> p2 --> ♢(p3)", []string{"p0", "p2", "p3", "♢(p3)", "p2 --> ♢(p3)", "p0 --> p2 --> ♢(p3)"}},
		{"(p1 --> p2)", []string{"p1", "p2", "p1 --> p2"}},
		{"(p0 --> p2) --> p3", []string{"p0", "p2", "p0 --> p2", "p3", "(p0 --> p2) --> p3"}},
		{"♢(♢(p1 -->  ⊥)) --> p2", []string{"p1", "⊥", "p1 --> ⊥", "♢(p1 --> ⊥)", "♢(♢(p1 --> ⊥))", "p2", "♢(♢(p1 --> ⊥)) --> p2"}},
		{"♢(⊥ --> ⊥)", []string{"⊥", "⊥ --> ⊥", "♢(⊥ --> ⊥)"}},
		{"♢(♢(♢((p0))))", []string{"p0", "♢((p0))", "♢(♢((p0)))", "♢(♢(♢((p0))))"}},
	}
	for _, tc := range cases {
		got, err := formula.Subformulas(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

// TestSubformulas_Order checks that every entry precedes the entries that contain it.
func TestSubformulas_Order(t *testing.T) {
	subs, err := formula.Subformulas("(p0 --> p2) --> (♢(p3) --> p4)")
	require.NoError(t, err)
	seen := make(map[string]bool)
	for _, s := range subs {
		assert.False(t, seen[s], "duplicate %q", s)
		seen[s] = true
	}
	last := subs[len(subs)-1]
	assert.Equal(t, "(p0 --> p2) --> (♢(p3) --> p4)", last)
	for _, s := range subs[:len(subs)-1] {
		assert.Contains(t, last, s)
	}
}

func TestParse_RightAssociative(t *testing.T) {
	f, err := formula.Parse("p0 --> p1 --> p2")
	require.NoError(t, err)
	require.Equal(t, formula.NodeImplication, f.Root.Kind)
	assert.Equal(t, formula.NodeProposition, f.Root.Left.Kind)
	assert.Equal(t, formula.NodeImplication, f.Root.Right.Kind)
	assert.Equal(t, "p0 --> p1 --> p2", f.Root.String())

	g, err := formula.Parse("((p0 --> p1)) --> p2")
	require.NoError(t, err)
	assert.Equal(t, "(p0 --> p1) --> p2", g.Root.String())
}

func TestParse_Propositions(t *testing.T) {
	f, err := formula.Parse("p10 --> p2 --> ♢(p2 --> p01 --> p1)")
	require.NoError(t, err)
	assert.Equal(t, []string{"p01", "p1", "p2", "p10"}, f.Propositions)
}

func TestParse_Rejects(t *testing.T) {
	cases := map[string]int{
		"(♢())":    3,
		"p0 p2":    3,
		"♢p2":      1,
		"(p0":      3,
		"p0 -->":   6,
		"":         0,
		"p0 --> )": 7,
	}
	for text, pos := range cases {
		_, err := formula.Parse(text)
		require.Error(t, err, text)
		assert.ErrorIs(t, err, formula.ErrSyntax, text)
		var se *formula.SyntaxError
		require.True(t, errors.As(err, &se), text)
		assert.Equal(t, pos, se.Pos, text)
	}
}

package mequiv_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/framelogic/builder"
	"github.com/katalvlaran/framelogic/mequiv"
)

func BenchmarkEquivalent_Chain3(b *testing.B) {
	f, err := builder.Build(builder.Chain(3))
	if err != nil {
		b.Fatal(err)
	}
	g, err := builder.Build(builder.Cycle(3))
	if err != nil {
		b.Fatal(err)
	}
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := mequiv.Equivalent(ctx, f, g, 1); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCombinations(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = mequiv.Combinations(32, 3, func([]int) bool { return true })
	}
}

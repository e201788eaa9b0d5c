package morphism_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/framelogic/builder"
	"github.com/katalvlaran/framelogic/morphism"
)

func BenchmarkFind_CycleOntoCycle(b *testing.B) {
	from, err := builder.Build(builder.Cycle(12))
	if err != nil {
		b.Fatal(err)
	}
	onto, err := builder.Build(builder.Cycle(4))
	if err != nil {
		b.Fatal(err)
	}
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := morphism.Find(ctx, from, onto); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFind_Random(b *testing.B) {
	from, err := builder.Build(builder.RandomFrame(9), builder.WithSeed(1))
	if err != nil {
		b.Fatal(err)
	}
	onto, err := builder.Build(builder.RandomFrame(4), builder.WithSeed(2))
	if err != nil {
		b.Fatal(err)
	}
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := morphism.Find(ctx, from, onto); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkLogEqual_Chains(b *testing.B) {
	f, err := builder.Build(builder.Chain(5))
	if err != nil {
		b.Fatal(err)
	}
	g, err := builder.BuildFrame(nil, builder.Chain(5), builder.Chain(3))
	if err != nil {
		b.Fatal(err)
	}
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := morphism.LogEqual(ctx, f, g); err != nil {
			b.Fatal(err)
		}
	}
}

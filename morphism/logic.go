// SPDX-License-Identifier: MIT
//
// File: logic.go
// Role: Inclusion and equality of the logics of finite frames.

package morphism

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/framelogic/closure"
	"github.com/katalvlaran/framelogic/core"
)

// LogIncluded reports whether Log(f) ⊆ Log(g): every point-generated
// subframe of g is a p-morphic image of some point-generated subframe of f.
func LogIncluded(ctx context.Context, f, g *core.Frame, opts ...Option) (bool, error) {
	if f == nil || g == nil {
		return false, ErrNilFrame
	}
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, span := tracer.Start(ctx, "morphism.LogIncluded", trace.WithAttributes(
		attribute.Int("f_size", f.Size()),
		attribute.Int("g_size", g.Size()),
	))
	defer span.End()

	subsF, err := closure.Subframes(ctx, f)
	if err != nil {
		return false, fmt.Errorf("morphism: LogIncluded: %w", err)
	}
	subsG, err := closure.Subframes(ctx, g)
	if err != nil {
		return false, fmt.Errorf("morphism: LogIncluded: %w", err)
	}

	for _, sg := range subsG {
		covered := false
		for _, sf := range subsF {
			res, err := Find(ctx, sf.Frame, sg.Frame, opts...)
			if err != nil {
				return false, err
			}
			if res.Found {
				covered = true
				break
			}
		}
		if !covered {
			span.AddEvent("uncovered_subframe", trace.WithAttributes(attribute.Int("root", sg.Root)))
			return false, nil
		}
	}

	return true, nil
}

// LogEqual reports whether Log(f) = Log(g).
func LogEqual(ctx context.Context, f, g *core.Frame, opts ...Option) (bool, error) {
	ok, err := LogIncluded(ctx, f, g, opts...)
	if err != nil || !ok {
		return false, err
	}

	return LogIncluded(ctx, g, f, opts...)
}

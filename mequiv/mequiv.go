// SPDX-License-Identifier: MIT
//
// File: mequiv.go
// Role: m-subset and m-equivalence of finite frames.
// Policy:
//   - Subframes are taken in root order, families in Combinations order;
//     the first uncovered quotient ends the check.
//   - The G side is enumerated once per call and deduplicated by shape.
// Complexity:
//   - O(Σ_F' C(2^|F'|, m) · Σ_G' C(2^|G'|, m)) p-morphism searches in the
//     worst case, before deduplication.

package mequiv

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/framelogic/closure"
	"github.com/katalvlaran/framelogic/core"
	"github.com/katalvlaran/framelogic/morphism"
	"github.com/katalvlaran/framelogic/setfamily"
)

var tracer = otel.Tracer("github.com/katalvlaran/framelogic/mequiv")

// DefaultMaxFamilies bounds the families enumerated for one subframe.
const DefaultMaxFamilies = 1 << 20

// maxSubframeWorlds keeps 2^k addressable as an int combination index.
const maxSubframeWorlds = 30

// Option configures IsMSubset and Equivalent.
type Option func(*config)

type config struct {
	maxFamilies int64
	maxWorlds   int
	logger      *slog.Logger
	setOpts     []setfamily.Option
	searchOpts  []morphism.Option
}

// WithMaxFamilies bounds C(2^k, m) for every subframe of k worlds.
// Panics if k < 1.
func WithMaxFamilies(k int) Option {
	if k < 1 {
		panic(fmt.Sprintf("mequiv: WithMaxFamilies(%d): want ≥ 1", k))
	}

	return func(c *config) { c.maxFamilies = int64(k) }
}

// WithMaxWorlds bounds the size of every point-generated subframe and is
// forwarded to setfamily as its universe bound. Defaults to
// setfamily.DefaultMaxWorlds. Panics if n is outside 1..30.
func WithMaxWorlds(n int) Option {
	if n < 1 || n > maxSubframeWorlds {
		panic(fmt.Sprintf("mequiv: WithMaxWorlds(%d): want 1..%d", n, maxSubframeWorlds))
	}

	return func(c *config) {
		c.maxWorlds = n
		c.setOpts = append(c.setOpts, setfamily.WithMaxWorlds(n))
	}
}

// WithLogger sets the logger for progress records. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithClosureOptions forwards options to setfamily.ClosedQuotient. The world
// bound is set with WithMaxWorlds.
func WithClosureOptions(opts ...setfamily.Option) Option {
	return func(c *config) { c.setOpts = append(c.setOpts, opts...) }
}

// WithSearchOptions forwards options to morphism.Find.
func WithSearchOptions(opts ...morphism.Option) Option {
	return func(c *config) { c.searchOpts = append(c.searchOpts, opts...) }
}

func newConfig(opts []Option) config {
	cfg := config{
		maxFamilies: DefaultMaxFamilies,
		maxWorlds:   setfamily.DefaultMaxWorlds,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// IsMSubset reports whether every m-quotient of every point-generated
// subframe of f is a p-morphic image of some m-quotient of some
// point-generated subframe of g.
func IsMSubset(ctx context.Context, f, g *core.Frame, m int, opts ...Option) (bool, error) {
	if f == nil || g == nil {
		return false, morphism.ErrNilFrame
	}
	if m < 0 {
		return false, fmt.Errorf("mequiv: IsMSubset: m=%d: %w", m, ErrInvalidArgument)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	cfg := newConfig(opts)

	ctx, span := tracer.Start(ctx, "mequiv.IsMSubset", trace.WithAttributes(
		attribute.Int("f_size", f.Size()),
		attribute.Int("g_size", g.Size()),
		attribute.Int("m", m),
	))
	defer span.End()

	start := time.Now()
	ok, stats, err := isMSubset(ctx, cfg, f, g, m)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return false, err
	}
	span.SetAttributes(
		attribute.Bool("result", ok),
		attribute.Int("f_quotients", stats.fQuotients),
		attribute.Int("g_quotients", stats.gQuotients),
	)
	cfg.logger.DebugContext(ctx, "mequiv: m-subset checked",
		slog.Int("m", m),
		slog.Int("f_size", f.Size()),
		slog.Int("g_size", g.Size()),
		slog.Int("f_quotients", stats.fQuotients),
		slog.Int("g_quotients", stats.gQuotients),
		slog.Int64("searches", stats.searches),
		slog.Bool("result", ok),
		slog.Duration("elapsed", time.Since(start)),
	)

	return ok, nil
}

// Equivalent reports whether f and g are m-equivalent.
func Equivalent(ctx context.Context, f, g *core.Frame, m int, opts ...Option) (bool, error) {
	ok, err := IsMSubset(ctx, f, g, m, opts...)
	if err != nil || !ok {
		return false, err
	}

	return IsMSubset(ctx, g, f, m, opts...)
}

type stats struct {
	fQuotients int // distinct quotient shapes on the f side
	gQuotients int // distinct quotient shapes on the g side
	searches   int64
}

func isMSubset(ctx context.Context, cfg config, f, g *core.Frame, m int) (bool, stats, error) {
	var st stats

	subsG, err := closure.Subframes(ctx, g)
	if err != nil {
		return false, st, fmt.Errorf("mequiv: IsMSubset: %w", err)
	}
	images, err := quotients(ctx, cfg, subsG, m)
	if err != nil {
		return false, st, err
	}
	st.gQuotients = len(images)

	subsF, err := closure.Subframes(ctx, f)
	if err != nil {
		return false, st, fmt.Errorf("mequiv: IsMSubset: %w", err)
	}
	targets, err := quotients(ctx, cfg, subsF, m)
	if err != nil {
		return false, st, err
	}
	st.fQuotients = len(targets)

	for _, target := range targets {
		covered := false
		for _, img := range images {
			if err := ctx.Err(); err != nil {
				return false, st, err
			}
			res, err := morphism.Find(ctx, img, target, cfg.searchOpts...)
			st.searches++
			if err != nil {
				return false, st, fmt.Errorf("mequiv: IsMSubset: %w", err)
			}
			if res.Found {
				covered = true
				break
			}
		}
		if !covered {
			trace.SpanFromContext(ctx).AddEvent("uncovered_quotient", trace.WithAttributes(
				attribute.String("quotient", target.String()),
			))
			return false, st, nil
		}
	}

	return true, st, nil
}

// quotients returns the distinct m-quotients of the given subframes in
// enumeration order.
func quotients(ctx context.Context, cfg config, subs []closure.Generated, m int) ([]*core.Frame, error) {
	seen := make(map[string]struct{})
	var out []*core.Frame

	for _, sub := range subs {
		k := sub.Frame.Size()
		if err := checkBudget(cfg, k, m); err != nil {
			return nil, err
		}
		universe := 1 << uint(k)
		x := setfamily.Full(k)
		r := sub.Frame.Relation()

		var visitErr error
		err := Combinations(universe, m, func(comb []int) bool {
			if visitErr = ctx.Err(); visitErr != nil {
				return false
			}
			family := setfamily.NewFamily()
			for _, s := range comb {
				family.Add(setfamily.Subset(s))
			}
			q, err := setfamily.ClosedQuotient(family, r, x, cfg.setOpts...)
			if err != nil {
				visitErr = fmt.Errorf("mequiv: quotient of subframe at %d: %w", sub.Root, err)
				return false
			}
			key := shape(q.Frame)
			if _, dup := seen[key]; !dup {
				seen[key] = struct{}{}
				out = append(out, q.Frame)
			}
			return true
		})
		if err != nil {
			return nil, err
		}
		if visitErr != nil {
			return nil, visitErr
		}
	}

	return out, nil
}

func checkBudget(cfg config, k, m int) error {
	if k > cfg.maxWorlds {
		return fmt.Errorf("mequiv: subframe of %d worlds exceeds %d: %w", k, cfg.maxWorlds, core.ErrResourceLimit)
	}
	families := Count(1<<uint(k), m)
	if families.Cmp(big.NewInt(cfg.maxFamilies)) > 0 {
		return fmt.Errorf("mequiv: C(2^%d, %d) = %s families exceeds %d: %w",
			k, m, families, cfg.maxFamilies, core.ErrResourceLimit)
	}

	return nil
}

func shape(f *core.Frame) string {
	return fmt.Sprintf("%d:%s", f.Size(), f.Relation())
}

// SPDX-License-Identifier: MIT
// Package bfs: tunable options, result type and error definitions.

package bfs

import (
	"context"
	"errors"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartNotFound is returned when the start world is outside [0,n).
	ErrStartNotFound = errors.New("bfs: start world not found")

	// ErrFrameNil is returned if a nil frame pointer is passed.
	ErrFrameNil = errors.New("bfs: frame is nil")
)

// Option configures BFS behavior via functional arguments.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Undirected makes the walk follow R ∪ R⁻¹ instead of R.
	Undirected bool

	// OnVisit is called when visiting a world. A non-nil error aborts BFS.
	OnVisit func(w, depth int) error
}

// DefaultOptions returns background context, directed walk and a no-op hook.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:     context.Background(),
		OnVisit: func(int, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithUndirected walks R ∪ R⁻¹.
func WithUndirected() Option {
	return func(o *BFSOptions) { o.Undirected = true }
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(w, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// BFSResult holds the worlds in visit sequence.
type BFSResult struct {
	Order []int
}

// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the Engine. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that applies defaults then options.
//
// Design goals:
//   - No global state: every Engine carries its own Options snapshot.
//   - No dead switches: each option changes kernel dispatch and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import (
	"io"
	"log/slog"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultWorkers selects GOMAXPROCS workers for the engine pool.
	DefaultWorkers = 0

	// DefaultSmallThreshold is the size below which kernels skip the vector
	// or parallel path: Negate/Absolute use a plain loop when rows and cols
	// are both < threshold, Multiply uses the naive loop when a.Rows and
	// b.Cols are both < threshold.
	DefaultSmallThreshold = 8

	// DefaultParallelElements is the element count from which element-wise
	// kernels split their work across the pool.
	DefaultParallelElements = 1 << 16

	// DefaultColumnTile is the number of result columns Multiply updates per
	// pass over a k-block; 512 doubles per row keeps four B row segments and
	// the C segment within a 32 KiB L1.
	DefaultColumnTile = 512

	// DefaultRowStrip caps the number of result rows handed to a worker at once.
	DefaultRowStrip = 64

	// DefaultMaxElements disables the live-element budget; only the
	// physical-memory cap applies.
	DefaultMaxElements = 0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicWorkersInvalid          = "matrix: WithWorkers: n must be >= 0"
	panicSmallThresholdInvalid   = "matrix: WithSmallThreshold: n must be >= 0"
	panicParallelElementsInvalid = "matrix: WithParallelElements: n must be > 0"
	panicColumnTileInvalid       = "matrix: WithColumnTile: n must be a positive multiple of 4"
	panicRowStripInvalid         = "matrix: WithRowStrip: n must be > 0"
	panicMaxElementsInvalid      = "matrix: WithMaxElements: n must be >= 0"
	panicLoggerNil               = "matrix: WithLogger: logger must not be nil"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (last writer wins).
type Option func(*Options)

// Options holds engine tuning. Fields are unexported; use WithX constructors.
type Options struct {
	workers          int
	smallThreshold   int
	parallelElements int
	columnTile       int
	rowStrip         int
	maxElements      int64
	logger           *slog.Logger
}

// defaultOptions returns Options populated from the Default* constants.
func defaultOptions() Options {
	return Options{
		workers:          DefaultWorkers,
		smallThreshold:   DefaultSmallThreshold,
		parallelElements: DefaultParallelElements,
		columnTile:       DefaultColumnTile,
		rowStrip:         DefaultRowStrip,
		maxElements:      DefaultMaxElements,
		logger:           slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// gatherOptions applies opts over the defaults in order.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithWorkers sets the size of the engine worker pool; 0 means GOMAXPROCS.
// Panics if n < 0.
func WithWorkers(n int) Option {
	if n < 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithSmallThreshold sets the small-matrix cutoff (see DefaultSmallThreshold).
// 0 sends every call down the vector/parallel path. Panics if n < 0.
func WithSmallThreshold(n int) Option {
	if n < 0 {
		panic(panicSmallThresholdInvalid)
	}

	return func(o *Options) { o.smallThreshold = n }
}

// WithParallelElements sets the element count from which element-wise kernels
// run on the pool. Panics if n <= 0.
func WithParallelElements(n int) Option {
	if n <= 0 {
		panic(panicParallelElementsInvalid)
	}

	return func(o *Options) { o.parallelElements = n }
}

// WithColumnTile sets the Multiply column tile. It must be a positive multiple
// of 4 so every tile but the last is whole vectors. Panics otherwise.
func WithColumnTile(n int) Option {
	if n <= 0 || n%4 != 0 {
		panic(panicColumnTileInvalid)
	}

	return func(o *Options) { o.columnTile = n }
}

// WithRowStrip caps how many result rows a worker takes per grab in Multiply.
// Panics if n <= 0.
func WithRowStrip(n int) Option {
	if n <= 0 {
		panic(panicRowStripInvalid)
	}

	return func(o *Options) { o.rowStrip = n }
}

// WithMaxElements caps the number of float64 elements held by live roots of
// the engine; Allocate returns ErrAllocationFailure past the cap. 0 leaves
// only the physical-memory cap (Linux). Panics if n < 0.
func WithMaxElements(n int64) Option {
	if n < 0 {
		panic(panicMaxElementsInvalid)
	}

	return func(o *Options) { o.maxElements = n }
}

// WithLogger routes engine diagnostics to l. Panics if l is nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = l }
}

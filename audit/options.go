// SPDX-License-Identifier: MIT

// Package audit: functional configuration of an audit run. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values).
//
// Design goals:
//   - Deterministic behavior: the same options always replay the same
//     operation sequences, whatever the worker count.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package audit

import (
	"io"
	"log/slog"
	"math"
	"runtime"

	"github.com/katalvlaran/lvgeom/props"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultRuns is the number of independent random sequences.
	DefaultRuns = 64

	// DefaultSteps is the number of operations per sequence.
	DefaultSteps = 256

	// DefaultSeed seeds run i with DefaultSeed+i.
	DefaultSeed int64 = 1

	// DefaultTolerance bounds the relative entry-wise difference between the
	// engine result and the dense reference.
	DefaultTolerance = 1e-6

	// DefaultMaxMagnitude resets a sequence to the identity once an entry
	// grows past it, keeping the cross-check well conditioned.
	DefaultMaxMagnitude = 1e6
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicRunsInvalid      = "audit: WithRuns: runs must be > 0"
	panicStepsInvalid     = "audit: WithSteps: steps must be > 0"
	panicWorkersInvalid   = "audit: WithWorkers: workers must be > 0"
	panicToleranceInvalid = "audit: WithTolerance: tolerance must be finite, > 0"
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	runs      int
	steps     int
	seed      int64
	workers   int
	tolerance float64
	logger    *slog.Logger
	classify  []props.Option
}

// WithRuns sets the number of random sequences. Panics when runs ≤ 0.
func WithRuns(runs int) Option {
	if runs <= 0 {
		panic(panicRunsInvalid)
	}

	return func(o *Options) { o.runs = runs }
}

// WithSteps sets the number of operations per sequence. Panics when steps ≤ 0.
func WithSteps(steps int) Option {
	if steps <= 0 {
		panic(panicStepsInvalid)
	}

	return func(o *Options) { o.steps = steps }
}

// WithSeed sets the base seed; run i uses seed+i.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.seed = seed }
}

// WithWorkers bounds the number of sequences evaluated concurrently.
// Panics when workers ≤ 0.
func WithWorkers(workers int) Option {
	if workers <= 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = workers }
}

// WithTolerance sets the relative cross-check tolerance.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tolerance = tol }
}

// WithLogger sets the structured logger; nil discards log output.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = slog.New(slog.NewTextHandler(io.Discard, nil))
		}
		o.logger = l
	}
}

// WithClassifyOptions forwards epsilon policy to the classifier used by the
// under-claim check.
func WithClassifyOptions(opts ...props.Option) Option {
	return func(o *Options) { o.classify = append(o.classify[:0:0], opts...) }
}

func gatherOptions(opts ...Option) Options {
	o := Options{
		runs:      DefaultRuns,
		steps:     DefaultSteps,
		seed:      DefaultSeed,
		workers:   runtime.GOMAXPROCS(0),
		tolerance: DefaultTolerance,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

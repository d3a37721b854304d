// SPDX-License-Identifier: MIT

// Package vector: functional configuration for vector construction.
//
// Options are resolved once in New and stored on the instance. Every result
// of an elementwise, scalar or clone operation inherits the configuration of
// its (left) operand, so a chain of operations keeps the same policy.
//
// Design goals:
//   - No global state: each vector carries its own configuration.
//   - Safe by construction: option constructors panic only on nonsensical
//     values (programmer error).
//   - No dead switches: each flag changes behavior and is covered by tests.
package vector

import (
	"log/slog"

	"github.com/katalvlaran/numds/internal/diag"
	"github.com/katalvlaran/numds/internal/parallel"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultWorkers disables the parallel loop (sequential execution).
	DefaultWorkers = 1

	// DefaultParallelThreshold is the minimum length at which an elementwise
	// loop is split across workers when parallel execution is enabled.
	DefaultParallelThreshold = 4 * parallel.MinChunk
)

// ---------- Internal panic messages ----------

const (
	panicThresholdInvalid = "vector: WithParallelThreshold: n must be >= 1"
	panicNegativeSize     = "vector: New: size must be >= 0"
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*options)

// options is the resolved configuration carried by every Vector.
type options struct {
	workers   int          // 1 ⇒ sequential; DefaultWorkers
	threshold int          // minimum length for the parallel path
	log       *diag.Logger // diagnostic channel
}

// defaultOptions returns the zero-configuration policy.
func defaultOptions() options {
	return options{
		workers:   DefaultWorkers,
		threshold: DefaultParallelThreshold,
		log:       diag.Default(),
	}
}

// gatherOptions applies opts over the defaults in order (last one wins).
func gatherOptions(opts ...Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithParallel enables the data-parallel loop for elementwise and scalar
// operations. workers <= 0 selects GOMAXPROCS.
//
// Behavior highlights:
//   - Results are bit-identical to the sequential path: each index is
//     computed independently and written exactly once.
//   - Reductions (Dot, Magnitude, Equal) always run sequentially.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithParallel(workers int) Option {
	w := parallel.Workers(workers)

	return func(o *options) { o.workers = w }
}

// WithSequential restores the default single-goroutine execution.
func WithSequential() Option {
	return func(o *options) { o.workers = 1 }
}

// WithParallelThreshold sets the minimum length at which the parallel path
// is taken. Panics when n < 1.
func WithParallelThreshold(n int) Option {
	if n < 1 {
		panic(panicThresholdInvalid)
	}

	return func(o *options) { o.threshold = n }
}

// WithLogger redirects diagnostics to l. A nil l restores the stderr default.
func WithLogger(l *slog.Logger) Option {
	d := diag.Wrap(l)

	return func(o *options) { o.log = d }
}

// WithSilent discards all diagnostics of the vector and its results.
func WithSilent() Option {
	d := diag.Noop()

	return func(o *options) { o.log = d }
}

// loopWorkers returns the worker count to use for a loop of length n.
func (o *options) loopWorkers(n int) int {
	if o.workers <= 1 || n < o.threshold {
		return 1
	}

	return o.workers
}

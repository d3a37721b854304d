// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for matrix construction.
//
// A matrix carries its diagnostic logger and the vector options applied to
// every Vector it produces through Row and Col.
package matrix

import (
	"log/slog"

	"github.com/katalvlaran/numds/internal/diag"
	"github.com/katalvlaran/numds/vector"
)

const panicNegativeShape = "matrix: New: nrow and ncol must be >= 0"

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*options)

type options struct {
	log     *diag.Logger    // diagnostic channel
	vecOpts []vector.Option // forwarded to Row/Col results
}

func gatherOptions(opts ...Option) options {
	o := options{log: diag.Default()}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithLogger redirects diagnostics of the matrix and of the vectors it
// produces to l. A nil l restores the stderr default.
func WithLogger(l *slog.Logger) Option {
	d := diag.Wrap(l)

	return func(o *options) {
		o.log = d
		o.vecOpts = append(o.vecOpts, vector.WithLogger(l))
	}
}

// WithSilent discards diagnostics of the matrix and of the vectors it produces.
func WithSilent() Option {
	d := diag.Noop()

	return func(o *options) {
		o.log = d
		o.vecOpts = append(o.vecOpts, vector.WithSilent())
	}
}

// WithVectorOptions appends options applied to vectors returned by Row/Col,
// e.g. vector.WithParallel for downstream elementwise work.
func WithVectorOptions(opts ...vector.Option) Option {
	return func(o *options) { o.vecOpts = append(o.vecOpts, opts...) }
}

// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All bounds and shape conditions are SOFT: the matrix stays valid and usable
// after any returned error. Callers match with errors.Is; context such as
// coordinates is attached with %w at the detection site.

package matrix

import "errors"

var (
	// ErrOutOfRange indicates that a row or column index is outside bounds.
	// Get/Set/Row/Col return it after reporting to the diagnostic channel.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrBadShape indicates a source buffer whose length does not match the
	// requested shape, ragged input rows, or a shape gonum cannot hold.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrNilMatrix indicates that a nil *Matrix receiver was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrReleased indicates access after Release.
	ErrReleased = errors.New("matrix: use after release")
)

// SPDX-License-Identifier: MIT
// Package vector: sentinel error set and the instance-consuming IndexError.
//
// Two failure tiers exist and MUST stay distinct:
//   - Tier 1 (Get/Set index violation): the vector is released as a side
//     effect. The returned *IndexError matches both its cause and ErrConsumed.
//   - Tier 2 (size mismatch, Dot mismatch, released operands): inputs are left
//     untouched; a plain sentinel is returned.
//
// Callers match with errors.Is. No operation panics on user-triggered input.

package vector

import (
	"errors"

	"github.com/katalvlaran/numds/format"
)

var (
	// ErrIndexOutOfRange indicates an index outside [0, Size()).
	ErrIndexOutOfRange = errors.New("vector: index out of range")

	// ErrSizeMismatch indicates operands of different lengths.
	// Binary ops return it without allocating a result.
	ErrSizeMismatch = errors.New("vector: size mismatch")

	// ErrReleased indicates an operation on a vector after Release.
	ErrReleased = errors.New("vector: use after release")

	// ErrNilVector indicates a nil *Vector operand.
	ErrNilVector = errors.New("vector: nil vector")

	// ErrConsumed marks a tier-1 failure: the receiver has been released and
	// must not be used again.
	ErrConsumed = errors.New("vector: vector consumed by failed access")

	// ErrEmpty is returned by interop conversions that cannot represent a
	// zero-length vector.
	ErrEmpty = errors.New("vector: empty vector")
)

// IndexError is the tier-1 error returned by Get and Set.
// Receiving one means the vector was released before the call returned.
type IndexError struct {
	Op    string // "Get" or "Set"
	Index int    // requested index
	Size  int    // size of the vector at the time of the call
	Err   error  // ErrIndexOutOfRange or ErrReleased
}

// Error renders "vector.Get(5): vector: index out of range (size 3)".
func (e *IndexError) Error() string {
	return "vector." + e.Op + "(" + format.Itoa(e.Index) + "): " + e.Err.Error() +
		" (size " + format.Itoa(e.Size) + ")"
}

// Unwrap exposes both the cause and ErrConsumed to errors.Is.
func (e *IndexError) Unwrap() []error {
	return []error{e.Err, ErrConsumed}
}

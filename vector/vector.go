// SPDX-License-Identifier: MIT

// Package vector - Vector storage, accessors and the release lifecycle.
//
// Purpose:
//   - Own a contiguous, zero-initialized float64 buffer of fixed length.
//   - Provide bounds-checked Get/Set with the fail-and-destroy policy.
//   - Keep memory ownership explicit: Release is the end of an instance's life.
//
// Complexity quicksheet:
//   - New/FromSlice/Clone/Data: O(n); Size/Get/Set/Release: O(1).

package vector

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/numds/internal/diag"
)

// ---------- error context tags ----------

const (
	ctxGet   = "Get"
	ctxSet   = "Set"
	ctxClone = "Clone"
)

// ---------- diagnostic messages ----------

const (
	msgIndexOutOfRange = "Index out of range"
	msgUseAfterRelease = "Use after release"
	msgDotMismatch     = "Unequal vector size, invalid result"
)

// ---------- formatting literals ----------

const (
	_fmtOpen  = "["
	_fmtClose = "]"
	_fmtSep   = ", "
)

// Vector is a fixed-length, mutable sequence of float64 values.
//   - size is fixed at construction.
//   - data has exactly size initialized slots while the vector is live.
//   - released marks the end of life; data is dropped at that point.
//
// A Vector is not safe for concurrent use without external locking.
type Vector struct {
	size     int       // element count (>= 0)
	data     []float64 // owned buffer, len == size while live
	released bool      // set once by Release (or a tier-1 failure)
	opts     options   // resolved configuration, inherited by results
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Vector)(nil)

// New allocates a zero-filled vector of the given length.
// MAIN DESCRIPTION:
//   - Public constructor; size 0 is legal and yields an empty vector.
//
// Implementation:
//   - Stage 1: resolve options over the defaults.
//   - Stage 2: allocate the buffer (make zero-fills it).
//
// Behavior highlights:
//   - Panics on negative size, like make: that is a programmer error,
//     not a runtime condition.
//
// Complexity:
//   - Time O(n), Space O(n).
func New(size int, opts ...Option) *Vector {
	if size < 0 {
		panic(panicNegativeSize)
	}

	return &Vector{
		size: size,
		data: make([]float64, size),
		opts: gatherOptions(opts...),
	}
}

// FromSlice builds a vector holding a copy of xs.
// Complexity: O(n).
func FromSlice(xs []float64, opts ...Option) *Vector {
	v := New(len(xs), opts...)
	copy(v.data, xs)

	return v
}

// derive allocates a zero-filled vector of length n with v's configuration.
func (v *Vector) derive(n int) *Vector {
	return &Vector{
		size: n,
		data: make([]float64, n),
		opts: v.opts,
	}
}

// Size returns the element count. A nil or released vector reports 0.
// Complexity: O(1).
func (v *Vector) Size() int {
	if v == nil {
		return 0
	}

	return v.size
}

// Released reports whether the vector has been released.
func (v *Vector) Released() bool { return v != nil && v.released }

// Get returns the element at index.
// MAIN DESCRIPTION:
//   - Bounds-checked read with the fail-and-destroy policy.
//
// Implementation:
//   - Stage 1: reject a released receiver (tier 1, nothing left to free).
//   - Stage 2: on index outside [0,size) report, release, return *IndexError.
//   - Stage 3: load from the buffer.
//
// Behavior highlights:
//   - On failure the returned value is the 0 sentinel and the vector is
//     released; errors.Is(err, ErrConsumed) is true.
//
// Errors:
//   - *IndexError wrapping ErrIndexOutOfRange or ErrReleased.
//   - ErrNilVector for a nil receiver.
//
// Complexity:
//   - Time O(1), Space O(1).
func (v *Vector) Get(index int) (float64, error) {
	if v == nil {
		return 0, ErrNilVector
	}
	if err := v.check(ctxGet, index); err != nil {
		return 0, err
	}

	return v.data[index], nil
}

// Set writes value at index, mutating the vector in place.
// Same failure policy as Get: an invalid index releases the vector.
// Complexity: O(1).
func (v *Vector) Set(index int, value float64) error {
	if v == nil {
		return ErrNilVector
	}
	if err := v.check(ctxSet, index); err != nil {
		return err
	}
	v.data[index] = value

	return nil
}

// check validates index for op and applies the tier-1 policy on violation.
func (v *Vector) check(op string, index int) error {
	if v.released {
		v.opts.log.Report(msgUseAfterRelease, diag.KeyOp, op, diag.KeyIndex, index)
		return &IndexError{Op: op, Index: index, Size: 0, Err: ErrReleased}
	}
	if index < 0 || index >= v.size {
		return v.fail(op, index)
	}

	return nil
}

// fail reports an index violation and releases the vector.
// The vector is invalid from here on; the returned error says so.
func (v *Vector) fail(op string, index int) error {
	size := v.size
	v.opts.log.Report(msgIndexOutOfRange, diag.KeyOp, op, diag.KeyIndex, index, diag.KeySize, size)
	v.Release()

	return &IndexError{Op: op, Index: index, Size: size, Err: ErrIndexOutOfRange}
}

// Release drops the backing buffer. The vector must not be used afterwards.
// Releasing twice, or releasing nil, is a no-op.
// Complexity: O(1).
func (v *Vector) Release() {
	if v == nil || v.released {
		return
	}
	v.data = nil
	v.size = 0
	v.released = true
}

// Data returns a copy of the elements. The vector keeps its own buffer.
// Complexity: O(n).
func (v *Vector) Data() []float64 {
	if v == nil {
		return nil
	}
	out := make([]float64, v.size)
	copy(out, v.data)

	return out
}

// Clone returns an independent copy with the same configuration.
// A nil receiver yields nil; a released one is reported and yields nil.
// Complexity: O(n).
func (v *Vector) Clone() *Vector {
	if v == nil {
		return nil
	}
	if v.released {
		v.opts.log.Report(msgUseAfterRelease, diag.KeyOp, ctxClone)
		return nil
	}
	out := v.derive(v.size)
	copy(out.data, v.data)

	return out
}

// String renders the vector as "[1, 2.5, 3]" using %g.
// Intended for debugging; not for hot paths.
func (v *Vector) String() string {
	if v == nil {
		return "<nil>"
	}
	if v.released {
		return "<released>"
	}

	var b strings.Builder
	b.WriteString(_fmtOpen)
	for i, x := range v.data {
		if i > 0 {
			b.WriteString(_fmtSep)
		}
		fmt.Fprintf(&b, "%g", x)
	}
	b.WriteString(_fmtClose)

	return b.String()
}

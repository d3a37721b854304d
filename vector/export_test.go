// SPDX-License-Identifier: MIT

package vector

// Test bridge for unexported policy details. Compiled only with tests.

const (
	PanicThresholdInvalid_TestOnly = panicThresholdInvalid
	PanicNegativeSize_TestOnly     = panicNegativeSize
)

// LoopWorkers_TestOnly reports how many workers an elementwise loop of
// length n over v would use.
func LoopWorkers_TestOnly(v *Vector, n int) int {
	return v.opts.loopWorkers(n)
}

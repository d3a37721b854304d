// SPDX-License-Identifier: MIT

// Package parallel runs index-range loops either inline or split across a
// bounded set of goroutines.
//
// The runner only partitions [0,n) into disjoint contiguous chunks; callers
// must write to disjoint indices so the result is independent of scheduling.
package parallel

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// MinChunk is the smallest chunk handed to a worker. Ranges shorter than
// 2*MinChunk always run inline.
const MinChunk = 1024

// Workers normalizes a requested worker count: values <= 0 mean GOMAXPROCS.
func Workers(n int) int {
	if n <= 0 {
		return runtime.GOMAXPROCS(0)
	}

	return n
}

// For calls body over [0,n) in contiguous chunks [lo,hi).
// Complexity: O(n) total work; O(workers) goroutines at most.
func For(n, workers int, body func(lo, hi int)) {
	if n <= 0 {
		return
	}
	if workers <= 1 || n < 2*MinChunk {
		body(0, n)
		return
	}

	chunk := (n + workers - 1) / workers
	if chunk < MinChunk {
		chunk = MinChunk
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for lo := 0; lo < n; lo += chunk {
		lo := lo // per-iteration copy (go < 1.22 loop semantics)
		hi := min(lo+chunk, n)
		g.Go(func() error {
			body(lo, hi)
			return nil
		})
	}
	_ = g.Wait() // body never fails
}

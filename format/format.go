// SPDX-License-Identifier: MIT

// Package format holds small text helpers used when composing diagnostics.
package format

import "strconv"

// Utoa renders a non-negative integer as decimal text, e.g. 1024 → "1024".
// Zero renders as "0".
// Complexity: O(digits).
func Utoa(n uint64) string {
	return strconv.FormatUint(n, 10)
}

// Itoa is Utoa for int indices. Negative values are rendered with a sign,
// which only happens when reporting a caller's invalid index.
func Itoa(n int) string {
	if n < 0 {
		return "-" + Utoa(uint64(-n))
	}

	return Utoa(uint64(n))
}

// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the comparison surface for Dense: exact equality and
//     tolerance-based closeness.
//
// Determinism & Performance:
//   - Pure reads, fixed flat traversal, zero allocations.
//   - Both predicates short-circuit on the first violating element.

package matrix

import "math"

// Equal reports whether o has the same shape and exactly the same elements
// as the receiver (bitwise-value equality via ==).
//
// Behavior highlights:
//   - nil and shape-mismatched operands compare unequal, not erroneous:
//     comparison is a query, not an operation that can corrupt state.
//   - NaN != NaN per IEEE 754, so a matrix holding NaN is not Equal to its
//     own Clone; use AllClose with an explicit policy if that matters.
//
// Complexity: O(r*c), short-circuiting.
func (m *Dense) Equal(o *Dense) bool {
	if o == nil || m.r != o.r || m.c != o.c {
		return false
	}
	for idx := range m.data {
		if m.data[idx] != o.data[idx] {
			return false
		}
	}

	return true
}

// AllClose reports whether o has the same shape and every element within
// eps of the receiver's: |m[i] - o[i]| <= eps for all flat i.
//
// Behavior highlights:
//   - A negative eps is folded to its absolute value; DefaultEpsilon is a
//     reasonable bound for accumulated rounding error in small pipelines.
//   - The comparison is written so a NaN difference fails (NaN <= eps is
//     false), matching Equal's strictness on non-finite data.
//
// Complexity: O(r*c), short-circuiting.
func (m *Dense) AllClose(o *Dense, eps float64) bool {
	if o == nil || m.r != o.r || m.c != o.c {
		return false
	}
	if eps < 0 {
		eps = -eps
	}
	for idx := range m.data {
		if !(math.Abs(m.data[idx]-o.data[idx]) <= eps) {
			return false
		}
	}

	return true
}

// SPDX-License-Identifier: MIT

// Package matrix - in-place mutation surface: bulk ingestion (Assign/SetData),
// element transforms (Apply/Fill/Zero) and randomization.
//
// Purpose:
//   - Keep every mutator chainable: each returns the receiver, so pipelines
//     read left to right (m.Zero().Randomize().Scale(2)).
//   - Guarantee all-or-nothing semantics on the fallible paths: shape and
//     numeric policy are validated BEFORE the first write.
//
// Determinism & Performance:
//   - Flat 0..n-1 traversal everywhere; no hidden allocations beyond the
//     single buffer copy in Assign/SetData.
//
// AI-Hints:
//   - Apply closes over the receiver if the transform needs neighboring
//     elements; snapshot with Clone first when the transform must read
//     pre-update values.

package matrix

import (
	"fmt"
	"math"
	"math/rand"
)

// Assign overwrites the receiver's buffer with a deep copy of src's.
//
// Implementation:
//   - Stage 1 (Validate): ValidateBinarySameShape(m, src); numeric policy scan.
//   - Stage 2 (Execute): copy src.data into the receiver's buffer.
//
// Behavior highlights:
//   - Reject-and-leave-unmodified: any failure returns before the first write.
//   - No aliasing: the receiver keeps its own buffer, elements are copied.
//
// Errors:
//   - ErrNilMatrix          (src is nil).
//   - ErrDimensionMismatch  (shapes differ; both shapes are in the message).
//   - ErrNaNInf             (src holds non-finite values under the policy).
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense) Assign(src *Dense) (*Dense, error) {
	// Validate presence and matching shapes; mismatches report both shapes.
	if err := ValidateBinarySameShape(m, src); err != nil {
		return nil, wrapBinaryShapeErr(opAssign, m, src, err)
	}
	// Numeric policy: scan BEFORE mutating so a rejection leaves m untouched.
	if m.validateNaNInf {
		if err := validateFinite(opAssign, src.data); err != nil {
			return nil, err
		}
	}
	copy(m.data, src.data) // deep element copy; buffers stay distinct

	return m, nil
}

// SetData overwrites the receiver's buffer with a copy of the raw flat
// sequence buf, interpreted in row-major order against the CURRENT shape.
//
// Implementation:
//   - Stage 1 (Validate): len(buf) must equal rows*cols; numeric policy scan.
//   - Stage 2 (Execute): copy buf into the receiver's buffer.
//
// Behavior highlights:
//   - A length mismatch is a hard error, symmetric with Assign: shape
//     metadata and buffer length never drift apart, so the row-major
//     invariant len(data) == rows*cols holds unconditionally.
//   - The input slice is copied, never retained.
//
// Errors:
//   - ErrDimensionMismatch (len(buf) != rows*cols; both sizes in the message).
//   - ErrNaNInf            (buf holds non-finite values under the policy).
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense) SetData(buf []float64) (*Dense, error) {
	// Validate length against the current shape; never accept a drifted buffer.
	if len(buf) != len(m.data) {
		return nil, fmt.Errorf("%s: len %d != %dx%d (%d): %w",
			opSetData, len(buf), m.r, m.c, len(m.data), ErrDimensionMismatch)
	}
	// Numeric policy: scan BEFORE mutating so a rejection leaves m untouched.
	if m.validateNaNInf {
		if err := validateFinite(opSetData, buf); err != nil {
			return nil, err
		}
	}
	copy(m.data, buf) // copy, never alias caller storage

	return m, nil
}

// validateFinite scans vals and returns ErrNaNInf (with the offending flat
// index) on the first non-finite entry. Used by ingestion under the policy.
// Complexity: O(n).
func validateFinite(tag string, vals []float64) error {
	for idx, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s: index %d: %w", tag, idx, ErrNaNInf)
		}
	}

	return nil
}

// Apply replaces every element with f(v, i) where i is the element's flat
// row-major index. Eager, left-to-right over increasing i; deterministic.
//
// Behavior highlights:
//   - Infallible and chainable; arithmetic results (including NaN/Inf)
//     are stored as produced — the ingestion policy does not apply to
//     transforms, mirroring Scale and Mul.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense) Apply(f func(v float64, i int) float64) *Dense {
	for idx := range m.data { // fixed increasing flat order
		m.data[idx] = f(m.data[idx], idx)
	}

	return m
}

// Randomize fills every element with an independent uniform draw from [0, 1).
// The source is the one installed via WithRand (reproducible when seeded),
// falling back to math/rand's shared source otherwise.
// Complexity: O(r*c).
func (m *Dense) Randomize() *Dense {
	var idx int
	n := len(m.data)
	// Branch once, not per element.
	if m.rng != nil {
		for idx = 0; idx < n; idx++ {
			m.data[idx] = m.rng.Float64()
		}

		return m
	}
	for idx = 0; idx < n; idx++ {
		m.data[idx] = rand.Float64()
	}

	return m
}

// Fill sets every element to v. Chainable. Complexity: O(r*c).
func (m *Dense) Fill(v float64) *Dense {
	for idx := range m.data {
		m.data[idx] = v
	}

	return m
}

// Zero resets every element to 0, restoring the freshly-constructed state.
// Chainable. Complexity: O(r*c).
func (m *Dense) Zero() *Dense { return m.Fill(0) }

// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Enforce the numeric policy (optional rejection of NaN/Inf at ingestion)
//     from a single source of truth (options.go).
//
// AI-Hints:
//   - Hot kernels (impl_linear_algebra.go) operate on the flat data slice directly;
//     use At/Set only at the public surface or in generic glue.
//   - A zero dimension is legal: 0×n and n×0 matrices carry empty buffers and
//     every kernel remains well-defined on them.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); String: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Stable, human-friendly messages; preserves the sentinel via %w.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols), both >= 0.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//     The buffer is exclusively owned: Clone/Assign/SetData copy, never alias.
//   - rng is the pluggable randomness source for Randomize (nil = stdlib default).
//   - validateNaNInf enables NaN/Inf rejection at ingestion (policy default from options.go).
type Dense struct {
	r, c           int        // row and column counts (>= 0)
	data           []float64  // contiguous row-major storage (len == r*c)
	rng            *rand.Rand // randomness source; nil falls back to rand.Float64
	validateNaNInf bool       // numeric guard: reject NaN/Inf at ingestion when true
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates a rows×cols zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1 (Validate): rows >= 0 && cols >= 0; else ErrInvalidDimensions.
//   - Stage 2 (Prepare): allocate the flat buffer; make() zero-fills it.
//   - Stage 3 (Finalize): apply options and return.
//
// Behavior highlights:
//   - No panics on user errors; returns sentinel errors.
//   - Zero dimensions are legal and produce an empty buffer (len == 0).
//
// Returns:
//   - *Dense: newly allocated matrix, or ErrInvalidDimensions on negatives.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	// Validate shape; zero is allowed, negatives are not.
	if err := validateShape(rows, cols); err != nil {
		return nil, err
	}
	// Allocate a contiguous flat buffer; make() zero-fills it deterministically.
	m := &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols),
		validateNaNInf: DefaultValidateNaNInf,
	}
	// Apply functional options (rand source, numeric policy).
	for _, opt := range opts {
		opt(m)
	}

	return m, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// Size returns the total element count rows*cols (== len of the flat buffer).
// Complexity: O(1).
func (m *Dense) Size() int { return len(m.data) }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Returns the plain sentinel; public methods (At/Set) wrap it with
// coordinates and method name.
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range; returns a wrapped sentinel.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
//
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: enforce numeric policy (reject NaN/±Inf when enabled).
//   - Stage 3: write into the flat buffer.
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf under the finite-only policy.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err) // wrap with context
	}
	// Numeric policy: optional finite-only enforcement at ingestion.
	if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v // direct flat write

	return nil
}

// Clone returns a deep copy (new buffer, same rand source and numeric policy).
// Independence: mutating the clone never affects the original, and vice versa.
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data)) // allocate same length
	copy(cp, m.data)                   // deep copy elements

	return &Dense{
		r:              m.r,
		c:              m.c,
		data:           cp,
		rng:            m.rng,            // share the source; streams stay independent per call
		validateNaNInf: m.validateNaNInf, // preserve guard policy
	}
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Read-only visitor; stops early when f returns false. Deterministic i→j
// order; no allocations.
// Complexity: Time O(r*c), Space O(1).
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j, base int // predeclare loop counters and base offset

	for i = 0; i < m.r; i++ { // iterate rows deterministically
		base = i * m.c            // flat base offset for row i
		for j = 0; j < m.c; j++ { // iterate columns
			if !f(i, j, m.data[base+j]) { // invoke callback; stop if it returns false
				return // early exit requested by caller
			}
		}
	}
}

// String provides a readable row-wise dump for diagnostics.
// Not for hot paths; intended for logs and debugging.
// Complexity: O(r*c) for formatting.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen) // open row
		base = i * m.c
		for j = 0; j < m.c; j++ { // iterate cols
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep) // separate values with comma + space
			}
		}
		b.WriteString(_fmtRowClose) // close row
	}

	return b.String()
}

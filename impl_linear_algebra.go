// SPDX-License-Identifier: MIT
// Package matrix provides the in-place linear-algebra kernels for Dense:
// element-wise addition, subtraction and Hadamard product, scalar scaling,
// matrix multiplication, transpose and matrix-vector product. All kernels
// perform strict fail-fast validation and return clear errors on dimension
// violations; on failure the receiver is left exactly as it was.
//
// Purpose:
//   - Declare the canonical kernels and their operation tags in one file.
//   - Keep every loop order fixed so floating-point results are reproducible
//     bit-for-bit across runs.
//
// Notes:
//   - All kernels use the central validators and wrap sentinels with the
//     operation tag (and both shapes, where two shapes are involved).
//   - The shape-changing kernels (Mul, Transpose) replace buffer and shape
//     together, so len(data) == rows*cols is never observably violated.

package matrix

import (
	"errors"
	"fmt"
)

// ZeroSum is the initial accumulator value for dot-product style loops.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic
// strings. Only fallible kernels need a tag: Scale, Transpose, Apply and the
// bulk fills have no error path.
const (
	opAssign   = "Assign"
	opSetData  = "SetData"
	opAdd      = "Add"
	opSub      = "Sub"
	opHadamard = "Hadamard"
	opMul      = "Mul"
	opMulVec   = "MulVec"
)

// matrixErrorf wraps err with an operation tag, preserving the original error
// via %w. The wrapper keeps a stable "Op: underlying" shape for uniform
// reporting. Use only when err != nil.
// Complexity: O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// shapeErrorf wraps err with an operation tag and both operand shapes, so a
// dimension violation reports everything needed to diagnose the call site:
// "Mul: 2x3 vs 2x2: ...". Preserves the sentinel via %w.
// Complexity: O(1).
func shapeErrorf(tag string, ar, ac, br, bc int, err error) error {
	return fmt.Errorf("%s: %dx%d vs %dx%d: %w", tag, ar, ac, br, bc, err)
}

// wrapBinaryShapeErr dispatches a ValidateBinarySameShape failure into the
// uniform wrappers: dimension violations carry both shapes (a mismatch
// implies o is non-nil, so its shape is safe to read), everything else gets
// the plain operation tag.
// Complexity: O(1).
func wrapBinaryShapeErr(tag string, m, o *Dense, err error) error {
	if errors.Is(err, ErrDimensionMismatch) {
		return shapeErrorf(tag, m.r, m.c, o.r, o.c, err)
	}

	return matrixErrorf(tag, err)
}

// addSub computes elementwise m[i] = m[i] + sign*o[i] for sign ∈ {+1, -1}.
// Internal helper for Add/Sub to share validation and the hot loop.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(m, o).
//   - Stage 2: single flat loop 0..n-1 over both buffers.
//
// Behavior highlights:
//   - Operates fully in place; no allocation.
//   - o == m is legal (doubling / self-cancellation) since reads and writes
//     land on the same index.
//   - Keeping `sign` as a float avoids an extra branch in the hot loop;
//     negation is exact in IEEE 754, so Sub costs no precision.
//
// Inputs:
//   - o: conformable matrix (non-nil; same rows/cols).
//   - sign: +1 for Add, −1 for Sub (callers must enforce).
//   - opTag: opAdd for Add, opSub for Sub (for error wrapping).
//
// Errors:
//   - ErrNilMatrix         (o is nil).
//   - ErrDimensionMismatch (shapes differ; both shapes in the message).
//
// Determinism:
//   - Single flat slice walk 0..(r*c−1).
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense) addSub(o *Dense, sign float64, opTag string) (*Dense, error) {
	// Validate presence and matching shapes; mismatches report both shapes.
	if err := ValidateBinarySameShape(m, o); err != nil {
		return nil, wrapBinaryShapeErr(opTag, m, o, err)
	}

	// Hot loop: deterministic 0..n-1 over the flat buffers.
	n := len(m.data)
	for idx := 0; idx < n; idx++ {
		m.data[idx] += sign * o.data[idx]
	}

	return m, nil
}

// Add computes the element-wise sum m[i,j] += o[i,j] in place and returns
// the receiver for chaining.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch; the receiver is unmodified on error.
//
// Complexity:
//   - Time O(r*c), Space O(1). Bandwidth-bound.
func (m *Dense) Add(o *Dense) (*Dense, error) { return m.addSub(o, +1, opAdd) }

// Sub computes the element-wise difference m[i,j] -= o[i,j] in place and
// returns the receiver for chaining. Exact inverse of Add over identical
// operands (negation is exact in IEEE 754).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch; the receiver is unmodified on error.
//
// Complexity:
//   - Time O(r*c), Space O(1). Bandwidth-bound.
func (m *Dense) Sub(o *Dense) (*Dense, error) { return m.addSub(o, -1, opSub) }

// Hadamard computes the element-wise product m[i,j] *= o[i,j] in place
// (a ⊙ b, NOT matrix multiplication — use Mul for that).
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(m, o).
//   - Stage 2: single flat loop 0..n-1.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch; the receiver is unmodified on error.
//
// Determinism:
//   - Flat 0..(r*c−1); results stable across runs.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense) Hadamard(o *Dense) (*Dense, error) {
	// Validate presence and matching shapes; mismatches report both shapes.
	if err := ValidateBinarySameShape(m, o); err != nil {
		return nil, wrapBinaryShapeErr(opHadamard, m, o, err)
	}

	// Hot loop: element-wise product on the flat buffers.
	n := len(m.data)
	for idx := 0; idx < n; idx++ {
		m.data[idx] *= o.data[idx]
	}

	return m, nil
}

// Scale multiplies every element by alpha in place and returns the receiver.
//
// Behavior highlights:
//   - No failure mode: any float64 is accepted, NaN and ±Inf propagate per
//     IEEE 754 (e.g. Scale(0) turns an Inf entry into NaN, not 0).
//   - alpha == 0 on finite data yields an explicit zero matrix.
//
// Determinism:
//   - Single flat loop, order independent of values.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense) Scale(alpha float64) *Dense {
	for idx := range m.data {
		m.data[idx] *= alpha
	}

	return m
}

// Mul overwrites the receiver with the matrix product m × o.
//
// Implementation:
//   - Stage 1: ValidateNotNil(o), ValidateMulCompatible(m, o): m.Cols == o.Rows.
//   - Stage 2: compute into a fresh buffer with the i→k→j loop order and
//     row-major strides.
//   - Stage 3: replace buffer and column count together (rows are unchanged,
//     since the product has m.Rows() rows).
//
// Behavior highlights:
//   - Asymmetric in-place semantics: the receiver BECOMES the product and may
//     change shape (rows×o.Cols). Use Clone().Mul(o) to keep the original.
//   - o == m is legal for square matrices (the product is accumulated into a
//     fresh buffer, so reads never see partial writes).
//   - For a fixed output cell (i,j) the accumulation runs over strictly
//     increasing k; i→k→j preserves that order while touching both operands
//     row-wise, so the result is bit-identical to the textbook i→j→k loop.
//   - No zero-skip shortcut: skipping m[i,k] == 0 would silently drop the
//     0*Inf = NaN contributions IEEE 754 mandates.
//
// Errors:
//   - ErrNilMatrix              (o is nil).
//   - ErrIncompatibleDimensions (m.Cols != o.Rows; both shapes in the message).
//
// Determinism:
//   - Fixed i→k→j loops; accumulation order per cell is increasing k.
//
// Complexity:
//   - Time O(r*n*c) for (r×n)·(n×c), Space O(r*c) for the new buffer.
//
// AI-Hints:
//   - Mul allocates one output buffer per call; hoist repeated products out
//     of tight loops when the operands do not change.
func (m *Dense) Mul(o *Dense) (*Dense, error) {
	// Validate argument presence.
	if err := ValidateNotNil(o); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	// Validate inner dimensions; report both shapes on violation.
	if err := ValidateMulCompatible(m, o); err != nil {
		return nil, shapeErrorf(opMul, m.r, m.c, o.r, o.c, err)
	}

	// Compute into a fresh buffer: the receiver's shape changes on success,
	// and a fresh target also makes self-multiplication safe.
	rows, inner, cols := m.r, m.c, o.c
	out := make([]float64, rows*cols)

	var (
		i, j, k          int // loop iterators (fixed order)
		rowA, rowB, rowO int // row base offsets
		av               float64
	)
	for i = 0; i < rows; i++ {
		rowA = i * inner // base of row i in m
		rowO = i * cols  // base of row i in the output
		for k = 0; k < inner; k++ {
			av = m.data[rowA+k]
			rowB = k * cols // base of row k in o
			for j = 0; j < cols; j++ {
				// out[i,j] accumulates m[i,k]*o[k,j] in increasing k.
				out[rowO+j] += av * o.data[rowB+j]
			}
		}
	}

	// Replace buffer and shape together: rows stay, cols become o's.
	m.data = out
	m.c = cols

	return m, nil
}

// Transpose overwrites the receiver with its mathematical transpose, laid
// out row-major in the swapped shape.
//
// Implementation:
//   - Stage 1: build a fresh buffer with out[j*rows+i] = data[i*cols+j].
//   - Stage 2: swap the row and column counts together with the buffer.
//
// Behavior highlights:
//   - No failure mode: well-defined for every non-negative shape, including
//     0×n and n×0 (empty buffer, counts still swap).
//   - Pure data movement, no arithmetic: Transpose()∘Transpose() restores
//     the original exactly.
//
// Determinism:
//   - Fixed i→j traversal of the source.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new buffer.
func (m *Dense) Transpose() *Dense {
	out := make([]float64, len(m.data))

	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			// data[i*cols + j] → out[j*rows + i]
			out[j*m.r+i] = m.data[base+j]
		}
	}

	// Replace buffer and shape atomically (single-threaded contract).
	m.data = out
	m.r, m.c = m.c, m.r

	return m
}

// MulVec computes y = m * x for a column vector x. The receiver is NOT
// mutated; the result is a fresh vector of length m.Rows().
//
// Contract: len(x) == m.Cols(). Fixed i→j loop order, one pass per row over
// the flat buffer; no zero-skip, so NaN/Inf in either operand propagate.
//
// Errors:
//   - ErrNilMatrix              (x is nil).
//   - ErrIncompatibleDimensions (len(x) != m.Cols()).
//
// Complexity:
//   - Time O(r*c), Space O(r) for y.
func (m *Dense) MulVec(x []float64) ([]float64, error) {
	// Validate x is non-nil and matches the column count.
	if err := ValidateVecLen(x, m.c); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}

	y := make([]float64, m.r) // allocate exactly rows outputs

	var i, j, base int
	var acc float64
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		acc = ZeroSum             // reset accumulator per row
		base = i * m.c            // flat base offset for row i
		for j = 0; j < m.c; j++ { // iterate columns in increasing j
			acc += m.data[base+j] * x[j]
		}
		y[i] = acc
	}

	return y, nil
}

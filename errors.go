// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No operation panics on user-triggered error conditions;
// panics are reserved for programmer errors in option constructors.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential (operation tag, offending shapes), wrap
// with fmt.Errorf("ctx: %w", ErrX) at the call site — callers will still use
// errors.Is to match.

var (
	// ErrInvalidDimensions indicates a negative row or column count was
	// requested at construction. Zero dimensions are legal (empty buffer).
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid
	// bounds. Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates unequal shapes between operands of an
	// element-wise operation (Add/Sub/Hadamard/Assign), or a raw buffer whose
	// length disagrees with rows*cols in SetData. Call sites wrap it with
	// both shapes so the message is actionable.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrIncompatibleDimensions indicates that the inner dimensions of a
	// product do not line up: Mul requires m.Cols() == o.Rows(), MulVec
	// requires len(x) == m.Cols(). Distinct from ErrDimensionMismatch so
	// callers can tell "shapes must be equal" from "shapes must chain".
	ErrIncompatibleDimensions = errors.New("matrix: incompatible inner dimensions")

	// ErrNaNInf signals a NaN or ±Inf value was rejected at an ingestion
	// point (Set/SetData/Assign) while the finite-only policy is enabled.
	// Arithmetic kernels never raise it: NaN and Inf propagate per IEEE 754.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)

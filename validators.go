// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Keep kernels minimal by delegating shape/nil checks here.
//   - Return plain sentinel errors (no shape details) so call sites can wrap
//     uniformly with the operation tag and both offending shapes.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.
//
// Note:
//   - Each composite validator follows a fixed sequence (e.g. NotNil → Shape).
//   - Validators never mutate anything: kernels rely on that to guarantee
//     all-or-nothing semantics (validate fully, then mutate).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateShape ensures a requested (rows, cols) pair is non-negative.
// Zero is legal on either axis. Complexity: O(1).
func validateShape(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return validatorErrorf("validateShape", ErrInvalidDimensions)
	}

	return nil
}

// ValidateNotNil ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix) // single source of truth for "nil argument"
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
//
// Implementation: assumes a and b are not nil (caller must ensure).
// Returns nil or wrapped ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape(a, b *Dense) error {
	if a.r != b.r {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.c != b.c {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible ensures the product a×b is defined: a.Cols == b.Rows.
//
// Implementation: assumes a and b are not nil (caller must ensure).
// Returns nil or wrapped ErrIncompatibleDimensions.
// Complexity: O(1).
func ValidateMulCompatible(a, b *Dense) error {
	if a.c != b.r {
		return validatorErrorf("ValidateMulCompatible", ErrIncompatibleDimensions)
	}

	return nil
}

// ValidateBinarySameShape — composite: NotNil(a) → NotNil(b) → SameShape.
//
// Errors: combines ErrNilMatrix and ErrDimensionMismatch.
// Complexity: O(1).
func ValidateBinarySameShape(a, b *Dense) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// A product against a vector is still a product, so length violations
// surface as ErrIncompatibleDimensions (same family as Mul).
// Complexity: O(1).
func ValidateVecLen(x []float64, n int) error {
	// Disallow nil vectors to avoid subtle bugs in MulVec-like routines.
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix) // reuse the existing sentinel for "nil argument"
	}
	// Check the exact expected length.
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrIncompatibleDimensions)
	}

	return nil
}

// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Dense construction and
// numeric policy. This file defines:
//   - Option (functional options applied by NewDense),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values).
//
// Design goals:
//   - Deterministic behavior: no global state beyond the stdlib rand default,
//     no implicit randomness once WithRand is supplied.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - The finite-only policy guards INGESTION (Set/SetData/Assign), never
//     arithmetic: Scale/Mul/Apply must let NaN and Inf propagate per IEEE 754,
//     so a matrix with the policy enabled can still come to hold non-finite
//     values through arithmetic. The policy is a gate on external data, not a
//     global invariant.

package matrix

import "math/rand"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the non-negative tolerance used by AllClose when
	// callers have no better bound for their accumulated rounding error.
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles finite-only validation at ingestion.
	// Off by default: ingestion of NaN/Inf is legal unless explicitly gated.
	DefaultValidateNaNInf = false
)

// ---------- Internal panic messages (no magic strings) ----------

const panicNilRand = "matrix: WithRand: source must be non-nil"

// ---------- Public option type (functional) ----------

// Option configures a Dense at construction time. Safe to apply repeatedly
// (idempotent). Constructors MUST panic only on nonsensical values.
type Option func(*Dense)

// WithRand installs rng as the matrix's randomness source for Randomize.
// Passing a seeded *rand.Rand makes Randomize fully reproducible.
// Panics if rng is nil (programmer error, not a runtime condition).
func WithRand(rng *rand.Rand) Option {
	if rng == nil {
		panic(panicNilRand)
	}

	return func(m *Dense) { m.rng = rng }
}

// WithValidateNaNInf enables the finite-only ingestion policy: Set, SetData
// and Assign reject NaN and ±Inf with ErrNaNInf instead of storing them.
func WithValidateNaNInf() Option {
	return func(m *Dense) { m.validateNaNInf = true }
}

// WithNoValidateNaNInf disables the finite-only ingestion policy (the
// default). Kept explicit so call sites can document intent symmetrically.
func WithNoValidateNaNInf() Option {
	return func(m *Dense) { m.validateNaNInf = false }
}

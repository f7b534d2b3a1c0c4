// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Dense construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - gatherOptions helper (internal) that resolves setters over defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//
// Notes:
//   - The numeric guard only affects writes through Set and Apply. Operators
//     never consult it: Pow and the arithmetic kernels follow the element
//     type's own NaN/Inf rules, and their results carry the default policy.
package matrix

// ---------- Defaults (single source of truth) ----------

// DefaultValidateNaNInf toggles strict finite-value validation on Set/Apply.
// Off by default so that NaN produced by the caller's data flows through like
// any other value.
const DefaultValidateNaNInf = false

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option` and resolve
// them via gatherOptions.
type Options struct {
	validateNaNInf bool // DefaultValidateNaNInf
}

// ValidateNaNInf reports whether the resolved configuration rejects NaN/±Inf writes.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// WithValidateNaNInf enables the finite-only guard: Set and Apply return
// ErrNaNInf instead of storing NaN or ±Inf.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - Integer element types can never hold NaN/Inf, so the guard is inert for them.
func WithValidateNaNInf() Option {
	return func(o *Options) {
		o.validateNaNInf = true
	}
}

// WithNoValidateNaNInf disables the finite-only guard (the default).
func WithNoValidateNaNInf() Option {
	return func(o *Options) {
		o.validateNaNInf = false
	}
}

// NewMatrixOptions resolves the given setters over the documented defaults.
// Implementation:
//   - Stage 1: start from defaults.
//   - Stage 2: apply setters in order (last-writer-wins).
//
// Returns:
//   - Options: effective configuration snapshot.
//
// Complexity:
//   - Time O(k), Space O(1) for k=len(opts).
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user-provided Option setters on top of defaults.
// Nil setters are skipped so optional call sites can pass them unguarded.
func gatherOptions(user ...Option) Options {
	o := Options{
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, set := range user {
		if set == nil {
			continue
		}
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}

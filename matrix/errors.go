// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels (possibly wrapped) and
// tests MUST check them via errors.Is. No operation panics on user-triggered
// error conditions; the unchecked accessors are the single documented exception.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." so the origin is obvious in
// logs. Kernels wrap with an operation tag ("Mul: matrix: dimension mismatch"),
// callers match with errors.Is.

var (
	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Checked accessors (At/Set/Ref) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub with different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrInvalidDimensions indicates that a requested shape cannot be allocated:
	// a negative dimension, or rows*cols overflowing the addressable length.
	ErrInvalidDimensions = errors.New("matrix: invalid dimensions")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNaNInf signals a NaN or ±Inf value where the numeric guard requires
	// finite values (Set/Apply with WithValidateNaNInf, AllClose tolerances).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)

// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set/Ref return errors instead of panicking.
//   - Offer an explicitly named unchecked fast path (AtUnchecked/SetUnchecked) for
//     callers that already proved the bounds.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set/Ref: O(1); Clone/CopyFrom: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"unsafe"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"       // method tag used in error wrappers
	ctxSet      = "Set"      // method tag used in error wrappers
	ctxRef      = "Ref"      // method tag used in error wrappers
	ctxApply    = "Apply"    // method tag used in error wrappers
	ctxCopyFrom = "CopyFrom" // method tag used in error wrappers
)

// maxBufferBytes caps a single Dense allocation at the platform's addressable
// length (math.MaxInt bytes on 32-bit, the runtime's 2^47 heap limit on 64-bit).
// Larger requests are rejected up front instead of panicking inside make().
const maxBufferBytes = min(math.MaxInt, 1<<47)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
//
// Inputs:
//   - method: context tag (ctxAt/ctxSet/ctxRef/...)
//   - row, col: coordinates
//   - err: sentinel (e.g., ErrOutOfRange, ErrNaNInf)
//
// Returns:
//   - error: "Dense.<method>(row,col): <sentinel>", still matching errors.Is.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols), both >= 0.
//   - data is a flat buffer of length exactly r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables optional NaN/Inf rejection in Set/Apply.
type Dense[T Element] struct {
	r, c           int  // row and column counts (>=0)
	data           []T  // contiguous row-major storage (len == r*c)
	validateNaNInf bool // numeric guard: reject NaN/Inf in Set when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix[float64] = (*Dense[float64])(nil)
	_ Matrix[int]     = (*Dense[int])(nil)
	_ fmt.Stringer    = (*Dense[float64])(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with shape validation and numeric policy.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0 and that rows*cols is addressable.
//   - Stage 2: allocate a zero-filled buffer of exactly rows*cols elements.
//   - Stage 3: resolve options (numeric guard).
//
// Behavior highlights:
//   - Zero-sized shapes (0×N, N×0) are legal and own an empty buffer.
//   - No panics on user errors; returns sentinel errors.
//
// Inputs:
//   - rows, cols: non-negative dimensions.
//   - opts: functional options (WithValidateNaNInf, ...).
//
// Returns:
//   - *Dense: newly allocated matrix.
//
// Errors:
//   - ErrInvalidDimensions (negative dimension or size overflow).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense[T Element](rows, cols int, opts ...Option) (*Dense[T], error) {
	n, err := bufferLen[T](rows, cols)
	if err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)

	return &Dense[T]{
		r:              rows,
		c:              cols,
		data:           make([]T, n), // make() zero-fills deterministically
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// bufferLen returns rows*cols after checking it is a representable allocation.
func bufferLen[T Element](rows, cols int) (int, error) {
	if rows < 0 || cols < 0 {
		return 0, ErrInvalidDimensions
	}
	if rows == 0 || cols == 0 {
		return 0, nil
	}
	if rows > math.MaxInt/cols {
		return 0, ErrInvalidDimensions // rows*cols overflows int
	}
	n := rows * cols
	var zero T
	if uint64(n) > maxBufferBytes/uint64(unsafe.Sizeof(zero)) {
		return 0, ErrInvalidDimensions
	}

	return n, nil
}

// Rows returns the row count. No side effects.
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the column count. No side effects.
func (m *Dense[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Both coordinates are checked independently, so (0, cols) is rejected
// instead of aliasing (1, 0).
func (m *Dense[T]) indexOf(row, col int) (int, error) {
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
// MAIN DESCRIPTION:
//   - Safe element read at coordinates.
//
// Behavior highlights:
//   - Never panics on out-of-range; returns a wrapped sentinel.
//
// Errors:
//   - ErrOutOfRange when out of bounds.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		var zero T
		return zero, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
// MAIN DESCRIPTION:
//   - Safe element write with optional finite-only policy.
//
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: enforce numeric policy (reject NaN/±Inf when enabled).
//   - Stage 3: write into flat buffer.
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for invalid numbers under the guard.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err) // wrap with context
	}
	if m.validateNaNInf && isNonFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v // direct flat write

	return nil
}

// Ref returns a pointer to the element at (row, col) for read-modify-write
// access, or ErrOutOfRange. The pointer stays valid until the matrix buffer is
// replaced (CopyFrom or any *InPlace method).
//
// Writes through the pointer bypass the numeric guard.
func (m *Dense[T]) Ref(row, col int) (*T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return nil, denseErrorf(ctxRef, row, col, err)
	}

	return &m.data[off], nil
}

// AtUnchecked returns the element at (row, col) without bounds checking.
// The caller guarantees 0 <= row < Rows() and 0 <= col < Cols(); a column
// past the end silently reads the next row, an offset past the buffer panics.
func (m *Dense[T]) AtUnchecked(row, col int) T {
	return m.data[row*m.c+col]
}

// SetUnchecked stores v at (row, col) without bounds checking or numeric guard.
// Same caller contract as AtUnchecked.
func (m *Dense[T]) SetUnchecked(row, col int, v T) {
	m.data[row*m.c+col] = v
}

// Clone returns a deep copy (new buffer, same numeric policy).
// Mutations of the clone never affect the original.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense[T]) Clone() *Dense[T] {
	cp := make([]T, len(m.data)) // allocate same length
	copy(cp, m.data)             // deep copy

	return &Dense[T]{
		r:              m.r,
		c:              m.c,
		data:           cp,
		validateNaNInf: m.validateNaNInf, // preserve guard policy
	}
}

// CopyFrom replaces the receiver's dimensions and contents with a deep copy of
// src (whole-object assignment). Prior contents are discarded.
// MAIN DESCRIPTION:
//   - Materialize src into a fresh buffer, then swap it in.
//
// Implementation:
//   - Stage 1: validate receiver and src are non-nil.
//   - Stage 2: *Dense fast path copies the flat slice and the numeric policy;
//     other implementations are read through At in i→j order.
//   - Stage 3: swap dimensions and buffer in one step.
//
// Behavior highlights:
//   - On error the receiver is left untouched.
//   - Self-assignment is a no-op.
//
// Errors:
//   - ErrNilMatrix; any error reported by src.At.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense[T]) CopyFrom(src Matrix[T]) error {
	if m == nil {
		return matrixErrorf(ctxCopyFrom, ErrNilMatrix)
	}
	if err := ValidateNotNil(src); err != nil {
		return matrixErrorf(ctxCopyFrom, err)
	}

	// Dense fast path: one copy, policy travels with the data.
	if ds, ok := src.(*Dense[T]); ok {
		if ds == m {
			return nil
		}
		cp := ds.Clone()
		m.r, m.c, m.data, m.validateNaNInf = cp.r, cp.c, cp.data, cp.validateNaNInf

		return nil
	}

	// Generic fallback via At; receiver keeps its own policy.
	rows, cols := src.Rows(), src.Cols()
	n, err := bufferLen[T](rows, cols)
	if err != nil {
		return matrixErrorf(ctxCopyFrom, err)
	}
	buf := make([]T, n)
	var i, j int
	var v T
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = src.At(i, j)
			if err != nil {
				return matrixErrorf(ctxCopyFrom, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			buf[i*cols+j] = v
		}
	}
	m.r, m.c, m.data = rows, cols, buf

	return nil
}

// adopt replaces the receiver's shape and buffer with res, taking ownership of
// res.data. The receiver keeps its numeric policy. Used by the *InPlace methods
// after a successful out-of-place computation.
func (m *Dense[T]) adopt(res *Dense[T]) {
	m.r, m.c, m.data = res.r, res.c, res.data
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false. Read-only; no allocations.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense[T]) Do(f func(i, j int, v T) bool) {
	var i, j, base int // predeclare loop counters and base offset

	for i = 0; i < m.r; i++ { // iterate rows deterministically
		base = i * m.c            // flat base offset for row i
		for j = 0; j < m.c; j++ { // iterate columns
			if !f(i, j, m.data[base+j]) {
				return // early exit requested by caller
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in-place.
// MAIN DESCRIPTION:
//   - In-place map with policy enforcement and deterministic order.
//
// Behavior highlights:
//   - Respects validateNaNInf (rejects NaN/±Inf when enabled).
//   - Early error aborts; elements written before the error remain updated.
//
// Errors:
//   - ErrNaNInf when the transformer produced a non-finite value under the guard.
//
// Complexity:
//   - Time O(r*c), Space O(1).
//
// Notes:
//   - For all-or-nothing semantics, transform a Clone and CopyFrom it on success.
func (m *Dense[T]) Apply(f func(i, j int, v T) T) error {
	var i, j, base int
	var nv T

	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			nv = f(i, j, m.data[base+j])
			if m.validateNaNInf && isNonFinite(nv) {
				return denseErrorf(ctxApply, i, j, ErrNaNInf)
			}
			m.data[base+j] = nv
		}
	}

	return nil
}

// isNonFinite reports NaN or ±Inf. Always false for integer element types.
func isNonFinite[T Element](v T) bool {
	f := float64(v)

	return math.IsNaN(f) || math.IsInf(f, 0)
}

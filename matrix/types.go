// SPDX-License-Identifier: MIT

// Package matrix: element constraint and the Matrix interface consumed by
// every operator in the package.
package matrix

// Element is the set of numeric types a matrix may hold.
// Only signed types are admitted so that Negate never wraps around.
type Element interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Matrix represents a two-dimensional mutable array of T values.
// Operators accept any implementation; *Dense operands unlock the flat-slice
// fast path, everything else goes through At/Set.
//
// Complexity notes: all methods are expected O(1).
type Matrix[T Element] interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (T, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v T) error
}

// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Unary element-wise operators (Plus, Negate, Pow) built on one private
//     kernel (ewMap) so the tight loops are not duplicated.
//   - Comparison helpers (Equal, AllClose) used by callers and tests.
//
// Determinism & Performance:
//   - Fixed loop orders (flat 0..n-1 on *Dense, i→j otherwise).
//   - One output allocation per call; O(r*c) time and space.

package matrix

import (
	"fmt"
	"math"
)

const (
	opPlus     = "Plus"
	opNegate   = "Negate"
	opPow      = "Pow"
	opAllClose = "AllClose"
)

// ewMap computes out[i,j] = f(X[i,j]) into a fresh Dense.
// Time: O(r*c). Space: O(r*c).
func ewMap[T Element](X Matrix[T], tag string, f func(T) T) (*Dense[T], error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	r, c := X.Rows(), X.Cols()
	out, err := NewDense[T](r, c)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}

	// Dense fast-path: single pass over the flat row-major buffer.
	if d, ok := X.(*Dense[T]); ok {
		for idx, v := range d.data {
			out.data[idx] = f(v)
		}

		return out, nil
	}

	// Generic fallback via At (still deterministic).
	var v T
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, err = X.At(i, j)
			if err != nil {
				return nil, matrixErrorf(tag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			out.data[i*c+j] = f(v)
		}
	}

	return out, nil
}

// Plus is unary plus: an equal-valued, independently owned copy of m.
func Plus[T Element](m Matrix[T]) (*Dense[T], error) {
	return ewMap(m, opPlus, func(v T) T { return v })
}

// Negate returns a new matrix of the same shape with every element negated.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Negate[T Element](m Matrix[T]) (*Dense[T], error) {
	return ewMap(m, opNegate, func(v T) T { return -v })
}

// Pow raises every element to the integer power exp (element-wise, not
// repeated matrix multiplication). The shape is unchanged.
//
// Implementation:
//   - Floating-point element types go through math.Pow.
//   - Integer element types use exponentiation by squaring in T, so overflow
//     wraps exactly like repeated Mul/Scale would.
//
// Behavior highlights:
//   - No error for non-finite float results: NaN/±Inf follow math.Pow.
//   - Integer negative powers: 1^-n = 1, (-1)^-n = ±1 by parity of n,
//     every other base (0 included) yields 0.
//   - v^0 = 1 for every v, including 0 and NaN.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c*log|exp|), Space O(r*c).
func Pow[T Element](m Matrix[T], exp int) (*Dense[T], error) {
	if isIntegerElement[T]() {
		return ewMap(m, opPow, func(v T) T { return intPow(v, exp) })
	}
	e := float64(exp)

	return ewMap(m, opPow, func(v T) T { return T(math.Pow(float64(v), e)) })
}

// isIntegerElement reports whether T is one of the integer kinds of Element.
func isIntegerElement[T Element]() bool {
	one, two := T(1), T(2)

	return one/two == 0
}

// intPow computes v^exp in T's own (wrapping) arithmetic.
func intPow[T Element](v T, exp int) T {
	if exp < 0 {
		switch {
		case v == 1:
			return 1
		case v == -1:
			if exp%2 == 0 {
				return 1
			}

			return -1
		default:
			return 0
		}
	}

	result, base := T(1), v
	for e := exp; e > 0; e >>= 1 {
		if e&1 == 1 {
			result *= base
		}
		base *= base
	}

	return result
}

// Equal reports whether a and b have the same shape and exactly equal elements.
// Nil inputs are never equal. NaN elements compare unequal, as with ==.
//
// Complexity: O(r*c) time, O(1) space.
func Equal[T Element](a, b Matrix[T]) bool {
	if ValidateBinarySameShape(a, b) != nil {
		return false
	}

	if da, okA := a.(*Dense[T]); okA {
		if db, okB := b.(*Dense[T]); okB {
			for idx := range da.data {
				if da.data[idx] != db.data[idx] {
					return false
				}
			}

			return true
		}
	}

	var av, bv T
	var err error
	r, c := a.Rows(), a.Cols()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if av, err = a.At(i, j); err != nil {
				return false
			}
			if bv, err = b.At(i, j); err != nil {
				return false
			}
			if av != bv {
				return false
			}
		}
	}

	return true
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// Comparison happens in float64 regardless of T.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol must be finite; negative values are normalized to |rtol|, |atol|.
//
// Errors:
//   - ErrNaNInf (non-finite tolerance), ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity: O(r*c) time, O(1) space.
func AllClose[T Element](a, b Matrix[T], rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	var av, bv T
	var err error
	r, c := a.Rows(), a.Cols()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if !closeEnough(float64(av), float64(bv), rtol, atol) {
				return false, nil // early-exit on first violation
			}
		}
	}

	return true, nil
}

// closeEnough evaluates |x-y| ≤ atol + rtol*|y|. NaN on either side fails.
func closeEnough(x, y, rtol, atol float64) bool {
	return math.Abs(x-y) <= atol+rtol*math.Abs(y)
}

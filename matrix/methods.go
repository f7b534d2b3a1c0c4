// SPDX-License-Identifier: MIT

// Package matrix: compound (in-place) forms of the operators.
//
// Each method computes the out-of-place result first and only then replaces
// the receiver's shape and buffer, so a failing call leaves the receiver
// exactly as it was. The receiver keeps its numeric policy.
package matrix

// AddInPlace sets m = m + b.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func (m *Dense[T]) AddInPlace(b Matrix[T]) error {
	res, err := Add[T](m, b)
	if err != nil {
		return err
	}
	m.adopt(res)

	return nil
}

// SubInPlace sets m = m - b.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func (m *Dense[T]) SubInPlace(b Matrix[T]) error {
	res, err := Sub[T](m, b)
	if err != nil {
		return err
	}
	m.adopt(res)

	return nil
}

// ScaleInPlace sets m = m * alpha.
func (m *Dense[T]) ScaleInPlace(alpha T) error {
	res, err := Scale[T](m, alpha)
	if err != nil {
		return err
	}
	m.adopt(res)

	return nil
}

// MulInPlace sets m = m × b. The receiver's shape becomes m.Rows() × b.Cols().
// Errors: ErrNilMatrix, ErrDimensionMismatch (m.Cols() != b.Rows()).
func (m *Dense[T]) MulInPlace(b Matrix[T]) error {
	res, err := Mul[T](m, b)
	if err != nil {
		return err
	}
	m.adopt(res)

	return nil
}

// NegateInPlace sets every element of m to its negation.
func (m *Dense[T]) NegateInPlace() error {
	res, err := Negate[T](m)
	if err != nil {
		return err
	}
	m.adopt(res)

	return nil
}

// PowInPlace raises every element of m to exp.
func (m *Dense[T]) PowInPlace(exp int) error {
	res, err := Pow[T](m, exp)
	if err != nil {
		return err
	}
	m.adopt(res)

	return nil
}

// TransposeInPlace replaces m with mᵀ; an r×c receiver becomes c×r.
func (m *Dense[T]) TransposeInPlace() error {
	res, err := Transpose[T](m)
	if err != nil {
		return err
	}
	m.adopt(res)

	return nil
}

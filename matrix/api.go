// SPDX-License-Identifier: MIT

// Package matrix: thin public facades over the kernels.
//
// Constructors for common shapes plus aliases that read like the operator
// names (Sum, Diff, Product, T, Transposition, ScaleBy). Every facade returns
// exactly what the kernel returns; no extra validation lives here.
package matrix

// NewZeros returns an r×c zero matrix. Alias of NewDense.
func NewZeros[T Element](rows, cols int, opts ...Option) (*Dense[T], error) {
	return NewDense[T](rows, cols, opts...)
}

// NewIdentity returns the n×n identity matrix (ones on the main diagonal).
// Errors: ErrInvalidDimensions when n < 0.
func NewIdentity[T Element](n int, opts ...Option) (*Dense[T], error) {
	m, err := NewDense[T](n, n, opts...)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// ZerosLike returns a zero matrix with the same shape as m.
// Errors: ErrNilMatrix.
func ZerosLike[T Element](m Matrix[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return NewDense[T](m.Rows(), m.Cols())
}

// CloneMatrix deep-copies any Matrix into a new Dense.
// Errors: ErrNilMatrix; any error reported by m.At.
func CloneMatrix[T Element](m Matrix[T]) (*Dense[T], error) {
	if d, ok := m.(*Dense[T]); ok && d != nil {
		return d.Clone(), nil
	}
	out := &Dense[T]{validateNaNInf: DefaultValidateNaNInf}
	if err := out.CopyFrom(m); err != nil {
		return nil, err
	}

	return out, nil
}

// Sum is an alias for Add.
func Sum[T Element](a, b Matrix[T]) (*Dense[T], error) { return Add(a, b) }

// Diff is an alias for Sub.
func Diff[T Element](a, b Matrix[T]) (*Dense[T], error) { return Sub(a, b) }

// Product is an alias for Mul.
func Product[T Element](a, b Matrix[T]) (*Dense[T], error) { return Mul(a, b) }

// ScaleBy is an alias for Scale.
func ScaleBy[T Element](m Matrix[T], alpha T) (*Dense[T], error) { return Scale(m, alpha) }

// T is a short alias for Transpose.
func T[E Element](m Matrix[E]) (*Dense[E], error) { return Transpose(m) }

// Transposition is a long-form alias for Transpose.
func Transposition[T Element](m Matrix[T]) (*Dense[T], error) { return Transpose(m) }

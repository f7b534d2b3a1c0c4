// Package matrix offers a generic dense two-dimensional matrix value type.
//
// The matrix package provides:
//
//   - Dense[T], a row-major matrix over signed integer or floating-point
//     elements, with bounds-checked accessors (At, Set, Ref) and an
//     explicitly named unchecked fast path (AtUnchecked, SetUnchecked).
//   - Pure operators that never mutate their operands and always return a
//     freshly allocated *Dense: Add, Sub, Scale, Mul, Hadamard, Transpose,
//     Plus, Negate and element-wise Pow.
//   - Compound forms on *Dense (AddInPlace, MulInPlace, ...) that replace the
//     receiver only after the out-of-place result was computed.
//   - A bracketed, tab-separated text rendering (Fprint, Dense.String).
//
// Errors are package sentinels (ErrOutOfRange, ErrDimensionMismatch,
// ErrInvalidDimensions, ErrNilMatrix, ErrNaNInf) wrapped with the operation
// name; match them with errors.Is.
//
// Quick example:
//
//	a, _ := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
//	b, _ := matrix.FromRows([][]float64{{5, 6}, {7, 8}})
//	c, _ := matrix.Mul(a, b) // [[19 22] [43 50]]
//	fmt.Print(c)
package matrix

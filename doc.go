// Package densemat is a small toolkit for dense, in-memory matrix arithmetic
// over Go's signed integer and floating-point types.
//
// What is inside?
//
//	matrix/          : Dense[T] storage, checked & unchecked access, arithmetic
//	                   operators (Add, Sub, Scale, Mul, Transpose, Pow, ...),
//	                   in-place compound forms and the bracketed text printer
//	cmd/matrixdemo/  : a CLI that multiplies two index-filled matrices and
//	                   prints every stage
//
// Guarantees:
//
//   - Pure Go, no cgo.
//   - No panics at the public surface: bad indices and shapes come back as
//     wrapped sentinel errors (errors.Is(err, matrix.ErrDimensionMismatch)).
//   - Deterministic loop orders, so results are bit-for-bit reproducible.
//
// Quick example:
//
//	a, _ := matrix.FromRows([][]int{{1, 2}, {3, 4}})
//	sq, _ := matrix.Mul(a, a)
//	fmt.Print(sq)
//
//	[[	7	10	]
//	 [	15	22	]]
//
//	go get github.com/katalvlaran/densemat/matrix
package densemat

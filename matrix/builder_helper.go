// SPDX-License-Identifier: MIT

// Package matrix: constructors that ingest caller-owned data.
// Both helpers copy their input; the returned Dense never aliases it.
package matrix

const (
	ctxNewDenseFrom = "NewDenseFrom"
	ctxFromRows     = "FromRows"
)

// NewDenseFrom builds a rows×cols Dense from a row-major slice.
// MAIN DESCRIPTION:
//   - Copy data into a fresh buffer; element (i,j) is data[i*cols+j].
//
// Errors:
//   - ErrInvalidDimensions (negative or overflowing shape).
//   - ErrDimensionMismatch when len(data) != rows*cols.
//   - ErrNaNInf when WithValidateNaNInf is set and data holds NaN/±Inf.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFrom[T Element](rows, cols int, data []T, opts ...Option) (*Dense[T], error) {
	m, err := NewDense[T](rows, cols, opts...)
	if err != nil {
		return nil, matrixErrorf(ctxNewDenseFrom, err)
	}
	if len(data) != len(m.data) {
		return nil, matrixErrorf(ctxNewDenseFrom, ErrDimensionMismatch)
	}
	if m.validateNaNInf {
		for idx, v := range data {
			if isNonFinite(v) {
				return nil, denseErrorf(ctxNewDenseFrom, idx/cols, idx%cols, ErrNaNInf)
			}
		}
	}
	copy(m.data, data)

	return m, nil
}

// FromRows builds a Dense from a slice of equally long rows.
// An empty outer slice yields a 0×0 matrix.
//
// Errors:
//   - ErrDimensionMismatch for ragged input.
//   - ErrNaNInf under WithValidateNaNInf.
func FromRows[T Element](rows [][]T, opts ...Option) (*Dense[T], error) {
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	flat := make([]T, 0, r*c)
	for _, row := range rows {
		if len(row) != c {
			return nil, matrixErrorf(ctxFromRows, ErrDimensionMismatch)
		}
		flat = append(flat, row...)
	}

	return NewDenseFrom(r, c, flat, opts...)
}

// Package matrix_test contains unit tests for universal Matrix (linear algebra) operations.
package matrix_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/katalvlaran/densemat/matrix"
	"github.com/stretchr/testify/require"
)

func TestAdd_Scenario(t *testing.T) {
	a := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	b := NewFilledDense(t, 2, 2, []float64{5, 6, 7, 8})

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{6, 8}, {10, 12}}, sum)

	// Operands are untouched.
	CompareExact(t, [][]float64{{1, 2}, {3, 4}}, a)
	CompareExact(t, [][]float64{{5, 6}, {7, 8}}, b)
}

func TestSub_Scenario(t *testing.T) {
	a := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	b := NewFilledDense(t, 2, 2, []float64{5, 6, 7, 8})

	diff, err := matrix.Sub(b, a)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{4, 4}, {4, 4}}, diff)
}

func TestMul_Scenario(t *testing.T) {
	a := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	b := NewFilledDense(t, 2, 2, []float64{5, 6, 7, 8})

	prod, err := matrix.Mul(a, b)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{19, 22}, {43, 50}}, prod)
}

func TestMul_NonSquareShape(t *testing.T) {
	a := RandFilledDense(t, 3, 4, 1)
	b := RandFilledDense(t, 4, 5, 2)

	prod, err := matrix.Mul(a, b)
	require.NoError(t, err)
	MustDims(t, prod, 3, 5)
}

func TestMul_ZeroInnerDimension(t *testing.T) {
	a := MustDense(t, 2, 0)
	b := MustDense(t, 0, 3)

	prod, err := matrix.Mul(a, b)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{0, 0, 0}, {0, 0, 0}}, prod)
}

func TestMul_AssociativeInShape(t *testing.T) {
	a := RandFilledDense(t, 2, 3, 11)
	b := RandFilledDense(t, 3, 4, 12)
	c := RandFilledDense(t, 4, 5, 13)

	ab, err := matrix.Mul(a, b)
	require.NoError(t, err)
	left, err := matrix.Mul(ab, c)
	require.NoError(t, err)

	bc, err := matrix.Mul(b, c)
	require.NoError(t, err)
	right, err := matrix.Mul(a, bc)
	require.NoError(t, err)

	MustDims(t, left, 2, 5)
	MustDims(t, right, 2, 5)
	ok, err := matrix.AllClose(left, right, 1e-12, 1e-12)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestTranspose_Scenario(t *testing.T) {
	a := NewFilledDense(t, 2, 3, []float64{0, 1, 2, 3, 4, 5})

	at, err := matrix.Transpose(a)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{0, 3}, {1, 4}, {2, 5}}, at)
}

func TestTranspose_Involution(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{{1, 1}, {3, 4}, {4, 3}, {5, 5}, {0, 2}} {
		t.Run(fmt.Sprintf("%dx%d", tc.rows, tc.cols), func(t *testing.T) {
			a := RandFilledDense(t, tc.rows, tc.cols, 7)

			at, err := matrix.T(a)
			require.NoError(t, err)
			MustDims(t, at, tc.cols, tc.rows)

			att, err := matrix.Transposition(at)
			require.NoError(t, err)
			require.True(t, matrix.Equal(a, att))
		})
	}
}

func TestScale_ZeroYieldsZeroMatrix(t *testing.T) {
	a := RandFilledDense(t, 3, 2, 5)

	z, err := matrix.Scale(a, 0)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{0, 0}, {0, 0}, {0, 0}}, z)
}

func TestScale_Commutative(t *testing.T) {
	a := NewFilledDense(t, 2, 2, []float64{1, -2, 3.5, 4})

	right, err := matrix.Scale(a, 2)
	require.NoError(t, err)
	left, err := matrix.ScaleLeft(2, a)
	require.NoError(t, err)

	CompareExact(t, [][]float64{{2, -4}, {7, 8}}, right)
	require.True(t, matrix.Equal(left, right))
}

func TestHadamard(t *testing.T) {
	a := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	b := NewFilledDense(t, 2, 2, []float64{5, 6, 7, 8})

	h, err := matrix.Hadamard(a, b)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{5, 12}, {21, 32}}, h)
}

// TestDimensionMismatch_NoMutation asserts that incompatible operands fail with
// ErrDimensionMismatch and keep their contents.
func TestDimensionMismatch_NoMutation(t *testing.T) {
	a := RandFilledDense(t, 2, 3, 21)
	b := RandFilledDense(t, 3, 2, 22)
	snapA, snapB := Snapshot(t, a), Snapshot(t, b)

	_, err := matrix.Add(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Sub(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Hadamard(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Mul(a, a) // 2x3 · 2x3
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	require.Equal(t, snapA, Snapshot(t, a))
	require.Equal(t, snapB, Snapshot(t, b))
}

func TestNilOperands(t *testing.T) {
	a := MustDense(t, 2, 2)
	var typedNil *matrix.Dense[float64]

	_, err := matrix.Add[float64](a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Sub[float64](nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Mul[float64](typedNil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Transpose[float64](nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Scale[float64](nil, 2)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Hadamard(typedNil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestFastPathMatchesFallback compares *Dense kernels with the At/Set fallback bit for bit.
func TestFastPathMatchesFallback(t *testing.T) {
	t.Parallel()

	a := RandFilledDense(t, 4, 3, 31)
	b := RandFilledDense(t, 4, 3, 32)
	c := RandFilledDense(t, 3, 5, 33)

	type kernel func(x, y matrix.Matrix[float64]) (*matrix.Dense[float64], error)
	cases := []struct {
		name string
		run  kernel
		x, y *matrix.Dense[float64]
	}{
		{"Add", matrix.Add[float64], a, b},
		{"Sub", matrix.Sub[float64], a, b},
		{"Hadamard", matrix.Hadamard[float64], a, b},
		{"Mul", matrix.Mul[float64], a, c},
		{"Transpose", func(x, _ matrix.Matrix[float64]) (*matrix.Dense[float64], error) { return matrix.Transpose(x) }, a, nil},
		{"Scale", func(x, _ matrix.Matrix[float64]) (*matrix.Dense[float64], error) { return matrix.Scale(x, -1.5) }, a, nil},
		{"Negate", func(x, _ matrix.Matrix[float64]) (*matrix.Dense[float64], error) { return matrix.Negate(x) }, a, nil},
		{"Pow", func(x, _ matrix.Matrix[float64]) (*matrix.Dense[float64], error) { return matrix.Pow(x, 3) }, a, nil},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			fast, err := tc.run(tc.x, tc.y)
			require.NoError(t, err)

			var slow *matrix.Dense[float64]
			if tc.y != nil {
				slow, err = tc.run(hide{tc.x}, hide{tc.y})
			} else {
				slow, err = tc.run(hide{tc.x}, nil)
			}
			require.NoError(t, err)
			require.True(t, matrix.Equal(fast, slow), "fast:\n%v\nslow:\n%v", fast, slow)
		})
	}
}

// TestMul_PropagatesNaN checks that zero entries do not short-circuit NaN/Inf.
func TestMul_PropagatesNaN(t *testing.T) {
	a := NewFilledDense(t, 1, 2, []float64{0, 1})
	b := NewFilledDense(t, 2, 1, []float64{math.Inf(1), 2})

	prod, err := matrix.Mul(a, b)
	require.NoError(t, err)
	require.True(t, math.IsNaN(MustAt(t, prod, 0, 0)), "0*Inf must yield NaN")
}

func TestIntegerArithmetic(t *testing.T) {
	a, err := matrix.FromRows([][]int{{1, 2}, {3, 4}})
	require.NoError(t, err)
	b, err := matrix.FromRows([][]int{{5, 6}, {7, 8}})
	require.NoError(t, err)

	prod, err := matrix.Mul(a, b)
	require.NoError(t, err)
	require.Equal(t, "[[\t19\t22\t]\n [\t43\t50\t]]\n", prod.String())

	diff, err := matrix.Sub(a, b)
	require.NoError(t, err)
	require.Equal(t, -4, diff.AtUnchecked(1, 1))
}

func TestFacadeAliases(t *testing.T) {
	a := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	b := NewFilledDense(t, 2, 2, []float64{5, 6, 7, 8})

	s, err := matrix.Sum(a, b)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{6, 8}, {10, 12}}, s)

	d, err := matrix.Diff(a, b)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{-4, -4}, {-4, -4}}, d)

	p, err := matrix.Product(a, b)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{19, 22}, {43, 50}}, p)

	sc, err := matrix.ScaleBy(a, 3)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{3, 6}, {9, 12}}, sc)
}

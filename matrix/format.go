// SPDX-License-Identifier: MIT

// Package matrix - human-readable rendering.
//
// Layout for an R×C matrix (row-major, tab-separated):
//
//	[[	a00	a01	]
//	 [	a10	a11	]]
//
// The first line opens with an extra "[", continuation lines are indented one
// space, and the last row closes with "]]". A 0-row matrix renders as "".
// This is a display format only; there is no parser for it.
package matrix

import (
	"fmt"
	"io"
	"strings"
)

const opFormat = "Fprint"

// ---------- Formatting literals ----------
const (
	_fmtOpen      = "["
	_fmtIndent    = " "
	_fmtRowOpen   = "[\t"
	_fmtSep       = "\t"
	_fmtRowClose  = "]\n"
	_fmtLastClose = "]]\n"
)

// Fprint writes the bracketed rendering of m to w.
//
// Errors:
//   - ErrNilMatrix; any error from m.At; the first write error from w.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the staged text.
func Fprint[T Element](w io.Writer, m Matrix[T]) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opFormat, err)
	}

	var b strings.Builder
	if d, ok := m.(*Dense[T]); ok {
		d.render(&b)
	} else if err := renderMatrix(&b, m); err != nil {
		return matrixErrorf(opFormat, err)
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return matrixErrorf(opFormat, err)
	}

	return nil
}

// String renders the matrix in the same layout as Fprint.
func (m *Dense[T]) String() string {
	var b strings.Builder
	m.render(&b)

	return b.String()
}

// render is the flat-slice path shared by String and Fprint.
func (m *Dense[T]) render(b *strings.Builder) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		writeRowPrefix(b, i)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			fmt.Fprint(b, m.data[base+j])
			b.WriteString(_fmtSep)
		}
		writeRowSuffix(b, i, m.r)
	}
}

// renderMatrix is the At-based fallback for foreign Matrix implementations.
func renderMatrix[T Element](b *strings.Builder, m Matrix[T]) error {
	rows, cols := m.Rows(), m.Cols()
	var v T
	var err error
	for i := 0; i < rows; i++ {
		writeRowPrefix(b, i)
		for j := 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			fmt.Fprint(b, v)
			b.WriteString(_fmtSep)
		}
		writeRowSuffix(b, i, rows)
	}

	return nil
}

func writeRowPrefix(b *strings.Builder, i int) {
	if i == 0 {
		b.WriteString(_fmtOpen)
	} else {
		b.WriteString(_fmtIndent)
	}
	b.WriteString(_fmtRowOpen)
}

func writeRowSuffix(b *strings.Builder, i, rows int) {
	if i < rows-1 {
		b.WriteString(_fmtRowClose)
		return
	}
	b.WriteString(_fmtLastClose)
}

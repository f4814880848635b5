// SPDX-License-Identifier: MIT

// Gonum interop: copy matrices in and out of gonum's mat.Dense, and expose a
// live handle as a read-only mat.Matrix without copying.

package matrix

import (
	"gonum.org/v1/gonum/mat"
)

const (
	opFromGonum = "FromGonum"
	opToGonum   = "ToGonum"
)

// FromGonum allocates a root with src's shape and copies src into it.
// Raw-backed sources (mat.RawMatrixer, e.g. *mat.Dense) are copied row by row;
// anything else goes through At.
//
// Errors: ErrNilMatrix for a nil src, plus any Allocate error (an empty
// gonum matrix yields ErrInvalidDimension).
func (e *Engine) FromGonum(src mat.Matrix) (*Matrix, error) {
	if src == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	r, c := src.Dims()
	m, err := e.Allocate(r, c)
	if err != nil {
		return nil, matrixErrorf(opFromGonum, err)
	}

	if rm, ok := src.(mat.RawMatrixer); ok {
		raw := rm.RawMatrix()
		for i, row := range m.data {
			copy(row, raw.Data[i*raw.Stride:i*raw.Stride+c])
		}
		return m, nil
	}
	for i, row := range m.data {
		for j := range row {
			row[j] = src.At(i, j)
		}
	}

	return m, nil
}

// ToGonum copies m into a new *mat.Dense.
//
// Errors: ErrNilMatrix, ErrReleased.
func ToGonum(m *Matrix) (*mat.Dense, error) {
	if err := ValidateLive(m); err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}
	d := mat.NewDense(m.rows, m.cols, nil)
	for i, row := range m.data {
		copy(d.RawRowView(i), row)
	}

	return d, nil
}

// Gonum returns a zero-copy, read-only mat.Matrix over m. It reads m's
// storage directly, so it observes later writes and must not be used after m
// is released.
func (m *Matrix) Gonum() mat.Matrix {
	return gonumView{m: m}
}

// gonumView adapts a *Matrix to gonum's mat.Matrix interface.
type gonumView struct {
	m *Matrix
}

var _ mat.Matrix = gonumView{}

// Dims returns the shape.
func (g gonumView) Dims() (r, c int) { return g.m.rows, g.m.cols }

// At returns element (i, j), panicking on bad indices as gonum does.
func (g gonumView) At(i, j int) float64 {
	if i < 0 || i >= g.m.rows {
		panic(mat.ErrRowAccess)
	}
	if j < 0 || j >= g.m.cols {
		panic(mat.ErrColAccess)
	}

	return g.m.data[i][j]
}

// T returns the implicit transpose.
func (g gonumView) T() mat.Matrix { return mat.Transpose{Matrix: g} }

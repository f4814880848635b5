// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Element-wise kernels: Add, Subtract, Negate, Absolute, Fill, Copy,
//     Identity. Every kernel writes into a caller-provided result.
//
// Design:
//   - Flat fast-path: when result and operands are all contiguous the kernel
//     makes one pass over rows*cols doubles, split across the pool from
//     WithParallelElements on. Split points are multiples of simd.Lanes so
//     every chunk runs whole vectors plus at most one scalar tail.
//   - Row fallback: partial-row views run the same simd kernel row by row.
//   - Negate/Absolute on matrices below WithSmallThreshold in both dimensions
//     use a plain loop.
//
// Determinism & Performance:
//   - Each output element depends only on the same position of the inputs,
//     so results are identical whatever the split.
//   - No allocations on any path.

package matrix

import (
	"math"

	"github.com/katalvlaran/numc/simd"
)

// ---------- operation tags ----------

const (
	opAdd      = "Add"
	opSubtract = "Subtract"
	opNegate   = "Negate"
	opAbsolute = "Absolute"
	opFill     = "Fill"
	opCopy     = "Copy"
	opIdentity = "Identity"
)

// Add computes result = a + b element-wise. result may be a or b.
//
// Errors: ErrNilMatrix, ErrReleased, ErrDimensionMismatch, ErrAliased
// (partial overlap of result with an operand).
func (e *Engine) Add(result, a, b *Matrix) error {
	if err := ValidateBinary(result, a, b); err != nil {
		return matrixErrorf(opAdd, err)
	}
	e.binary(result, a, b, simd.Add)

	return nil
}

// Subtract computes result = a - b element-wise. result may be a or b.
//
// Errors: as Add.
func (e *Engine) Subtract(result, a, b *Matrix) error {
	if err := ValidateBinary(result, a, b); err != nil {
		return matrixErrorf(opSubtract, err)
	}
	e.binary(result, a, b, simd.Sub)

	return nil
}

// Negate computes result = -a element-wise (sign-bit flip, so -0 <-> +0).
//
// Errors: ErrNilMatrix, ErrReleased, ErrDimensionMismatch, ErrAliased.
func (e *Engine) Negate(result, a *Matrix) error {
	if err := ValidateUnary(result, a); err != nil {
		return matrixErrorf(opNegate, err)
	}
	if e.small(a) {
		for i, src := range a.data {
			dst := result.data[i]
			for j, v := range src {
				dst[j] = -v
			}
		}
		return nil
	}
	e.unary(result, a, simd.Neg)

	return nil
}

// Absolute computes result = |a| element-wise.
//
// Errors: as Negate.
func (e *Engine) Absolute(result, a *Matrix) error {
	if err := ValidateUnary(result, a); err != nil {
		return matrixErrorf(opAbsolute, err)
	}
	if e.small(a) {
		for i, src := range a.data {
			dst := result.data[i]
			for j, v := range src {
				dst[j] = math.Abs(v)
			}
		}
		return nil
	}
	e.unary(result, a, simd.Abs)

	return nil
}

// Fill sets every element of m to v.
//
// Errors: ErrNilMatrix, ErrReleased.
func (e *Engine) Fill(m *Matrix, v float64) error {
	if err := ValidateLive(m); err != nil {
		return matrixErrorf(opFill, err)
	}
	e.fill(m, v)

	return nil
}

// Copy copies src into dst element by element.
//
// Errors: ErrNilMatrix, ErrReleased, ErrDimensionMismatch, ErrAliased.
func (e *Engine) Copy(dst, src *Matrix) error {
	if err := ValidateUnary(dst, src); err != nil {
		return matrixErrorf(opCopy, err)
	}
	e.copyInto(dst, src)

	return nil
}

// Identity overwrites the square matrix m with the identity.
//
// Errors: ErrNilMatrix, ErrReleased, ErrDimensionMismatch (not square).
func (e *Engine) Identity(m *Matrix) error {
	if err := ValidateLive(m); err != nil {
		return matrixErrorf(opIdentity, err)
	}
	if err := ValidateSquare(m); err != nil {
		return matrixErrorf(opIdentity, err)
	}
	e.identity(m)

	return nil
}

// ---------- unchecked helpers (shared with Multiply/Power) ----------

// small reports whether m is below the small-matrix cutoff in both dimensions.
func (e *Engine) small(m *Matrix) bool {
	return m.rows < e.opts.smallThreshold && m.cols < e.opts.smallThreshold
}

func (e *Engine) binary(dst, a, b *Matrix, kernel func(dst, a, b []float64)) {
	if dst.flat != nil && a.flat != nil && b.flat != nil {
		df, af, bf := dst.flat, a.flat, b.flat
		e.flatRegion(len(df), func(s, t int) { kernel(df[s:t], af[s:t], bf[s:t]) })
		return
	}
	e.rowRegion(dst, func(s, t int) {
		for i := s; i < t; i++ {
			kernel(dst.data[i], a.data[i], b.data[i])
		}
	})
}

func (e *Engine) unary(dst, a *Matrix, kernel func(dst, a []float64)) {
	if dst.flat != nil && a.flat != nil {
		df, af := dst.flat, a.flat
		e.flatRegion(len(df), func(s, t int) { kernel(df[s:t], af[s:t]) })
		return
	}
	e.rowRegion(dst, func(s, t int) {
		for i := s; i < t; i++ {
			kernel(dst.data[i], a.data[i])
		}
	})
}

func (e *Engine) fill(m *Matrix, v float64) {
	if m.flat != nil {
		f := m.flat
		e.flatRegion(len(f), func(s, t int) { simd.Fill(f[s:t], v) })
		return
	}
	e.rowRegion(m, func(s, t int) {
		for i := s; i < t; i++ {
			simd.Fill(m.data[i], v)
		}
	})
}

func (e *Engine) copyInto(dst, src *Matrix) {
	if dst.flat != nil && src.flat != nil {
		simd.Copy(dst.flat, src.flat)
		return
	}
	for i, row := range src.data {
		simd.Copy(dst.data[i], row)
	}
}

func (e *Engine) identity(m *Matrix) {
	e.fill(m, 0)
	for i := 0; i < m.rows; i++ {
		m.data[i][i] = 1
	}
}

// flatRegion runs fn over [0, n), in lane-aligned chunks on the pool once n
// reaches the parallel threshold.
func (e *Engine) flatRegion(n int, fn func(start, end int)) {
	if n < e.opts.parallelElements {
		fn(0, n)
		return
	}
	vectors := (n + simd.Lanes - 1) / simd.Lanes
	e.pool.ParallelFor(vectors, func(s, t int) {
		fn(s*simd.Lanes, min(t*simd.Lanes, n))
	})
}

// rowRegion runs fn over the row range of m, on the pool once m holds at
// least the parallel threshold of elements.
func (e *Engine) rowRegion(m *Matrix, fn func(start, end int)) {
	if m.rows*m.cols < e.opts.parallelElements {
		fn(0, m.rows)
		return
	}
	e.pool.ParallelFor(m.rows, fn)
}

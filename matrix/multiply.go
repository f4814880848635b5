// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Matrix-product kernel: result += a * b.
//
// Implementation:
//   - Stage 1: validate handles, inner/result shapes, and that result shares
//     no storage with a or b.
//   - Stage 2 (small): a.Rows and b.Cols both below the small threshold run
//     the naive i,k,j triple loop.
//   - Stage 3 (large): result rows are handed out in strips through the
//     worker pool. For each row i and column tile [j0, j1):
//     k advances in strides of 4, adding a[i,k..k+3] * b[k..k+3, j] in k order
//     (simd.MulAdd4), then the k%4 tail adds one b row at a time (simd.AXPY).
//
// Determinism & Performance:
//   - Each result row is written by exactly one worker; no locks.
//   - Per result cell the k order is 0..K-1 on every path, so a strip size or
//     worker count change never reorders the sum.
//   - Column tiles keep the four b row segments and the c segment hot in L1.
//
// Complexity: O(M*K*N) time, O(1) extra space.

package matrix

import "github.com/katalvlaran/numc/simd"

const opMultiply = "Multiply"

// Multiply accumulates the product a * b into result: result[i,j] +=
// sum_k a[i,k] * b[k,j]. Zero result first (Fill(result, 0)) to obtain the
// plain product.
//
// Errors:
//   - ErrNilMatrix / ErrReleased for unusable handles.
//   - ErrDimensionMismatch when a.Cols != b.Rows or result is not a.Rows x b.Cols.
//   - ErrAliased when result shares storage with a or b.
func (e *Engine) Multiply(result, a, b *Matrix) error {
	if err := validateLiveAll(result, a, b); err != nil {
		return matrixErrorf(opMultiply, err)
	}
	if err := ValidateMulCompatible(result, a, b); err != nil {
		return matrixErrorf(opMultiply, err)
	}
	if err := ValidateNoOverlap(result, a); err != nil {
		return matrixErrorf(opMultiply, err)
	}
	if err := ValidateNoOverlap(result, b); err != nil {
		return matrixErrorf(opMultiply, err)
	}
	e.multiply(result, a, b)

	return nil
}

// multiply dispatches between the naive and the parallel kernel. Inputs are
// assumed valid.
func (e *Engine) multiply(c, a, b *Matrix) {
	if a.rows < e.opts.smallThreshold && b.cols < e.opts.smallThreshold {
		mulNaive(c, a, b)
		return
	}
	strip := min(e.opts.rowStrip, max(1, a.rows/(4*e.pool.Workers())))
	tile := e.opts.columnTile
	e.pool.ParallelForAtomicBatched(a.rows, strip, func(start, end int) {
		mulRows(c, a, b, start, end, tile)
	})
}

// mulNaive is the i,k,j triple loop.
func mulNaive(c, a, b *Matrix) {
	for i, ai := range a.data {
		ci := c.data[i]
		for k, aik := range ai {
			bk := b.data[k]
			for j := range ci {
				ci[j] += aik * bk[j]
			}
		}
	}
}

// mulRows computes result rows [start, end) with the k-unrolled kernel.
func mulRows(c, a, b *Matrix, start, end, tile int) {
	inner := b.rows
	unrolled := inner &^ 3
	n := b.cols
	for i := start; i < end; i++ {
		ci, ai := c.data[i], a.data[i]
		for j0 := 0; j0 < n; j0 += tile {
			j1 := min(j0+tile, n)
			dst := ci[j0:j1]
			for k := 0; k < unrolled; k += 4 {
				simd.MulAdd4(dst,
					b.data[k][j0:j1], b.data[k+1][j0:j1], b.data[k+2][j0:j1], b.data[k+3][j0:j1],
					ai[k], ai[k+1], ai[k+2], ai[k+3])
			}
			for k := unrolled; k < inner; k++ {
				simd.AXPY(dst, b.data[k][j0:j1], ai[k])
			}
		}
	}
}

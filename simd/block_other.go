// SPDX-License-Identifier: MIT

//go:build !amd64 || purego

package simd

func addBlocks(_ Level, dst, a, b []float64) { add4(dst, a, b) }

func subBlocks(_ Level, dst, a, b []float64) { sub4(dst, a, b) }

func negBlocks(_ Level, dst, a []float64) { neg4(dst, a) }

func absBlocks(_ Level, dst, a []float64) { abs4(dst, a) }

func fillBlocks(_ Level, dst []float64, v float64) { fill4(dst, v) }

func axpyBlocks(_ Level, dst, x []float64, alpha float64) { axpy4(dst, x, alpha) }

func mulAdd4Blocks(_ Level, dst, b0, b1, b2, b3 []float64, a0, a1, a2, a3 float64) {
	mulAdd4x4(dst, b0, b1, b2, b3, a0, a1, a2, a3)
}

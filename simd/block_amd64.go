// SPDX-License-Identifier: MIT

//go:build amd64 && !purego

package simd

func addBlocks(l Level, dst, a, b []float64) {
	if l == LevelAVX2 {
		addAVX2(dst, a, b)
		return
	}
	add4(dst, a, b)
}

func subBlocks(l Level, dst, a, b []float64) {
	if l == LevelAVX2 {
		subAVX2(dst, a, b)
		return
	}
	sub4(dst, a, b)
}

func negBlocks(l Level, dst, a []float64) {
	if l == LevelAVX2 {
		negAVX2(dst, a)
		return
	}
	neg4(dst, a)
}

func absBlocks(l Level, dst, a []float64) {
	if l == LevelAVX2 {
		absAVX2(dst, a)
		return
	}
	abs4(dst, a)
}

func fillBlocks(l Level, dst []float64, v float64) {
	if l == LevelAVX2 {
		fillAVX2(dst, v)
		return
	}
	fill4(dst, v)
}

func axpyBlocks(l Level, dst, x []float64, alpha float64) {
	if l == LevelAVX2 {
		axpyAVX2(dst, x, alpha)
		return
	}
	axpy4(dst, x, alpha)
}

func mulAdd4Blocks(l Level, dst, b0, b1, b2, b3 []float64, a0, a1, a2, a3 float64) {
	if l == LevelAVX2 {
		mulAdd4AVX2(dst, b0, b1, b2, b3, a0, a1, a2, a3)
		return
	}
	mulAdd4x4(dst, b0, b1, b2, b3, a0, a1, a2, a3)
}

// Assembly kernels (block_amd64.s). Every slice length is a multiple of Lanes
// and all slices passed to one call have the same length.

//go:noescape
func addAVX2(dst, a, b []float64)

//go:noescape
func subAVX2(dst, a, b []float64)

//go:noescape
func negAVX2(dst, a []float64)

//go:noescape
func absAVX2(dst, a []float64)

//go:noescape
func fillAVX2(dst []float64, v float64)

//go:noescape
func axpyAVX2(dst, x []float64, alpha float64)

//go:noescape
func mulAdd4AVX2(dst, b0, b1, b2, b3 []float64, a0, a1, a2, a3 float64)

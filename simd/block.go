// SPDX-License-Identifier: MIT

package simd

import "math"

const panicLength = "simd: slice length mismatch"

// blocks returns the prefix length handled by the chunk loop for the current
// level, or 0 when the scalar level is active.
func blocks(n int) (Level, int) {
	l := CurrentLevel()
	if l == LevelScalar {
		return l, 0
	}

	return l, n &^ (Lanes - 1)
}

// Add performs element-wise addition: dst[i] = a[i] + b[i].
// dst may alias a or b.
func Add(dst, a, b []float64) {
	if len(a) != len(dst) || len(b) != len(dst) {
		panic(panicLength)
	}
	l, n := blocks(len(dst))
	if n > 0 {
		addBlocks(l, dst[:n], a[:n], b[:n])
	}
	for i := n; i < len(dst); i++ {
		dst[i] = a[i] + b[i]
	}
}

// Sub performs element-wise subtraction: dst[i] = a[i] - b[i].
// dst may alias a or b.
func Sub(dst, a, b []float64) {
	if len(a) != len(dst) || len(b) != len(dst) {
		panic(panicLength)
	}
	l, n := blocks(len(dst))
	if n > 0 {
		subBlocks(l, dst[:n], a[:n], b[:n])
	}
	for i := n; i < len(dst); i++ {
		dst[i] = a[i] - b[i]
	}
}

// Neg flips the sign bit of every element: dst[i] = -a[i].
func Neg(dst, a []float64) {
	if len(a) != len(dst) {
		panic(panicLength)
	}
	l, n := blocks(len(dst))
	if n > 0 {
		negBlocks(l, dst[:n], a[:n])
	}
	for i := n; i < len(dst); i++ {
		dst[i] = -a[i]
	}
}

// Abs clears the sign bit of every element: dst[i] = |a[i]|.
func Abs(dst, a []float64) {
	if len(a) != len(dst) {
		panic(panicLength)
	}
	l, n := blocks(len(dst))
	if n > 0 {
		absBlocks(l, dst[:n], a[:n])
	}
	for i := n; i < len(dst); i++ {
		dst[i] = math.Abs(a[i])
	}
}

// Fill broadcasts v into every element of dst.
func Fill(dst []float64, v float64) {
	l, n := blocks(len(dst))
	if n > 0 {
		fillBlocks(l, dst[:n], v)
	}
	for i := n; i < len(dst); i++ {
		dst[i] = v
	}
}

// Copy copies src into dst. Lengths must match.
func Copy(dst, src []float64) {
	if len(src) != len(dst) {
		panic(panicLength)
	}
	copy(dst, src)
}

// AXPY accumulates a scaled vector: dst[i] += alpha * x[i].
func AXPY(dst, x []float64, alpha float64) {
	if len(x) != len(dst) {
		panic(panicLength)
	}
	l, n := blocks(len(dst))
	if n > 0 {
		axpyBlocks(l, dst[:n], x[:n], alpha)
	}
	for i := n; i < len(dst); i++ {
		dst[i] += alpha * x[i]
	}
}

// MulAdd4 accumulates four scaled rows into dst:
//
//	dst[i] += a0*b0[i]; dst[i] += a1*b1[i]; dst[i] += a2*b2[i]; dst[i] += a3*b3[i]
//
// The four products are added one after another in that order, so the result
// per element matches four successive AXPY calls.
func MulAdd4(dst, b0, b1, b2, b3 []float64, a0, a1, a2, a3 float64) {
	n := len(dst)
	if len(b0) != n || len(b1) != n || len(b2) != n || len(b3) != n {
		panic(panicLength)
	}
	l, m := blocks(n)
	if m > 0 {
		mulAdd4Blocks(l, dst[:m], b0[:m], b1[:m], b2[:m], b3[:m], a0, a1, a2, a3)
	}
	var v float64
	for i := m; i < n; i++ {
		v = dst[i]
		v += a0 * b0[i]
		v += a1 * b1[i]
		v += a2 * b2[i]
		v += a3 * b3[i]
		dst[i] = v
	}
}

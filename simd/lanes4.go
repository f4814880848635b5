// SPDX-License-Identifier: MIT

package simd

import "math"

// Portable 4-lane loops. Each step re-slices to a fixed-capacity window of
// Lanes elements so the compiler drops the per-lane bounds checks. Callers
// pass lengths that are multiples of Lanes.

func add4(dst, a, b []float64) {
	for i := 0; i+Lanes <= len(dst); i += Lanes {
		d := dst[i : i+Lanes : i+Lanes]
		x := a[i : i+Lanes : i+Lanes]
		y := b[i : i+Lanes : i+Lanes]
		d[0] = x[0] + y[0]
		d[1] = x[1] + y[1]
		d[2] = x[2] + y[2]
		d[3] = x[3] + y[3]
	}
}

func sub4(dst, a, b []float64) {
	for i := 0; i+Lanes <= len(dst); i += Lanes {
		d := dst[i : i+Lanes : i+Lanes]
		x := a[i : i+Lanes : i+Lanes]
		y := b[i : i+Lanes : i+Lanes]
		d[0] = x[0] - y[0]
		d[1] = x[1] - y[1]
		d[2] = x[2] - y[2]
		d[3] = x[3] - y[3]
	}
}

func neg4(dst, a []float64) {
	for i := 0; i+Lanes <= len(dst); i += Lanes {
		d := dst[i : i+Lanes : i+Lanes]
		x := a[i : i+Lanes : i+Lanes]
		d[0] = -x[0]
		d[1] = -x[1]
		d[2] = -x[2]
		d[3] = -x[3]
	}
}

func abs4(dst, a []float64) {
	for i := 0; i+Lanes <= len(dst); i += Lanes {
		d := dst[i : i+Lanes : i+Lanes]
		x := a[i : i+Lanes : i+Lanes]
		d[0] = math.Abs(x[0])
		d[1] = math.Abs(x[1])
		d[2] = math.Abs(x[2])
		d[3] = math.Abs(x[3])
	}
}

func fill4(dst []float64, v float64) {
	for i := 0; i+Lanes <= len(dst); i += Lanes {
		d := dst[i : i+Lanes : i+Lanes]
		d[0] = v
		d[1] = v
		d[2] = v
		d[3] = v
	}
}

func axpy4(dst, x []float64, alpha float64) {
	for i := 0; i+Lanes <= len(dst); i += Lanes {
		d := dst[i : i+Lanes : i+Lanes]
		s := x[i : i+Lanes : i+Lanes]
		d[0] += alpha * s[0]
		d[1] += alpha * s[1]
		d[2] += alpha * s[2]
		d[3] += alpha * s[3]
	}
}

func mulAdd4x4(dst, b0, b1, b2, b3 []float64, a0, a1, a2, a3 float64) {
	var v0, v1, v2, v3 float64
	for i := 0; i+Lanes <= len(dst); i += Lanes {
		d := dst[i : i+Lanes : i+Lanes]
		r0 := b0[i : i+Lanes : i+Lanes]
		r1 := b1[i : i+Lanes : i+Lanes]
		r2 := b2[i : i+Lanes : i+Lanes]
		r3 := b3[i : i+Lanes : i+Lanes]

		v0, v1, v2, v3 = d[0], d[1], d[2], d[3]
		v0 += a0 * r0[0]
		v1 += a0 * r0[1]
		v2 += a0 * r0[2]
		v3 += a0 * r0[3]
		v0 += a1 * r1[0]
		v1 += a1 * r1[1]
		v2 += a1 * r1[2]
		v3 += a1 * r1[3]
		v0 += a2 * r2[0]
		v1 += a2 * r2[1]
		v2 += a2 * r2[2]
		v3 += a2 * r2[3]
		v0 += a3 * r3[0]
		v1 += a3 * r3[1]
		v2 += a3 * r3[2]
		v3 += a3 * r3[3]
		d[0], d[1], d[2], d[3] = v0, v1, v2, v3
	}
}

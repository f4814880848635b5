// SPDX-License-Identifier: MIT

// Package simd provides 4-wide float64 block kernels used by the matrix engine.
//
// Every kernel processes its input in chunks of Lanes (4) doubles, the width
// of one 256-bit register, and finishes the len%4 remainder with a scalar
// loop. The chunk loop is selected once at start-up:
//
//   - LevelAVX2: hand-written AVX2 assembly (amd64, AVX2 reported by x/sys/cpu).
//   - LevelLanes4: portable Go that walks four independent lanes per step.
//   - LevelScalar: plain element loop (NUMC_NO_SIMD set, or SetLevel).
//
// Build with the purego tag to exclude the assembly entirely.
//
// Kernels:
//
//	Add:      dst[i] = a[i] + b[i]
//	Sub:      dst[i] = a[i] - b[i]
//	Neg:      dst[i] = -a[i]
//	Abs:      dst[i] = |a[i]|
//	Fill:     dst[i] = v
//	Copy:     dst[i] = src[i]
//	AXPY:     dst[i] += alpha * x[i]
//	MulAdd4:  dst[i] += a0*b0[i] + a1*b1[i] + a2*b2[i] + a3*b3[i] (summed left to right)
//
// Slices passed to one call must have equal length; a mismatch panics, since
// it is a programming error in the caller. Kernels allocate nothing and are
// safe for concurrent use on disjoint slices.
package simd

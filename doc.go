// SPDX-License-Identifier: MIT

// Package numc is a dense float64 matrix engine: zero-copy views over
// reference-counted buffers, SIMD element-wise kernels, a parallel matrix
// product and integer matrix powers.
//
// What is in the box?
//
//	• Buffer & view manager: row-major roots, sub-rectangle views of views,
//	  storage freed once the last handle on it is released
//	• Element-wise kernels: add, subtract, negate, absolute, fill, copy
//	• Matrix product: naive for small operands, parallel 4-way k-unrolled
//	  and column-tiled otherwise
//	• Power: exponentiation by repeated squaring
//	• gonum interop: copy in and out of mat.Dense, zero-copy mat.Matrix view
//
// Under the hood, everything is organized under these packages:
//
//	matrix/       Engine, Matrix handle, kernels, errors, options
//	simd/         4-wide float64 block kernels (AVX2 assembly on amd64,
//	              portable 4-lane Go elsewhere) with runtime dispatch
//	workerpool/   persistent fork-join pool behind the parallel kernels
//	cmd/numc/     command-line driver (info, demo, pow, bench)
//	examples/     runnable programs (power iteration, Markov chain)
//
// Set NUMC_NO_SIMD=1 to force the portable kernels.
//
// Quick start:
//
//	e := matrix.New()
//	defer e.Close()
//	a, _ := e.Allocate(2, 2)
//	_ = e.Fill(a, 1)
//	sq, _ := e.Allocate(2, 2)
//	_ = e.Power(sq, a, 2) // [[2 2] [2 2]]
package numc

// SPDX-License-Identifier: MIT

// Package matrix is a dense float64 matrix engine.
//
// The matrix package provides:
//
//   - An Engine that allocates zero-initialized row-major roots and
//     zero-copy views (sub-rectangles that share a root's storage), with
//     reference-counted lifetimes: storage is freed once every handle and
//     view on it has been released.
//   - Element-wise kernels (Add, Subtract, Negate, Absolute, Fill, Copy)
//     running 4-wide vector blocks from package simd with a scalar tail, and
//     splitting large matrices across the engine's worker pool.
//   - Multiply, accumulating result += a*b with a naive loop for small
//     operands and a parallel, k-unrolled, column-tiled kernel otherwise.
//   - Power, integer exponentiation by repeated squaring.
//   - Interop with gonum (FromGonum, ToGonum, Matrix.Gonum).
//
// Every kernel writes into a caller-provided result and reports failures
// through the sentinel errors in errors.go; Code maps them to integer result
// codes for adapters.
//
// A minimal session:
//
//	e := matrix.New()
//	defer e.Close()
//	a, _ := e.Allocate(2, 2)
//	defer e.Release(a)
//	_ = e.Fill(a, 1)
//
// See the examples in this package for views, products and powers.
package matrix

// SPDX-License-Identifier: MIT
// Package: matrix
//
// Power raises a square matrix to a non-negative integer exponent by
// repeated squaring on top of the product kernel.
//
// Implementation:
//   - exponent 0: result = I.
//   - exponent 1: result = base.
//   - exponent 2: result = base * base.
//   - otherwise: the accumulator (result) starts as I or base depending on the
//     low bit; a squared copy of base and one scratch buffer are allocated
//     through the engine and released on return. For each remaining bit,
//     squared <- squared^2, and when the bit is set result <- result*squared.
//     scratch is zeroed before every product since Multiply accumulates.
//
// Complexity: O(n^3 log exponent) time, 2*n^2 extra elements.

package matrix

const opPower = "Power"

// Power computes result = base^exponent.
//
// Errors:
//   - ErrNilMatrix / ErrReleased for unusable handles.
//   - ErrDimensionMismatch if base is not square or result differs in shape.
//   - ErrNegativeExponent if exponent < 0.
//   - ErrAliased if result shares storage with base.
//   - ErrAllocationFailure if the scratch buffers cannot be allocated.
func (e *Engine) Power(result, base *Matrix, exponent int) error {
	if err := validateLiveAll(result, base); err != nil {
		return matrixErrorf(opPower, err)
	}
	if err := ValidateSquare(base); err != nil {
		return matrixErrorf(opPower, err)
	}
	if err := ValidateSameShape(result, base); err != nil {
		return matrixErrorf(opPower, err)
	}
	if err := ValidateNoOverlap(result, base); err != nil {
		return matrixErrorf(opPower, err)
	}
	if exponent < 0 {
		return matrixErrorf(opPower, ErrNegativeExponent)
	}

	switch exponent {
	case 0:
		e.identity(result)
		return nil
	case 1:
		e.copyInto(result, base)
		return nil
	case 2:
		e.fill(result, 0)
		e.multiply(result, base, base)
		return nil
	}

	n := base.rows
	squared, err := e.Allocate(n, n)
	if err != nil {
		return matrixErrorf(opPower, err)
	}
	defer e.Release(squared) //nolint:errcheck // fresh handle, released once
	scratch, err := e.Allocate(n, n)
	if err != nil {
		return matrixErrorf(opPower, err)
	}
	defer e.Release(scratch) //nolint:errcheck // fresh handle, released once

	e.copyInto(squared, base)
	if exponent&1 == 1 {
		e.copyInto(result, base)
	} else {
		e.identity(result)
	}

	for exponent >>= 1; exponent > 0; exponent >>= 1 {
		e.multiply(scratch, squared, squared)
		e.copyInto(squared, scratch)
		e.fill(scratch, 0)
		if exponent&1 == 1 {
			e.multiply(scratch, result, squared)
			e.copyInto(result, scratch)
			e.fill(scratch, 0)
		}
	}

	return nil
}

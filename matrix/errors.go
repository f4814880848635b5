// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set and result codes.
// This file defines ONLY package-level sentinel errors used across the matrix
// package, plus their integer result-code mapping for adapter layers. Every
// operation returns one of these sentinels (possibly wrapped with an
// operation tag); callers match them via errors.Is. No operation panics on a
// caller-triggered error condition.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Kernels wrap
// the sentinel once with their operation tag via matrixErrorf, producing e.g.
// "Add: ValidateSameShape: Rows: matrix: dimension mismatch"; errors.Is still
// matches the sentinel.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> released -> shape/index -> dimension mismatch -> aliasing -> exponent.

var (
	// ErrInvalidDimension is returned when a requested row or column count is <= 0.
	ErrInvalidDimension = errors.New("matrix: dimensions must be > 0")

	// ErrAllocationFailure is returned when storage for a matrix cannot be
	// obtained: the element count overflows, exceeds the engine budget
	// (WithMaxElements) or physical memory, or the runtime refuses the
	// slice size.
	ErrAllocationFailure = errors.New("matrix: allocation failure")

	// ErrOutOfRange indicates a view rectangle or element index outside the
	// bounds of the matrix it addresses.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates operand shapes incompatible with the
	// operation: Add/Subtract/Negate/Absolute/Copy with different shapes,
	// Multiply with a.Cols != b.Rows or a mis-shaped result, Power on a
	// non-square base.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates a nil *Matrix argument.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrReleased indicates a handle that was already passed to Release.
	ErrReleased = errors.New("matrix: handle already released")

	// ErrAliased indicates that a result shares storage with an operand in a
	// way the kernel cannot tolerate (any overlap for Multiply/Power, partial
	// overlap for element-wise kernels).
	ErrAliased = errors.New("matrix: result aliases an operand")

	// ErrNegativeExponent is returned by Power for exponent < 0.
	ErrNegativeExponent = errors.New("matrix: negative exponent")
)

// matrixErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ResultCode is the integer form of an operation outcome, for adapters that
// report failures through status codes instead of Go errors.
type ResultCode int

// Result codes. CodeOK is zero; every failure is negative.
const (
	CodeOK                ResultCode = 0
	CodeInvalidDimension  ResultCode = -1
	CodeAllocationFailure ResultCode = -2
	CodeOutOfRange        ResultCode = -3
	CodeDimensionMismatch ResultCode = -4
	CodeNilMatrix         ResultCode = -5
	CodeReleased          ResultCode = -6
	CodeAliased           ResultCode = -7
	CodeNegativeExponent  ResultCode = -8
	CodeUnknown           ResultCode = -99
)

// codeTable is ordered by ERROR PRIORITY; the first match wins.
var codeTable = []struct {
	err  error
	code ResultCode
}{
	{ErrNilMatrix, CodeNilMatrix},
	{ErrReleased, CodeReleased},
	{ErrInvalidDimension, CodeInvalidDimension},
	{ErrAllocationFailure, CodeAllocationFailure},
	{ErrOutOfRange, CodeOutOfRange},
	{ErrDimensionMismatch, CodeDimensionMismatch},
	{ErrAliased, CodeAliased},
	{ErrNegativeExponent, CodeNegativeExponent},
}

// Code maps err to its ResultCode: CodeOK for nil, CodeUnknown for errors
// that do not wrap a package sentinel.
func Code(err error) ResultCode {
	if err == nil {
		return CodeOK
	}
	for _, row := range codeTable {
		if errors.Is(err, row.err) {
			return row.code
		}
	}

	return CodeUnknown
}

// String returns the symbolic name of the code.
func (c ResultCode) String() string {
	switch c {
	case CodeOK:
		return "OK"
	case CodeInvalidDimension:
		return "InvalidDimension"
	case CodeAllocationFailure:
		return "AllocationFailure"
	case CodeOutOfRange:
		return "OutOfRange"
	case CodeDimensionMismatch:
		return "DimensionMismatch"
	case CodeNilMatrix:
		return "NilMatrix"
	case CodeReleased:
		return "Released"
	case CodeAliased:
		return "Aliased"
	case CodeNegativeExponent:
		return "NegativeExponent"
	default:
		return fmt.Sprintf("ResultCode(%d)", int(c))
	}
}

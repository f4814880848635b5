// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for handle and shape checks.
//   - Keep kernels minimal by delegating nil/released/shape/alias checks here.
//   - Return sentinel errors wrapped with the validator tag so kernels can wrap
//     once more with their operation tag.
//
// Determinism & Performance:
//   - All checks are O(1), deterministic and allocate nothing on success.
//
// Note:
//   - Composite validators follow a fixed sequence: NotNil -> Live -> Shape -> Alias.
//   - The first failing check wins; nothing is written by a kernel whose
//     validation failed.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateLive ensures m is non-nil and its handle has not been released.
//
// Errors: ErrNilMatrix, ErrReleased.
// Complexity: O(1).
func ValidateLive(m *Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateLive", ErrNilMatrix)
	}
	if !m.open.Load() {
		return validatorErrorf("ValidateLive", ErrReleased)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
// Assumes both are non-nil.
func ValidateSameShape(a, b *Matrix) error {
	if a.rows != b.rows {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.cols != b.cols {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare ensures m is square. Assumes m is non-nil.
func ValidateSquare(m *Matrix) error {
	if m.rows != m.cols {
		return validatorErrorf("ValidateSquare", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows and that result is
// a.Rows x b.Cols. Assumes all three are non-nil.
func ValidateMulCompatible(result, a, b *Matrix) error {
	if a.cols != b.rows {
		return validatorErrorf("ValidateMulCompatible: Inner", ErrDimensionMismatch)
	}
	if result.rows != a.rows || result.cols != b.cols {
		return validatorErrorf("ValidateMulCompatible: Result", ErrDimensionMismatch)
	}

	return nil
}

// ValidateNoOverlap ensures result shares no storage with operand.
func ValidateNoOverlap(result, operand *Matrix) error {
	if overlaps(result, operand) {
		return validatorErrorf("ValidateNoOverlap", ErrAliased)
	}

	return nil
}

// ValidateNoPartialOverlap ensures result either addresses exactly the same
// elements as operand (in-place update) or none of them.
func ValidateNoPartialOverlap(result, operand *Matrix) error {
	if overlaps(result, operand) && !sameWindow(result, operand) {
		return validatorErrorf("ValidateNoPartialOverlap", ErrAliased)
	}

	return nil
}

// validateLiveAll runs ValidateLive over ms in order.
func validateLiveAll(ms ...*Matrix) error {
	for _, m := range ms {
		if err := ValidateLive(m); err != nil {
			return err
		}
	}

	return nil
}

// ValidateUnary is the composite check for result = f(a).
func ValidateUnary(result, a *Matrix) error {
	if err := validateLiveAll(result, a); err != nil {
		return err
	}
	if err := ValidateSameShape(result, a); err != nil {
		return err
	}

	return ValidateNoPartialOverlap(result, a)
}

// ValidateBinary is the composite check for result = f(a, b).
func ValidateBinary(result, a, b *Matrix) error {
	if err := validateLiveAll(result, a, b); err != nil {
		return err
	}
	if err := ValidateSameShape(a, b); err != nil {
		return err
	}
	if err := ValidateSameShape(result, a); err != nil {
		return err
	}
	if err := ValidateNoPartialOverlap(result, a); err != nil {
		return err
	}

	return ValidateNoPartialOverlap(result, b)
}

// SPDX-License-Identifier: MIT

package matrix

import "math/rand"

const opRandomFill = "RandomFill"

// RandomFill overwrites m with values drawn uniformly from [low, high) by a
// generator seeded with seed. Elements are drawn in row-major order, so the
// same seed and shape always give the same matrix.
//
// Errors: ErrNilMatrix, ErrReleased.
func (e *Engine) RandomFill(m *Matrix, seed int64, low, high float64) error {
	if err := ValidateLive(m); err != nil {
		return matrixErrorf(opRandomFill, err)
	}
	rng := rand.New(rand.NewSource(seed))
	span := high - low
	for _, row := range m.data {
		for j := range row {
			row[j] = low + span*rng.Float64()
		}
	}

	return nil
}

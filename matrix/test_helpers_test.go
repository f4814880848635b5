// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures and utilities for the engine tests.
//   - Keep all data finite so comparisons stay exact or tolerance-bounded.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numc/matrix"
)

// tol is the absolute tolerance for products of values in [-1, 1).
const tol = 1e-9

// newEngine builds an engine closed at test cleanup.
func newEngine(t testing.TB, opts ...matrix.Option) *matrix.Engine {
	t.Helper()
	e := matrix.New(opts...)
	t.Cleanup(e.Close)

	return e
}

// mustAlloc allocates an r x c root or fails the test.
func mustAlloc(t testing.TB, e *matrix.Engine, r, c int) *matrix.Matrix {
	t.Helper()
	m, err := e.Allocate(r, c)
	require.NoError(t, err)

	return m
}

// mustView creates a view or fails the test.
func mustView(t testing.TB, e *matrix.Engine, from *matrix.Matrix, ro, co, r, c int) *matrix.Matrix {
	t.Helper()
	v, err := e.AllocateView(from, ro, co, r, c)
	require.NoError(t, err)

	return v
}

// fromRows allocates a root holding rows.
func fromRows(t testing.TB, e *matrix.Engine, rows [][]float64) *matrix.Matrix {
	t.Helper()
	m := mustAlloc(t, e, len(rows), len(rows[0]))
	for i, row := range rows {
		for j, v := range row {
			require.NoError(t, m.Set(i, j, v))
		}
	}

	return m
}

// toRows copies m out as [][]float64.
func toRows(t testing.TB, m *matrix.Matrix) [][]float64 {
	t.Helper()
	out := make([][]float64, m.Rows())
	for i := range out {
		out[i] = make([]float64, m.Cols())
		for j := range out[i] {
			v, err := m.At(i, j)
			require.NoError(t, err)
			out[i][j] = v
		}
	}

	return out
}

// randomMatrix allocates an r x c root with values in [-1, 1) from seed.
func randomMatrix(t testing.TB, e *matrix.Engine, r, c int, seed int64) *matrix.Matrix {
	t.Helper()
	m := mustAlloc(t, e, r, c)
	require.NoError(t, e.RandomFill(m, seed, -1, 1))

	return m
}

// randomRows returns an r x c grid of values in [-10, 10) from seed.
func randomRows(r, c int, seed int64) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([][]float64, r)
	for i := range out {
		out[i] = make([]float64, c)
		for j := range out[i] {
			out[i][j] = rng.Float64()*20 - 10
		}
	}

	return out
}

// requireAllClose asserts element-wise |a-b| <= eps.
func requireAllClose(t testing.TB, want, got *matrix.Matrix, eps float64) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows(), "rows")
	require.Equal(t, want.Cols(), got.Cols(), "cols")
	w, g := toRows(t, want), toRows(t, got)
	for i := range w {
		for j := range w[i] {
			require.InDeltaf(t, w[i][j], g[i][j], eps, "at (%d,%d)", i, j)
		}
	}
}

// requireAll asserts every element of m equals v.
func requireAll(t testing.TB, m *matrix.Matrix, v float64) {
	t.Helper()
	for i, row := range toRows(t, m) {
		for j, x := range row {
			require.Equalf(t, v, x, "at (%d,%d)", i, j)
		}
	}
}

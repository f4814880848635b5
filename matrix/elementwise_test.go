// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numc/matrix"
)

// engines returns configurations that drive every element-wise path: default
// thresholds, forced parallel split with a tiny cutoff, and no small path.
func engines(t *testing.T) map[string]*matrix.Engine {
	t.Helper()
	return map[string]*matrix.Engine{
		"default":  newEngine(t),
		"parallel": newEngine(t, matrix.WithParallelElements(5), matrix.WithWorkers(4)),
		"vector":   newEngine(t, matrix.WithSmallThreshold(0)),
	}
}

func TestFill_Shapes(t *testing.T) {
	t.Parallel()
	for name, e := range engines(t) {
		for _, dims := range [][2]int{{4, 4}, {3, 5}, {1, 1}, {1, 9}, {33, 7}} {
			m := mustAlloc(t, e, dims[0], dims[1])
			require.NoError(t, e.Fill(m, 2.5), name)
			requireAll(t, m, 2.5)
		}
	}
}

func TestFill_ViewTouchesOnlyItsRectangle(t *testing.T) {
	t.Parallel()
	e := newEngine(t)
	root := mustAlloc(t, e, 4, 5)
	v := mustView(t, e, root, 1, 1, 2, 3)

	require.NoError(t, e.Fill(v, 9))
	for i := 0; i < 4; i++ {
		for j := 0; j < 5; j++ {
			want := 0.0
			if i >= 1 && i < 3 && j >= 1 && j < 4 {
				want = 9
			}
			got, err := root.At(i, j)
			require.NoError(t, err)
			require.Equalf(t, want, got, "at (%d,%d)", i, j)
		}
	}
}

func TestAddSubtract_Inverse(t *testing.T) {
	t.Parallel()
	for name, e := range engines(t) {
		for _, dims := range [][2]int{{2, 2}, {3, 5}, {9, 9}, {17, 3}} {
			a := fromRows(t, e, randomRows(dims[0], dims[1], 1))
			b := fromRows(t, e, randomRows(dims[0], dims[1], 2))
			sum := mustAlloc(t, e, dims[0], dims[1])
			back := mustAlloc(t, e, dims[0], dims[1])

			require.NoError(t, e.Add(sum, a, b), name)
			require.NoError(t, e.Subtract(back, sum, b), name)
			requireAllClose(t, a, back, 1e-12)

			ar, br, sr := toRows(t, a), toRows(t, b), toRows(t, sum)
			for i := range ar {
				for j := range ar[i] {
					require.Equal(t, ar[i][j]+br[i][j], sr[i][j])
				}
			}
		}
	}
}

func TestAdd_InPlace(t *testing.T) {
	t.Parallel()
	e := newEngine(t)
	a := fromRows(t, e, [][]float64{{1, 2, 3, 4, 5}})
	b := fromRows(t, e, [][]float64{{10, 20, 30, 40, 50}})

	require.NoError(t, e.Add(a, a, b))
	require.Equal(t, [][]float64{{11, 22, 33, 44, 55}}, toRows(t, a))
	require.NoError(t, e.Subtract(b, a, b))
	require.Equal(t, [][]float64{{1, 2, 3, 4, 5}}, toRows(t, b))
}

func TestAddSubtract_Mismatch(t *testing.T) {
	t.Parallel()
	e := newEngine(t)
	a := mustAlloc(t, e, 2, 3)
	b := mustAlloc(t, e, 3, 2)
	r := mustAlloc(t, e, 2, 3)
	require.NoError(t, e.Fill(r, 7))

	err := e.Add(r, a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.Equal(t, matrix.CodeDimensionMismatch, matrix.Code(err))
	require.ErrorIs(t, e.Subtract(r, a, b), matrix.ErrDimensionMismatch)

	wrong := mustAlloc(t, e, 3, 3)
	require.ErrorIs(t, e.Add(wrong, a, a), matrix.ErrDimensionMismatch)

	// nothing written on failure
	requireAll(t, r, 7)
}

func TestNegate_Involutive(t *testing.T) {
	t.Parallel()
	for name, e := range engines(t) {
		for _, dims := range [][2]int{{3, 3}, {8, 8}, {5, 11}, {1, 13}} {
			a := fromRows(t, e, randomRows(dims[0], dims[1], 3))
			n := mustAlloc(t, e, dims[0], dims[1])
			nn := mustAlloc(t, e, dims[0], dims[1])

			require.NoError(t, e.Negate(n, a), name)
			require.NoError(t, e.Negate(nn, n), name)
			require.Equal(t, toRows(t, a), toRows(t, nn))

			ar, nr := toRows(t, a), toRows(t, n)
			for i := range ar {
				for j := range ar[i] {
					require.Equal(t, -ar[i][j], nr[i][j])
				}
			}
		}
	}
}

func TestNegate_SignedZero(t *testing.T) {
	t.Parallel()
	for name, e := range engines(t) {
		a := fromRows(t, e, [][]float64{{0, math.Copysign(0, -1), 1, -1, 0, 0, 0, 0, 0}})
		n := mustAlloc(t, e, 1, 9)
		require.NoError(t, e.Negate(n, a), name)
		got := toRows(t, n)[0]
		require.True(t, math.Signbit(got[0]), name)
		require.False(t, math.Signbit(got[1]), name)
	}
}

func TestAbsolute_NonNegative(t *testing.T) {
	t.Parallel()
	for name, e := range engines(t) {
		for _, dims := range [][2]int{{2, 6}, {8, 9}, {13, 4}} {
			a := fromRows(t, e, randomRows(dims[0], dims[1], 4))
			r := mustAlloc(t, e, dims[0], dims[1])
			require.NoError(t, e.Absolute(r, a), name)

			ar, rr := toRows(t, a), toRows(t, r)
			for i := range ar {
				for j := range ar[i] {
					require.GreaterOrEqual(t, rr[i][j], 0.0)
					require.Equal(t, math.Abs(ar[i][j]), rr[i][j])
				}
			}
		}
	}
}

func TestUnary_Mismatch(t *testing.T) {
	t.Parallel()
	e := newEngine(t)
	a := mustAlloc(t, e, 2, 2)
	r := mustAlloc(t, e, 2, 3)
	require.ErrorIs(t, e.Negate(r, a), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, e.Absolute(r, a), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, e.Copy(r, a), matrix.ErrDimensionMismatch)
}

func TestElementwise_PartialRowViews(t *testing.T) {
	t.Parallel()
	for name, e := range engines(t) {
		t.Run(name, func(t *testing.T) {
			ra := fromRows(t, e, randomRows(10, 12, 5))
			rb := fromRows(t, e, randomRows(10, 12, 6))
			out := mustAlloc(t, e, 10, 12)

			a := mustView(t, e, ra, 1, 2, 7, 9)
			b := mustView(t, e, rb, 3, 0, 7, 9)
			r := mustView(t, e, out, 2, 3, 7, 9)
			require.False(t, a.Contiguous())

			require.NoError(t, e.Add(r, a, b))
			ar, br, rr := toRows(t, a), toRows(t, b), toRows(t, r)
			for i := range ar {
				for j := range ar[i] {
					require.Equal(t, ar[i][j]+br[i][j], rr[i][j])
				}
			}

			require.NoError(t, e.Absolute(r, a))
			rr = toRows(t, r)
			for i := range ar {
				for j := range ar[i] {
					require.Equal(t, math.Abs(ar[i][j]), rr[i][j])
				}
			}

			// the border of out stays zero
			got, err := out.At(0, 0)
			require.NoError(t, err)
			require.Zero(t, got)
			got, err = out.At(9, 11)
			require.NoError(t, err)
			require.Zero(t, got)
		})
	}
}

func TestElementwise_Aliasing(t *testing.T) {
	t.Parallel()
	e := newEngine(t)
	root := mustAlloc(t, e, 4, 4)
	top := mustView(t, e, root, 0, 0, 3, 4)
	shifted := mustView(t, e, root, 1, 0, 3, 4)

	require.ErrorIs(t, e.Negate(shifted, top), matrix.ErrAliased)
	require.ErrorIs(t, e.Add(shifted, top, top), matrix.ErrAliased)

	// same window is an in-place update
	same := mustView(t, e, root, 0, 0, 3, 4)
	require.NoError(t, e.Fill(top, 2))
	require.NoError(t, e.Negate(same, top))
	requireAll(t, top, -2)

	// disjoint windows of one root are fine
	a := mustView(t, e, root, 0, 0, 2, 2)
	b := mustView(t, e, root, 2, 2, 2, 2)
	require.False(t, matrix.Overlaps_TestOnly(a, b))
	require.NoError(t, e.Copy(b, a))
	requireAll(t, b, -2)
}

func TestElementwise_ReleasedAndNil(t *testing.T) {
	t.Parallel()
	e := newEngine(t)
	a := mustAlloc(t, e, 2, 2)
	r := mustAlloc(t, e, 2, 2)
	require.NoError(t, e.Release(a))

	require.ErrorIs(t, e.Add(r, a, r), matrix.ErrReleased)
	require.ErrorIs(t, e.Negate(r, a), matrix.ErrReleased)
	require.ErrorIs(t, e.Add(nil, r, r), matrix.ErrNilMatrix)
	require.ErrorIs(t, e.Absolute(r, nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, e.Fill(nil, 1), matrix.ErrNilMatrix)
}

func TestCopyIdentity(t *testing.T) {
	t.Parallel()
	e := newEngine(t)
	src := fromRows(t, e, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	dst := mustAlloc(t, e, 3, 3)
	require.NoError(t, e.Copy(dst, src))
	require.Equal(t, toRows(t, src), toRows(t, dst))

	require.NoError(t, e.Identity(dst))
	require.Equal(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, toRows(t, dst))

	require.ErrorIs(t, e.Identity(mustAlloc(t, e, 2, 3)), matrix.ErrDimensionMismatch)
}

func TestRandomFill_DeterministicRange(t *testing.T) {
	t.Parallel()
	e := newEngine(t)
	a := mustAlloc(t, e, 6, 7)
	b := mustAlloc(t, e, 6, 7)
	require.NoError(t, e.RandomFill(a, 42, -3, 5))
	require.NoError(t, e.RandomFill(b, 42, -3, 5))
	require.Equal(t, toRows(t, a), toRows(t, b))

	for _, row := range toRows(t, a) {
		for _, v := range row {
			require.GreaterOrEqual(t, v, -3.0)
			require.Less(t, v, 5.0)
		}
	}

	require.NoError(t, e.RandomFill(b, 43, -3, 5))
	require.NotEqual(t, toRows(t, a), toRows(t, b))
}

// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numc/matrix"
	"github.com/katalvlaran/numc/simd"
)

// run executes the root command with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

func TestInfo(t *testing.T) {
	out, _, err := run(t, "info", "--workers", "2")
	require.NoError(t, err)
	require.Contains(t, out, "detected: "+simd.DetectedLevel().String())
	require.Contains(t, out, "workers:  2")
}

func TestNoSIMD(t *testing.T) {
	prev := simd.CurrentLevel()
	t.Cleanup(func() { simd.SetLevel(prev) })

	out, _, err := run(t, "info", "--no-simd")
	require.NoError(t, err)
	require.Contains(t, out, "active:   scalar")
}

func TestDemo(t *testing.T) {
	out, errOut, err := run(t, "demo", "--verbose")
	require.NoError(t, err)
	require.Contains(t, out, "[19, 22]\n[43, 50]")
	require.Contains(t, out, "[0, 5, 5, 0]")
	require.Contains(t, out, "[1307, 1518]\n[2967, 3446]")
	require.Contains(t, errOut, "engine ready")
}

func TestDemoReleasesEveryHandle(t *testing.T) {
	e := matrix.New(matrix.WithWorkers(2))
	defer e.Close()
	require.NoError(t, runDemo(io.Discard, e))
	st := e.Stats()
	require.Zero(t, st.LiveRoots)
	require.Zero(t, st.LiveViews)
	require.Equal(t, st.Allocations, st.Frees)

	// a, b, c and the 4x4 root fit; the 2x2 power result does not
	tight := matrix.New(matrix.WithMaxElements(28))
	defer tight.Close()
	require.ErrorIs(t, runDemo(io.Discard, tight), matrix.ErrAllocationFailure)
	st = tight.Stats()
	require.Zero(t, st.LiveRoots)
	require.Zero(t, st.LiveViews)
	require.Zero(t, st.LiveElements)
}

func TestPow(t *testing.T) {
	out, _, err := run(t, "pow", "3", "5", "--seed", "9")
	require.NoError(t, err)
	require.Contains(t, out, "trace=")

	_, _, err = run(t, "pow", "--", "3", "-1")
	require.ErrorIs(t, err, matrix.ErrNegativeExponent)

	_, _, err = run(t, "pow", "0", "2")
	require.ErrorIs(t, err, matrix.ErrInvalidDimension)

	_, _, err = run(t, "pow", "x", "2")
	require.Error(t, err)
}

func TestBench(t *testing.T) {
	out, _, err := run(t, "bench", "--size", "16", "--iters", "2")
	require.NoError(t, err)
	require.Contains(t, out, "n=16")

	_, _, err = run(t, "bench", "--size", "0")
	require.Error(t, err)

	_, _, err = run(t, "info", "--workers=-1")
	require.ErrorIs(t, err, errNegativeWorkers)
}

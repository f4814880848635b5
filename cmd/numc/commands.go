// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"runtime"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/numc/matrix"
	"github.com/katalvlaran/numc/simd"
)

// maxPrintedSize is the largest result pow prints in full.
const maxPrintedSize = 8

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show SIMD dispatch and worker configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e := a.engine()
			defer e.Close()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "arch:     %s/%s\n", runtime.GOOS, runtime.GOARCH)
			fmt.Fprintf(out, "detected: %s\n", simd.DetectedLevel())
			fmt.Fprintf(out, "active:   %s\n", simd.CurrentLevel())
			fmt.Fprintf(out, "lanes:    %d\n", simd.Lanes)
			fmt.Fprintf(out, "workers:  %d\n", e.Workers())
			return nil
		},
	}
}

func newDemoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Walk through products, views and powers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e := a.engine()
			defer e.Close()
			return runDemo(cmd.OutOrStdout(), e)
		},
	}
}

// runDemo multiplies [[1,2],[3,4]] by [[5,6],[7,8]], writes through a view
// and squares the first product.
func runDemo(out io.Writer, e *matrix.Engine) error {
	a, err := fromValues(e, 2, 2, 1, 2, 3, 4)
	if err != nil {
		return err
	}
	defer e.Release(a) //nolint:errcheck
	b, err := fromValues(e, 2, 2, 5, 6, 7, 8)
	if err != nil {
		return err
	}
	defer e.Release(b) //nolint:errcheck
	c, err := e.Allocate(2, 2)
	if err != nil {
		return err
	}
	defer e.Release(c) //nolint:errcheck

	if err = e.Multiply(c, a, b); err != nil {
		return err
	}
	fmt.Fprintf(out, "a * b =\n%s\n", c)

	root, err := e.Allocate(4, 4)
	if err != nil {
		return err
	}
	defer e.Release(root) //nolint:errcheck
	view, err := e.AllocateView(root, 1, 1, 2, 2)
	if err != nil {
		return err
	}
	defer e.Release(view) //nolint:errcheck
	if err = e.Fill(view, 5); err != nil {
		return err
	}
	fmt.Fprintf(out, "fill(view(1,1,2,2), 5) =\n%s\n", root)

	sq, err := e.Allocate(2, 2)
	if err != nil {
		return err
	}
	defer e.Release(sq) //nolint:errcheck
	if err = e.Power(sq, c, 2); err != nil {
		return err
	}
	fmt.Fprintf(out, "(a * b)^2 =\n%s", sq)

	return nil
}

// fromValues allocates a rows x cols root filled row-major from vals.
func fromValues(e *matrix.Engine, rows, cols int, vals ...float64) (*matrix.Matrix, error) {
	m, err := e.Allocate(rows, cols)
	if err != nil {
		return nil, err
	}
	for i, v := range vals {
		if err = m.Set(i/cols, i%cols, v); err != nil {
			_ = e.Release(m)
			return nil, err
		}
	}

	return m, nil
}

func newPowCmd(a *app) *cobra.Command {
	var seed int64
	cmd := &cobra.Command{
		Use:   "pow SIZE EXPONENT",
		Short: "Raise a random SIZE x SIZE matrix with entries in [-1, 1) to EXPONENT",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("size: %w", err)
			}
			exp, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("exponent: %w", err)
			}

			e := a.engine()
			defer e.Close()
			return runPow(cmd.OutOrStdout(), e, n, exp, seed)
		},
	}
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed for the base matrix")

	return cmd
}

func runPow(out io.Writer, e *matrix.Engine, n, exp int, seed int64) error {
	base, err := e.Allocate(n, n)
	if err != nil {
		return err
	}
	defer e.Release(base) //nolint:errcheck
	if err = e.RandomFill(base, seed, -1, 1); err != nil {
		return err
	}
	result, err := e.Allocate(n, n)
	if err != nil {
		return err
	}
	defer e.Release(result) //nolint:errcheck

	start := time.Now()
	if err = e.Power(result, base, exp); err != nil {
		return fmt.Errorf("%w (code %d)", err, matrix.Code(err))
	}
	elapsed := time.Since(start)

	if n <= maxPrintedSize {
		fmt.Fprintf(out, "%s", result)
	}
	trace := 0.0
	for i := 0; i < n; i++ {
		v, _ := result.At(i, i)
		trace += v
	}
	fmt.Fprintf(out, "trace=%g elapsed=%s\n", trace, elapsed)

	return nil
}

func newBenchCmd(a *app) *cobra.Command {
	var size, iters int
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time square matrix products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if size <= 0 || iters <= 0 {
				return fmt.Errorf("--size and --iters must be > 0")
			}
			e := a.engine()
			defer e.Close()
			return runBench(cmd.OutOrStdout(), e, size, iters)
		},
	}
	cmd.Flags().IntVar(&size, "size", 256, "matrix size")
	cmd.Flags().IntVar(&iters, "iters", 3, "number of products to time")

	return cmd
}

func runBench(out io.Writer, e *matrix.Engine, n, iters int) error {
	ms := make([]*matrix.Matrix, 0, 3)
	defer func() {
		for _, m := range ms {
			_ = e.Release(m)
		}
	}()
	for seed := int64(1); seed <= 3; seed++ {
		m, err := e.Allocate(n, n)
		if err != nil {
			return err
		}
		ms = append(ms, m)
		if err = e.RandomFill(m, seed, -1, 1); err != nil {
			return err
		}
	}
	x, y, z := ms[0], ms[1], ms[2]

	var best time.Duration
	for i := 0; i < iters; i++ {
		if err := e.Fill(z, 0); err != nil {
			return err
		}
		start := time.Now()
		if err := e.Multiply(z, x, y); err != nil {
			return err
		}
		if d := time.Since(start); i == 0 || d < best {
			best = d
		}
	}
	flops := 2 * float64(n) * float64(n) * float64(n)
	fmt.Fprintf(out, "n=%d simd=%s workers=%d best=%s gflops=%.2f\n",
		n, simd.CurrentLevel(), e.Workers(), best, flops/best.Seconds()/1e9)

	return nil
}

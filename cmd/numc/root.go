// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/numc/matrix"
	"github.com/katalvlaran/numc/simd"
)

var errNegativeWorkers = errors.New("--workers must be >= 0")

// app holds the global flags shared by every subcommand.
type app struct {
	verbose bool
	noSIMD  bool
	workers int
	log     *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "numc",
		Short:         "Dense float64 matrix engine",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log engine diagnostics to stderr")
	root.PersistentFlags().BoolVar(&a.noSIMD, "no-simd", false, "force the portable kernels (also NUMC_NO_SIMD=1)")
	root.PersistentFlags().IntVar(&a.workers, "workers", matrix.DefaultWorkers, "worker pool size (0 = GOMAXPROCS)")

	root.AddCommand(
		newInfoCmd(a),
		newDemoCmd(a),
		newPowCmd(a),
		newBenchCmd(a),
	)

	return root
}

// setup wires logging and SIMD dispatch from the global flags.
func (a *app) setup(cmd *cobra.Command) error {
	level := slog.LevelWarn
	if a.verbose {
		level = slog.LevelDebug
	}
	a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	if a.workers < 0 {
		return errNegativeWorkers
	}
	if a.noSIMD || simd.NoSimdEnv() {
		prev := simd.SetLevel(simd.LevelScalar)
		a.log.Debug("simd disabled", slog.String("was", prev.String()))
	}

	return nil
}

// engine builds an Engine configured from the global flags.
func (a *app) engine() *matrix.Engine {
	return matrix.New(
		matrix.WithWorkers(a.workers),
		matrix.WithLogger(a.log),
	)
}

// SPDX-License-Identifier: MIT

// Command numc drives the matrix engine from the command line.
//
// Usage:
//
//	numc info                      # SIMD level, workers
//	numc demo                      # product, view and power walkthrough
//	numc pow 4 13 --seed 7         # random 4x4 base raised to 13
//	numc bench --size 512 --iters 5
//
// Global flags: --verbose (debug logs on stderr), --no-simd (portable kernels,
// same as NUMC_NO_SIMD=1), --workers N.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "numc: %v\n", err)
		os.Exit(1)
	}
}

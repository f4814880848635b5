// SPDX-License-Identifier: MIT

package simd

import (
	"os"
	"strconv"
	"sync/atomic"
)

// Lanes is the number of float64 values processed per vector step.
const Lanes = 4

// Level identifies the chunk loop the kernels run.
type Level int32

const (
	// LevelScalar runs one element per iteration.
	LevelScalar Level = iota

	// LevelLanes4 runs the portable 4-lane Go loop.
	LevelLanes4

	// LevelAVX2 runs 256-bit AVX2 assembly (amd64 only).
	LevelAVX2
)

// String returns a human-readable name for the level.
func (l Level) String() string {
	switch l {
	case LevelScalar:
		return "scalar"
	case LevelLanes4:
		return "lanes4"
	case LevelAVX2:
		return "avx2"
	default:
		return "unknown"
	}
}

// detected is the best level this CPU and build support. Set by init() in
// dispatch_*.go files.
var detected Level

// current is the level in use; it never exceeds detected.
var current atomic.Int32

// CurrentLevel returns the level the kernels are currently using.
func CurrentLevel() Level {
	return Level(current.Load())
}

// DetectedLevel returns the best level available on this machine.
func DetectedLevel() Level {
	return detected
}

// SetLevel switches the kernels to l, clamped to DetectedLevel, and returns
// the previous level. Intended for benchmarks, tests and CLI flags; calling it
// while kernels run on other goroutines only affects calls that start later.
func SetLevel(l Level) Level {
	if l > detected {
		l = detected
	}
	if l < LevelScalar {
		l = LevelScalar
	}

	return Level(current.Swap(int32(l)))
}

// NoSimdEnv reports whether NUMC_NO_SIMD is set. Any non-empty value that does
// not parse as false disables vector loops.
func NoSimdEnv() bool {
	val := os.Getenv("NUMC_NO_SIMD")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}

	return true
}

// initLevel records the detected level and picks the starting level.
func initLevel(best Level) {
	detected = best
	if NoSimdEnv() {
		current.Store(int32(LevelScalar))
		return
	}
	current.Store(int32(best))
}

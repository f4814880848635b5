// SPDX-License-Identifier: MIT

//go:build !amd64 || purego

package simd

func init() {
	// No assembly on this target; the 4-lane Go loop is the best we have.
	initLevel(LevelLanes4)
}

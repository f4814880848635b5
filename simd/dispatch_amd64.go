// SPDX-License-Identifier: MIT

//go:build amd64 && !purego

package simd

import "golang.org/x/sys/cpu"

// x/sys/cpu reports AVX2 only when the OS also saves the YMM state.
func init() {
	if cpu.X86.HasAVX && cpu.X86.HasAVX2 {
		initLevel(LevelAVX2)
		return
	}
	initLevel(LevelLanes4)
}

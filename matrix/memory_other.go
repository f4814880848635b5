// SPDX-License-Identifier: MIT

//go:build !linux

package matrix

// physicalMemory is unknown off Linux; only maxAllocBytes and
// WithMaxElements bound allocations there.
func physicalMemory() uint64 { return 0 }

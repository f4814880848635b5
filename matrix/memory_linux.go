// SPDX-License-Identifier: MIT

//go:build linux

package matrix

import "golang.org/x/sys/unix"

// physicalMemory returns installed RAM plus swap in bytes, or 0 when the
// kernel does not report it.
func physicalMemory() uint64 {
	var info unix.Sysinfo_t
	if err := unix.Sysinfo(&info); err != nil {
		return 0
	}
	unit := uint64(info.Unit)
	if unit == 0 {
		unit = 1
	}

	return (uint64(info.Totalram) + uint64(info.Totalswap)) * unit
}

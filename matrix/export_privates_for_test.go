// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for private kernels and the options snapshot.
//
// Purpose:
//   - Expose the naive and row-strip product kernels so matrix_test can
//     compare them directly, independent of dispatch thresholds.
//   - Expose a read-only snapshot of an engine's resolved Options.
//
// Build Policy:
//   - The file name ends in _test.go, so it only exists in test binaries.

// OptionsSnapshot is a stable, read-only view of internal Options.
type OptionsSnapshot struct {
	Workers          int
	SmallThreshold   int
	ParallelElements int
	ColumnTile       int
	RowStrip         int
	MaxElements      int64
}

// OptionsSnapshot_TestOnly returns the options e was built with.
func OptionsSnapshot_TestOnly(e *Engine) OptionsSnapshot {
	o := e.opts
	return OptionsSnapshot{
		Workers:          o.workers,
		SmallThreshold:   o.smallThreshold,
		ParallelElements: o.parallelElements,
		ColumnTile:       o.columnTile,
		RowStrip:         o.rowStrip,
		MaxElements:      o.maxElements,
	}
}

// MulNaive_TestOnly runs the i,k,j kernel without validation.
func MulNaive_TestOnly(c, a, b *Matrix) { mulNaive(c, a, b) }

// MulRows_TestOnly runs the unrolled kernel over every row with the given
// column tile, without validation or the pool.
func MulRows_TestOnly(c, a, b *Matrix, tile int) { mulRows(c, a, b, 0, a.rows, tile) }

// Overlaps_TestOnly exposes the storage overlap predicate.
func Overlaps_TestOnly(x, y *Matrix) bool { return overlaps(x, y) }

// MemoryElements_TestOnly reports the physical-memory element cap, 0 if
// unknown on this platform.
func MemoryElements_TestOnly() int64 { return memoryElements }

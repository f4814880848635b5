// SPDX-License-Identifier: MIT

// Package matrix - Matrix handles: roots, views and element access.
//
// Purpose:
//   - A root owns one contiguous row-major buffer of rows*cols float64 values.
//   - A view aliases a rectangle of its immediate parent; it owns only its
//     row-pointer array (one slice header per row).
//   - Views may be taken of views; each link composes offsets against its
//     immediate parent, never the root.
//
// Contiguity:
//   - flat is the rows*cols run when the elements are provably adjacent in
//     memory: roots, views spanning full rows of a contiguous parent, and any
//     single-row view. Kernels use flat for one-pass loops and fall back to
//     per-row loops otherwise.
//
// Complexity quicksheet:
//   - At/Set: O(1); View creation: O(rows); String: O(r*c).

package matrix

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"
	ctxSet = "Set"
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Matrix is a handle to a dense row-major float64 matrix owned by an Engine.
// Obtain one with Engine.Allocate or Engine.AllocateView and hand it back
// exactly once with Engine.Release.
//
// A Matrix is not safe for concurrent mutation; callers serialize writers to
// the same storage (including writers through different views of one root).
type Matrix struct {
	rows, cols int         // shape, fixed at creation
	absRow     int         // row offset of element (0,0) inside the root
	absCol     int         // column offset of element (0,0) inside the root
	data       [][]float64 // row-pointer array; nil once freed
	flat       []float64   // contiguous rows*cols span, or nil
	parent     *Matrix     // immediate parent for views; nil for roots
	root       *Matrix     // storage owner (self for roots)
	engine     *Engine     // allocating engine (stats, logging)
	refs       atomic.Int32
	open       atomic.Bool // false once the handle itself was released
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix)(nil)

// Rows returns the number of rows. Complexity: O(1).
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns. Complexity: O(1).
func (m *Matrix) Cols() int { return m.cols }

// Shape returns (rows, cols). Complexity: O(1).
func (m *Matrix) Shape() (rows, cols int) { return m.rows, m.cols }

// Is1D reports whether the matrix has a single row or a single column.
// Arithmetic ignores it; adapters use it to decide how to present results.
func (m *Matrix) Is1D() bool { return m.rows == 1 || m.cols == 1 }

// IsView reports whether m aliases another matrix's storage.
func (m *Matrix) IsView() bool { return m.parent != nil }

// Parent returns the matrix m was created from, or nil for a root.
func (m *Matrix) Parent() *Matrix { return m.parent }

// Contiguous reports whether m's elements form one rows*cols run in memory.
func (m *Matrix) Contiguous() bool { return m.flat != nil }

// Offset returns the position of m's element (0,0) inside its root.
func (m *Matrix) Offset() (row, col int) { return m.absRow, m.absCol }

// RefCount returns the number of live units holding m: its own handle (until
// released) plus one per live view created directly from it.
func (m *Matrix) RefCount() int { return int(m.refs.Load()) }

// Released reports whether Release was already called on this handle.
func (m *Matrix) Released() bool { return !m.open.Load() }

// At returns the element at (row, col).
//
// Errors:
//   - ErrReleased when the handle was released.
//   - ErrOutOfRange when the indices fall outside the shape.
func (m *Matrix) At(row, col int) (float64, error) {
	if err := m.check(row, col); err != nil {
		return 0, matrixErrorf(fmt.Sprintf("Matrix.%s(%d,%d)", ctxAt, row, col), err)
	}

	return m.data[row][col], nil
}

// Set stores v at (row, col). Writes through a view are visible through its
// parent and every other view of the same root.
//
// Errors: same as At.
func (m *Matrix) Set(row, col int, v float64) error {
	if err := m.check(row, col); err != nil {
		return matrixErrorf(fmt.Sprintf("Matrix.%s(%d,%d)", ctxSet, row, col), err)
	}
	m.data[row][col] = v

	return nil
}

// check validates liveness and bounds for element access.
func (m *Matrix) check(row, col int) error {
	if !m.open.Load() {
		return ErrReleased
	}
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return ErrOutOfRange
	}

	return nil
}

// String renders rows as bracketed, comma-separated lines for diagnostics.
// A released handle renders as "<released>".
func (m *Matrix) String() string {
	if !m.open.Load() {
		return "<released>"
	}
	var b strings.Builder
	for _, row := range m.data {
		b.WriteString(_fmtRowOpen)
		for j, v := range row {
			if j > 0 {
				b.WriteString(_fmtSep)
			}
			fmt.Fprintf(&b, "%g", v)
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// overlaps reports whether x and y share at least one element of storage.
func overlaps(x, y *Matrix) bool {
	if x.root != y.root {
		return false
	}

	return x.absRow < y.absRow+y.rows && y.absRow < x.absRow+x.rows &&
		x.absCol < y.absCol+y.cols && y.absCol < x.absCol+x.cols
}

// sameWindow reports whether x and y address exactly the same elements.
func sameWindow(x, y *Matrix) bool {
	return x.root == y.root &&
		x.absRow == y.absRow && x.absCol == y.absCol &&
		x.rows == y.rows && x.cols == y.cols
}

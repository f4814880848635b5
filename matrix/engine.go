// SPDX-License-Identifier: MIT

// Package matrix - Engine: buffer & view manager.
//
// Purpose:
//   - Allocate zero-initialized roots and zero-copy views.
//   - Track handle lifetimes with atomic reference counts so element storage
//     is freed exactly once, only when no handle or view still needs it.
//   - Own the worker pool the kernels fork onto.
//
// Release policy (recursive):
//   - Release(m) drops m's own handle unit.
//   - When m.refs reaches 0 its row-pointer array is dropped; a view then
//     releases one unit of its parent (walking up the chain), a root drops
//     its element storage.
//
// Complexity:
//   - Allocate: O(r*c) zeroing; AllocateView: O(r); Release: O(depth).

package matrix

import (
	"fmt"
	"log/slog"
	"math"
	"sync/atomic"

	"github.com/katalvlaran/numc/simd"
	"github.com/katalvlaran/numc/workerpool"
)

// ---------- operation tags ----------

const (
	opAllocate     = "Allocate"
	opAllocateView = "AllocateView"
	opRelease      = "Release"
)

// maxAllocBytes mirrors the runtime's largest single heap object on 64-bit
// platforms; larger requests would abort the process instead of failing.
const maxAllocBytes = 1 << 47

// memoryElements caps live elements per engine at physical memory (RAM plus
// swap) so an unbackable request fails instead of aborting the process with
// a fatal runtime out-of-memory. Zero means the platform does not report it.
var memoryElements = int64(physicalMemory() / 8)

// Engine allocates matrices and runs kernels on them. It is safe for
// concurrent use by multiple goroutines as long as no two of them write the
// same storage at once.
type Engine struct {
	opts Options
	pool *workerpool.Pool
	log  *slog.Logger

	liveRoots    atomic.Int64
	liveViews    atomic.Int64
	liveElements atomic.Int64
	allocations  atomic.Uint64
	frees        atomic.Uint64
}

// Stats is a snapshot of the engine's bookkeeping counters.
type Stats struct {
	LiveRoots    int64  // roots whose storage is still held
	LiveViews    int64  // views whose row-pointer arrays are still held
	LiveElements int64  // float64 elements held by live roots
	Allocations  uint64 // roots and views created
	Frees        uint64 // roots and views whose reference count reached zero
}

// New builds an Engine with the given options and starts its worker pool.
func New(opts ...Option) *Engine {
	o := gatherOptions(opts...)
	e := &Engine{
		opts: o,
		pool: workerpool.New(o.workers),
		log:  o.logger,
	}
	e.log.Debug("engine ready",
		slog.String("simd", simd.CurrentLevel().String()),
		slog.Int("workers", e.pool.Workers()),
		slog.Int("small_threshold", o.smallThreshold),
		slog.Int("column_tile", o.columnTile),
	)

	return e
}

// Close stops the worker pool. Kernels keep working on a closed engine but
// run single-threaded. Safe to call more than once.
func (e *Engine) Close() {
	e.pool.Close()
}

// Workers returns the size of the engine worker pool.
func (e *Engine) Workers() int { return e.pool.Workers() }

// Stats returns a snapshot of the engine counters.
func (e *Engine) Stats() Stats {
	return Stats{
		LiveRoots:    e.liveRoots.Load(),
		LiveViews:    e.liveViews.Load(),
		LiveElements: e.liveElements.Load(),
		Allocations:  e.allocations.Load(),
		Frees:        e.frees.Load(),
	}
}

// Allocate creates a zero-initialized rows x cols root matrix.
//
// Errors:
//   - ErrInvalidDimension if rows <= 0 or cols <= 0.
//   - ErrAllocationFailure if rows*cols overflows, exceeds the runtime object
//     limit, or would push live elements past WithMaxElements or past the
//     machine's physical memory (Linux only; elsewhere the runtime may still
//     abort on a request it cannot back).
func (e *Engine) Allocate(rows, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf(opAllocate, ErrInvalidDimension)
	}
	if cols > math.MaxInt/rows || uint64(rows*cols) > maxAllocBytes/8 {
		return nil, matrixErrorf(opAllocate, ErrAllocationFailure)
	}
	n := rows * cols
	if err := e.reserve(int64(n)); err != nil {
		e.log.Warn("allocation refused",
			slog.Int("rows", rows), slog.Int("cols", cols),
			slog.Int64("live_elements", e.liveElements.Load()),
			slog.Int64("limit", e.elementLimit()))
		return nil, matrixErrorf(opAllocate, err)
	}

	storage, data, err := makeStorage(rows, cols)
	if err != nil {
		e.liveElements.Add(-int64(n))
		return nil, matrixErrorf(opAllocate, err)
	}

	m := &Matrix{
		rows:   rows,
		cols:   cols,
		data:   data,
		flat:   storage,
		engine: e,
	}
	m.root = m
	m.refs.Store(1)
	m.open.Store(true)
	e.liveRoots.Add(1)
	e.allocations.Add(1)

	return m, nil
}

// makeStorage allocates the element buffer and its row-pointer array,
// converting a runtime size refusal into ErrAllocationFailure.
func makeStorage(rows, cols int) (storage []float64, data [][]float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			storage, data, err = nil, nil, fmt.Errorf("%w: %v", ErrAllocationFailure, r)
		}
	}()
	storage = make([]float64, rows*cols)
	data = make([][]float64, rows)
	for i := range data {
		data[i] = storage[i*cols : (i+1)*cols : (i+1)*cols]
	}

	return storage, data, nil
}

// elementLimit is the tighter of WithMaxElements and memoryElements, or 0
// when neither applies.
func (e *Engine) elementLimit() int64 {
	limit := e.opts.maxElements
	if memoryElements > 0 && (limit == 0 || memoryElements < limit) {
		limit = memoryElements
	}

	return limit
}

// reserve books n elements against the budget.
func (e *Engine) reserve(n int64) error {
	limit := e.elementLimit()
	for {
		cur := e.liveElements.Load()
		if limit > 0 && cur+n > limit {
			return ErrAllocationFailure
		}
		if e.liveElements.CompareAndSwap(cur, cur+n) {
			return nil
		}
	}
}

// AllocateView creates a view of the rows x cols rectangle of from whose
// top-left corner is (rowOffset, colOffset). The view shares from's storage:
// writes through either are visible through the other. from's reference
// count is incremented until the view is gone.
//
// Errors:
//   - ErrNilMatrix / ErrReleased for an unusable from.
//   - ErrInvalidDimension if rows <= 0 or cols <= 0.
//   - ErrOutOfRange if an offset is negative or the rectangle exceeds from.
func (e *Engine) AllocateView(from *Matrix, rowOffset, colOffset, rows, cols int) (*Matrix, error) {
	if err := ValidateLive(from); err != nil {
		return nil, matrixErrorf(opAllocateView, err)
	}
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf(opAllocateView, ErrInvalidDimension)
	}
	if rowOffset < 0 || colOffset < 0 ||
		rows > from.rows-rowOffset || cols > from.cols-colOffset {
		return nil, matrixErrorf(opAllocateView, ErrOutOfRange)
	}

	data := make([][]float64, rows)
	for i := range data {
		data[i] = from.data[rowOffset+i][colOffset : colOffset+cols : colOffset+cols]
	}

	v := &Matrix{
		rows:   rows,
		cols:   cols,
		absRow: from.absRow + rowOffset,
		absCol: from.absCol + colOffset,
		data:   data,
		flat:   viewFlat(from, data, rowOffset, colOffset, cols),
		parent: from,
		root:   from.root,
		engine: from.engine,
	}
	v.refs.Store(1)
	v.open.Store(true)
	from.refs.Add(1)
	from.engine.liveViews.Add(1)
	from.engine.allocations.Add(1)

	return v, nil
}

// viewFlat returns the contiguous span of a new view, or nil.
func viewFlat(from *Matrix, data [][]float64, rowOffset, colOffset, cols int) []float64 {
	if len(data) == 1 {
		return data[0]
	}
	if from.flat == nil || colOffset != 0 || cols != from.cols {
		return nil
	}
	start := rowOffset * cols
	end := start + len(data)*cols

	return from.flat[start:end:end]
}

// Release hands back m's handle. The storage m aliases is freed once every
// handle and view depending on it has been released.
//
// Errors:
//   - ErrNilMatrix if m is nil.
//   - ErrReleased if m was already released (logged at Warn level).
func (e *Engine) Release(m *Matrix) error {
	if m == nil {
		return matrixErrorf(opRelease, ErrNilMatrix)
	}
	if !m.open.CompareAndSwap(true, false) {
		e.log.Warn("double release",
			slog.Int("rows", m.rows), slog.Int("cols", m.cols),
			slog.Bool("view", m.parent != nil))
		return matrixErrorf(opRelease, ErrReleased)
	}
	drop(m)

	return nil
}

// drop removes one reference from m and walks up the parent chain while
// counts reach zero.
func drop(m *Matrix) {
	for m != nil {
		if m.refs.Add(-1) > 0 {
			return
		}
		owner := m.engine
		parent := m.parent
		m.data = nil
		m.flat = nil
		owner.frees.Add(1)
		if parent == nil {
			owner.liveRoots.Add(-1)
			owner.liveElements.Add(-int64(m.rows * m.cols))
			return
		}
		owner.liveViews.Add(-1)
		m = parent
	}
}

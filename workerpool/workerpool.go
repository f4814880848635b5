// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0
//
// Modified for numc: identifiers renamed, ParallelForAtomic removed, and the
// closed check held under a read lock across task sends.

// Package workerpool runs fork-join parallel loops on a fixed set of
// long-lived goroutines.
//
// A Pool is created once (typically by a matrix engine) and reused by every
// kernel call, so a parallel region costs a few channel sends instead of
// goroutine spawns. Each region blocks until all of its chunks have finished;
// chunks are disjoint index ranges, so kernels that own disjoint output rows
// per chunk need no further synchronization.
//
//	pool := workerpool.New(0) // GOMAXPROCS workers
//	defer pool.Close()
//	pool.ParallelFor(rows, func(start, end int) {
//		for i := start; i < end; i++ {
//			computeRow(i)
//		}
//	})
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent set of workers. The zero value is not usable; use New.
type Pool struct {
	workers int
	tasks   chan task
	// mu is held shared from the closed check until a region's last send, and
	// exclusively by Close, so tasks is never sent on after it is closed.
	mu     sync.RWMutex
	closed bool
}

// task is one chunk of a parallel region plus the region's barrier.
type task struct {
	run  func()
	done *sync.WaitGroup
}

// New starts a pool with the given number of workers.
// If workers <= 0, GOMAXPROCS is used.
func New(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		workers: workers,
		// room for every worker to have a chunk queued behind the one it runs
		tasks: make(chan task, workers*2),
	}
	for range workers {
		go p.loop()
	}

	return p
}

func (p *Pool) loop() {
	for t := range p.tasks {
		t.run()
		t.done.Done()
	}
}

// Workers returns the number of workers in the pool.
func (p *Pool) Workers() int {
	return p.workers
}

// Close stops the workers once queued chunks finish. It is safe to call more
// than once and concurrently with running regions; regions started after
// Close run sequentially on the caller.
func (p *Pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	close(p.tasks)
}

// ParallelFor splits [0, n) into at most Workers() contiguous ranges of equal
// size and calls fn(start, end) for each range, blocking until all return.
// Every index is covered by exactly one call.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	workers := min(p.workers, n)
	if workers == 1 || !p.acquire() {
		fn(0, n)
		return
	}

	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		wg.Add(1)
		p.tasks <- task{
			run:  func() { fn(start, end) },
			done: &wg,
		}
	}
	p.mu.RUnlock()
	wg.Wait()
}

// ParallelForAtomicBatched hands out [0, n) in batches of batchSize through an
// atomic counter, so fast workers pick up more batches. fn(start, end) is
// called once per batch; blocks until all batches are done.
func (p *Pool) ParallelForAtomicBatched(n, batchSize int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if batchSize <= 0 {
		batchSize = 1
	}

	batches := (n + batchSize - 1) / batchSize
	workers := min(p.workers, batches)
	if workers == 1 || !p.acquire() {
		fn(0, n)
		return
	}

	var next atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		p.tasks <- task{
			run: func() {
				for {
					start := int(next.Add(1)-1) * batchSize
					if start >= n {
						return
					}
					fn(start, min(start+batchSize, n))
				}
			},
			done: &wg,
		}
	}
	p.mu.RUnlock()
	wg.Wait()
}

// acquire takes the shared lock and reports true if the pool is open. On
// false the lock is already released.
func (p *Pool) acquire() bool {
	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		return false
	}

	return true
}

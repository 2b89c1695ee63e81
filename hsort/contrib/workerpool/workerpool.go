// Copyright 2025 The go-hypersort Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent, reusable fork-join worker pool.
// A Pool is created once per sort engine and reused by every parallel phase
// (partition copy, local sort, split search, exchange-merge, gather), so the
// per-phase cost is a channel send per worker rather than a goroutine spawn.
//
// Every ParallelFor* call is a barrier: it returns only after all of its
// iterations have finished.
//
// Usage:
//
//	pool := workerpool.New(8)
//	defer pool.Close()
//
//	pool.ParallelForAtomic(len(segments), func(i int) {
//	    sortSegment(segments[i])
//	})
//
// Pool workers must only run leaf work. A loop body that itself calls into
// the same pool and waits can deadlock once every worker is blocked.
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool that can be reused across many parallel
// operations. Workers are spawned once at creation and reused.
type Pool struct {
	numWorkers int
	workC      chan workItem

	// mu guards closed and the sends on workC: loops hold it shared while
	// they enqueue, Close holds it exclusively while it closes the channel.
	mu     sync.RWMutex
	closed bool
}

// workItem represents a single parallel operation to execute.
type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a new worker pool with the specified number of workers.
// Workers are spawned immediately and persist until Close is called.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		// Buffer enough for all workers to have pending work
		workC: make(chan workItem, numWorkers*2),
	}

	for range numWorkers {
		go p.worker()
	}

	return p
}

func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the worker pool. Work already enqueued still runs to
// completion; loops started afterwards run on the calling goroutine.
// Close may be called concurrently with running loops, and more than once.
func (p *Pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	close(p.workC)
}

// dispatch enqueues one item per worker and waits for all of them. It
// reports false, without running anything, if the pool is closed.
func (p *Pool) dispatch(workers int, item func(w int) func()) bool {
	var wg sync.WaitGroup

	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		return false
	}
	wg.Add(workers)
	for w := range workers {
		p.workC <- workItem{fn: item(w), barrier: &wg}
	}
	p.mu.RUnlock()

	wg.Wait()
	return true
}

// ParallelFor splits [0, n) into one contiguous chunk per worker and calls
// fn(start, end) once per chunk. It suits loops whose cost is proportional
// to the index count, such as copying a flat range of elements.
// Blocks until all chunks complete.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}

	workers := min(p.numWorkers, n)
	chunk := (n + workers - 1) / workers
	// Rounding up can leave trailing workers with nothing to do.
	workers = (n + chunk - 1) / chunk

	if workers > 1 && p.dispatch(workers, func(w int) func() {
		start := w * chunk
		end := min(start+chunk, n)
		return func() { fn(start, end) }
	}) {
		return
	}
	fn(0, n)
}

// ParallelForAtomic executes fn for each index in [0, n), with workers
// claiming indices from a shared counter. This balances loops whose cost
// per index varies, which is the normal case for segments after a few
// merge levels. Blocks until all work completes.
func (p *Pool) ParallelForAtomic(n int, fn func(i int)) {
	if n <= 0 {
		return
	}

	workers := min(p.numWorkers, n)
	if workers > 1 {
		var next atomic.Int32
		claim := func(int) func() {
			return func() {
				for {
					i := int(next.Add(1)) - 1
					if i >= n {
						return
					}
					fn(i)
				}
			}
		}
		if p.dispatch(workers, claim) {
			return
		}
	}

	for i := range n {
		fn(i)
	}
}

// ParallelForAtomicErr is ParallelForAtomic for bodies that can fail.
// Every index runs regardless of failures elsewhere; the returned error is
// the one from the lowest failing index, so the result does not depend on
// scheduling.
func (p *Pool) ParallelForAtomicErr(n int, fn func(i int) error) error {
	if n <= 0 {
		return nil
	}

	errs := make([]error, n)
	p.ParallelForAtomic(n, func(i int) {
		errs[i] = fn(i)
	})

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

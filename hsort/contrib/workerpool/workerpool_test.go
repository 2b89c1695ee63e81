// Copyright 2025 The go-hypersort Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"errors"
	"runtime"
	"slices"
	"sync"
	"sync/atomic"
	"testing"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestNew(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	if pool.NumWorkers() != 4 {
		t.Errorf("NumWorkers() = %d, want 4", pool.NumWorkers())
	}
}

func TestNewDefault(t *testing.T) {
	pool := New(0)
	defer pool.Close()

	if pool.NumWorkers() != runtime.GOMAXPROCS(0) {
		t.Errorf("NumWorkers() = %d, want %d", pool.NumWorkers(), runtime.GOMAXPROCS(0))
	}
}

func TestParallelFor(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	n := 100
	results := make([]int, n)

	pool.ParallelFor(n, func(start, end int) {
		for i := start; i < end; i++ {
			results[i] = i * 2
		}
	})

	for i := 0; i < n; i++ {
		if results[i] != i*2 {
			t.Errorf("results[%d] = %d, want %d", i, results[i], i*2)
		}
	}
}

func TestParallelForAtomic(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	n := 100
	results := make([]int, n)

	pool.ParallelForAtomic(n, func(i int) {
		results[i] = i * 2
	})

	for i := 0; i < n; i++ {
		if results[i] != i*2 {
			t.Errorf("results[%d] = %d, want %d", i, results[i], i*2)
		}
	}
}

func TestParallelForAtomicErr(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	errLow := errors.New("low")
	errHigh := errors.New("high")

	var ran atomic.Int32
	err := pool.ParallelForAtomicErr(64, func(i int) error {
		ran.Add(1)
		switch i {
		case 7:
			return errLow
		case 50:
			return errHigh
		}
		return nil
	})

	if !errors.Is(err, errLow) {
		t.Errorf("ParallelForAtomicErr() = %v, want %v", err, errLow)
	}
	if ran.Load() != 64 {
		t.Errorf("ran %d iterations, want 64", ran.Load())
	}

	if err := pool.ParallelForAtomicErr(10, func(int) error { return nil }); err != nil {
		t.Errorf("ParallelForAtomicErr() = %v, want nil", err)
	}
}

func TestParallelForSmallN(t *testing.T) {
	pool := New(8)
	defer pool.Close()

	n := 3
	var count atomic.Int32

	pool.ParallelFor(n, func(start, end int) {
		count.Add(int32(end - start))
	})

	if count.Load() != int32(n) {
		t.Errorf("count = %d, want %d", count.Load(), n)
	}
}

func TestParallelForZeroN(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	var called bool
	pool.ParallelFor(0, func(start, end int) {
		called = true
	})
	pool.ParallelForAtomic(0, func(i int) {
		called = true
	})

	if called {
		t.Error("parallel loop with n=0 should not call fn")
	}
}

// TestNestedFromGoroutines mirrors how the sort engine drives the pool: two
// plain goroutines issue loops concurrently, and only leaf work runs on the
// pool workers.
func TestNestedFromGoroutines(t *testing.T) {
	pool := New(2)
	defer pool.Close()

	results := make([]int, 200)
	done := make(chan struct{}, 2)
	for half := range 2 {
		go func() {
			base := half * 100
			pool.ParallelForAtomic(100, func(i int) {
				results[base+i] = base + i
			})
			done <- struct{}{}
		}()
	}
	<-done
	<-done

	for i, v := range results {
		if v != i {
			t.Fatalf("results[%d] = %d, want %d", i, v, i)
		}
	}
}

func TestCloseMultipleTimes(t *testing.T) {
	pool := New(4)
	pool.Close()
	pool.Close() // Should not panic
}

func TestClosedPoolFallback(t *testing.T) {
	pool := New(4)
	pool.Close()

	n := 100
	results := make([]int, n)

	pool.ParallelFor(n, func(start, end int) {
		for i := start; i < end; i++ {
			results[i] = i * 2
		}
	})

	for i := 0; i < n; i++ {
		if results[i] != i*2 {
			t.Errorf("results[%d] = %d, want %d", i, results[i], i*2)
		}
	}
}

func TestParallelForChunks(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	for _, n := range []int{1, 5, 9, 100} {
		var mu sync.Mutex
		var chunks [][2]int
		pool.ParallelFor(n, func(start, end int) {
			mu.Lock()
			chunks = append(chunks, [2]int{start, end})
			mu.Unlock()
		})

		slices.SortFunc(chunks, func(a, b [2]int) int { return a[0] - b[0] })
		next := 0
		for _, c := range chunks {
			if c[0] != next || c[1] <= c[0] {
				t.Fatalf("n=%d: chunks %v are not contiguous and non-empty", n, chunks)
			}
			next = c[1]
		}
		if next != n || len(chunks) > 4 {
			t.Errorf("n=%d: chunks %v, want cover of [0, %d) in at most 4 chunks", n, chunks, n)
		}
	}
}

func TestCloseDuringLoops(t *testing.T) {
	for range 500 {
		pool := New(8)

		const loops, n = 4, 64
		var total atomic.Int64
		var wg sync.WaitGroup
		for range loops {
			wg.Add(1)
			go func() {
				defer wg.Done()
				pool.ParallelForAtomic(n, func(int) { total.Add(1) })
				pool.ParallelFor(n, func(start, end int) { total.Add(int64(end - start)) })
			}()
		}
		pool.Close()
		wg.Wait()

		if got := total.Load(); got != 2*loops*n {
			t.Fatalf("ran %d iterations, want %d", got, 2*loops*n)
		}
	}
}

func BenchmarkParallelFor(b *testing.B) {
	pool := New(0)
	defer pool.Close()

	n := 1000

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pool.ParallelFor(n, func(start, end int) {
			for j := start; j < end; j++ {
				_ = j * j
			}
		})
	}
}

func BenchmarkParallelForAtomic(b *testing.B) {
	pool := New(0)
	defer pool.Close()

	n := 1000

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pool.ParallelForAtomic(n, func(i int) {
			_ = i * i
		})
	}
}

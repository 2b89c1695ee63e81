// Copyright 2025 go-hypersort Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package hsort

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/ajroetker/go-hypersort/hsort/contrib/sort"
	"github.com/ajroetker/go-hypersort/hsort/contrib/workerpool"
)

// Engine sorts slices of T with a fixed, power-of-two number of segments and
// a persistent worker pool. An Engine is safe for concurrent use; concurrent
// sorts share the pool and the memory budget.
type Engine[T Integer] struct {
	workers int
	pool    *workerpool.Pool
	cfg     config
}

// New creates an engine for the requested number of workers. The count is
// normalized with NormalizeWorkers; an adjustment is logged as a warning and
// is not an error. Close releases the pool.
func New[T Integer](workers int, opts ...Option) *Engine[T] {
	cfg := newConfig(opts)

	p, diag := NormalizeWorkers(workers)
	if diag.Kind != DiagnosticNone {
		cfg.logger.Warn(diag.String(),
			zap.Stringer("kind", diag.Kind),
			zap.Int("requested", diag.Requested),
			zap.Int("workers", diag.Workers),
		)
	}

	poolSize := p
	if cfg.noParallel {
		poolSize = 1
	}

	return &Engine[T]{
		workers: p,
		pool:    workerpool.New(poolSize),
		cfg:     cfg,
	}
}

// Workers returns the normalized worker count, which is also the number of
// segments each sort is split into.
func (e *Engine[T]) Workers() int {
	return e.workers
}

// LocalSort returns the strategy used to sort each segment.
func (e *Engine[T]) LocalSort() sort.Strategy {
	return e.cfg.localSort
}

// Budget returns the memory budget the engine allocates against.
func (e *Engine[T]) Budget() *Budget {
	return e.cfg.budget
}

// Close shuts down the worker pool. Sorts still in flight complete, and
// sorting after Close still works, with the remaining phases run on the
// calling goroutines. Calling Close multiple times is safe.
func (e *Engine[T]) Close() {
	e.pool.Close()
}

// Sort sorts data ascending in place.
func (e *Engine[T]) Sort(data []T) error {
	return e.SortContext(context.Background(), data)
}

// SortContext sorts data ascending in place. The context is checked between
// phases and merge levels; if it is done, the returned error wraps
// ctx.Err(). On any error data is left unmodified.
func (e *Engine[T]) SortContext(ctx context.Context, data []T) error {
	if len(data) <= 1 {
		return nil
	}

	if e.workers == 1 {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("local sort: %w", err)
		}
		return e.sortInPlace(data)
	}

	r := &run[T]{
		ctx:       ctx,
		pool:      e.pool,
		tbl:       newTable[T](e.workers, e.cfg.budget),
		log:       e.cfg.logger,
		localSort: e.cfg.localSort,
	}
	if err := r.sort(data); err != nil {
		r.tbl.releaseAll()
		return err
	}
	return nil
}

// sortInPlace handles the single-segment case without copying.
func (e *Engine[T]) sortInPlace(data []T) error {
	var scratch []T
	if e.cfg.localSort.NeedsScratch() {
		var err error
		scratch, err = allocate[T](e.cfg.budget, len(data))
		if err != nil {
			return fmt.Errorf("local sort scratch: %w", err)
		}
		defer free(e.cfg.budget, scratch)
	}
	sort.SortWith(e.cfg.localSort, data, scratch)
	return nil
}

// Sort sorts data ascending in place using the requested number of
// workers. It creates and closes a transient Engine; use New to reuse one
// across calls.
func Sort[T Integer](data []T, workers int, opts ...Option) error {
	if len(data) <= 1 {
		return nil
	}
	e := New[T](workers, opts...)
	defer e.Close()
	return e.Sort(data)
}

// SortN sorts data[:size] ascending in place. It returns ErrInvalidSize if
// size is negative or larger than len(data).
func SortN[T Integer](data []T, size, workers int, opts ...Option) error {
	if size < 0 || size > len(data) {
		return fmt.Errorf("%w: size %d, slice length %d", ErrInvalidSize, size, len(data))
	}
	return Sort(data[:size], workers, opts...)
}

// run carries the state of one sort call.
type run[T Integer] struct {
	ctx       context.Context
	pool      *workerpool.Pool
	tbl       *table[T]
	log       *zap.Logger
	localSort sort.Strategy
}

func (r *run[T]) sort(data []T) error {
	if err := r.partition(data); err != nil {
		return err
	}
	if err := r.sortSegments(); err != nil {
		return err
	}
	if err := r.mergeGroup(0, r.tbl.len()); err != nil {
		return err
	}
	if err := r.ctx.Err(); err != nil {
		return fmt.Errorf("gather: %w", err)
	}
	return r.gather(data)
}

// sortSegments sorts every segment concurrently.
func (r *run[T]) sortSegments() error {
	if err := r.ctx.Err(); err != nil {
		return fmt.Errorf("local sort: %w", err)
	}
	return r.pool.ParallelForAtomicErr(r.tbl.len(), func(i int) error {
		seg := r.tbl.get(i)
		var scratch []T
		if r.localSort.NeedsScratch() && len(seg) > 1 {
			var err error
			scratch, err = allocate[T](r.tbl.budget, len(seg))
			if err != nil {
				return fmt.Errorf("local sort scratch for segment %d: %w", i, err)
			}
			defer r.tbl.free(scratch)
		}
		sort.SortWith(r.localSort, seg, scratch)
		return nil
	})
}

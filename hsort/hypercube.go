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
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/go-hypersort/hsort/contrib/algo"
)

// mergeGroup runs one exchange level over segments [lo, hi) and recurses
// into both halves. hi-lo must be a power of two. Every segment in the range
// must be sorted on entry; on return each is sorted and every value in
// [lo, mid) is <= every value in [mid, hi).
func (r *run[T]) mergeGroup(lo, hi int) error {
	n := hi - lo
	if n == 1 {
		return nil
	}
	if err := r.ctx.Err(); err != nil {
		return fmt.Errorf("merge group [%d,%d): %w", lo, hi, err)
	}

	half := n / 2
	mid := lo + half

	pivot, ok := r.pivot(lo, hi)
	if !ok {
		// Every segment in the group is empty.
		return nil
	}

	split := make([]int, n)
	r.pool.ParallelForAtomic(n, func(k int) {
		split[k] = algo.UpperBound(r.tbl.get(lo+k), pivot)
	})

	old := make([][]T, n)
	for k := range n {
		old[k] = r.tbl.take(lo + k)
	}

	err := r.pool.ParallelForAtomicErr(n, func(k int) error {
		var first, second []T
		if k < half {
			first = old[k][:split[k]]
			second = old[k+half][:split[k+half]]
		} else {
			first = old[k-half][split[k-half]:]
			second = old[k][split[k]:]
		}

		buf, err := allocate[T](r.tbl.budget, len(first)+len(second))
		if err != nil {
			return fmt.Errorf("merge segment %d: %w", lo+k, err)
		}
		Merge(buf, first, second)
		r.tbl.install(lo+k, buf)
		return nil
	})

	for _, buf := range old {
		r.tbl.free(buf)
	}
	if err != nil {
		return err
	}

	if ce := r.log.Check(zapcore.DebugLevel, "merge level"); ce != nil {
		ce.Write(
			zap.Int("lo", lo),
			zap.Int("hi", hi),
			zap.Int64("pivot", int64(pivot)),
			zap.Ints("split", split),
			zap.Ints("sizes", r.groupSizes(lo, hi)),
		)
	}

	if half == 1 {
		return nil
	}

	var g errgroup.Group
	g.Go(func() error { return r.mergeGroup(lo, mid) })
	g.Go(func() error { return r.mergeGroup(mid, hi) })
	return g.Wait()
}

// pivot returns the middle element of segment lo, read before the level
// modifies anything. When segment lo is empty the first non-empty segment of
// the group stands in; ok is false if the whole group is empty.
func (r *run[T]) pivot(lo, hi int) (pivot T, ok bool) {
	for i := lo; i < hi; i++ {
		if seg := r.tbl.get(i); len(seg) > 0 {
			return seg[len(seg)/2], true
		}
	}
	return pivot, false
}

// groupSizes returns the segment lengths of [lo, hi) only; slots outside the
// group may be in use by a concurrent level.
func (r *run[T]) groupSizes(lo, hi int) []int {
	sizes := make([]int, hi-lo)
	for i := range sizes {
		sizes[i] = len(r.tbl.get(lo + i))
	}
	return sizes
}

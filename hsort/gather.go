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

	"github.com/ajroetker/go-hypersort/hsort/contrib/algo"
)

// gather copies the segments, in index order, back into dst and releases
// them. dst is split into contiguous element ranges, one per worker, so the
// copy stays balanced however skewed the segment sizes are.
func (r *run[T]) gather(dst []T) error {
	offsets, total := algo.ExclusivePrefixSum(r.tbl.sizes())
	if total != len(dst) {
		return fmt.Errorf("hsort: segments hold %d elements, destination has %d", total, len(dst))
	}

	r.pool.ParallelFor(len(dst), func(start, end int) {
		// Last segment starting at or before start; empty segments that
		// share its offset come earlier.
		seg := algo.UpperBound(offsets, start) - 1
		for pos := start; pos < end; seg++ {
			pos += copy(dst[pos:end], r.tbl.get(seg)[pos-offsets[seg]:])
		}
	})
	r.tbl.releaseAll()
	return nil
}

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

import "fmt"

// Bounds splits [0, n) into p contiguous ranges [start[i], end[i]).
//
// With r = n mod p, every range has n/p elements when r is zero. Otherwise
// the first p-1 ranges get (n-r)/p elements and the last one gets the same
// plus r, so the last segment is the only one that can be larger.
func Bounds(n, p int) (start, end []int) {
	start = make([]int, p)
	end = make([]int, p)

	base := n / p
	for i := range p - 1 {
		start[i] = i * base
		end[i] = (i + 1) * base
	}
	start[p-1] = (p - 1) * base
	end[p-1] = n
	return start, end
}

// partition copies data into p freshly allocated segments of tbl.
func (r *run[T]) partition(data []T) error {
	p := r.tbl.len()
	start, end := Bounds(len(data), p)

	return r.pool.ParallelForAtomicErr(p, func(i int) error {
		buf, err := allocate[T](r.tbl.budget, end[i]-start[i])
		if err != nil {
			return fmt.Errorf("partition segment %d: %w", i, err)
		}
		copy(buf, data[start[i]:end[i]])
		r.tbl.install(i, buf)
		return nil
	})
}

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

// Package hsort sorts integer slices with a bounded number of parallel
// workers using hypercube quicksort.
//
// # Algorithm
//
// The input is cut into p contiguous segments, p being the worker count
// rounded down to a power of two. Each segment is copied out and sorted on
// its own. The segments then go through log2(p) exchange levels: within a
// group [lo, hi) of segments a pivot is taken from segment lo, every segment
// is split around it, and segment i of the lower half is paired with segment
// i+half of the upper half. The lower partner receives the merged "<= pivot"
// parts, the upper partner the merged "> pivot" parts. Both halves are then
// processed recursively. After the last level, segment i holds only values
// that are <= every value held by segment i+1, so concatenating the segments
// in index order yields the sorted array.
//
// # Concurrency
//
// Each data-parallel step runs on a persistent workerpool.Pool and ends in a
// barrier. The segment table is shared between workers without locks: in
// every phase each worker writes only the slots it owns. The two halves of a
// group are merged from separate goroutines, which only dispatch loops to the
// pool, so nested levels never block pool workers.
//
// # Example Usage
//
//	data := []int64{5, 3, 8, 1, 9, 2, 7, 4}
//	if err := hsort.Sort(data, 4); err != nil {
//	    return err
//	}
//	// data = [1 2 3 4 5 7 8 9]
//
// For repeated sorts, keep an Engine so the worker pool is reused:
//
//	e := hsort.New[int64](runtime.GOMAXPROCS(0))
//	defer e.Close()
//	for _, batch := range batches {
//	    if err := e.Sort(batch); err != nil {
//	        return err
//	    }
//	}
//
// # Configuration
//
// The environment variables HSORT_NO_PARALLEL, HSORT_LOCAL_SORT and
// HSORT_MEMORY_LIMIT set defaults that the functional options override.
package hsort

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

// Package sort provides the single-threaded sorts the parallel engine runs
// on each segment.
//
// # Algorithms
//
// Introsort (the default) combines:
//   - Insertion sort for small arrays
//   - Quicksort with a sampled median pivot and 3-way partitioning
//   - Heapsort fallback to guarantee O(n log n) worst case
//
// RadixSort is an LSD radix sort over bytes that runs in O(n * width) and
// needs a scratch buffer as large as the input. Std defers to slices.Sort.
//
// # Supported Types
//
// Signed fixed-width integers: int, int8, int16, int32, int64 and any type
// whose underlying type is one of those.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-hypersort/hsort/contrib/sort"
//
//	func ProcessData(data []int64) {
//	    sort.Introsort(data) // In-place ascending sort
//	}
//
// None of the algorithms is stable. For integer keys that is unobservable.
package sort

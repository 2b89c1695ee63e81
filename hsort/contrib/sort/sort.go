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

package sort

import (
	"fmt"
	"slices"
	"strings"
)

// Integer is the set of element types the sorts accept.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Thresholds for different sorting strategies.
const (
	// sortInsertionThreshold: use insertion sort for arrays this size or smaller.
	sortInsertionThreshold = 24

	// pivotSampleThreshold: arrays larger than this sample five pivots instead of three.
	pivotSampleThreshold = 8
)

// Strategy selects the algorithm used by SortWith.
type Strategy int

const (
	// StrategyIntrosort is the comparison introsort in this package.
	StrategyIntrosort Strategy = iota

	// StrategyRadix is LSD radix sort. It needs a scratch buffer.
	StrategyRadix

	// StrategyStd is the standard library's slices.Sort (pdqsort).
	StrategyStd
)

// String returns the name accepted by ParseStrategy.
func (s Strategy) String() string {
	switch s {
	case StrategyIntrosort:
		return "introsort"
	case StrategyRadix:
		return "radix"
	case StrategyStd:
		return "std"
	default:
		return "unknown"
	}
}

// NeedsScratch reports whether the strategy requires a scratch buffer the
// size of its input.
func (s Strategy) NeedsScratch() bool {
	return s == StrategyRadix
}

// ParseStrategy maps a name ("introsort", "radix", "std") to a Strategy.
// The empty string selects StrategyIntrosort.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "introsort":
		return StrategyIntrosort, nil
	case "radix":
		return StrategyRadix, nil
	case "std":
		return StrategyStd, nil
	}
	return StrategyIntrosort, fmt.Errorf("unknown local sort strategy %q", name)
}

// SortWith sorts data in place using strategy s. scratch is only used by
// StrategyRadix; if it is shorter than data a buffer is allocated.
func SortWith[T Integer](s Strategy, data, scratch []T) {
	switch s {
	case StrategyRadix:
		RadixSort(data, scratch)
	case StrategyStd:
		slices.Sort(data)
	default:
		Introsort(data)
	}
}

// Introsort sorts data in-place ascending. This is an introsort variant
// that combines:
//   - Insertion sort for small arrays
//   - Quicksort with sampled pivots and 3-way partitioning
//   - Heapsort fallback for worst-case guarantee
func Introsort[T Integer](data []T) {
	n := len(data)
	if n <= 1 {
		return
	}

	// Calculate max recursion depth: 2 * floor(log2(n))
	maxDepth := 0
	for tmp := n; tmp > 0; tmp >>= 1 {
		maxDepth++
	}
	maxDepth *= 2

	sortImpl(data, maxDepth)
}

// sortImpl is the recursive implementation of Introsort.
func sortImpl[T Integer](data []T, depthLimit int) {
	for {
		n := len(data)
		if n <= 1 {
			return
		}

		if n <= sortInsertionThreshold {
			insertionSort(data)
			return
		}

		if depthLimit == 0 {
			heapSort(data)
			return
		}
		depthLimit--

		pivot := PivotSampled(data)
		lt, gt := Partition3Way(data, pivot)

		// Recurse into the smaller side, loop on the larger one.
		if lt < n-gt {
			sortImpl(data[:lt], depthLimit)
			data = data[gt:]
		} else {
			sortImpl(data[gt:], depthLimit)
			data = data[:lt]
		}
	}
}

// insertionSort is insertion sort for small arrays.
func insertionSort[T Integer](data []T) {
	for i := 1; i < len(data); i++ {
		key := data[i]
		j := i - 1
		for j >= 0 && data[j] > key {
			data[j+1] = data[j]
			j--
		}
		data[j+1] = key
	}
}

// heapSort is heapsort for O(n log n) worst-case guarantee.
func heapSort[T Integer](data []T) {
	n := len(data)
	if n <= 1 {
		return
	}

	// Build max-heap
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(data, i, n)
	}

	// Extract elements
	for i := n - 1; i > 0; i-- {
		data[0], data[i] = data[i], data[0]
		siftDown(data, 0, i)
	}
}

func siftDown[T Integer](data []T, i, n int) {
	for {
		largest := i
		left := 2*i + 1
		right := 2*i + 2

		if left < n && data[left] > data[largest] {
			largest = left
		}
		if right < n && data[right] > data[largest] {
			largest = right
		}

		if largest == i {
			break
		}

		data[i], data[largest] = data[largest], data[i]
		i = largest
	}
}

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

package algo

import "cmp"

// UpperBound returns the index of the first element of the ascending slice
// data that is strictly greater than value, or len(data) if there is none.
// data[:i] <= value and data[i:] > value for the returned i.
func UpperBound[T cmp.Ordered](data []T, value T) int {
	lo, hi := 0, len(data)
	for lo < hi {
		h := int(uint(lo+hi) >> 1)
		if data[h] <= value {
			lo = h + 1
		} else {
			hi = h
		}
	}
	return lo
}

// IsSorted reports whether data is in ascending order.
func IsSorted[T cmp.Ordered](data []T) bool {
	for i := 1; i < len(data); i++ {
		if data[i] < data[i-1] {
			return false
		}
	}
	return true
}

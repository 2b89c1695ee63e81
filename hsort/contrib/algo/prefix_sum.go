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

// Integers is the set of integer kinds the prefix sums accept.
type Integers interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// ExclusivePrefixSum returns a new slice whose element i is the sum of
// sizes[0:i], together with the sum of all of sizes. The input is not
// modified.
//
// Example:
//
//	offsets, total := ExclusivePrefixSum([]int{3, 0, 5, 2})
//	// offsets = [0, 3, 3, 8], total = 10
func ExclusivePrefixSum[T Integers](sizes []T) ([]T, T) {
	offsets := make([]T, len(sizes))
	var carry T
	for i, s := range sizes {
		offsets[i] = carry
		carry += s
	}
	return offsets, carry
}
